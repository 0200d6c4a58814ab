package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// SchedulePeriodRepository 班级活动周期数据访问接口
type SchedulePeriodRepository interface {
	Create(ctx context.Context, period *model.SchedulePeriod) error
	GetByID(ctx context.Context, id string) (*model.SchedulePeriod, error)
	GetActiveByClassroom(ctx context.Context, classroomID string) (*model.SchedulePeriod, error)
	ListByClassroom(ctx context.Context, classroomID string) ([]model.SchedulePeriod, error)
	ListAll(ctx context.Context) ([]model.SchedulePeriod, error)
	ListActive(ctx context.Context) ([]model.SchedulePeriod, error)
	Update(ctx context.Context, period *model.SchedulePeriod) error
	SetActiveByIDs(ctx context.Context, ids []string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

type schedulePeriodRepo struct {
	db *gorm.DB
}

// NewSchedulePeriodRepo 创建 SchedulePeriodRepository 实例
func NewSchedulePeriodRepo(db *gorm.DB) SchedulePeriodRepository {
	return &schedulePeriodRepo{db: db}
}

func (r *schedulePeriodRepo) Create(ctx context.Context, period *model.SchedulePeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *schedulePeriodRepo) GetByID(ctx context.Context, id string) (*model.SchedulePeriod, error) {
	var period model.SchedulePeriod
	err := r.db.WithContext(ctx).
		Where("schedule_period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *schedulePeriodRepo) GetActiveByClassroom(ctx context.Context, classroomID string) (*model.SchedulePeriod, error) {
	var period model.SchedulePeriod
	err := r.db.WithContext(ctx).
		Preload("Slots").
		Where("classroom_id = ? AND is_active = ?", classroomID, true).
		Order("start_date DESC").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *schedulePeriodRepo) ListByClassroom(ctx context.Context, classroomID string) ([]model.SchedulePeriod, error) {
	var periods []model.SchedulePeriod
	err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *schedulePeriodRepo) ListAll(ctx context.Context) ([]model.SchedulePeriod, error) {
	var periods []model.SchedulePeriod
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *schedulePeriodRepo) ListActive(ctx context.Context) ([]model.SchedulePeriod, error) {
	var periods []model.SchedulePeriod
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *schedulePeriodRepo) Update(ctx context.Context, period *model.SchedulePeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *schedulePeriodRepo) SetActiveByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.SchedulePeriod{}).
		Where("schedule_period_id IN ?", ids).
		Update("is_active", true).Error
}

func (r *schedulePeriodRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("schedule_period_id IN ?", ids).
		Delete(&model.SchedulePeriod{}).Error
}
