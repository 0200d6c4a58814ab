package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// ScheduleSlotRepository 活动时段数据访问接口
type ScheduleSlotRepository interface {
	ListByPeriod(ctx context.Context, periodID string) ([]model.ScheduleSlot, error)
	BatchCreate(ctx context.Context, slots []model.ScheduleSlot) error
	DeleteByPeriod(ctx context.Context, periodID string) error
	DeleteByPeriodIDs(ctx context.Context, periodIDs []string) error
}

type scheduleSlotRepo struct {
	db *gorm.DB
}

// NewScheduleSlotRepo 创建 ScheduleSlotRepository 实例
func NewScheduleSlotRepo(db *gorm.DB) ScheduleSlotRepository {
	return &scheduleSlotRepo{db: db}
}

func (r *scheduleSlotRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.ScheduleSlot, error) {
	var slots []model.ScheduleSlot
	err := r.db.WithContext(ctx).
		Where("schedule_period_id = ?", periodID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *scheduleSlotRepo) BatchCreate(ctx context.Context, slots []model.ScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&slots).Error
}

func (r *scheduleSlotRepo) DeleteByPeriod(ctx context.Context, periodID string) error {
	return r.db.WithContext(ctx).
		Where("schedule_period_id = ?", periodID).
		Delete(&model.ScheduleSlot{}).Error
}

func (r *scheduleSlotRepo) DeleteByPeriodIDs(ctx context.Context, periodIDs []string) error {
	if len(periodIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("schedule_period_id IN ?", periodIDs).
		Delete(&model.ScheduleSlot{}).Error
}
