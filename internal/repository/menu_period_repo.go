package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// MenuPeriodRepository 菜单周期数据访问接口
type MenuPeriodRepository interface {
	Create(ctx context.Context, period *model.MenuPeriod) error
	GetByID(ctx context.Context, id string) (*model.MenuPeriod, error)
	GetActiveByCategory(ctx context.Context, category string) (*model.MenuPeriod, error)
	ListByCategory(ctx context.Context, category string) ([]model.MenuPeriod, error)
	ListAll(ctx context.Context) ([]model.MenuPeriod, error)
	ListActive(ctx context.Context) ([]model.MenuPeriod, error)
	Update(ctx context.Context, period *model.MenuPeriod) error
	SetActiveByIDs(ctx context.Context, ids []string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

type menuPeriodRepo struct {
	db *gorm.DB
}

// NewMenuPeriodRepo 创建 MenuPeriodRepository 实例
func NewMenuPeriodRepo(db *gorm.DB) MenuPeriodRepository {
	return &menuPeriodRepo{db: db}
}

func (r *menuPeriodRepo) Create(ctx context.Context, period *model.MenuPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *menuPeriodRepo) GetByID(ctx context.Context, id string) (*model.MenuPeriod, error) {
	var period model.MenuPeriod
	err := r.db.WithContext(ctx).
		Where("menu_period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *menuPeriodRepo) GetActiveByCategory(ctx context.Context, category string) (*model.MenuPeriod, error) {
	var period model.MenuPeriod
	err := r.db.WithContext(ctx).
		Preload("Meals").
		Where("category = ? AND is_active = ?", category, true).
		Order("start_date DESC").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *menuPeriodRepo) ListByCategory(ctx context.Context, category string) ([]model.MenuPeriod, error) {
	var periods []model.MenuPeriod
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *menuPeriodRepo) ListAll(ctx context.Context) ([]model.MenuPeriod, error) {
	var periods []model.MenuPeriod
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *menuPeriodRepo) ListActive(ctx context.Context) ([]model.MenuPeriod, error) {
	var periods []model.MenuPeriod
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *menuPeriodRepo) Update(ctx context.Context, period *model.MenuPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *menuPeriodRepo) SetActiveByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.MenuPeriod{}).
		Where("menu_period_id IN ?", ids).
		Update("is_active", true).Error
}

func (r *menuPeriodRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("menu_period_id IN ?", ids).
		Delete(&model.MenuPeriod{}).Error
}
