package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// MealRepository 餐食数据访问接口
type MealRepository interface {
	ListByPeriod(ctx context.Context, periodID string) ([]model.Meal, error)
	BatchCreate(ctx context.Context, meals []model.Meal) error
	DeleteByPeriod(ctx context.Context, periodID string) error
	DeleteByPeriodIDs(ctx context.Context, periodIDs []string) error
}

type mealRepo struct {
	db *gorm.DB
}

// NewMealRepo 创建 MealRepository 实例
func NewMealRepo(db *gorm.DB) MealRepository {
	return &mealRepo{db: db}
}

func (r *mealRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.Meal, error) {
	var meals []model.Meal
	err := r.db.WithContext(ctx).
		Where("menu_period_id = ?", periodID).
		Order("day_of_week ASC, meal_type ASC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepo) BatchCreate(ctx context.Context, meals []model.Meal) error {
	if len(meals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&meals).Error
}

func (r *mealRepo) DeleteByPeriod(ctx context.Context, periodID string) error {
	return r.db.WithContext(ctx).
		Where("menu_period_id = ?", periodID).
		Delete(&model.Meal{}).Error
}

func (r *mealRepo) DeleteByPeriodIDs(ctx context.Context, periodIDs []string) error {
	if len(periodIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("menu_period_id IN ?", periodIDs).
		Delete(&model.Meal{}).Error
}
