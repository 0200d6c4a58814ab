package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// ChildRepository 幼儿档案数据访问接口
type ChildRepository interface {
	Create(ctx context.Context, child *model.Child) error
	GetByID(ctx context.Context, id string) (*model.Child, error)
	List(ctx context.Context, classroomID string, offset, limit int) ([]model.Child, int64, error)
	Update(ctx context.Context, child *model.Child) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type childRepo struct {
	db *gorm.DB
}

// NewChildRepo 创建 ChildRepository 实例
func NewChildRepo(db *gorm.DB) ChildRepository {
	return &childRepo{db: db}
}

func (r *childRepo) Create(ctx context.Context, child *model.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepo) GetByID(ctx context.Context, id string) (*model.Child, error) {
	var child model.Child
	err := r.db.WithContext(ctx).
		Preload("Classroom").
		Where("child_id = ?", id).
		First(&child).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepo) List(ctx context.Context, classroomID string, offset, limit int) ([]model.Child, int64, error) {
	var children []model.Child
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Child{})
	if classroomID != "" {
		q = q.Where("classroom_id = ?", classroomID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Classroom").
		Order("last_name ASC, first_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&children).Error
	return children, total, err
}

func (r *childRepo) Update(ctx context.Context, child *model.Child) error {
	return r.db.WithContext(ctx).Save(child).Error
}

func (r *childRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Child{}).
		Where("child_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
