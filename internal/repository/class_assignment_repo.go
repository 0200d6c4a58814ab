package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// ClassAssignmentRepository 班级带班分配数据访问接口
type ClassAssignmentRepository interface {
	ListByClassroom(ctx context.Context, classroomID string) ([]model.ClassAssignment, error)
	ReplaceByClassroom(ctx context.Context, classroomID string, assignments []model.ClassAssignment) error
}

type classAssignmentRepo struct {
	db *gorm.DB
}

// NewClassAssignmentRepo 创建 ClassAssignmentRepository 实例
func NewClassAssignmentRepo(db *gorm.DB) ClassAssignmentRepository {
	return &classAssignmentRepo{db: db}
}

func (r *classAssignmentRepo) ListByClassroom(ctx context.Context, classroomID string) ([]model.ClassAssignment, error) {
	var assignments []model.ClassAssignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("classroom_id = ?", classroomID).
		Order("is_primary DESC, created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// ReplaceByClassroom 全量替换班级的带班分配（先删后插）
// 必须在已有事务的 *gorm.DB 上调用（通过 Repository.WithTx 注入事务连接）
func (r *classAssignmentRepo) ReplaceByClassroom(ctx context.Context, classroomID string, assignments []model.ClassAssignment) error {
	if err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Delete(&model.ClassAssignment{}).Error; err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}
