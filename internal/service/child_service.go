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

// ErrChildNotFound 幼儿档案不存在
var ErrChildNotFound = errors.New("幼儿档案不存在")

// ChildService 幼儿档案服务接口
type ChildService interface {
	Create(ctx context.Context, req *dto.CreateChildRequest) (*dto.ChildResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ChildResponse, error)
	List(ctx context.Context, query *dto.ListChildrenQuery) ([]dto.ChildResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateChildRequest) (*dto.ChildResponse, error)
	Delete(ctx context.Context, id string, operatorID string) error
}

type childService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChildService 创建 ChildService 实例
func NewChildService(repo *repository.Repository, logger *zap.Logger) ChildService {
	return &childService{repo: repo, logger: logger}
}

// checkClassroom 档案可不挂班级；挂班级时班级必须存在
func (s *childService) checkClassroom(ctx context.Context, classroomID *string) error {
	if classroomID == nil || *classroomID == "" {
		return nil
	}
	if _, err := s.repo.Classroom.GetByID(ctx, *classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return err
	}
	return nil
}

func (s *childService) Create(ctx context.Context, req *dto.CreateChildRequest) (*dto.ChildResponse, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, ErrBadDate
	}
	if err := s.checkClassroom(ctx, req.ClassroomID); err != nil {
		return nil, err
	}

	child := &model.Child{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BirthDate:     birthDate,
		ClassroomID:   req.ClassroomID,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		GuardianEmail: req.GuardianEmail,
		Allergies:     req.Allergies,
	}
	if err := s.repo.Child.Create(ctx, child); err != nil {
		return nil, err
	}

	s.logger.Info("幼儿档案已创建", zap.String("child_id", child.ChildID))
	return toChildResponse(child), nil
}

func (s *childService) GetByID(ctx context.Context, id string) (*dto.ChildResponse, error) {
	child, err := s.repo.Child.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}
	return toChildResponse(child), nil
}

func (s *childService) List(ctx context.Context, query *dto.ListChildrenQuery) ([]dto.ChildResponse, int64, error) {
	offset := (query.Page - 1) * query.PageSize
	children, total, err := s.repo.Child.List(ctx, query.ClassroomID, offset, query.PageSize)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ChildResponse, 0, len(children))
	for i := range children {
		resp = append(resp, *toChildResponse(&children[i]))
	}
	return resp, total, nil
}

func (s *childService) Update(ctx context.Context, id string, req *dto.UpdateChildRequest) (*dto.ChildResponse, error) {
	child, err := s.repo.Child.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		child.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		child.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, ErrBadDate
		}
		child.BirthDate = birthDate
	}
	if req.ClassroomID != nil {
		if err := s.checkClassroom(ctx, req.ClassroomID); err != nil {
			return nil, err
		}
		child.ClassroomID = req.ClassroomID
	}
	if req.GuardianName != nil {
		child.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		child.GuardianPhone = *req.GuardianPhone
	}
	if req.GuardianEmail != nil {
		child.GuardianEmail = *req.GuardianEmail
	}
	if req.Allergies != nil {
		child.Allergies = *req.Allergies
	}

	if err := s.repo.Child.Update(ctx, child); err != nil {
		return nil, err
	}
	return toChildResponse(child), nil
}

func (s *childService) Delete(ctx context.Context, id string, operatorID string) error {
	if _, err := s.repo.Child.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChildNotFound
		}
		return err
	}
	if err := s.repo.Child.Delete(ctx, id, operatorID); err != nil {
		return err
	}
	s.logger.Info("幼儿档案已删除", zap.String("child_id", id), zap.String("operator", operatorID))
	return nil
}

func toChildResponse(c *model.Child) *dto.ChildResponse {
	resp := &dto.ChildResponse{
		ID:            c.ChildID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		BirthDate:     formatDate(c.BirthDate),
		ClassroomID:   c.ClassroomID,
		GuardianName:  c.GuardianName,
		GuardianPhone: c.GuardianPhone,
		GuardianEmail: c.GuardianEmail,
		Allergies:     c.Allergies,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
	if c.Classroom != nil {
		resp.ClassroomName = c.Classroom.Name
	}
	return resp
}
