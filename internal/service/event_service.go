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

// ErrEventNotFound 园所活动不存在
var ErrEventNotFound = errors.New("园所活动不存在")

// EventService 园所活动服务接口
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	List(ctx context.Context, query *dto.ListEventsQuery) ([]dto.EventResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, ErrBadDate
	}
	if req.ClassroomID != nil && *req.ClassroomID != "" {
		if _, err := s.repo.Classroom.GetByID(ctx, *req.ClassroomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassroomNotFound
			}
			return nil, err
		}
	}

	event := &model.FacilityEvent{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		ClassroomID: req.ClassroomID,
	}
	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("园所活动已创建", zap.String("event_id", event.EventID), zap.String("date", req.EventDate))
	return toEventResponse(event), nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return toEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context, query *dto.ListEventsQuery) ([]dto.EventResponse, error) {
	var from, to *time.Time
	if query.From != "" {
		t, err := parseDate(query.From)
		if err != nil {
			return nil, ErrBadDate
		}
		from = &t
	}
	if query.To != "" {
		t, err := parseDate(query.To)
		if err != nil {
			return nil, ErrBadDate
		}
		to = &t
	}

	events, err := s.repo.Event.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, *toEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, ErrBadDate
		}
		event.EventDate = eventDate
	}
	if req.ClassroomID != nil {
		if *req.ClassroomID != "" {
			if _, err := s.repo.Classroom.GetByID(ctx, *req.ClassroomID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrClassroomNotFound
				}
				return nil, err
			}
		}
		event.ClassroomID = req.ClassroomID
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Event.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if err := s.repo.Event.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("园所活动已删除", zap.String("event_id", id))
	return nil
}

func toEventResponse(e *model.FacilityEvent) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.EventID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   formatDate(e.EventDate),
		ClassroomID: e.ClassroomID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
