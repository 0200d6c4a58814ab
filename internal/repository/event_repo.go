package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// EventRepository 园所活动数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.FacilityEvent) error
	GetByID(ctx context.Context, id string) (*model.FacilityEvent, error)
	List(ctx context.Context, from, to *time.Time) ([]model.FacilityEvent, error)
	Update(ctx context.Context, event *model.FacilityEvent) error
	Delete(ctx context.Context, id string) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.FacilityEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.FacilityEvent, error) {
	var event model.FacilityEvent
	err := r.db.WithContext(ctx).
		Preload("Classroom").
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, from, to *time.Time) ([]model.FacilityEvent, error) {
	var events []model.FacilityEvent
	q := r.db.WithContext(ctx).Preload("Classroom").Order("event_date ASC")
	if from != nil {
		q = q.Where("event_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("event_date <= ?", *to)
	}
	err := q.Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.FacilityEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.FacilityEvent{}).Error
}
