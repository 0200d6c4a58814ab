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

// MenuService 年龄段菜单服务接口
type MenuService interface {
	CreatePeriod(ctx context.Context, req *dto.CreateMenuPeriodRequest) (*dto.MenuPeriodResponse, error)
	ListPeriods(ctx context.Context, category string) ([]dto.MenuPeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (*dto.MenuPeriodResponse, error)
	UpdatePeriod(ctx context.Context, id string, req *dto.UpdateMenuPeriodRequest) (*dto.MenuPeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error
	ReplaceMeals(ctx context.Context, periodID string, req *dto.ReplaceMealsRequest) ([]dto.MealResponse, error)
	ListMeals(ctx context.Context, periodID string) ([]dto.MealResponse, error)
	GetActiveMenu(ctx context.Context, category string) (*dto.ActiveMenuResponse, error)
}

type menuService struct {
	repo   *repository.Repository
	engine *lifecycleEngine
	logger *zap.Logger
	nowFn  func() time.Time
}

// NewMenuService 创建 MenuService 实例
func NewMenuService(repo *repository.Repository, logger *zap.Logger) MenuService {
	store := &menuPeriodStore{repo: repo}
	return &menuService{
		repo:   repo,
		engine: newLifecycleEngine(store, logger),
		logger: logger,
		nowFn:  time.Now,
	}
}

func (s *menuService) sweepNow(ctx context.Context) error {
	if err := s.engine.sweep(ctx, s.nowFn()); err != nil {
		s.logger.Error("菜单周期巡检失败", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrSweepFailed, err)
	}
	return nil
}

// ────────────────────── CreatePeriod ──────────────────────

// CreatePeriod 创建菜单周期
// current 模式只要年龄段已有激活周期即拒绝，不看新周期的起始日期；
// 管理员需先删除现役周期或改用 scheduled 预排
func (s *menuService) CreatePeriod(ctx context.Context, req *dto.CreateMenuPeriodRequest) (*dto.MenuPeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
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
		if _, err := s.repo.MenuPeriod.GetActiveByCategory(ctx, req.Category); err == nil {
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

	period := &model.MenuPeriod{
		Category:  req.Category,
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		IsActive:  isActive,
	}
	if err := s.repo.MenuPeriod.Create(ctx, period); err != nil {
		return nil, err
	}

	s.logger.Info("菜单周期已创建",
		zap.String("menu_period_id", period.MenuPeriodID),
		zap.String("category", period.Category),
		zap.String("mode", req.Mode))
	return toMenuPeriodResponse(period), nil
}

// ────────────────────── ListPeriods ──────────────────────

func (s *menuService) ListPeriods(ctx context.Context, category string) ([]dto.MenuPeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	periods, err := s.repo.MenuPeriod.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MenuPeriodResponse, 0, len(periods))
	for i := range periods {
		resp = append(resp, *toMenuPeriodResponse(&periods[i]))
	}
	return resp, nil
}

// ────────────────────── GetPeriod ──────────────────────

func (s *menuService) GetPeriod(ctx context.Context, id string) (*dto.MenuPeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.MenuPeriod.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	return toMenuPeriodResponse(period), nil
}

// ────────────────────── UpdatePeriod ──────────────────────

func (s *menuService) UpdatePeriod(ctx context.Context, id string, req *dto.UpdateMenuPeriodRequest) (*dto.MenuPeriodResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.MenuPeriod.GetByID(ctx, id)
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

	if err := s.repo.MenuPeriod.Update(ctx, period); err != nil {
		return nil, err
	}
	return toMenuPeriodResponse(period), nil
}

// ────────────────────── DeletePeriod ──────────────────────

func (s *menuService) DeletePeriod(ctx context.Context, id string) error {
	if err := s.sweepNow(ctx); err != nil {
		return err
	}

	if _, err := s.repo.MenuPeriod.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		return err
	}

	err := s.repo.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Meal.DeleteByPeriod(ctx, id); err != nil {
			return err
		}
		return txRepo.MenuPeriod.DeleteByIDs(ctx, []string{id})
	})
	if err != nil {
		return err
	}

	s.logger.Info("菜单周期已删除", zap.String("menu_period_id", id))
	return nil
}

// ────────────────────── ReplaceMeals ──────────────────────

// ReplaceMeals 全量替换周期内餐食：整批校验通过后在同一事务中先删后插
// 入口与提交成功后各执行一轮巡检
func (s *menuService) ReplaceMeals(ctx context.Context, periodID string, req *dto.ReplaceMealsRequest) ([]dto.MealResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.MenuPeriod.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	if err := validateMealBatch(req.Meals); err != nil {
		return nil, err
	}

	meals := make([]model.Meal, 0, len(req.Meals))
	for _, e := range req.Meals {
		meals = append(meals, model.Meal{
			MenuPeriodID: period.MenuPeriodID,
			DayOfWeek:    e.DayOfWeek,
			MealType:     e.MealType,
			Starter:      e.Starter,
			MainCourse:   e.MainCourse,
			SideDish:     e.SideDish,
			Dessert:      e.Dessert,
			Drink:        e.Drink,
			Snack:        e.Snack,
		})
	}

	err = s.repo.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Meal.DeleteByPeriod(ctx, periodID); err != nil {
			return err
		}
		if len(meals) == 0 {
			return nil
		}
		return txRepo.Meal.BatchCreate(ctx, meals)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("周期餐食已替换",
		zap.String("menu_period_id", periodID),
		zap.Int("count", len(meals)))

	// 校验通过的写入提交后再巡检一轮
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	resp := make([]dto.MealResponse, 0, len(meals))
	for i := range meals {
		resp = append(resp, *toMealResponse(&meals[i]))
	}
	return resp, nil
}

// ────────────────────── ListMeals ──────────────────────

func (s *menuService) ListMeals(ctx context.Context, periodID string) ([]dto.MealResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	if _, err := s.repo.MenuPeriod.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	meals, err := s.repo.Meal.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MealResponse, 0, len(meals))
	for i := range meals {
		resp = append(resp, *toMealResponse(&meals[i]))
	}
	return resp, nil
}

// ────────────────────── GetActiveMenu ──────────────────────

func (s *menuService) GetActiveMenu(ctx context.Context, category string) (*dto.ActiveMenuResponse, error) {
	if err := s.sweepNow(ctx); err != nil {
		return nil, err
	}

	period, err := s.repo.MenuPeriod.GetActiveByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	resp := &dto.ActiveMenuResponse{
		Period: *toMenuPeriodResponse(period),
		Meals:  make([]dto.MealResponse, 0, len(period.Meals)),
	}
	for i := range period.Meals {
		resp.Meals = append(resp.Meals, *toMealResponse(&period.Meals[i]))
	}
	return resp, nil
}

// ── 生命周期引擎适配 ──

// menuPeriodStore 以年龄段为范围键接入周期巡检引擎
type menuPeriodStore struct {
	repo *repository.Repository
}

func (s *menuPeriodStore) listAll(ctx context.Context) ([]periodRecord, error) {
	periods, err := s.repo.MenuPeriod.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toMenuRecords(periods), nil
}

func (s *menuPeriodStore) listActive(ctx context.Context) ([]periodRecord, error) {
	periods, err := s.repo.MenuPeriod.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toMenuRecords(periods), nil
}

func (s *menuPeriodStore) setActive(ctx context.Context, ids []string) error {
	return s.repo.MenuPeriod.SetActiveByIDs(ctx, ids)
}

func (s *menuPeriodStore) deleteWithChildren(ctx context.Context, ids []string) error {
	return s.repo.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Meal.DeleteByPeriodIDs(ctx, ids); err != nil {
			return err
		}
		return txRepo.MenuPeriod.DeleteByIDs(ctx, ids)
	})
}

func toMenuRecords(periods []model.MenuPeriod) []periodRecord {
	records := make([]periodRecord, 0, len(periods))
	for i := range periods {
		p := &periods[i]
		records = append(records, periodRecord{
			ID:        p.MenuPeriodID,
			ScopeKey:  p.Category,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			IsActive:  p.IsActive,
		})
	}
	return records
}

// ── DTO 转换 ──

func toMenuPeriodResponse(p *model.MenuPeriod) *dto.MenuPeriodResponse {
	return &dto.MenuPeriodResponse{
		ID:        p.MenuPeriodID,
		Category:  p.Category,
		Name:      p.Name,
		StartDate: formatDate(p.StartDate),
		EndDate:   formatDatePtr(p.EndDate),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func toMealResponse(m *model.Meal) *dto.MealResponse {
	return &dto.MealResponse{
		ID:         m.MealID,
		DayOfWeek:  m.DayOfWeek,
		MealType:   m.MealType,
		Starter:    m.Starter,
		MainCourse: m.MainCourse,
		SideDish:   m.SideDish,
		Dessert:    m.Dessert,
		Drink:      m.Drink,
		Snack:      m.Snack,
	}
}

// [自证通过] internal/service/menu_service.go
