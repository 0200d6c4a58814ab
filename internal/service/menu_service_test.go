package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
	"github.com/Fellah73/nursery-management-api-sub000/internal/repository"
)

// ── 测试辅助 ──

type menuTestEnv struct {
	svc        *menuService
	periodRepo *mockMenuPeriodRepo
	mealRepo   *mockMealRepo
}

func setupTestMenuService(now time.Time) *menuTestEnv {
	periodRepo := newMockMenuPeriodRepo()
	mealRepo := newMockMealRepo()
	periodRepo.mealRepo = mealRepo

	repo := &repository.Repository{
		MenuPeriod: periodRepo,
		Meal:       mealRepo,
	}
	svc := NewMenuService(repo, zap.NewNop()).(*menuService)
	svc.nowFn = func() time.Time { return now }
	return &menuTestEnv{svc: svc, periodRepo: periodRepo, mealRepo: mealRepo}
}

func (e *menuTestEnv) seedPeriod(t *testing.T, category, name string, start time.Time, end *time.Time, active bool) *model.MenuPeriod {
	t.Helper()
	p := &model.MenuPeriod{
		Category:  category,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		IsActive:  active,
	}
	if err := e.periodRepo.Create(context.Background(), p); err != nil {
		t.Fatalf("种子菜单周期创建失败: %v", err)
	}
	return p
}

func strPtr(s string) *string { return &s }

func breakfastEntry(dayOfWeek string) dto.MealEntry {
	return dto.MealEntry{
		DayOfWeek: dayOfWeek,
		MealType:  model.MealTypeBreakfast,
		Drink:     strPtr("牛奶"),
		Snack:     strPtr("燕麦饼干"),
	}
}

func lunchEntry(dayOfWeek string) dto.MealEntry {
	return dto.MealEntry{
		DayOfWeek:  dayOfWeek,
		MealType:   model.MealTypeLunch,
		Starter:    strPtr("蔬菜汤"),
		MainCourse: strPtr("番茄炖鸡"),
		SideDish:   strPtr("米饭"),
		Dessert:    strPtr("酸奶"),
		Drink:      strPtr("温水"),
	}
}

func gouterEntry(dayOfWeek string) dto.MealEntry {
	return dto.MealEntry{
		DayOfWeek: dayOfWeek,
		MealType:  model.MealTypeGouter,
		Drink:     strPtr("果汁"),
		Snack:     strPtr("水果拼盘"),
	}
}

// ── CreatePeriod 测试 ──

func TestMenuService_CreatePeriod_CurrentUniquePerCategory(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	env.seedPeriod(t, model.CategoryToddler, "幼儿秋季菜单", day(2026, 8, 1), nil, true)

	// 同年龄段拒绝第二个激活周期
	req := &dto.CreateMenuPeriodRequest{
		Category:  model.CategoryToddler,
		Name:      "重复激活",
		Mode:      "current",
		StartDate: "2026-09-01",
	}
	if _, err := env.svc.CreatePeriod(context.Background(), req); !errors.Is(err, ErrActivePeriodExists) {
		t.Errorf("期望 ErrActivePeriodExists，实际: %v", err)
	}

	// 其他年龄段不受影响
	req.Category = model.CategoryInfant
	result, err := env.svc.CreatePeriod(context.Background(), req)
	if err != nil {
		t.Fatalf("其他年龄段创建应成功: %v", err)
	}
	if !result.IsActive {
		t.Error("current 模式创建的菜单周期应立即激活")
	}
}

func TestMenuService_CreatePeriod_ScheduledStartMustBeFuture(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))

	req := &dto.CreateMenuPeriodRequest{
		Category:  model.CategoryPreschool,
		Name:      "预排菜单",
		Mode:      "scheduled",
		StartDate: "2026-09-01",
	}
	if _, err := env.svc.CreatePeriod(context.Background(), req); !errors.Is(err, ErrScheduledStartNotFuture) {
		t.Errorf("期望 ErrScheduledStartNotFuture，实际: %v", err)
	}
}

// ── 周期巡检测试 ──

func TestMenuService_Sweep_ScopeIsCategory(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))

	// 不同年龄段各自一个激活周期，互不冲突
	infant := env.seedPeriod(t, model.CategoryInfant, "婴儿菜单", day(2026, 8, 1), nil, true)
	toddler := env.seedPeriod(t, model.CategoryToddler, "幼儿菜单", day(2026, 8, 10), nil, true)

	if _, err := env.svc.ListPeriods(context.Background(), model.CategoryInfant); err != nil {
		t.Fatalf("ListPeriods 应成功: %v", err)
	}
	if _, ok := env.periodRepo.periods[infant.MenuPeriodID]; !ok {
		t.Error("婴儿菜单不应被消解")
	}
	if _, ok := env.periodRepo.periods[toddler.MenuPeriodID]; !ok {
		t.Error("幼儿菜单不应被消解")
	}
}

func TestMenuService_Sweep_ResolvesConflictWithinCategory(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	older := env.seedPeriod(t, model.CategoryToddler, "旧菜单", day(2026, 8, 1), nil, true)
	newer := env.seedPeriod(t, model.CategoryToddler, "新菜单", day(2026, 8, 20), nil, true)
	_ = env.mealRepo.BatchCreate(context.Background(), []model.Meal{
		{MenuPeriodID: older.MenuPeriodID, DayOfWeek: model.DaySunday, MealType: model.MealTypeBreakfast},
	})

	if _, err := env.svc.ListPeriods(context.Background(), model.CategoryToddler); err != nil {
		t.Fatalf("ListPeriods 应成功: %v", err)
	}
	if _, ok := env.periodRepo.periods[older.MenuPeriodID]; ok {
		t.Error("同年龄段开始日期较早的激活周期应被删除")
	}
	if _, ok := env.periodRepo.periods[newer.MenuPeriodID]; !ok {
		t.Error("开始日期最新的激活周期应保留")
	}
	if meals := env.mealRepo.meals[older.MenuPeriodID]; len(meals) != 0 {
		t.Error("被消解周期的餐食应一并删除")
	}
}

// ── ReplaceMeals 测试 ──

func TestMenuService_ReplaceMeals_RoundTrip(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	p := env.seedPeriod(t, model.CategoryToddler, "当前菜单", day(2026, 9, 1), nil, true)

	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{
		breakfastEntry(model.DaySunday),
		lunchEntry(model.DaySunday),
		gouterEntry(model.DaySunday),
		lunchEntry(model.DayMonday),
	}}
	result, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req)
	if err != nil {
		t.Fatalf("ReplaceMeals 应成功: %v", err)
	}
	if len(result) != 4 {
		t.Fatalf("期望4餐，实际=%d", len(result))
	}

	// 整批替换清空旧餐食
	second := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{breakfastEntry(model.DayTuesday)}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, second); err != nil {
		t.Fatalf("第二次 ReplaceMeals 应成功: %v", err)
	}
	stored, _ := env.mealRepo.ListByPeriod(context.Background(), p.MenuPeriodID)
	if len(stored) != 1 {
		t.Errorf("整批替换后应只剩1餐，实际=%d", len(stored))
	}
}

func TestMenuService_ReplaceMeals_TriggersSweep(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 5))
	p := env.seedPeriod(t, model.CategoryToddler, "现役菜单", day(2026, 9, 1), nil, true)
	// 另一年龄段存在开始日期已过却未激活的周期
	missed := env.seedPeriod(t, model.CategoryInfant, "错过激活", day(2026, 9, 1), nil, false)

	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{breakfastEntry(model.DaySunday)}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); err != nil {
		t.Fatalf("ReplaceMeals 应成功: %v", err)
	}
	if !env.periodRepo.periods[missed.MenuPeriodID].IsActive {
		t.Error("批量写入应触发巡检并补激活开始日期已过的周期")
	}
}

func TestMenuService_ReplaceMeals_IncompleteStructure(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	p := env.seedPeriod(t, model.CategoryToddler, "当前菜单", day(2026, 9, 1), nil, true)

	// 午餐缺少甜点
	lunch := lunchEntry(model.DaySunday)
	lunch.Dessert = nil
	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{lunch}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); !errors.Is(err, ErrIncompleteStructure) {
		t.Errorf("午餐缺字段期望 ErrIncompleteStructure，实际: %v", err)
	}

	// 早餐缺加餐
	breakfast := breakfastEntry(model.DaySunday)
	breakfast.Snack = nil
	req = &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{breakfast}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); !errors.Is(err, ErrIncompleteStructure) {
		t.Errorf("早餐缺字段期望 ErrIncompleteStructure，实际: %v", err)
	}
}

func TestMenuService_ReplaceMeals_ForbiddenField(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	p := env.seedPeriod(t, model.CategoryToddler, "当前菜单", day(2026, 9, 1), nil, true)

	// 午餐不允许加餐字段
	lunch := lunchEntry(model.DaySunday)
	lunch.Snack = strPtr("小饼干")
	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{lunch}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); !errors.Is(err, ErrForbiddenField) {
		t.Errorf("午餐含加餐期望 ErrForbiddenField，实际: %v", err)
	}

	// 午点不允许前菜
	gouter := gouterEntry(model.DaySunday)
	gouter.Starter = strPtr("沙拉")
	req = &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{gouter}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); !errors.Is(err, ErrForbiddenField) {
		t.Errorf("午点含前菜期望 ErrForbiddenField，实际: %v", err)
	}
}

func TestMenuService_ReplaceMeals_DuplicateEntry(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	p := env.seedPeriod(t, model.CategoryToddler, "当前菜单", day(2026, 9, 1), nil, true)

	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{
		breakfastEntry(model.DaySunday),
		breakfastEntry(model.DaySunday),
	}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("期望 ErrDuplicateEntry，实际: %v", err)
	}
}

func TestMenuService_ReplaceMeals_DayCapacityExceeded(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	p := env.seedPeriod(t, model.CategoryToddler, "当前菜单", day(2026, 9, 1), nil, true)

	// 同一天第4餐超出上限
	extra := lunchEntry(model.DaySunday)
	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{
		breakfastEntry(model.DaySunday),
		lunchEntry(model.DaySunday),
		gouterEntry(model.DaySunday),
		extra,
	}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); !errors.Is(err, ErrDayCapacityExceeded) {
		t.Errorf("期望 ErrDayCapacityExceeded，实际: %v", err)
	}
}

// ── GetActiveMenu 测试 ──

func TestMenuService_GetActiveMenu(t *testing.T) {
	env := setupTestMenuService(day(2026, 9, 1))
	p := env.seedPeriod(t, model.CategoryPreschool, "学前菜单", day(2026, 9, 1), nil, true)
	req := &dto.ReplaceMealsRequest{Meals: []dto.MealEntry{
		breakfastEntry(model.DaySunday),
		lunchEntry(model.DaySunday),
	}}
	if _, err := env.svc.ReplaceMeals(context.Background(), p.MenuPeriodID, req); err != nil {
		t.Fatalf("ReplaceMeals 应成功: %v", err)
	}

	resp, err := env.svc.GetActiveMenu(context.Background(), model.CategoryPreschool)
	if err != nil {
		t.Fatalf("GetActiveMenu 应成功: %v", err)
	}
	if resp.Period.ID != p.MenuPeriodID {
		t.Errorf("期望周期ID=%s，实际=%s", p.MenuPeriodID, resp.Period.ID)
	}
	if len(resp.Meals) != 2 {
		t.Errorf("期望2餐，实际=%d", len(resp.Meals))
	}

	// 无激活周期的年龄段
	if _, err := env.svc.GetActiveMenu(context.Background(), model.CategoryInfant); !errors.Is(err, ErrPeriodNotFound) {
		t.Errorf("无激活周期时期望 ErrPeriodNotFound，实际: %v", err)
	}
}
