package service

import (
	"errors"
	"fmt"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// ── 批量校验哨兵错误 ──

var (
	ErrConfigMissing       = errors.New("作息时间配置缺失，无法校验时段")
	ErrDayCapacityExceeded = errors.New("单日条目数超出上限")
	ErrDuplicateEntry      = errors.New("存在重复条目")
	ErrInvalidDuration     = errors.New("时段时长与配置不符")
	ErrMisalignedStart     = errors.New("时段起点不在时间网格上")
	ErrIncompleteStructure = errors.New("餐食结构不完整")
	ErrForbiddenField      = errors.New("餐食包含该餐型不允许的字段")
)

// ValidationError 携带定位信息的校验错误，Unwrap 到对应哨兵
type ValidationError struct {
	Err     error
	Day     string
	Index   int      // 出错条目在提交数组中的下标
	Allowed []string // 起点不对齐时给出合法网格
}

func (e *ValidationError) Error() string {
	if e.Day != "" {
		return fmt.Sprintf("%s（day=%s, index=%d）", e.Err.Error(), e.Day, e.Index)
	}
	return fmt.Sprintf("%s（index=%d）", e.Err.Error(), e.Index)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// validateSlotBatch 校验整批活动时段
// 顺序：单日容量 → 重复 → 时长与网格对齐。配置缺失直接失败。
func validateSlotBatch(slots []dto.SlotEntry, cfg *model.TimingConfig) error {
	if cfg == nil {
		return ErrConfigMissing
	}
	grid := GenerateSlotGrid(cfg)
	if len(grid) == 0 {
		return ErrConfigMissing
	}

	perDay := make(map[string]int, len(model.OperatingDays))
	for i, s := range slots {
		perDay[s.DayOfWeek]++
		if perDay[s.DayOfWeek] > cfg.SlotsPerDay {
			return &ValidationError{Err: ErrDayCapacityExceeded, Day: s.DayOfWeek, Index: i}
		}
	}

	type slotKey struct{ day, start, end string }
	seen := make(map[slotKey]bool, len(slots))
	for i, s := range slots {
		k := slotKey{s.DayOfWeek, s.StartTime, s.EndTime}
		if seen[k] {
			return &ValidationError{Err: ErrDuplicateEntry, Day: s.DayOfWeek, Index: i}
		}
		seen[k] = true
	}

	for i, s := range slots {
		start, ok := parseClock(s.StartTime)
		if !ok {
			return &ValidationError{Err: ErrMisalignedStart, Day: s.DayOfWeek, Index: i, Allowed: grid}
		}
		end, ok := parseClock(s.EndTime)
		if !ok || end <= start || end-start != cfg.SlotDuration {
			return &ValidationError{Err: ErrInvalidDuration, Day: s.DayOfWeek, Index: i}
		}
		if !onGrid(grid, start) {
			return &ValidationError{Err: ErrMisalignedStart, Day: s.DayOfWeek, Index: i, Allowed: grid}
		}
	}
	return nil
}

func onGrid(grid []string, start int) bool {
	for _, g := range grid {
		if v, ok := parseClock(g); ok && v == start {
			return true
		}
	}
	return false
}

// validateMealBatch 校验整批餐食
// 顺序：单日容量（每日最多三餐）→ (day, meal_type) 重复 → 餐型结构
func validateMealBatch(meals []dto.MealEntry) error {
	perDay := make(map[string]int, len(model.OperatingDays))
	for i, m := range meals {
		perDay[m.DayOfWeek]++
		if perDay[m.DayOfWeek] > len(model.MealTypes) {
			return &ValidationError{Err: ErrDayCapacityExceeded, Day: m.DayOfWeek, Index: i}
		}
	}

	type mealKey struct{ day, mealType string }
	seen := make(map[mealKey]bool, len(meals))
	for i, m := range meals {
		k := mealKey{m.DayOfWeek, m.MealType}
		if seen[k] {
			return &ValidationError{Err: ErrDuplicateEntry, Day: m.DayOfWeek, Index: i}
		}
		seen[k] = true
	}

	for i, m := range meals {
		if err := validateMealStructure(&m); err != nil {
			return &ValidationError{Err: err, Day: m.DayOfWeek, Index: i}
		}
	}
	return nil
}

// validateMealStructure 按餐型检查字段组合
// 早餐与午点只含 drink+snack，午餐含前菜/主菜/配菜/甜点/饮品且不含 snack
func validateMealStructure(m *dto.MealEntry) error {
	filled := func(p *string) bool { return p != nil && *p != "" }

	if model.IsSnackMeal(m.MealType) {
		if !filled(m.Drink) || !filled(m.Snack) {
			return ErrIncompleteStructure
		}
		if filled(m.Starter) || filled(m.MainCourse) || filled(m.SideDish) || filled(m.Dessert) {
			return ErrForbiddenField
		}
		return nil
	}

	// Lunch
	if !filled(m.Starter) || !filled(m.MainCourse) || !filled(m.SideDish) || !filled(m.Dessert) || !filled(m.Drink) {
		return ErrIncompleteStructure
	}
	if filled(m.Snack) {
		return ErrForbiddenField
	}
	return nil
}
