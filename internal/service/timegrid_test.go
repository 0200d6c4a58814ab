package service

import (
	"reflect"
	"testing"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

func defaultTimingConfig() *model.TimingConfig {
	return &model.TimingConfig{
		OpeningTime:       "08:00",
		SlotInterval:      15,
		SlotDuration:      30,
		BreakfastDuration: 30,
		LunchDuration:     30,
		NapDuration:       60,
		SnackDuration:     15,
		SlotsPerDay:       4,
	}
}

func TestGenerateSlotGrid_FourSlots(t *testing.T) {
	grid := GenerateSlotGrid(defaultTimingConfig())

	// 首时段 = 开园 + 早餐 + 间隔 = 08:45；上午2段，午间大间隙后下午2段
	want := []string{"08:45", "09:30", "12:00", "12:45"}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("期望网格=%v，实际=%v", want, grid)
	}
}

func TestGenerateSlotGrid_FiveSlots(t *testing.T) {
	cfg := defaultTimingConfig()
	cfg.SlotsPerDay = 5

	grid := GenerateSlotGrid(cfg)

	// 奇数时上午多一段：上午3段，下午2段
	want := []string{"08:45", "09:30", "10:15", "12:45", "13:30"}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("期望网格=%v，实际=%v", want, grid)
	}
}

func TestGenerateSlotGrid_StrictlyAscending(t *testing.T) {
	cfg := defaultTimingConfig()
	cfg.SlotsPerDay = 5
	cfg.OpeningTime = "07:30"
	cfg.SlotInterval = 10

	grid := GenerateSlotGrid(cfg)
	if len(grid) != 5 {
		t.Fatalf("期望5个时段，实际=%d", len(grid))
	}
	for i := 1; i < len(grid); i++ {
		prev, _ := parseClock(grid[i-1])
		cur, ok := parseClock(grid[i])
		if !ok || cur <= prev {
			t.Errorf("网格应严格递增，grid[%d]=%s grid[%d]=%s", i-1, grid[i-1], i, grid[i])
		}
	}
}

func TestGenerateSlotGrid_InvalidConfig(t *testing.T) {
	if grid := GenerateSlotGrid(nil); grid != nil {
		t.Errorf("nil 配置应返回空网格，实际=%v", grid)
	}

	cfg := defaultTimingConfig()
	cfg.OpeningTime = "no-clock"
	if grid := GenerateSlotGrid(cfg); grid != nil {
		t.Errorf("非法开园时刻应返回空网格，实际=%v", grid)
	}

	cfg = defaultTimingConfig()
	cfg.SlotsPerDay = 0
	if grid := GenerateSlotGrid(cfg); grid != nil {
		t.Errorf("时段数为0应返回空网格，实际=%v", grid)
	}
}

func TestClosingTime(t *testing.T) {
	// 末段 12:45 + 时长30 + 间隔15 + 加餐15 = 13:45
	if got := ClosingTime(defaultTimingConfig()); got != "13:45" {
		t.Errorf("期望闭园时间=13:45，实际=%s", got)
	}
}

func TestClosingTime_OverflowsMidnight(t *testing.T) {
	// 开园 18:45 推导末段 23:30，闭园 24:30 越过午夜
	cfg := defaultTimingConfig()
	cfg.OpeningTime = "18:45"

	if got := ClosingTime(cfg); got != "" {
		t.Errorf("越过午夜应返回空串，实际=%s", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"08:00", 480, true},
		{"08:00:00", 480, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"08:60", 0, false},
		{"0800", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		m, parsed := parseClock(c.in)
		if parsed != c.ok || (parsed && m != c.minutes) {
			t.Errorf("parseClock(%q)=(%d,%v)，期望(%d,%v)", c.in, m, parsed, c.minutes, c.ok)
		}
	}
}
