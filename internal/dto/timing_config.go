package dto

// ── 作息时间配置模块 DTO ──

// ReplaceTimingConfigRequest 全量替换作息配置请求
// 所有时长单位为分钟，opening_time 为 "HH:MM"
type ReplaceTimingConfigRequest struct {
	OpeningTime       string `json:"opening_time"       binding:"required"`
	SlotInterval      int    `json:"slot_interval"      binding:"required,min=1,max=120"`
	SlotDuration      int    `json:"slot_duration"      binding:"required,min=5,max=240"`
	BreakfastDuration int    `json:"breakfast_duration" binding:"required,min=5,max=120"`
	LunchDuration     int    `json:"lunch_duration"     binding:"required,min=5,max=180"`
	NapDuration       int    `json:"nap_duration"       binding:"required,min=5,max=240"`
	SnackDuration     int    `json:"snack_duration"     binding:"required,min=5,max=120"`
	SlotsPerDay       int    `json:"slots_per_day"      binding:"required,oneof=4 5"`
}

// TimingConfigResponse 作息配置响应，附带派生的时段网格与闭园时间
type TimingConfigResponse struct {
	OpeningTime       string   `json:"opening_time"`
	SlotInterval      int      `json:"slot_interval"`
	SlotDuration      int      `json:"slot_duration"`
	BreakfastDuration int      `json:"breakfast_duration"`
	LunchDuration     int      `json:"lunch_duration"`
	NapDuration       int      `json:"nap_duration"`
	SnackDuration     int      `json:"snack_duration"`
	SlotsPerDay       int      `json:"slots_per_day"`
	SlotGrid          []string `json:"slot_grid"`
	ClosingTime       string   `json:"closing_time"`
	UpdatedAt         string   `json:"updated_at"`
}
