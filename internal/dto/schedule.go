package dto

// ── 班级活动排程模块 DTO ──

// CreateSchedulePeriodRequest 创建活动周期请求
// mode=current 创建即激活；mode=scheduled 未来生效，由巡检激活
type CreateSchedulePeriodRequest struct {
	ClassroomID string  `json:"classroom_id" binding:"required,uuid"`
	Name        string  `json:"name"         binding:"required,min=2,max=100"`
	Mode        string  `json:"mode"         binding:"required,oneof=current scheduled"`
	StartDate   string  `json:"start_date"   binding:"required"` // "2026-09-01"
	EndDate     *string `json:"end_date"`                        // 为空表示不设结束
}

// UpdateSchedulePeriodRequest 更新活动周期请求
type UpdateSchedulePeriodRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=100"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// SlotEntry 批量提交中的单个活动时段
type SlotEntry struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY"`
	StartTime string `json:"start_time"  binding:"required"` // "HH:MM"
	EndTime   string `json:"end_time"    binding:"required"`
	Activity  string `json:"activity"    binding:"required,max=200"`
	Location  string `json:"location"    binding:"omitempty,max=200"`
}

// ReplaceSlotsRequest 全量替换周期内活动时段请求（先删后插）
type ReplaceSlotsRequest struct {
	Slots []SlotEntry `json:"slots" binding:"required,dive"`
}

// SchedulePeriodResponse 活动周期信息响应
type SchedulePeriodResponse struct {
	ID          string  `json:"id"`
	ClassroomID string  `json:"classroom_id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ScheduleSlotResponse 活动时段信息响应
type ScheduleSlotResponse struct {
	ID        string `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Activity  string `json:"activity"`
	Location  string `json:"location,omitempty"`
}

// ActiveScheduleResponse 班级当前激活周期及其时段
type ActiveScheduleResponse struct {
	Period SchedulePeriodResponse `json:"period"`
	Slots  []ScheduleSlotResponse `json:"slots"`
}
