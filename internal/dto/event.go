package dto

// ── 园所活动事件模块 DTO ──

// CreateEventRequest 创建事件请求
type CreateEventRequest struct {
	Title       string  `json:"title"        binding:"required,min=2,max=200"`
	Description string  `json:"description"  binding:"omitempty,max=1000"`
	EventDate   string  `json:"event_date"   binding:"required"`
	ClassroomID *string `json:"classroom_id" binding:"omitempty,uuid"` // 为空表示全园事件
}

// UpdateEventRequest 更新事件请求
type UpdateEventRequest struct {
	Title       *string `json:"title"        binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"  binding:"omitempty,max=1000"`
	EventDate   *string `json:"event_date"`
	ClassroomID *string `json:"classroom_id" binding:"omitempty,uuid"`
}

// EventResponse 事件信息响应
type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	EventDate   string  `json:"event_date"`
	ClassroomID *string `json:"classroom_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ListEventsQuery 事件列表查询参数
type ListEventsQuery struct {
	From string `form:"from"` // "2026-09-01"
	To   string `form:"to"`
}
