package dto

// ── 班级模块 DTO ──

// CreateClassroomRequest 创建班级请求
type CreateClassroomRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Category string `json:"category" binding:"required,oneof=infant toddler preschool"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=60"`
}

// UpdateClassroomRequest 更新班级请求
type UpdateClassroomRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=100"`
	Category *string `json:"category" binding:"omitempty,oneof=infant toddler preschool"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1,max=60"`
}

// ClassroomResponse 班级信息响应
type ClassroomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

// AssignmentEntry 批量指派中的单条教师指派
type AssignmentEntry struct {
	UserID    string `json:"user_id"    binding:"required,uuid"`
	IsPrimary bool   `json:"is_primary"`
}

// ReplaceAssignmentsRequest 全量替换班级教师指派请求
type ReplaceAssignmentsRequest struct {
	Assignments []AssignmentEntry `json:"assignments" binding:"required,dive"`
}

// AssignmentResponse 教师指派响应
type AssignmentResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	IsPrimary bool   `json:"is_primary"`
}
