package dto

// ── 幼儿档案模块 DTO ──

// CreateChildRequest 创建幼儿档案请求
type CreateChildRequest struct {
	FirstName     string  `json:"first_name"     binding:"required,min=1,max=100"`
	LastName      string  `json:"last_name"      binding:"required,min=1,max=100"`
	BirthDate     string  `json:"birth_date"     binding:"required"` // "2023-04-12"
	ClassroomID   *string `json:"classroom_id"   binding:"omitempty,uuid"`
	GuardianName  string  `json:"guardian_name"  binding:"required,min=2,max=100"`
	GuardianPhone string  `json:"guardian_phone" binding:"required,max=30"`
	GuardianEmail string  `json:"guardian_email" binding:"omitempty,email"`
	Allergies     string  `json:"allergies"      binding:"omitempty,max=500"`
}

// UpdateChildRequest 更新幼儿档案请求
type UpdateChildRequest struct {
	FirstName     *string `json:"first_name"     binding:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name"      binding:"omitempty,min=1,max=100"`
	BirthDate     *string `json:"birth_date"`
	ClassroomID   *string `json:"classroom_id"   binding:"omitempty,uuid"`
	GuardianName  *string `json:"guardian_name"  binding:"omitempty,min=2,max=100"`
	GuardianPhone *string `json:"guardian_phone" binding:"omitempty,max=30"`
	GuardianEmail *string `json:"guardian_email" binding:"omitempty,email"`
	Allergies     *string `json:"allergies"      binding:"omitempty,max=500"`
}

// ChildResponse 幼儿档案响应
type ChildResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	BirthDate     string  `json:"birth_date"`
	ClassroomID   *string `json:"classroom_id,omitempty"`
	ClassroomName string  `json:"classroom_name,omitempty"`
	GuardianName  string  `json:"guardian_name"`
	GuardianPhone string  `json:"guardian_phone"`
	GuardianEmail string  `json:"guardian_email,omitempty"`
	Allergies     string  `json:"allergies,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ListChildrenQuery 幼儿列表查询参数
type ListChildrenQuery struct {
	Page        int    `form:"page,default=1"       binding:"min=1"`
	PageSize    int    `form:"page_size,default=20" binding:"min=1,max=100"`
	ClassroomID string `form:"classroom_id"         binding:"omitempty,uuid"`
}
