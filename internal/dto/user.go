package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求（仅管理员）
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"required,oneof=admin educator"`
	Phone    string `json:"phone"    binding:"omitempty,max=30"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
	Role  *string `json:"role"  binding:"omitempty,oneof=admin educator"`
}

// UserResponse 用户信息响应
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListUsersQuery 用户列表查询参数
type ListUsersQuery struct {
	Page     int    `form:"page,default=1"      binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
	Role     string `form:"role"                binding:"omitempty,oneof=admin educator"`
}
