package dto

// ── 餐饮菜单模块 DTO ──

// CreateMenuPeriodRequest 创建菜单周期请求
type CreateMenuPeriodRequest struct {
	Category  string  `json:"category"   binding:"required,oneof=infant toddler preschool"`
	Name      string  `json:"name"       binding:"required,min=2,max=100"`
	Mode      string  `json:"mode"       binding:"required,oneof=current scheduled"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date"`
}

// UpdateMenuPeriodRequest 更新菜单周期请求
type UpdateMenuPeriodRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=100"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// MealEntry 批量提交中的单餐内容
// Breakfast/Gouter 仅允许 drink+snack；Lunch 要求 starter/main_course/side_dish/dessert/drink
type MealEntry struct {
	DayOfWeek  string  `json:"day_of_week" binding:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY"`
	MealType   string  `json:"meal_type"   binding:"required,oneof=Breakfast Lunch Gouter"`
	Starter    *string `json:"starter"     binding:"omitempty,max=200"`
	MainCourse *string `json:"main_course" binding:"omitempty,max=200"`
	SideDish   *string `json:"side_dish"   binding:"omitempty,max=200"`
	Dessert    *string `json:"dessert"     binding:"omitempty,max=200"`
	Drink      *string `json:"drink"       binding:"omitempty,max=200"`
	Snack      *string `json:"snack"       binding:"omitempty,max=200"`
}

// ReplaceMealsRequest 全量替换周期内餐食请求（先删后插）
type ReplaceMealsRequest struct {
	Meals []MealEntry `json:"meals" binding:"required,dive"`
}

// MenuPeriodResponse 菜单周期信息响应
type MenuPeriodResponse struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// MealResponse 单餐信息响应
type MealResponse struct {
	ID         string  `json:"id"`
	DayOfWeek  string  `json:"day_of_week"`
	MealType   string  `json:"meal_type"`
	Starter    *string `json:"starter,omitempty"`
	MainCourse *string `json:"main_course,omitempty"`
	SideDish   *string `json:"side_dish,omitempty"`
	Dessert    *string `json:"dessert,omitempty"`
	Drink      *string `json:"drink,omitempty"`
	Snack      *string `json:"snack,omitempty"`
}

// ActiveMenuResponse 分类当前激活菜单周期及其餐食
type ActiveMenuResponse struct {
	Period MenuPeriodResponse `json:"period"`
	Meals  []MealResponse     `json:"meals"`
}
