package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
	"github.com/Fellah73/nursery-management-api-sub000/internal/service"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/response"
)

// MenuHandler 年龄段菜单模块 HTTP 处理器
type MenuHandler struct {
	menuSvc service.MenuService
}

// NewMenuHandler 创建 MenuHandler
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

// CreatePeriod 创建菜单周期
// POST /api/v1/menu-periods
func (h *MenuHandler) CreatePeriod(c *gin.Context) {
	var req dto.CreateMenuPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.menuSvc.CreatePeriod(c.Request.Context(), &req)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.Created(c, period)
}

// ListPeriods 获取年龄段的菜单周期列表
// GET /api/v1/menu-periods?category=xxx
func (h *MenuHandler) ListPeriods(c *gin.Context) {
	category := c.Query("category")
	if !model.IsValidCategory(category) {
		response.BadRequest(c, 10001, "年龄段无效")
		return
	}

	periods, err := h.menuSvc.ListPeriods(c.Request.Context(), category)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, gin.H{"list": periods})
}

// GetPeriod 获取菜单周期详情
// GET /api/v1/menu-periods/:id
func (h *MenuHandler) GetPeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	period, err := h.menuSvc.GetPeriod(c.Request.Context(), id)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, period)
}

// UpdatePeriod 更新菜单周期
// PUT /api/v1/menu-periods/:id
func (h *MenuHandler) UpdatePeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	var req dto.UpdateMenuPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.menuSvc.UpdatePeriod(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, period)
}

// DeletePeriod 删除菜单周期及其全部餐食
// DELETE /api/v1/menu-periods/:id
func (h *MenuHandler) DeletePeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	if err := h.menuSvc.DeletePeriod(c.Request.Context(), id); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListMeals 获取周期内的餐食
// GET /api/v1/menu-periods/:id/meals
func (h *MenuHandler) ListMeals(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	meals, err := h.menuSvc.ListMeals(c.Request.Context(), id)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, gin.H{"list": meals})
}

// ReplaceMeals 全量替换周期内的餐食
// PUT /api/v1/menu-periods/:id/meals
func (h *MenuHandler) ReplaceMeals(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	var req dto.ReplaceMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	meals, err := h.menuSvc.ReplaceMeals(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, gin.H{"list": meals})
}

// GetActiveMenu 获取年龄段当前激活菜单周期及其餐食
// GET /api/v1/categories/:category/active-menu
func (h *MenuHandler) GetActiveMenu(c *gin.Context) {
	category := c.Param("category")
	if !model.IsValidCategory(category) {
		response.BadRequest(c, 10001, "年龄段无效")
		return
	}

	active, err := h.menuSvc.GetActiveMenu(c.Request.Context(), category)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, active)
}

// handleMenuError 统一处理菜单模块业务错误
func (h *MenuHandler) handleMenuError(c *gin.Context, err error) {
	if handlePeriodError(c, err) {
		return
	}
	if handleBatchValidationError(c, err) {
		return
	}
	response.InternalError(c)
}
