package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/service"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/response"
)

// ClassroomHandler 班级模块 HTTP 处理器
type ClassroomHandler struct {
	classroomSvc service.ClassroomService
}

// NewClassroomHandler 创建 ClassroomHandler
func NewClassroomHandler(classroomSvc service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomSvc: classroomSvc}
}

// CreateClassroom 创建班级
// POST /api/v1/classrooms
func (h *ClassroomHandler) CreateClassroom(c *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	classroom, err := h.classroomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.Created(c, classroom)
}

// ListClassrooms 获取班级列表
// GET /api/v1/classrooms
func (h *ClassroomHandler) ListClassrooms(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	classrooms, err := h.classroomSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": classrooms})
}

// GetClassroom 获取班级详情
// GET /api/v1/classrooms/:id
func (h *ClassroomHandler) GetClassroom(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	classroom, err := h.classroomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, classroom)
}

// UpdateClassroom 更新班级
// PUT /api/v1/classrooms/:id
func (h *ClassroomHandler) UpdateClassroom(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	var req dto.UpdateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	classroom, err := h.classroomSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, classroom)
}

// DeleteClassroom 删除班级（软删除）
// DELETE /api/v1/classrooms/:id
func (h *ClassroomHandler) DeleteClassroom(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.classroomSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListAssignments 获取班级教师指派
// GET /api/v1/classrooms/:id/assignments
func (h *ClassroomHandler) ListAssignments(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	assignments, err := h.classroomSvc.ListAssignments(c.Request.Context(), id)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// ReplaceAssignments 全量替换班级教师指派
// PUT /api/v1/classrooms/:id/assignments
func (h *ClassroomHandler) ReplaceAssignments(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	var req dto.ReplaceAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignments, err := h.classroomSvc.ReplaceAssignments(c.Request.Context(), id, &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// handleClassroomError 统一处理班级模块业务错误
func (h *ClassroomHandler) handleClassroomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassroomNotFound):
		response.NotFound(c, 14001, "班级不存在")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, "用户不存在")
	case errors.Is(err, service.ErrDuplicatePrimary):
		response.BadRequest(c, 14002, "一个班级只能有一名主班教师")
	default:
		response.InternalError(c)
	}
}
