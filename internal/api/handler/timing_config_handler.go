package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/service"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/response"
)

// TimingConfigHandler 作息时间配置模块 HTTP 处理器
type TimingConfigHandler struct {
	timingSvc service.TimingConfigService
}

// NewTimingConfigHandler 创建 TimingConfigHandler
func NewTimingConfigHandler(timingSvc service.TimingConfigService) *TimingConfigHandler {
	return &TimingConfigHandler{timingSvc: timingSvc}
}

// GetTimingConfig 获取作息配置（附带派生时段网格与闭园时间）
// GET /api/v1/timing-config
func (h *TimingConfigHandler) GetTimingConfig(c *gin.Context) {
	cfg, err := h.timingSvc.Get(c.Request.Context())
	if err != nil {
		h.handleTimingError(c, err)
		return
	}

	response.OK(c, cfg)
}

// ReplaceTimingConfig 全量替换作息配置
// PUT /api/v1/timing-config
func (h *TimingConfigHandler) ReplaceTimingConfig(c *gin.Context) {
	var req dto.ReplaceTimingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cfg, err := h.timingSvc.Replace(c.Request.Context(), &req)
	if err != nil {
		h.handleTimingError(c, err)
		return
	}

	response.OK(c, cfg)
}

// handleTimingError 统一处理作息配置模块业务错误
func (h *TimingConfigHandler) handleTimingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrConfigMissing):
		response.NotFound(c, 16001, "作息时间配置缺失")
	case errors.Is(err, service.ErrBadClock):
		response.BadRequest(c, 16002, "时刻格式不正确，应为 HH:MM")
	case errors.Is(err, service.ErrGridOverflow):
		response.BadRequest(c, 16003, "作息配置推导的闭园时间超出当日范围")
	default:
		response.InternalError(c)
	}
}
