package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
	"github.com/Fellah73/nursery-management-api-sub000/internal/repository"
)

var (
	// ErrBadClock 时刻格式错误
	ErrBadClock = errors.New("时刻格式不正确，应为 HH:MM")
	// ErrGridOverflow 按配置推导的闭园时间越过当日午夜
	ErrGridOverflow = errors.New("作息配置推导的闭园时间超出当日范围")
)

// TimingConfigService 作息时间配置服务接口
// 配置为全局单行，替换即全量覆盖；读取时附带派生网格
type TimingConfigService interface {
	Get(ctx context.Context) (*dto.TimingConfigResponse, error)
	Replace(ctx context.Context, req *dto.ReplaceTimingConfigRequest) (*dto.TimingConfigResponse, error)
}

type timingConfigService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimingConfigService 创建 TimingConfigService 实例
func NewTimingConfigService(repo *repository.Repository, logger *zap.Logger) TimingConfigService {
	return &timingConfigService{repo: repo, logger: logger}
}

func (s *timingConfigService) Get(ctx context.Context) (*dto.TimingConfigResponse, error) {
	cfg, err := s.repo.TimingConfig.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigMissing
		}
		return nil, err
	}
	return toTimingConfigResponse(cfg), nil
}

func (s *timingConfigService) Replace(ctx context.Context, req *dto.ReplaceTimingConfigRequest) (*dto.TimingConfigResponse, error) {
	if _, ok := parseClock(req.OpeningTime); !ok {
		return nil, ErrBadClock
	}

	cfg := &model.TimingConfig{
		OpeningTime:       req.OpeningTime,
		SlotInterval:      req.SlotInterval,
		SlotDuration:      req.SlotDuration,
		BreakfastDuration: req.BreakfastDuration,
		LunchDuration:     req.LunchDuration,
		NapDuration:       req.NapDuration,
		SnackDuration:     req.SnackDuration,
		SlotsPerDay:       req.SlotsPerDay,
	}

	// 替换前先推导一遍，保证新配置能展开为合法的当日网格
	closing := ClosingTime(cfg)
	if closing == "" {
		return nil, ErrGridOverflow
	}

	if err := s.repo.TimingConfig.Replace(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("作息时间配置已替换",
		zap.String("opening_time", cfg.OpeningTime),
		zap.Int("slots_per_day", cfg.SlotsPerDay),
		zap.String("closing_time", closing))
	return toTimingConfigResponse(cfg), nil
}

func toTimingConfigResponse(cfg *model.TimingConfig) *dto.TimingConfigResponse {
	return &dto.TimingConfigResponse{
		OpeningTime:       cfg.OpeningTime,
		SlotInterval:      cfg.SlotInterval,
		SlotDuration:      cfg.SlotDuration,
		BreakfastDuration: cfg.BreakfastDuration,
		LunchDuration:     cfg.LunchDuration,
		NapDuration:       cfg.NapDuration,
		SnackDuration:     cfg.SnackDuration,
		SlotsPerDay:       cfg.SlotsPerDay,
		SlotGrid:          GenerateSlotGrid(cfg),
		ClosingTime:       ClosingTime(cfg),
		UpdatedAt:         cfg.UpdatedAt.Format(time.RFC3339),
	}
}
