package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/repository"
)

func setupTestTimingConfigService() (TimingConfigService, *mockTimingConfigRepo) {
	timingRepo := newMockTimingConfigRepo()
	repo := &repository.Repository{TimingConfig: timingRepo}
	return NewTimingConfigService(repo, zap.NewNop()), timingRepo
}

func defaultReplaceRequest() *dto.ReplaceTimingConfigRequest {
	return &dto.ReplaceTimingConfigRequest{
		OpeningTime:       "08:00",
		SlotInterval:      15,
		SlotDuration:      30,
		BreakfastDuration: 30,
		LunchDuration:     30,
		NapDuration:       60,
		SnackDuration:     15,
		SlotsPerDay:       4,
	}
}

func TestTimingConfigService_Replace_DerivesGrid(t *testing.T) {
	svc, timingRepo := setupTestTimingConfigService()

	result, err := svc.Replace(context.Background(), defaultReplaceRequest())
	if err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}

	wantGrid := []string{"08:45", "09:30", "12:00", "12:45"}
	if !reflect.DeepEqual(result.SlotGrid, wantGrid) {
		t.Errorf("期望网格=%v，实际=%v", wantGrid, result.SlotGrid)
	}
	if result.ClosingTime != "13:45" {
		t.Errorf("期望闭园时间=13:45，实际=%s", result.ClosingTime)
	}
	if timingRepo.cfg == nil || timingRepo.cfg.OpeningTime != "08:00" {
		t.Error("配置应已写入存储层")
	}
}

func TestTimingConfigService_Replace_BadClock(t *testing.T) {
	svc, _ := setupTestTimingConfigService()

	req := defaultReplaceRequest()
	req.OpeningTime = "8点整"
	if _, err := svc.Replace(context.Background(), req); !errors.Is(err, ErrBadClock) {
		t.Errorf("期望 ErrBadClock，实际: %v", err)
	}
}

func TestTimingConfigService_Replace_GridOverflow(t *testing.T) {
	svc, timingRepo := setupTestTimingConfigService()

	// 闭园时间推导越过午夜时整体拒绝
	req := defaultReplaceRequest()
	req.OpeningTime = "18:45"
	if _, err := svc.Replace(context.Background(), req); !errors.Is(err, ErrGridOverflow) {
		t.Errorf("期望 ErrGridOverflow，实际: %v", err)
	}
	if timingRepo.cfg != nil {
		t.Error("非法配置不应写入存储层")
	}
}

func TestTimingConfigService_Get(t *testing.T) {
	svc, timingRepo := setupTestTimingConfigService()

	// 未配置时
	if _, err := svc.Get(context.Background()); !errors.Is(err, ErrConfigMissing) {
		t.Errorf("期望 ErrConfigMissing，实际: %v", err)
	}

	timingRepo.cfg = defaultTimingConfig()
	result, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if len(result.SlotGrid) != 4 {
		t.Errorf("期望4个网格点，实际=%d", len(result.SlotGrid))
	}
}
