// Package scheduler 週期性執行優惠券到期掃描
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Expirer 到期掃描（由 application/coupon.ExpireOverdueUseCase 實作）
type Expirer interface {
	Execute() (int, error)
}

// Sweeper 以 cron 排程呼叫 Expirer
//
// 與列表查詢的 lazy 掃描套用同一個轉換，兩者可同時執行：
// 狀態更新為 compare-and-swap，重複掃描不產生額外變更。
type Sweeper struct {
	cron    *cron.Cron
	expirer Expirer
	logger  *slog.Logger
}

// NewSweeper 建立排程
//
// schedule 為空字串時返回 nil（停用）。上一次尚未完成時略過本次。
func NewSweeper(schedule string, loc *time.Location, expirer Expirer, logger *slog.Logger) (*Sweeper, error) {
	if schedule == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	logger = logger.With("component", "coupon-sweeper")
	cronLogger := slogCronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	s := &Sweeper{cron: c, expirer: expirer, logger: logger}
	if _, err := c.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce 執行一次掃描
func (s *Sweeper) RunOnce() {
	start := time.Now()
	count, err := s.expirer.Execute()
	if err != nil {
		s.logger.Error("coupon sweep failed", "error", err)
		return
	}
	s.logger.Info("coupon sweep finished", "expired", count, "duration", time.Since(start))
}

// Start 在背景啟動排程
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop 停止排程並等待執行中的掃描完成（或 ctx 逾時）
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// slogCronLogger 實作 cron.Logger
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
