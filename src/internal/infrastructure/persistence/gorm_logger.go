package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const defaultSlowThreshold = 200 * time.Millisecond

// GormLogger 以 slog 輸出 GORM 日誌
//
//   - 錯誤（RecordNotFound 除外）→ Error
//   - 超過 SlowThreshold → Warn
//   - 其他查詢 → Debug
type GormLogger struct {
	logger        *slog.Logger
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

// NewGormLogger 建立 GORM logger；logger 為 nil 時靜音
func NewGormLogger(logger *slog.Logger, slowThreshold time.Duration) gormLogger.Interface {
	if logger == nil {
		return gormLogger.Default.LogMode(gormLogger.Silent)
	}
	if slowThreshold <= 0 {
		slowThreshold = defaultSlowThreshold
	}
	return &GormLogger{
		logger:        logger.With("component", "gorm"),
		SlowThreshold: slowThreshold,
		LogLevel:      gormLogger.Info,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{
		"file", utils.FileWithLineNum(),
		"elapsed", elapsed,
		"rows", rows,
		"sql", sql,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		l.logger.ErrorContext(ctx, "query failed", append(attrs, "error", err)...)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.logger.WarnContext(ctx, "slow query", attrs...)
	case l.LogLevel >= gormLogger.Info:
		l.logger.DebugContext(ctx, "query", attrs...)
	}
}
