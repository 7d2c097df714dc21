// Package logging 設定服務的 slog logger
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel 接受 "debug", "info", "warn", "error"（不分大小寫），其他值視為 info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New 建立輸出到 w 的 text handler logger
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Setup 建立輸出到 stderr 的 logger，設為預設並返回
func Setup(level string) *slog.Logger {
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}
