package persistence

import (
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// goose 使用套件層級設定，並發遷移（例如平行測試）需要序列化
var migrateMu sync.Mutex

// Migrate 執行對應方言的所有 up 遷移
func Migrate(db *gorm.DB, driver string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	dialect, dir := "sqlite3", "migrations/sqlite"
	if driver == DriverPostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// gooseLogger 將 goose 輸出導向 slog（logger 為 nil 時丟棄）
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	if l.logger != nil {
		l.logger.Debug(fmt.Sprintf(format, v...), "component", "migrate")
	}
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if l.logger != nil {
		l.logger.Error(msg, "component", "migrate")
	}
	panic(msg)
}
