package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 支援的資料庫驅動
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options 資料庫連線設定
type Options struct {
	Driver        string        // sqlite | postgres
	DSN           string        // sqlite 檔案路徑（或 :memory:）/ PostgreSQL 連線字串
	SlowThreshold time.Duration // 慢查詢門檻（0 使用預設 200ms）
	Logger        *slog.Logger  // nil 時不輸出 SQL 日誌
}

// Open 開啟資料庫並執行遷移
//
// SQLite：
//   - 連線池限制為 1（SQLite 只有單一寫入者，in-memory 資料庫也必須共用同一連線）
//   - 開啟 foreign_keys
//
// PostgreSQL：
//   - PreferSimpleProtocol，避免 prepared statement 快取問題
func Open(opts Options) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:  NewGormLogger(opts.Logger, opts.SlowThreshold),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var (
		db  *gorm.DB
		err error
	)
	switch opts.Driver {
	case DriverSQLite, "":
		db, err = gorm.Open(sqlite.Open(opts.DSN), gormCfg)
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  opts.DSN,
			PreferSimpleProtocol: true,
		}), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", opts.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if opts.Driver == DriverSQLite || opts.Driver == "" {
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := Migrate(db, opts.Driver, opts.Logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// Close 關閉底層連線
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
