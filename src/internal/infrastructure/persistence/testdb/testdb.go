// Package testdb 提供整合測試用的 SQLite in-memory 資料庫
package testdb

import (
	"testing"

	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// Setup 創建已套用正式遷移的 SQLite in-memory 資料庫
//
// 每次呼叫都是獨立的資料庫；返回的 cleanup 關閉連線（資料隨之消失）。
func Setup(t testing.TB) (*gorm.DB, func()) {
	t.Helper()

	db, err := persistence.Open(persistence.Options{
		Driver: persistence.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	cleanup := func() {
		_ = persistence.Close(db)
	}

	return db, cleanup
}
