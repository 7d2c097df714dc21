package persistence

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"gorm.io/gorm"
)

// GORMTransactionManager shared.TransactionManager 的 GORM 實作
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
//
// fn 返回 error 時回滾；fn panic 時回滾後重新 panic（由 gorm.DB.Transaction 處理）。
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
