package persistence

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionContext 實作
// ===========================

// TxContext Infrastructure Layer 內部使用的事務上下文介面
//
// 各倉儲以型別斷言取得 *gorm.DB，Domain Layer 只看得到 shared.TransactionContext。
type TxContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// gormTransactionContext GORM 事務上下文實作
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 創建 GORM 事務上下文
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 獲取 GORM DB 連接（僅供 Infrastructure Layer 內部使用）
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}

// DB 依事務上下文選擇連接
//
//   - ctx 為 GORM 事務上下文：使用事務中的 DB
//   - ctx 為 nil：使用 fallback（auto-commit 模式）
//
// SQLite 只開一條連線，事務進行中以 nil 呼叫會等待該連線釋放，
// 因此事務內的每個倉儲呼叫都必須傳入 ctx。
func DB(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(TxContext); ok {
			return txCtx.GetDB()
		}
	}
	return fallback
}
