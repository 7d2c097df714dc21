package points

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// LedgerRepository 介面
// ===========================

// LedgerRepository 帳本倉儲介面
//
// Record 是唯一會改變學生餘額的操作：
//
//	UPDATE students SET points = points + amount
//	 WHERE id = ? AND points + amount >= 0
//
// 與 INSERT point_history 在同一事務中執行。餘額檢查在原子更新內完成，
// 呼叫端的預檢只用於提早回報錯誤。
//
// 事務使用範例：
//
//	txManager.InTransaction(func(ctx shared.TransactionContext) error {
//	    balance, err := ledger.Record(ctx, entry)
//	    ...
//	})
type LedgerRepository interface {
	// Record 追加紀錄並更新餘額，返回新餘額
	//
	// 錯誤：
	//   - student.ErrStudentNotFound（學生不存在）
	//   - ErrInsufficientBalance（更新後餘額 < 0）
	Record(ctx shared.TransactionContext, entry *HistoryEntry) (int, error)

	// FindByStudentID 依時間由新到舊返回學生的所有紀錄
	FindByStudentID(ctx shared.TransactionContext, studentID student.StudentID) ([]*HistoryEntry, error)

	// SumByStudentID 學生所有紀錄 amount 的總和
	SumByStudentID(ctx shared.TransactionContext, studentID student.StudentID) (int, error)

	// Totals 全班累計獲得 / 使用點數（使用以正數表示）
	Totals(ctx shared.TransactionContext) (earned int, spent int, err error)
}
