package student

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// StudentRepository 學生倉儲接口
//
// 事務管理策略：
//   - Create(): ctx 必須 non-nil
//   - FindByID / FindByIDForUpdate / FindAll / ExistsBySeat: ctx 可為 nil
//
// 餘額欄位不經由此倉儲寫入，只由 points.LedgerRepository 更新。
type StudentRepository interface {
	// Create 新增學生（座位重複時返回 ErrSeatAlreadyTaken）
	Create(ctx shared.TransactionContext, student *Student) error

	// FindByID 查找學生，找不到時返回 ErrStudentNotFound
	FindByID(ctx shared.TransactionContext, id StudentID) (*Student, error)

	// FindByIDForUpdate 在事務中查找並鎖定學生列
	//
	// 支援列鎖的資料庫（PostgreSQL）會執行 SELECT ... FOR UPDATE，
	// 同一學生的並發購買因此序列化。
	FindByIDForUpdate(ctx shared.TransactionContext, id StudentID) (*Student, error)

	// FindAll 依年級、班級、座號排序返回所有學生
	FindAll(ctx shared.TransactionContext) ([]*Student, error)

	// ExistsBySeat 座位是否已有學生
	ExistsBySeat(ctx shared.TransactionContext, seat Seat) (bool, error)
}
