package points

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// LedgerRepositoryImpl
// ===========================

// LedgerRepositoryImpl 帳本倉儲實現（GORM）
//
// 學生餘額（students.points）只在這裡被寫入。
type LedgerRepositoryImpl struct {
	db *gorm.DB
}

// NewLedgerRepository 創建帳本倉儲
func NewLedgerRepository(db *gorm.DB) points.LedgerRepository {
	return &LedgerRepositoryImpl{db: db}
}

// Record 追加紀錄並原子更新餘額
//
// 實作邏輯：
//  1. UPDATE students SET points = points + amount WHERE id = ? AND points + amount >= 0
//  2. 影響 0 列：學生不存在 → ErrStudentNotFound；否則 → ErrInsufficientBalance
//  3. INSERT point_history
//  4. 讀回新餘額
//
// ctx 為 nil 時自行開啟事務，兩個寫入仍然不可分割。
func (r *LedgerRepositoryImpl) Record(ctx shared.TransactionContext, entry *points.HistoryEntry) (int, error) {
	if ctx == nil {
		var balance int
		err := r.db.Transaction(func(tx *gorm.DB) error {
			var err error
			balance, err = r.record(tx, entry)
			return err
		})
		return balance, err
	}
	return r.record(persistence.DB(ctx, r.db), entry)
}

func (r *LedgerRepositoryImpl) record(db *gorm.DB, entry *points.HistoryEntry) (int, error) {
	studentID := entry.StudentID().String()
	amount := entry.Amount()

	result := db.Table(studentsTable).
		Where("id = ? AND points + ? >= 0", studentID, amount).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points + ?", amount),
			"updated_at": entry.CreatedAt().UTC(),
		})
	if result.Error != nil {
		if persistence.IsCheckConstraintError(result.Error) {
			return 0, points.ErrInsufficientBalance.WithContext(
				"student_id", studentID,
				"amount", amount,
			)
		}
		return 0, persistence.WrapRepositoryError("update balance", result.Error)
	}

	if result.RowsAffected == 0 {
		return 0, r.explainRejectedUpdate(db, studentID, amount)
	}

	if err := db.Create(toGORM(entry)).Error; err != nil {
		return 0, persistence.WrapRepositoryError("insert history", err)
	}

	var balances []int
	if err := db.Table(studentsTable).Where("id = ?", studentID).Pluck("points", &balances).Error; err != nil {
		return 0, persistence.WrapRepositoryError("read balance", err)
	}
	if len(balances) == 0 {
		return 0, student.ErrStudentNotFound.WithContext("student_id", studentID)
	}
	return balances[0], nil
}

// explainRejectedUpdate 區分「學生不存在」與「餘額不足」
func (r *LedgerRepositoryImpl) explainRejectedUpdate(db *gorm.DB, studentID string, amount int) error {
	var balances []int
	if err := db.Table(studentsTable).Where("id = ?", studentID).Pluck("points", &balances).Error; err != nil {
		return persistence.WrapRepositoryError("read balance", err)
	}
	if len(balances) == 0 {
		return student.ErrStudentNotFound.WithContext("student_id", studentID)
	}
	return points.ErrInsufficientBalance.WithContext(
		"student_id", studentID,
		"balance", balances[0],
		"amount", amount,
	)
}

// FindByStudentID 依寫入順序由新到舊返回紀錄
func (r *LedgerRepositoryImpl) FindByStudentID(ctx shared.TransactionContext, studentID student.StudentID) ([]*points.HistoryEntry, error) {
	db := persistence.DB(ctx, r.db)

	var models []PointHistoryGORM
	if err := db.Where("student_id = ?", studentID.String()).Order("seq DESC").Find(&models).Error; err != nil {
		return nil, persistence.WrapRepositoryError("list history", err)
	}

	entries := make([]*points.HistoryEntry, 0, len(models))
	for i := range models {
		e, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SumByStudentID 學生紀錄總和
func (r *LedgerRepositoryImpl) SumByStudentID(ctx shared.TransactionContext, studentID student.StudentID) (int, error) {
	db := persistence.DB(ctx, r.db)

	var sum int64
	row := db.Model(&PointHistoryGORM{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("student_id = ?", studentID.String()).
		Row()
	if err := row.Scan(&sum); err != nil {
		return 0, persistence.WrapRepositoryError("sum history", err)
	}
	return int(sum), nil
}

// Totals 全班累計獲得 / 使用點數
func (r *LedgerRepositoryImpl) Totals(ctx shared.TransactionContext) (int, int, error) {
	db := persistence.DB(ctx, r.db)

	var earned, spent int64
	row := db.Model(&PointHistoryGORM{}).
		Select("COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0), " +
			"COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0)").
		Row()
	if err := row.Scan(&earned, &spent); err != nil {
		return 0, 0, persistence.WrapRepositoryError("ledger totals", err)
	}
	return int(earned), int(spent), nil
}
