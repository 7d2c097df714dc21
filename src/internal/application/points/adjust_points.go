package points

import (
	"fmt"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// AdjustPoints Use Case（管理員加點 / 扣點）
// ===========================

// AdjustPointsCommand 管理員加減點指令
//
// Amount 恆為正數，方向由 IsDeduction 決定。
type AdjustPointsCommand struct {
	StudentID   string `json:"student_id" validate:"required"`
	Amount      int    `json:"amount" validate:"gt=0"`
	Reason      string `json:"reason" validate:"notblank,max=200"`
	IsDeduction bool   `json:"is_deduction"`
}

// EntryResult 單筆帳本異動結果
type EntryResult struct {
	EntryID     string    `json:"entry_id"`
	StudentID   string    `json:"student_id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"` // 帶符號
	Source      string    `json:"source"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Balance     int       `json:"balance"` // 異動後餘額
}

func newEntryResult(entry *points.HistoryEntry, balance int) *EntryResult {
	return &EntryResult{
		EntryID:     entry.EntryID().String(),
		StudentID:   entry.StudentID().String(),
		Type:        string(entry.Type()),
		Amount:      entry.Amount(),
		Source:      string(entry.Source()),
		Description: entry.Description(),
		CreatedAt:   entry.CreatedAt(),
		Balance:     balance,
	}
}

// AdjustPointsUseCase 管理員加點 / 扣點
//
// 業務規則：
// 1. 來源固定為 admin，說明為 Reason
// 2. 扣點超過餘額 → points.ErrInsufficientBalance（由帳本的原子更新判斷）
// 3. 提交後發布 points.earned / points.spent 事件
type AdjustPointsUseCase struct {
	ledger    points.LedgerRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	clock     shared.Clock
}

// NewAdjustPointsUseCase 創建 Use Case 實例
func NewAdjustPointsUseCase(
	ledger points.LedgerRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
) *AdjustPointsUseCase {
	return &AdjustPointsUseCase{
		ledger:    ledger,
		txManager: txManager,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute 執行加點 / 扣點
//
// 錯誤處理：
// - 金額 <= 0 或說明空白 → shared.ErrInvalidArgument
// - 學生不存在 → student.ErrStudentNotFound
// - 扣點後餘額 < 0 → points.ErrInsufficientBalance（不寫入任何資料）
func (uc *AdjustPointsUseCase) Execute(cmd AdjustPointsCommand) (*EntryResult, error) {
	// 1. 驗證輸入
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	studentID, err := student.StudentIDFromString(cmd.StudentID)
	if err != nil {
		return nil, err
	}
	amount, err := points.NewPointsAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	// 2. 建立帳本紀錄
	newEntry := points.NewEarnEntry
	if cmd.IsDeduction {
		newEntry = points.NewSpendEntry
	}
	entry, err := newEntry(studentID, amount, points.SourceAdmin, cmd.Reason, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// 3. 在事務中寫入
	var balance int
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		balance, err = uc.ledger.Record(ctx, entry)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust points: %w", err)
	}

	// 4. 提交後發布事件
	common.PublishEvents(uc.publisher, points.NewEntryRecordedEvent(entry, balance))

	return newEntryResult(entry, balance), nil
}
