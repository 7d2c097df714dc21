package points

import (
	"fmt"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// AwardPointsCommand 活動獲得點數指令
//
// Source: assignment | praise_received | praise_given | goal | attendance
type AwardPointsCommand struct {
	StudentID   string `json:"student_id" validate:"required"`
	Amount      int    `json:"amount" validate:"gt=0"`
	Source      string `json:"source" validate:"required"`
	Description string `json:"description" validate:"notblank,max=200"`
}

// AwardPointsUseCase 學生活動（作業、稱讚、目標、出席）獲得點數
//
// admin 與 shop 來源不經由此 Use Case 寫入。
type AwardPointsUseCase struct {
	ledger    points.LedgerRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	clock     shared.Clock
}

// NewAwardPointsUseCase 創建 Use Case 實例
func NewAwardPointsUseCase(
	ledger points.LedgerRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
) *AwardPointsUseCase {
	return &AwardPointsUseCase{
		ledger:    ledger,
		txManager: txManager,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute 執行獲得點數
func (uc *AwardPointsUseCase) Execute(cmd AwardPointsCommand) (*EntryResult, error) {
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
	source, err := points.ParseSource(cmd.Source)
	if err != nil {
		return nil, err
	}
	if !source.IsActivity() {
		return nil, points.ErrSourceNotAllowed.WithContext("source", cmd.Source)
	}

	entry, err := points.NewEarnEntry(studentID, amount, source, cmd.Description, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var balance int
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		balance, err = uc.ledger.Record(ctx, entry)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to award points: %w", err)
	}

	common.PublishEvents(uc.publisher, points.NewEntryRecordedEvent(entry, balance))

	return newEntryResult(entry, balance), nil
}
