package points

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// VerifyLedgerQuery 對帳查詢
type VerifyLedgerQuery struct {
	StudentID string `json:"student_id" validate:"required"`
}

// VerifyLedgerResult 對帳結果
type VerifyLedgerResult struct {
	StudentID  string `json:"student_id"`
	Balance    int    `json:"balance"`
	LedgerSum  int    `json:"ledger_sum"`
	Consistent bool   `json:"consistent"`
}

// VerifyLedgerUseCase 比對學生餘額與帳本總和
//
// 兩者在同一事務中讀取；不一致代表有繞過帳本的寫入。
type VerifyLedgerUseCase struct {
	studentRepo student.StudentRepository
	ledger      points.LedgerRepository
	txManager   shared.TransactionManager
	summary     *points.LedgerSummaryService
}

// NewVerifyLedgerUseCase 創建 Use Case 實例
func NewVerifyLedgerUseCase(
	studentRepo student.StudentRepository,
	ledger points.LedgerRepository,
	txManager shared.TransactionManager,
) *VerifyLedgerUseCase {
	return &VerifyLedgerUseCase{
		studentRepo: studentRepo,
		ledger:      ledger,
		txManager:   txManager,
		summary:     points.NewLedgerSummaryService(),
	}
}

// Execute 執行對帳
func (uc *VerifyLedgerUseCase) Execute(query VerifyLedgerQuery) (*VerifyLedgerResult, error) {
	studentID, err := student.StudentIDFromString(query.StudentID)
	if err != nil {
		return nil, err
	}

	var audit points.LedgerAudit
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		s, err := uc.studentRepo.FindByID(ctx, studentID)
		if err != nil {
			return err
		}
		sum, err := uc.ledger.SumByStudentID(ctx, studentID)
		if err != nil {
			return err
		}
		audit = uc.summary.Audit(s.Points(), sum)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &VerifyLedgerResult{
		StudentID:  studentID.String(),
		Balance:    audit.Balance,
		LedgerSum:  audit.LedgerSum,
		Consistent: audit.Consistent,
	}, nil
}
