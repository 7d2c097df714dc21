package points

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ClassSummaryResult 全班點數統計
type ClassSummaryResult struct {
	StudentCount   int             `json:"student_count"`
	TotalBalance   int             `json:"total_balance"`
	TotalEarned    int             `json:"total_earned"`
	TotalSpent     int             `json:"total_spent"`
	AverageBalance decimal.Decimal `json:"average_balance"`
}

// ClassSummaryUseCase 全班點數統計
type ClassSummaryUseCase struct {
	studentRepo student.StudentRepository
	ledger      points.LedgerRepository
	txManager   shared.TransactionManager
	summary     *points.LedgerSummaryService
}

// NewClassSummaryUseCase 創建 Use Case 實例
func NewClassSummaryUseCase(
	studentRepo student.StudentRepository,
	ledger points.LedgerRepository,
	txManager shared.TransactionManager,
) *ClassSummaryUseCase {
	return &ClassSummaryUseCase{
		studentRepo: studentRepo,
		ledger:      ledger,
		txManager:   txManager,
		summary:     points.NewLedgerSummaryService(),
	}
}

// Execute 執行統計
func (uc *ClassSummaryUseCase) Execute() (*ClassSummaryResult, error) {
	var summary points.ClassSummary
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		students, err := uc.studentRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		earned, spent, err := uc.ledger.Totals(ctx)
		if err != nil {
			return err
		}

		balances := make([]int, 0, len(students))
		for _, s := range students {
			balances = append(balances, s.Points())
		}
		summary = uc.summary.Summarize(balances, earned, spent)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize class: %w", err)
	}

	return &ClassSummaryResult{
		StudentCount:   summary.StudentCount,
		TotalBalance:   summary.TotalBalance,
		TotalEarned:    summary.TotalEarned,
		TotalSpent:     summary.TotalSpent,
		AverageBalance: summary.AverageBalance,
	}, nil
}
