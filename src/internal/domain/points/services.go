package points

import (
	"github.com/shopspring/decimal"
)

// ===========================
// LedgerSummaryService 領域服務
// ===========================

// LedgerSummaryService 帳本統計領域服務（無狀態）
type LedgerSummaryService struct{}

// NewLedgerSummaryService 建構函數
func NewLedgerSummaryService() *LedgerSummaryService {
	return &LedgerSummaryService{}
}

// ClassSummary 全班點數統計
type ClassSummary struct {
	StudentCount   int
	TotalBalance   int
	TotalEarned    int
	TotalSpent     int
	AverageBalance decimal.Decimal // 四捨五入至小數點後 2 位
}

// Summarize 由各學生餘額與帳本累計計算統計
//
// 業務規則：
// - 沒有學生時平均為 0
// - 平均值使用 decimal 計算，避免浮點誤差（例如 10/3 = 3.33）
func (s *LedgerSummaryService) Summarize(balances []int, totalEarned, totalSpent int) ClassSummary {
	total := 0
	for _, b := range balances {
		total += b
	}

	avg := decimal.Zero
	if len(balances) > 0 {
		avg = decimal.NewFromInt(int64(total)).
			DivRound(decimal.NewFromInt(int64(len(balances))), 2)
	}

	return ClassSummary{
		StudentCount:   len(balances),
		TotalBalance:   total,
		TotalEarned:    totalEarned,
		TotalSpent:     totalSpent,
		AverageBalance: avg,
	}
}

// LedgerAudit 單一學生的餘額對帳結果
type LedgerAudit struct {
	Balance    int
	LedgerSum  int
	Consistent bool
}

// Audit 比對學生餘額與帳本總和
func (s *LedgerSummaryService) Audit(balance, ledgerSum int) LedgerAudit {
	return LedgerAudit{
		Balance:    balance,
		LedgerSum:  ledgerSum,
		Consistent: balance == ledgerSum,
	}
}
