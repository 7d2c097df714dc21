package points

import (
	"fmt"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ListHistoryQuery 查詢點數紀錄
type ListHistoryQuery struct {
	StudentID string `json:"student_id" validate:"required"`
}

// HistoryEntryResult 單筆紀錄
type HistoryEntryResult struct {
	EntryID     string    `json:"entry_id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"`
	Source      string    `json:"source"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListHistoryResult 學生的點數紀錄（由新到舊）
type ListHistoryResult struct {
	StudentID string                `json:"student_id"`
	Entries   []*HistoryEntryResult `json:"entries"`
}

// ListHistoryUseCase 查詢學生點數紀錄
type ListHistoryUseCase struct {
	studentRepo student.StudentRepository
	ledger      points.LedgerRepository
}

// NewListHistoryUseCase 創建 Use Case 實例
func NewListHistoryUseCase(studentRepo student.StudentRepository, ledger points.LedgerRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		studentRepo: studentRepo,
		ledger:      ledger,
	}
}

// Execute 執行查詢
//
// 學生不存在時返回 student.ErrStudentNotFound（而非空列表）。
func (uc *ListHistoryUseCase) Execute(query ListHistoryQuery) (*ListHistoryResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢（ctx 可為 nil）
func (uc *ListHistoryUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query ListHistoryQuery,
) (*ListHistoryResult, error) {
	studentID, err := student.StudentIDFromString(query.StudentID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.studentRepo.FindByID(ctx, studentID); err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	entries, err := uc.ledger.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	result := &ListHistoryResult{
		StudentID: studentID.String(),
		Entries:   make([]*HistoryEntryResult, 0, len(entries)),
	}
	for _, e := range entries {
		result.Entries = append(result.Entries, &HistoryEntryResult{
			EntryID:     e.EntryID().String(),
			Type:        string(e.Type()),
			Amount:      e.Amount(),
			Source:      string(e.Source()),
			Description: e.Description(),
			CreatedAt:   e.CreatedAt(),
		})
	}
	return result, nil
}
