package student

import (
	"fmt"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ListStudentsUseCase 依座位順序列出所有學生與目前餘額
type ListStudentsUseCase struct {
	studentRepo student.StudentRepository
}

// NewListStudentsUseCase 創建 Use Case 實例
func NewListStudentsUseCase(studentRepo student.StudentRepository) *ListStudentsUseCase {
	return &ListStudentsUseCase{studentRepo: studentRepo}
}

// Execute 執行查詢
func (uc *ListStudentsUseCase) Execute() ([]*StudentResult, error) {
	return uc.ExecuteWithContext(nil)
}

// ExecuteWithContext 在事務上下文中執行查詢（ctx 可為 nil）
func (uc *ListStudentsUseCase) ExecuteWithContext(ctx shared.TransactionContext) ([]*StudentResult, error) {
	students, err := uc.studentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	results := make([]*StudentResult, 0, len(students))
	for _, s := range students {
		results = append(results, newStudentResult(s))
	}
	return results, nil
}
