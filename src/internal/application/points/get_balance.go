package points

import (
	"fmt"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// GetBalanceQuery 查詢點數餘額的查詢
type GetBalanceQuery struct {
	StudentID string `json:"student_id" validate:"required"`
}

// GetBalanceResult 查詢點數餘額的結果
type GetBalanceResult struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Seat      string `json:"seat"`
	Balance   int    `json:"balance"`
}

// GetBalanceUseCase 查詢點數餘額 Use Case
type GetBalanceUseCase struct {
	studentRepo student.StudentRepository
}

// NewGetBalanceUseCase 創建 Use Case 實例
func NewGetBalanceUseCase(studentRepo student.StudentRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		studentRepo: studentRepo,
	}
}

// Execute 執行查詢點數餘額
//
// 執行流程：
// 1. 驗證並轉換 StudentID
// 2. 查詢學生（餘額即 students.points 投影）
// 3. 返回結果
//
// 錯誤處理：
// - ErrInvalidStudentID: StudentID 格式無效
// - ErrStudentNotFound: 學生不存在
func (uc *GetBalanceUseCase) Execute(query GetBalanceQuery) (*GetBalanceResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
//
// 使用場景：
// - 在已有事務中查詢餘額（與其他操作組合）
// - 獨立查詢時可傳入 nil（不需要事務）
func (uc *GetBalanceUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetBalanceQuery,
) (*GetBalanceResult, error) {
	// 1. 驗證並轉換 StudentID
	studentID, err := student.StudentIDFromString(query.StudentID)
	if err != nil {
		return nil, err
	}

	// 2. 查詢學生
	s, err := uc.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	// 3. 返回結果
	return &GetBalanceResult{
		StudentID: s.StudentID().String(),
		Name:      s.Name(),
		Seat:      s.Seat().String(),
		Balance:   s.Points(),
	}, nil
}
