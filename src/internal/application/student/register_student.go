package student

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// RegisterStudent Use Case
// ===========================

// RegisterStudentCommand 註冊學生指令（Input DTO）
//
// 使用原始類型，由 Use Case 轉換為 Value Object。
type RegisterStudentCommand struct {
	Name   string `json:"name" validate:"notblank,max=50"`
	Grade  int    `json:"grade" validate:"min=1,max=12"`
	Class  int    `json:"class" validate:"min=1,max=99"`
	Number int    `json:"number" validate:"min=1,max=99"`
}

// StudentResult 學生資料（Output DTO）
type StudentResult struct {
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Grade     int       `json:"grade"`
	Class     int       `json:"class"`
	Number    int       `json:"number"`
	Seat      string    `json:"seat"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func newStudentResult(s *student.Student) *StudentResult {
	return &StudentResult{
		StudentID: s.StudentID().String(),
		Name:      s.Name(),
		Grade:     s.Seat().Grade(),
		Class:     s.Seat().Class(),
		Number:    s.Seat().Number(),
		Seat:      s.Seat().String(),
		Points:    s.Points(),
		CreatedAt: s.CreatedAt(),
	}
}

// RegisterStudentUseCase 註冊學生
//
// 業務規則：
// 1. 同一座位（年級-班級-座號）只能有一位學生
// 2. 新學生餘額為 0，點數只能經由帳本寫入
type RegisterStudentUseCase struct {
	studentRepo student.StudentRepository
	txManager   shared.TransactionManager
	clock       shared.Clock
}

// NewRegisterStudentUseCase 創建 Use Case 實例
func NewRegisterStudentUseCase(
	studentRepo student.StudentRepository,
	txManager shared.TransactionManager,
	clock shared.Clock,
) *RegisterStudentUseCase {
	return &RegisterStudentUseCase{
		studentRepo: studentRepo,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute 執行註冊學生
//
// 業務流程：
//  1. 驗證輸入並轉換為 Value Object
//  2. 在事務中執行：
//     a. 檢查座位是否已有學生
//     b. 創建 Student 聚合
//     c. 保存到資料庫
//  3. 返回結果
//
// 錯誤處理：
//   - 輸入驗證失敗 → shared.ErrInvalidArgument / student.ErrInvalidSeat
//   - 座位已有學生 → student.ErrSeatAlreadyTaken
//     （並發註冊由資料庫唯一約束兜底，倉儲返回同一錯誤）
func (uc *RegisterStudentUseCase) Execute(cmd RegisterStudentCommand) (*StudentResult, error) {
	// Step 1: 驗證輸入
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	seat, err := student.NewSeat(cmd.Grade, cmd.Class, cmd.Number)
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行
	var newStudent *student.Student
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 檢查座位
		exists, err := uc.studentRepo.ExistsBySeat(ctx, seat)
		if err != nil {
			return err
		}
		if exists {
			return student.ErrSeatAlreadyTaken.WithContext("seat", seat.String())
		}

		// 2b. 創建 Student 聚合
		newStudent, err = student.NewStudent(cmd.Name, seat, uc.clock.Now())
		if err != nil {
			return err
		}

		// 2c. 保存
		return uc.studentRepo.Create(ctx, newStudent)
	})
	if err != nil {
		return nil, err
	}

	// Step 3: 返回結果
	return newStudentResult(newStudent), nil
}
