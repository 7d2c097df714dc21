package student

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ===========================
// Student Aggregate Root
// ===========================

// Student 學生聚合根
//
// 聚合邊界：
// - 基本資料（ID, 姓名, 座位）
// - 點數餘額（Points，唯讀投影）
// - 審計欄位（CreatedAt, UpdatedAt）
//
// 不變量（Invariants）：
//  1. 姓名不可為空
//  2. 座位必須有效
//  3. Points >= 0
//  4. Points 只由帳本（points.LedgerRepository.Record）寫入，
//     聚合本身不提供修改餘額的方法
//
// 使用範例：
//
//	seat, _ := NewSeat(5, 2, 13)
//	s, err := NewStudent("김민준", seat, clock.Now())
type Student struct {
	studentID StudentID
	name      string
	seat      Seat

	points int

	createdAt time.Time
	updatedAt time.Time
}

const maxNameLength = 50

// NewStudent 創建新學生（初始餘額 0）
func NewStudent(name string, seat Seat, now time.Time) (*Student, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if seat.IsZero() {
		return nil, ErrInvalidSeat
	}

	return &Student{
		studentID: NewStudentID(),
		name:      name,
		seat:      seat,
		points:    0,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructStudent 重建學生聚合（用於從資料庫載入）
//
// 不執行業務規則驗證，只拒絕會破壞不變量的資料（負餘額）。
func ReconstructStudent(
	studentID StudentID,
	name string,
	seat Seat,
	points int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Student, error) {
	if points < 0 {
		return nil, ErrNegativeBalanceState.WithContext(
			"student_id", studentID.String(),
			"points", points,
		)
	}

	return &Student{
		studentID: studentID,
		name:      name,
		seat:      seat,
		points:    points,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validateName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return ErrInvalidStudentName.WithContext("name", name)
	}
	return nil
}

// ===========================
// Getters
// ===========================

// StudentID 返回學生 ID
func (s *Student) StudentID() StudentID {
	return s.studentID
}

// Name 返回姓名
func (s *Student) Name() string {
	return s.name
}

// Seat 返回座位
func (s *Student) Seat() Seat {
	return s.seat
}

// Points 返回載入時的餘額
func (s *Student) Points() int {
	return s.points
}

// CanAfford 餘額是否足以支付 price（僅作為預檢，帳本寫入時會再次原子檢查）
func (s *Student) CanAfford(price int) bool {
	return s.points >= price
}

// CreatedAt 返回創建時間
func (s *Student) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt 返回更新時間
func (s *Student) UpdatedAt() time.Time {
	return s.updatedAt
}
