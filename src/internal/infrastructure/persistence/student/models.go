package student

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// GORM Models
// ===========================

// StudentGORM 學生資料表模型
//
// 資料庫約束（見 migrations/*/00001_create_students.sql）：
// - id: 主鍵（UUID 字串）
// - (grade, class_no, seat_no): 唯一
// - points: CHECK (points >= 0)，由帳本倉儲以條件式 UPDATE 維護
type StudentGORM struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Grade     int       `gorm:"column:grade;not null"`
	ClassNo   int       `gorm:"column:class_no;not null"`
	SeatNo    int       `gorm:"column:seat_no;not null"`
	Points    int       `gorm:"column:points;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (StudentGORM) TableName() string {
	return "students"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *StudentGORM) toDomain() (*student.Student, error) {
	studentID, err := student.StudentIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	seat, err := student.NewSeat(m.Grade, m.ClassNo, m.SeatNo)
	if err != nil {
		return nil, err
	}

	return student.ReconstructStudent(
		studentID,
		m.Name,
		seat,
		m.Points,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(s *student.Student) *StudentGORM {
	return &StudentGORM{
		ID:        s.StudentID().String(),
		Name:      s.Name(),
		Grade:     s.Seat().Grade(),
		ClassNo:   s.Seat().Class(),
		SeatNo:    s.Seat().Number(),
		Points:    s.Points(),
		CreatedAt: s.CreatedAt().UTC(),
		UpdatedAt: s.UpdatedAt().UTC(),
	}
}
