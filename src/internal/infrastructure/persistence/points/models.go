package points

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// GORM Models
// ===========================

// PointHistoryGORM 點數歷史資料表模型
//
// 資料庫約束：
// - seq: 自增主鍵（決定紀錄順序）
// - id: 唯一（UUID 字串）
// - student_id: 外鍵 → students.id
// - CHECK: earn 紀錄 amount > 0，spend 紀錄 amount < 0
//
// 紀錄只新增，不更新不刪除。
type PointHistoryGORM struct {
	Seq         int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID          string    `gorm:"column:id;type:varchar(36);uniqueIndex;not null"`
	StudentID   string    `gorm:"column:student_id;type:varchar(36);index;not null"`
	Type        string    `gorm:"column:type;not null"`
	Amount      int       `gorm:"column:amount;not null"`
	Source      string    `gorm:"column:source;not null"`
	Description string    `gorm:"column:description;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (PointHistoryGORM) TableName() string {
	return "point_history"
}

const studentsTable = "students"

// ===========================
// Mapper Functions
// ===========================

func (m *PointHistoryGORM) toDomain() (*points.HistoryEntry, error) {
	entryID, err := points.EntryIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	studentID, err := student.StudentIDFromString(m.StudentID)
	if err != nil {
		return nil, err
	}

	entryType, err := points.ParseEntryType(m.Type)
	if err != nil {
		return nil, err
	}

	source, err := points.ParseSource(m.Source)
	if err != nil {
		return nil, err
	}

	return points.ReconstructHistoryEntry(
		entryID,
		studentID,
		entryType,
		m.Amount,
		source,
		m.Description,
		m.CreatedAt,
	)
}

func toGORM(e *points.HistoryEntry) *PointHistoryGORM {
	return &PointHistoryGORM{
		ID:          e.EntryID().String(),
		StudentID:   e.StudentID().String(),
		Type:        string(e.Type()),
		Amount:      e.Amount(),
		Source:      string(e.Source()),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt().UTC(),
	}
}
