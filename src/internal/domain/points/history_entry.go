package points

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// HistoryEntry 帳本紀錄
// ===========================

// HistoryEntry 點數歷史紀錄（不可變、只能追加）
//
// 不變條件：
//   - earn 紀錄 amount > 0
//   - spend 紀錄 amount < 0
//   - 對每位學生：Σ amount == 學生目前餘額
//
// 餘額與紀錄只由 LedgerRepository.Record 在同一事務中寫入。
type HistoryEntry struct {
	entryID     EntryID
	studentID   student.StudentID
	entryType   EntryType
	amount      int // 帶符號
	source      Source
	description string
	createdAt   time.Time
}

// NewEarnEntry 建立獲得點數紀錄
func NewEarnEntry(
	studentID student.StudentID,
	amount PointsAmount,
	source Source,
	description string,
	now time.Time,
) (*HistoryEntry, error) {
	return newEntry(studentID, EntryTypeEarn, amount, source, description, now)
}

// NewSpendEntry 建立使用點數紀錄（amount 以負數保存）
func NewSpendEntry(
	studentID student.StudentID,
	amount PointsAmount,
	source Source,
	description string,
	now time.Time,
) (*HistoryEntry, error) {
	return newEntry(studentID, EntryTypeSpend, amount, source, description, now)
}

func newEntry(
	studentID student.StudentID,
	entryType EntryType,
	amount PointsAmount,
	source Source,
	description string,
	now time.Time,
) (*HistoryEntry, error) {
	if studentID.IsEmpty() {
		return nil, student.ErrInvalidStudentID
	}
	if amount.IsZero() {
		return nil, ErrInvalidPointsAmount
	}
	if !source.allows(entryType) {
		return nil, ErrSourceNotAllowed.WithContext(
			"type", string(entryType),
			"source", string(source),
		)
	}
	desc, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}

	signed := amount.Value()
	if entryType == EntryTypeSpend {
		signed = -signed
	}

	return &HistoryEntry{
		entryID:     NewEntryID(),
		studentID:   studentID,
		entryType:   entryType,
		amount:      signed,
		source:      source,
		description: desc,
		createdAt:   now,
	}, nil
}

// ReconstructHistoryEntry 重建紀錄（用於從資料庫載入）
func ReconstructHistoryEntry(
	entryID EntryID,
	studentID student.StudentID,
	entryType EntryType,
	amount int,
	source Source,
	description string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if (entryType == EntryTypeEarn && amount <= 0) || (entryType == EntryTypeSpend && amount >= 0) {
		return nil, ErrCorruptedEntry.WithContext(
			"entry_id", entryID.String(),
			"type", string(entryType),
			"amount", amount,
		)
	}

	return &HistoryEntry{
		entryID:     entryID,
		studentID:   studentID,
		entryType:   entryType,
		amount:      amount,
		source:      source,
		description: description,
		createdAt:   createdAt,
	}, nil
}

// EntryID 返回紀錄 ID
func (e *HistoryEntry) EntryID() EntryID { return e.entryID }

// StudentID 返回學生 ID
func (e *HistoryEntry) StudentID() student.StudentID { return e.studentID }

// Type 返回紀錄類型
func (e *HistoryEntry) Type() EntryType { return e.entryType }

// Amount 返回帶符號的點數（earn 為正、spend 為負）
func (e *HistoryEntry) Amount() int { return e.amount }

// Source 返回來源
func (e *HistoryEntry) Source() Source { return e.source }

// Description 返回說明
func (e *HistoryEntry) Description() string { return e.description }

// CreatedAt 返回建立時間
func (e *HistoryEntry) CreatedAt() time.Time { return e.createdAt }
