package points

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// 帳本領域事件
// ===========================

// EntryRecordedEvent 帳本紀錄已寫入事件
//
// EventType 依紀錄類型為 points.earned 或 points.spent。
type EntryRecordedEvent struct {
	eventID      string
	entry        *HistoryEntry
	balanceAfter int
	occurredAt   time.Time
}

// NewEntryRecordedEvent 建立紀錄寫入事件
func NewEntryRecordedEvent(entry *HistoryEntry, balanceAfter int) *EntryRecordedEvent {
	return &EntryRecordedEvent{
		eventID:      uuid.New().String(),
		entry:        entry,
		balanceAfter: balanceAfter,
		occurredAt:   entry.CreatedAt(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *EntryRecordedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *EntryRecordedEvent) EventType() string {
	if e.entry.Type() == EntryTypeSpend {
		return "points.spent"
	}
	return "points.earned"
}

// OccurredAt 實現 DomainEvent 介面
func (e *EntryRecordedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面（學生 ID）
func (e *EntryRecordedEvent) AggregateID() string {
	return e.entry.StudentID().String()
}

// StudentID 學生 ID
func (e *EntryRecordedEvent) StudentID() student.StudentID {
	return e.entry.StudentID()
}

// Amount 帶符號的點數
func (e *EntryRecordedEvent) Amount() int {
	return e.entry.Amount()
}

// Source 來源
func (e *EntryRecordedEvent) Source() Source {
	return e.entry.Source()
}

// BalanceAfter 寫入後的餘額
func (e *EntryRecordedEvent) BalanceAfter() int {
	return e.balanceAfter
}
