package logging

import (
	"log/slog"

	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// EventPublisher 以結構化日誌發布領域事件
//
// 實作 shared.EventPublisher。事件只在事務提交後到達此處，
// 日誌即為點數與優惠券異動的稽核紀錄。
type EventPublisher struct {
	logger *slog.Logger
}

// NewEventPublisher 創建事件發布器
func NewEventPublisher(logger *slog.Logger) *EventPublisher {
	return &EventPublisher{logger: logger.With("component", "events")}
}

// Publish 發布單一事件
func (p *EventPublisher) Publish(event shared.DomainEvent) error {
	attrs := []any{
		"event_id", event.EventID(),
		"aggregate_id", event.AggregateID(),
		"occurred_at", event.OccurredAt(),
	}

	switch e := event.(type) {
	case *points.EntryRecordedEvent:
		attrs = append(attrs,
			"student_id", e.StudentID().String(),
			"amount", e.Amount(),
			"source", string(e.Source()),
			"balance_after", e.BalanceAfter(),
		)
	case *coupon.CouponIssuedEvent:
		attrs = append(attrs,
			"student_id", e.StudentID().String(),
			"item_id", e.Item().ItemID().String(),
			"item_price", e.Item().Price(),
		)
	case *coupon.CouponStatusChangedEvent:
		attrs = append(attrs,
			"student_id", e.StudentID().String(),
			"from", string(e.From()),
			"to", string(e.To()),
		)
	}

	p.logger.Info(event.EventType(), attrs...)
	return nil
}

// PublishBatch 依序發布多個事件
func (p *EventPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
