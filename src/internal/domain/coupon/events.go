package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// CouponIssued 領域事件
// ===========================

// CouponIssuedEvent 優惠券已發放
type CouponIssuedEvent struct {
	eventID    string
	couponID   CouponID
	studentID  student.StudentID
	item       catalog.ItemSnapshot
	occurredAt time.Time
}

func newCouponIssuedEvent(c *Coupon) *CouponIssuedEvent {
	return &CouponIssuedEvent{
		eventID:    uuid.New().String(),
		couponID:   c.couponID,
		studentID:  c.studentID,
		item:       c.item,
		occurredAt: c.purchasedAt,
	}
}

func (e *CouponIssuedEvent) EventID() string       { return e.eventID }
func (e *CouponIssuedEvent) EventType() string     { return "coupon.issued" }
func (e *CouponIssuedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *CouponIssuedEvent) AggregateID() string   { return e.couponID.String() }

// StudentID 購買學生
func (e *CouponIssuedEvent) StudentID() student.StudentID { return e.studentID }

// Item 商品快照
func (e *CouponIssuedEvent) Item() catalog.ItemSnapshot { return e.item }

// ===========================
// CouponStatusChanged 領域事件
// ===========================

// CouponStatusChangedEvent 優惠券狀態變更
//
// EventType 依新狀態：
//
//	pending  → coupon.use_requested
//	approved → coupon.approved
//	expired  → coupon.expired
type CouponStatusChangedEvent struct {
	eventID    string
	couponID   CouponID
	studentID  student.StudentID
	from       Status
	to         Status
	occurredAt time.Time
}

func newStatusChangedEvent(c *Coupon, from Status, now time.Time) *CouponStatusChangedEvent {
	return &CouponStatusChangedEvent{
		eventID:    uuid.New().String(),
		couponID:   c.couponID,
		studentID:  c.studentID,
		from:       from,
		to:         c.status,
		occurredAt: now,
	}
}

func (e *CouponStatusChangedEvent) EventID() string       { return e.eventID }
func (e *CouponStatusChangedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *CouponStatusChangedEvent) AggregateID() string   { return e.couponID.String() }

func (e *CouponStatusChangedEvent) EventType() string {
	switch e.to {
	case StatusPending:
		return "coupon.use_requested"
	case StatusApproved:
		return "coupon.approved"
	case StatusExpired:
		return "coupon.expired"
	}
	return "coupon.status_changed"
}

// From 變更前狀態
func (e *CouponStatusChangedEvent) From() Status { return e.from }

// To 變更後狀態
func (e *CouponStatusChangedEvent) To() Status { return e.to }

// StudentID 優惠券持有學生
func (e *CouponStatusChangedEvent) StudentID() student.StudentID { return e.studentID }
