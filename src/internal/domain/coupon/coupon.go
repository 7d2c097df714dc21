package coupon

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// Coupon Aggregate Root
// ===========================

// Coupon 優惠券聚合根
//
// 狀態機（只能前進）：
//
//	unused ──RequestUse──▶ pending ──Approve──▶ approved
//	   │                      │
//	   └────── 到期 ──────────┴──▶ expired
//
// 不變量：
//  1. expiresAt = purchasedAt + 1 個日曆月（可設定月數）
//  2. usedAt 只在 approved 時設定
//  3. 商品資訊為購買時的快照
//  4. 建立後只有 status / usedAt 會改變，不刪除
type Coupon struct {
	couponID    CouponID
	studentID   student.StudentID
	item        catalog.ItemSnapshot
	purchasedAt time.Time
	expiresAt   time.Time
	status      Status
	usedAt      *time.Time

	shared.EventRecorder
}

// Issue 發放新優惠券（購買流程使用）
func Issue(
	studentID student.StudentID,
	item catalog.ItemSnapshot,
	purchasedAt time.Time,
	validityMonths int,
) (*Coupon, error) {
	if studentID.IsEmpty() {
		return nil, student.ErrInvalidStudentID
	}
	if item.ItemID().IsEmpty() {
		return nil, catalog.ErrInvalidItemID
	}
	if validityMonths < 1 {
		return nil, ErrInvalidValidity.WithContext("months", validityMonths)
	}

	c := &Coupon{
		couponID:    NewCouponID(),
		studentID:   studentID,
		item:        item,
		purchasedAt: purchasedAt,
		expiresAt:   ExpiresAt(purchasedAt, validityMonths),
		status:      StatusUnused,
	}
	c.Record(newCouponIssuedEvent(c))
	return c, nil
}

// ReconstructCoupon 重建優惠券（用於從資料庫載入）
func ReconstructCoupon(
	couponID CouponID,
	studentID student.StudentID,
	item catalog.ItemSnapshot,
	purchasedAt time.Time,
	expiresAt time.Time,
	status Status,
	usedAt *time.Time,
) *Coupon {
	return &Coupon{
		couponID:    couponID,
		studentID:   studentID,
		item:        item,
		purchasedAt: purchasedAt,
		expiresAt:   expiresAt,
		status:      status,
		usedAt:      usedAt,
	}
}

// ===========================
// 命令方法
// ===========================

// Sweep 套用到期判斷，狀態改變時返回 true 並記錄 coupon.expired 事件
func (c *Coupon) Sweep(now time.Time) bool {
	next := Sweep(c.status, c.expiresAt, now)
	if next == c.status {
		return false
	}
	from := c.status
	c.status = next
	c.Record(newStatusChangedEvent(c, from, now))
	return true
}

// RequestUse 學生申請使用（unused → pending）
//
// 已過期的優惠券會先轉為 expired，再返回 ErrInvalidTransition；
// 呼叫端應持久化到期狀態。
func (c *Coupon) RequestUse(now time.Time) error {
	return c.transition(StatusUnused, StatusPending, now)
}

// Approve 管理員核准（pending → approved），設定 usedAt
func (c *Coupon) Approve(now time.Time) error {
	if err := c.transition(StatusPending, StatusApproved, now); err != nil {
		return err
	}
	usedAt := now
	c.usedAt = &usedAt
	return nil
}

func (c *Coupon) transition(from, to Status, now time.Time) error {
	if c.Sweep(now) {
		return ErrInvalidTransition.WithContext(
			"coupon_id", c.couponID.String(),
			"status", string(c.status),
			"reason", "expired",
		)
	}
	if c.status != from {
		return ErrInvalidTransition.WithContext(
			"coupon_id", c.couponID.String(),
			"from", string(c.status),
			"to", string(to),
		)
	}

	c.status = to
	c.Record(newStatusChangedEvent(c, from, now))
	return nil
}

// BelongsTo 是否屬於指定學生
func (c *Coupon) BelongsTo(studentID student.StudentID) bool {
	return c.studentID.Equals(studentID)
}

// ===========================
// Getters
// ===========================

func (c *Coupon) CouponID() CouponID           { return c.couponID }
func (c *Coupon) StudentID() student.StudentID { return c.studentID }
func (c *Coupon) Item() catalog.ItemSnapshot   { return c.item }
func (c *Coupon) PurchasedAt() time.Time       { return c.purchasedAt }
func (c *Coupon) ExpiresAt() time.Time         { return c.expiresAt }
func (c *Coupon) Status() Status               { return c.status }

// UsedAt 核准時間（未核准為 nil）
func (c *Coupon) UsedAt() *time.Time { return c.usedAt }
