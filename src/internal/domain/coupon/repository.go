package coupon

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// Filter 列表查詢條件（零值表示全部）
type Filter struct {
	Status    *Status
	StudentID *student.StudentID
}

// CouponRepository 優惠券倉儲接口
//
// 狀態更新一律使用 compare-and-swap：
//
//	UPDATE coupons SET status = ?, used_at = ? WHERE id = ? AND status = ?
//
// 並發的核准與到期掃描只有一方會成功，另一方得到 ErrStatusConflict。
type CouponRepository interface {
	// Create 新增優惠券（ctx 必須 non-nil）
	Create(ctx shared.TransactionContext, coupon *Coupon) error

	// FindByID 找不到時返回 ErrCouponNotFound
	FindByID(ctx shared.TransactionContext, id CouponID) (*Coupon, error)

	// Find 依購買時間由新到舊返回符合條件的優惠券
	Find(ctx shared.TransactionContext, filter Filter) ([]*Coupon, error)

	// FindSweepable 返回 unused / pending 的優惠券（到期掃描用）
	FindSweepable(ctx shared.TransactionContext, studentID *student.StudentID) ([]*Coupon, error)

	// UpdateStatus 以 expected 為前提寫入 coupon 目前的 status / usedAt
	UpdateStatus(ctx shared.TransactionContext, coupon *Coupon, expected Status) error
}
