package coupon

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
)

// CouponResult 優惠券資料（Output DTO）
type CouponResult struct {
	CouponID     string     `json:"coupon_id"`
	StudentID    string     `json:"student_id"`
	ItemID       string     `json:"item_id"`
	ItemTitle    string     `json:"item_title"`
	ItemCategory string     `json:"item_category"`
	ItemPrice    int        `json:"item_price"`
	PurchasedAt  time.Time  `json:"purchased_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Status       string     `json:"status"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
}

// NewCouponResult 由聚合轉換為 DTO
func NewCouponResult(c *coupon.Coupon) *CouponResult {
	return &CouponResult{
		CouponID:     c.CouponID().String(),
		StudentID:    c.StudentID().String(),
		ItemID:       c.Item().ItemID().String(),
		ItemTitle:    c.Item().Title(),
		ItemCategory: string(c.Item().Category()),
		ItemPrice:    c.Item().Price(),
		PurchasedAt:  c.PurchasedAt(),
		ExpiresAt:    c.ExpiresAt(),
		Status:       string(c.Status()),
		UsedAt:       c.UsedAt(),
	}
}

func newCouponResults(coupons []*coupon.Coupon) []*CouponResult {
	results := make([]*CouponResult, 0, len(coupons))
	for _, c := range coupons {
		results = append(results, NewCouponResult(c))
	}
	return results
}
