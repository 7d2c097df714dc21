package coupon

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

// CouponMarker 優惠券 ID 標記類型
type CouponMarker struct{}

// CouponID 優惠券 ID
type CouponID = shared.EntityID[CouponMarker]

// NewCouponID 生成新的優惠券 ID
func NewCouponID() CouponID {
	return shared.NewEntityID[CouponMarker]()
}

// CouponIDFromString 從字串解析優惠券 ID
func CouponIDFromString(value string) (CouponID, error) {
	return shared.EntityIDFromString[CouponMarker](value, ErrInvalidCouponID)
}
