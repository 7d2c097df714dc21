package coupon

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

const (
	ErrCodeCouponNotFound    shared.ErrorCode = "COUPON_NOT_FOUND"
	ErrCodeInvalidCouponID   shared.ErrorCode = "INVALID_COUPON_ID"
	ErrCodeInvalidTransition shared.ErrorCode = "COUPON_INVALID_TRANSITION"
	ErrCodeStatusConflict    shared.ErrorCode = "COUPON_STATUS_CONFLICT"
	ErrCodeInvalidStatus     shared.ErrorCode = "COUPON_STATUS_INVALID"
	ErrCodeInvalidValidity   shared.ErrorCode = "COUPON_VALIDITY_INVALID"
)

var (
	// ErrCouponNotFound 優惠券不存在（或不屬於指定學生）
	ErrCouponNotFound = shared.NewDomainError(ErrCodeCouponNotFound, shared.KindNotFound, "優惠券不存在")

	// ErrInvalidCouponID 優惠券 ID 格式無效
	ErrInvalidCouponID = shared.NewDomainError(ErrCodeInvalidCouponID, shared.KindInvalidArgument, "優惠券 ID 格式無效")

	// ErrInvalidTransition 狀態轉換不合法
	//
	// 合法轉換：unused → pending → approved；unused | pending → expired
	ErrInvalidTransition = shared.NewDomainError(ErrCodeInvalidTransition, shared.KindInvalidTransition, "優惠券狀態轉換不合法")

	// ErrStatusConflict 寫入時狀態已被其他請求改變（compare-and-swap 失敗）
	ErrStatusConflict = shared.NewDomainError(ErrCodeStatusConflict, shared.KindInvalidTransition, "優惠券狀態已被變更")

	// ErrInvalidStatus 未知的狀態字串
	ErrInvalidStatus = shared.NewDomainError(ErrCodeInvalidStatus, shared.KindInvalidArgument, "無效的優惠券狀態")

	// ErrInvalidValidity 有效月數必須 >= 1
	ErrInvalidValidity = shared.NewDomainError(ErrCodeInvalidValidity, shared.KindInvalidArgument, "優惠券有效期無效")
)
