package coupon

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// RequestUseCommand 學生申請使用優惠券
//
// StudentID 可省略（管理員代為操作）；提供時優惠券必須屬於該學生。
type RequestUseCommand struct {
	CouponID  string `json:"coupon_id" validate:"required"`
	StudentID string `json:"student_id,omitempty"`
}

// RequestUseUseCase unused → pending
//
// 錯誤處理：
// - 優惠券不存在或不屬於該學生 → coupon.ErrCouponNotFound
// - 狀態不是 unused，或已過期 → coupon.ErrInvalidTransition
// - 並發寫入先改變狀態 → coupon.ErrStatusConflict
type RequestUseUseCase struct {
	couponRepo coupon.CouponRepository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	clock      shared.Clock
}

// NewRequestUseUseCase 創建 Use Case 實例
func NewRequestUseUseCase(
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
) *RequestUseUseCase {
	return &RequestUseUseCase{
		couponRepo: couponRepo,
		txManager:  txManager,
		publisher:  publisher,
		clock:      clock,
	}
}

// Execute 執行申請使用
func (uc *RequestUseUseCase) Execute(cmd RequestUseCommand) (*CouponResult, error) {
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	couponID, err := coupon.CouponIDFromString(cmd.CouponID)
	if err != nil {
		return nil, err
	}

	var guard guardFunc
	if cmd.StudentID != "" {
		studentID, err := student.StudentIDFromString(cmd.StudentID)
		if err != nil {
			return nil, err
		}
		// 不透露優惠券是否存在
		guard = func(c *coupon.Coupon) error {
			if !c.BelongsTo(studentID) {
				return coupon.ErrCouponNotFound.WithContext("coupon_id", cmd.CouponID)
			}
			return nil
		}
	}

	c, err := applyTransition(uc.couponRepo, uc.txManager, uc.publisher, uc.clock, couponID, guard,
		func(c *coupon.Coupon, now time.Time) error { return c.RequestUse(now) })
	if err != nil {
		return nil, err
	}
	return NewCouponResult(c), nil
}
