package coupon

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// ApproveCommand 管理員核准優惠券
type ApproveCommand struct {
	CouponID string `json:"coupon_id" validate:"required"`
}

// ApproveUseCase pending → approved，設定 usedAt
//
// 只能從 pending 核准；對 unused 核准返回 ErrInvalidTransition 且不做任何變更。
type ApproveUseCase struct {
	couponRepo coupon.CouponRepository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	clock      shared.Clock
}

// NewApproveUseCase 創建 Use Case 實例
func NewApproveUseCase(
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
) *ApproveUseCase {
	return &ApproveUseCase{
		couponRepo: couponRepo,
		txManager:  txManager,
		publisher:  publisher,
		clock:      clock,
	}
}

// Execute 執行核准
func (uc *ApproveUseCase) Execute(cmd ApproveCommand) (*CouponResult, error) {
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	couponID, err := coupon.CouponIDFromString(cmd.CouponID)
	if err != nil {
		return nil, err
	}

	c, err := applyTransition(uc.couponRepo, uc.txManager, uc.publisher, uc.clock, couponID, nil,
		func(c *coupon.Coupon, now time.Time) error { return c.Approve(now) })
	if err != nil {
		return nil, err
	}
	return NewCouponResult(c), nil
}
