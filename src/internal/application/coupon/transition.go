package coupon

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// transitionFunc 對優惠券套用一個狀態轉換命令
type transitionFunc func(c *coupon.Coupon, now time.Time) error

// guardFunc 載入後、轉換前的檢查（例如所有權）
type guardFunc func(c *coupon.Coupon) error

// applyTransition 載入優惠券、套用轉換並以 compare-and-swap 寫回
//
// 轉換失敗但狀態已改變（到期）時，仍提交 expired 狀態，
// 提交後再返回轉換錯誤。
func applyTransition(
	repo coupon.CouponRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
	id coupon.CouponID,
	guard guardFunc,
	apply transitionFunc,
) (*coupon.Coupon, error) {
	var (
		c             *coupon.Coupon
		transitionErr error
	)

	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		c, err = repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(c); err != nil {
				return err
			}
		}

		before := c.Status()
		transitionErr = apply(c, clock.Now())
		if c.Status() == before {
			return nil
		}
		return repo.UpdateStatus(ctx, c, before)
	})
	if err != nil {
		return nil, err
	}

	common.PublishEvents(publisher, c.PullEvents()...)
	if transitionErr != nil {
		return nil, transitionErr
	}
	return c, nil
}
