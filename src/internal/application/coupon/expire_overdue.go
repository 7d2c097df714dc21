package coupon

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// ExpireOverdue Use Case（到期掃描）
// ===========================

// ExpireOverdueUseCase 將已過期的 unused / pending 優惠券改為 expired
//
// 列表查詢（lazy）與排程工作（cron）共用此 Use Case，兩者套用同一個
// coupon.Sweep，重複執行結果相同。
//
// 並發：
//   - 狀態更新為 compare-and-swap；若另一個請求已先改變狀態
//     （例如核准），該張優惠券略過，不視為錯誤。
type ExpireOverdueUseCase struct {
	couponRepo coupon.CouponRepository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	clock      shared.Clock
}

// NewExpireOverdueUseCase 創建 Use Case 實例
func NewExpireOverdueUseCase(
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
) *ExpireOverdueUseCase {
	return &ExpireOverdueUseCase{
		couponRepo: couponRepo,
		txManager:  txManager,
		publisher:  publisher,
		clock:      clock,
	}
}

// Execute 掃描所有學生的優惠券，返回本次改為 expired 的數量
func (uc *ExpireOverdueUseCase) Execute() (int, error) {
	var events []shared.DomainEvent
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		events, err = uc.ExecuteWithContext(ctx, nil)
		return err
	})
	if err != nil {
		return 0, err
	}

	common.PublishEvents(uc.publisher, events...)
	return len(events), nil
}

// ExecuteWithContext 在呼叫者的事務中掃描
//
// studentID 為 nil 時掃描全部。返回待發布的 coupon.expired 事件，
// 由呼叫者在提交後發布。
func (uc *ExpireOverdueUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	studentID *student.StudentID,
) ([]shared.DomainEvent, error) {
	now := uc.clock.Now()

	candidates, err := uc.couponRepo.FindSweepable(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sweepable coupons: %w", err)
	}

	var events []shared.DomainEvent
	for _, c := range candidates {
		before := c.Status()
		if !c.Sweep(now) {
			continue
		}
		if err := uc.couponRepo.UpdateStatus(ctx, c, before); err != nil {
			if errors.Is(err, coupon.ErrStatusConflict) {
				c.PullEvents()
				continue
			}
			return nil, fmt.Errorf("failed to expire coupon: %w", err)
		}
		events = append(events, c.PullEvents()...)
	}
	return events, nil
}
