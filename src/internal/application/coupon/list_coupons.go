package coupon

import (
	"fmt"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ListCouponsQuery 列表查詢
//
// Status 為空字串表示全部。
type ListCouponsQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=unused pending approved expired"`
}

// ListCouponsUseCase 列出優惠券（管理員）
//
// 查詢前先在同一事務中執行到期掃描，返回的狀態已反映到期。
type ListCouponsUseCase struct {
	couponRepo coupon.CouponRepository
	expirer    *ExpireOverdueUseCase
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
}

// NewListCouponsUseCase 創建 Use Case 實例
func NewListCouponsUseCase(
	couponRepo coupon.CouponRepository,
	expirer *ExpireOverdueUseCase,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *ListCouponsUseCase {
	return &ListCouponsUseCase{
		couponRepo: couponRepo,
		expirer:    expirer,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// Execute 執行查詢（依購買時間由新到舊）
func (uc *ListCouponsUseCase) Execute(query ListCouponsQuery) ([]*CouponResult, error) {
	if err := common.Validate(query); err != nil {
		return nil, err
	}

	var filter coupon.Filter
	if query.Status != "" {
		status, err := coupon.ParseStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	coupons, events, err := sweepAndFind(uc.txManager, uc.expirer, uc.couponRepo, nil, filter)
	if err != nil {
		return nil, err
	}

	common.PublishEvents(uc.publisher, events...)
	return newCouponResults(coupons), nil
}

// ListStudentCouponsQuery 學生的優惠券
type ListStudentCouponsQuery struct {
	StudentID string `json:"student_id" validate:"required"`
}

// ListStudentCouponsUseCase 列出單一學生的優惠券（只掃描該學生）
type ListStudentCouponsUseCase struct {
	studentRepo student.StudentRepository
	couponRepo  coupon.CouponRepository
	expirer     *ExpireOverdueUseCase
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher
}

// NewListStudentCouponsUseCase 創建 Use Case 實例
func NewListStudentCouponsUseCase(
	studentRepo student.StudentRepository,
	couponRepo coupon.CouponRepository,
	expirer *ExpireOverdueUseCase,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *ListStudentCouponsUseCase {
	return &ListStudentCouponsUseCase{
		studentRepo: studentRepo,
		couponRepo:  couponRepo,
		expirer:     expirer,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行查詢；學生不存在時返回 student.ErrStudentNotFound
func (uc *ListStudentCouponsUseCase) Execute(query ListStudentCouponsQuery) ([]*CouponResult, error) {
	studentID, err := student.StudentIDFromString(query.StudentID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.studentRepo.FindByID(nil, studentID); err != nil {
		return nil, err
	}

	coupons, events, err := sweepAndFind(uc.txManager, uc.expirer, uc.couponRepo, &studentID,
		coupon.Filter{StudentID: &studentID})
	if err != nil {
		return nil, err
	}

	common.PublishEvents(uc.publisher, events...)
	return newCouponResults(coupons), nil
}

func sweepAndFind(
	txManager shared.TransactionManager,
	expirer *ExpireOverdueUseCase,
	repo coupon.CouponRepository,
	studentID *student.StudentID,
	filter coupon.Filter,
) ([]*coupon.Coupon, []shared.DomainEvent, error) {
	var (
		coupons []*coupon.Coupon
		events  []shared.DomainEvent
	)
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		events, err = expirer.ExecuteWithContext(ctx, studentID)
		if err != nil {
			return err
		}
		coupons, err = repo.Find(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list coupons: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return coupons, events, nil
}
