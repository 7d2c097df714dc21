package shop

import (
	"fmt"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	couponapp "github.com/jackyeh168/classpoints/src/internal/application/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// Purchase Use Case
// ===========================

// PurchaseCommand 購買指令
type PurchaseCommand struct {
	StudentID string `json:"student_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
}

// PurchaseResult 購買結果：新優惠券與扣點後餘額
type PurchaseResult struct {
	Coupon  *couponapp.CouponResult `json:"coupon"`
	Balance int                     `json:"balance"`
}

// PurchaseUseCase 以點數購買商品並發放優惠券
//
// 業務規則：
// 1. 商品必須存在且上架中
// 2. 餘額不足時不寫入任何資料
// 3. 扣點紀錄（-price, source=shop）與優惠券在同一事務中寫入
// 4. 優惠券保存購買當下的商品快照，之後商品修改不影響
//
// 並發：
//   - PostgreSQL 以 SELECT ... FOR UPDATE 鎖定學生列
//   - 帳本的條件式更新保證餘額不為負，預檢只用於提早回報
type PurchaseUseCase struct {
	studentRepo    student.StudentRepository
	itemRepo       catalog.ShopItemRepository
	ledger         points.LedgerRepository
	couponRepo     coupon.CouponRepository
	txManager      shared.TransactionManager
	publisher      shared.EventPublisher
	clock          shared.Clock
	validityMonths int
}

// NewPurchaseUseCase 創建 Use Case 實例
//
// validityMonths: 優惠券有效月數（預設 1）
func NewPurchaseUseCase(
	studentRepo student.StudentRepository,
	itemRepo catalog.ShopItemRepository,
	ledger points.LedgerRepository,
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	clock shared.Clock,
	validityMonths int,
) *PurchaseUseCase {
	if validityMonths < 1 {
		validityMonths = 1
	}
	return &PurchaseUseCase{
		studentRepo:    studentRepo,
		itemRepo:       itemRepo,
		ledger:         ledger,
		couponRepo:     couponRepo,
		txManager:      txManager,
		publisher:      publisher,
		clock:          clock,
		validityMonths: validityMonths,
	}
}

// Execute 執行購買
//
// 執行流程（單一事務）：
//  1. 鎖定並載入學生，載入商品
//  2. 檢查商品上架、餘額足夠
//  3. 寫入扣點紀錄並更新餘額
//  4. 發放優惠券
//
// 提交後發布 points.spent 與 coupon.issued 事件。
//
// 錯誤處理：
//   - student.ErrStudentNotFound / catalog.ErrItemNotFound
//   - catalog.ErrItemInactive
//   - points.ErrInsufficientBalance
func (uc *PurchaseUseCase) Execute(cmd PurchaseCommand) (*PurchaseResult, error) {
	// 1. 驗證輸入
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	studentID, err := student.StudentIDFromString(cmd.StudentID)
	if err != nil {
		return nil, err
	}
	itemID, err := catalog.ItemIDFromString(cmd.ItemID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	var (
		entry   *points.HistoryEntry
		issued  *coupon.Coupon
		balance int
	)
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 載入學生（鎖定）與商品
		buyer, err := uc.studentRepo.FindByIDForUpdate(ctx, studentID)
		if err != nil {
			return err
		}
		item, err := uc.itemRepo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}

		// 2b. 商品狀態與餘額
		if err := item.EnsurePurchasable(); err != nil {
			return err
		}
		if !buyer.CanAfford(item.Price()) {
			return points.ErrInsufficientBalance.WithContext(
				"student_id", studentID.String(),
				"balance", buyer.Points(),
				"price", item.Price(),
			)
		}

		// 3. 扣點
		price, err := points.NewPointsAmount(item.Price())
		if err != nil {
			return err
		}
		entry, err = points.NewSpendEntry(studentID, price, points.SourceShop, item.Title(), now)
		if err != nil {
			return err
		}
		balance, err = uc.ledger.Record(ctx, entry)
		if err != nil {
			return err
		}

		// 4. 發放優惠券
		issued, err = coupon.Issue(studentID, item.Snapshot(), now, uc.validityMonths)
		if err != nil {
			return err
		}
		return uc.couponRepo.Create(ctx, issued)
	})
	if err != nil {
		return nil, fmt.Errorf("purchase failed: %w", err)
	}

	events := []shared.DomainEvent{points.NewEntryRecordedEvent(entry, balance)}
	common.PublishEvents(uc.publisher, append(events, issued.PullEvents()...)...)

	return &PurchaseResult{
		Coupon:  couponapp.NewCouponResult(issued),
		Balance: balance,
	}, nil
}
