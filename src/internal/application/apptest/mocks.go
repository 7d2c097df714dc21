// Package apptest 提供 Application Layer 單元測試共用的 testify mock。
package apptest

import (
	"github.com/stretchr/testify/mock"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// ===========================
// Transaction
// ===========================

// MockTransactionManager 直接以 nil ctx 執行 fn
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return fn(nil)
}

// ===========================
// Repositories
// ===========================

// MockStudentRepository mock implementation of StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx shared.TransactionContext, s *student.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudentRepository) FindByID(ctx shared.TransactionContext, id student.StudentID) (*student.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*student.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByIDForUpdate(ctx shared.TransactionContext, id student.StudentID) (*student.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*student.Student), args.Error(1)
}

func (m *MockStudentRepository) FindAll(ctx shared.TransactionContext) ([]*student.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*student.Student), args.Error(1)
}

func (m *MockStudentRepository) ExistsBySeat(ctx shared.TransactionContext, seat student.Seat) (bool, error) {
	args := m.Called(ctx, seat)
	return args.Bool(0), args.Error(1)
}

// MockLedgerRepository mock implementation of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Record(ctx shared.TransactionContext, entry *points.HistoryEntry) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) FindByStudentID(ctx shared.TransactionContext, id student.StudentID) ([]*points.HistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*points.HistoryEntry), args.Error(1)
}

func (m *MockLedgerRepository) SumByStudentID(ctx shared.TransactionContext, id student.StudentID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) Totals(ctx shared.TransactionContext) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

// MockShopItemRepository mock implementation of ShopItemRepository
type MockShopItemRepository struct {
	mock.Mock
}

func (m *MockShopItemRepository) Save(ctx shared.TransactionContext, item *catalog.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShopItemRepository) FindByID(ctx shared.TransactionContext, id catalog.ItemID) (*catalog.ShopItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShopItem), args.Error(1)
}

func (m *MockShopItemRepository) FindAll(ctx shared.TransactionContext, activeOnly bool) ([]*catalog.ShopItem, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.ShopItem), args.Error(1)
}

// MockCouponRepository mock implementation of CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(ctx shared.TransactionContext, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) FindByID(ctx shared.TransactionContext, id coupon.CouponID) (*coupon.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Find(ctx shared.TransactionContext, filter coupon.Filter) ([]*coupon.Coupon, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) FindSweepable(ctx shared.TransactionContext, studentID *student.StudentID) ([]*coupon.Coupon, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) UpdateStatus(ctx shared.TransactionContext, c *coupon.Coupon, expected coupon.Status) error {
	args := m.Called(ctx, c, expected)
	return args.Error(0)
}

// ===========================
// Events
// ===========================

// MockEventPublisher 記錄所有發布的事件
type MockEventPublisher struct {
	Events []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.Events = append(m.Events, events...)
	return nil
}

// EventTypes 依發布順序返回事件類型
func (m *MockEventPublisher) EventTypes() []string {
	types := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		types = append(types, e.EventType())
	}
	return types
}
