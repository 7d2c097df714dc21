package persistence_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	couponpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/coupon"
	pointspersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/points"
	studentpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// TransactionManager Integration Tests
// ===========================
//
// 驗證：
// 1. 錯誤時回滾，成功時提交
// 2. panic 時回滾並重新 panic
// 3. 帳本寫入與優惠券發放在同一事務中同時成功或同時失敗

var txNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newStudent(t *testing.T, number int) *student.Student {
	t.Helper()
	seat, err := student.NewSeat(5, 2, number)
	require.NoError(t, err)
	s, err := student.NewStudent("학생", seat, txNow)
	require.NoError(t, err)
	return s
}

func TestRollbackOnError_DoesNotCommit(t *testing.T) {
	// Arrange
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	txManager := persistence.NewGORMTransactionManager(db)
	repo := studentpersistence.NewStudentRepository(db)
	s := newStudent(t, 1)

	// Act
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		require.NoError(t, repo.Create(ctx, s))
		return errors.New("simulated error - trigger rollback")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "simulated error - trigger rollback", err.Error())
	_, err = repo.FindByID(nil, s.StudentID())
	assert.ErrorIs(t, err, student.ErrStudentNotFound, "student should not exist after rollback")
}

func TestCommitOnSuccess_SavesData(t *testing.T) {
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	txManager := persistence.NewGORMTransactionManager(db)
	repo := studentpersistence.NewStudentRepository(db)
	s := newStudent(t, 1)

	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return repo.Create(ctx, s)
	})

	require.NoError(t, err)
	found, err := repo.FindByID(nil, s.StudentID())
	require.NoError(t, err, "student should exist after commit")
	assert.Equal(t, s.StudentID().String(), found.StudentID().String())
}

func TestPanicRecovery_RollsBackAndRepanics(t *testing.T) {
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	txManager := persistence.NewGORMTransactionManager(db)
	repo := studentpersistence.NewStudentRepository(db)
	s := newStudent(t, 1)

	assert.Panics(t, func() {
		_ = txManager.InTransaction(func(ctx shared.TransactionContext) error {
			require.NoError(t, repo.Create(ctx, s))
			panic("simulated panic - should rollback")
		})
	}, "panic should be re-thrown")

	_, err := repo.FindByID(nil, s.StudentID())
	assert.ErrorIs(t, err, student.ErrStudentNotFound, "student should not exist after panic rollback")
}

// 帳本扣點成功但優惠券寫入失敗時，扣點也必須回滾（不留下孤立的扣點紀錄）
func TestLedgerAndCoupon_AtomicRollback(t *testing.T) {
	// Arrange
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	txManager := persistence.NewGORMTransactionManager(db)
	students := studentpersistence.NewStudentRepository(db)
	ledger := pointspersistence.NewLedgerRepository(db)
	coupons := couponpersistence.NewCouponRepository(db)

	s := newStudent(t, 1)
	require.NoError(t, students.Create(nil, s))
	grant, _ := points.NewPointsAmount(40)
	entry, _ := points.NewEarnEntry(s.StudentID(), grant, points.SourceAdmin, "초기", txNow)
	_, err := ledger.Record(nil, entry)
	require.NoError(t, err)

	price, _ := points.NewPointsAmount(30)
	snapshot := catalog.NewItemSnapshot(catalog.NewItemID(), "자유시간", catalog.CategoryTime, 30)
	c, _ := coupon.Issue(s.StudentID(), snapshot, txNow, 1)

	// Act: 扣點成功後，同一張優惠券寫入兩次（第二次違反主鍵）
	err = txManager.InTransaction(func(ctx shared.TransactionContext) error {
		debit, _ := points.NewSpendEntry(s.StudentID(), price, points.SourceShop, "자유시간", txNow)
		if _, err := ledger.Record(ctx, debit); err != nil {
			return err
		}
		if err := coupons.Create(ctx, c); err != nil {
			return err
		}
		return coupons.Create(ctx, c)
	})

	// Assert
	require.Error(t, err)
	found, _ := students.FindByID(nil, s.StudentID())
	assert.Equal(t, 40, found.Points())
	history, _ := ledger.FindByStudentID(nil, s.StudentID())
	assert.Len(t, history, 1)
	all, _ := coupons.Find(nil, coupon.Filter{})
	assert.Empty(t, all)
}

func TestRepository_NilContext_AutoCommitMode(t *testing.T) {
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	repo := studentpersistence.NewStudentRepository(db)
	s1 := newStudent(t, 1)
	s2 := newStudent(t, 2)
	require.NoError(t, repo.Create(nil, s1))
	require.NoError(t, repo.Create(nil, s2))

	found1, err1 := repo.FindByID(nil, s1.StudentID())
	found2, err2 := repo.FindByID(nil, s2.StudentID())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1.StudentID().String(), found1.StudentID().String())
	assert.Equal(t, s2.StudentID().String(), found2.StudentID().String())
}
