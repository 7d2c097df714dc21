package coupon

import (
	"testing"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	studentpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// CouponRepository Integration Tests
// ===========================

var purchasedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func setupCoupons(t *testing.T) (coupon.CouponRepository, student.StudentID, func()) {
	t.Helper()
	db, cleanup := testdb.Setup(t)

	seat, _ := student.NewSeat(5, 2, 13)
	s, err := student.NewStudent("김민준", seat, purchasedAt)
	require.NoError(t, err)
	require.NoError(t, studentpersistence.NewStudentRepository(db).Create(nil, s))

	return NewCouponRepository(db), s.StudentID(), cleanup
}

func issue(t *testing.T, sid student.StudentID, at time.Time) *coupon.Coupon {
	t.Helper()
	snapshot := catalog.NewItemSnapshot(catalog.NewItemID(), "자유시간 10분", catalog.CategoryTime, 30)
	c, err := coupon.Issue(sid, snapshot, at, 1)
	require.NoError(t, err)
	return c
}

func TestCouponRepository_CreateAndFind_KeepsSnapshot(t *testing.T) {
	// Arrange
	repo, sid, cleanup := setupCoupons(t)
	defer cleanup()
	c := issue(t, sid, purchasedAt)

	// Act
	require.NoError(t, repo.Create(nil, c))
	found, err := repo.FindByID(nil, c.CouponID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, coupon.StatusUnused, found.Status())
	assert.True(t, found.BelongsTo(sid))
	assert.Equal(t, "자유시간 10분", found.Item().Title())
	assert.Equal(t, 30, found.Item().Price())
	assert.True(t, c.ExpiresAt().Equal(found.ExpiresAt()))
	assert.True(t, purchasedAt.Equal(found.PurchasedAt()))
	assert.Nil(t, found.UsedAt())
}

func TestCouponRepository_FindByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupCoupons(t)
	defer cleanup()

	_, err := repo.FindByID(nil, coupon.NewCouponID())

	assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
}

func TestCouponRepository_UpdateStatus_CompareAndSwap(t *testing.T) {
	// Arrange
	repo, sid, cleanup := setupCoupons(t)
	defer cleanup()
	c := issue(t, sid, purchasedAt)
	require.NoError(t, repo.Create(nil, c))

	// Act: unused → pending 成功
	require.NoError(t, c.RequestUse(purchasedAt.Add(time.Hour)))
	err := repo.UpdateStatus(nil, c, coupon.StatusUnused)
	require.NoError(t, err)

	// Act: 以過時的 expected 再寫一次 → 衝突
	stale, _ := repo.FindByID(nil, c.CouponID())
	require.NoError(t, stale.Approve(purchasedAt.Add(2*time.Hour)))
	err = repo.UpdateStatus(nil, stale, coupon.StatusUnused)

	// Assert
	assert.ErrorIs(t, err, coupon.ErrStatusConflict)
	assert.True(t, shared.IsKind(err, shared.KindInvalidTransition))
	found, _ := repo.FindByID(nil, c.CouponID())
	assert.Equal(t, coupon.StatusPending, found.Status())
	assert.Nil(t, found.UsedAt())
}

func TestCouponRepository_UpdateStatus_PersistsUsedAt(t *testing.T) {
	repo, sid, cleanup := setupCoupons(t)
	defer cleanup()
	c := issue(t, sid, purchasedAt)
	require.NoError(t, repo.Create(nil, c))
	require.NoError(t, c.RequestUse(purchasedAt.Add(time.Hour)))
	require.NoError(t, repo.UpdateStatus(nil, c, coupon.StatusUnused))
	approveAt := purchasedAt.Add(2 * time.Hour)
	require.NoError(t, c.Approve(approveAt))

	require.NoError(t, repo.UpdateStatus(nil, c, coupon.StatusPending))

	found, _ := repo.FindByID(nil, c.CouponID())
	assert.Equal(t, coupon.StatusApproved, found.Status())
	require.NotNil(t, found.UsedAt())
	assert.True(t, approveAt.Equal(*found.UsedAt()))
}

func TestCouponRepository_UpdateStatus_Missing_ReturnsNotFound(t *testing.T) {
	repo, sid, cleanup := setupCoupons(t)
	defer cleanup()
	c := issue(t, sid, purchasedAt)

	err := repo.UpdateStatus(nil, c, coupon.StatusUnused)

	assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
}

func TestCouponRepository_FindAndFindSweepable(t *testing.T) {
	// Arrange
	repo, sid, cleanup := setupCoupons(t)
	defer cleanup()
	older := issue(t, sid, purchasedAt)
	newer := issue(t, sid, purchasedAt.Add(24*time.Hour))
	approved := issue(t, sid, purchasedAt.Add(48*time.Hour))
	for _, c := range []*coupon.Coupon{older, newer, approved} {
		require.NoError(t, repo.Create(nil, c))
	}
	require.NoError(t, approved.RequestUse(purchasedAt.Add(49*time.Hour)))
	require.NoError(t, repo.UpdateStatus(nil, approved, coupon.StatusUnused))
	require.NoError(t, approved.Approve(purchasedAt.Add(50*time.Hour)))
	require.NoError(t, repo.UpdateStatus(nil, approved, coupon.StatusPending))

	// Act
	all, err := repo.Find(nil, coupon.Filter{})
	require.NoError(t, err)
	status := coupon.StatusUnused
	unused, err := repo.Find(nil, coupon.Filter{Status: &status, StudentID: &sid})
	require.NoError(t, err)
	sweepable, err := repo.FindSweepable(nil, nil)
	require.NoError(t, err)
	other := student.NewStudentID()
	none, err := repo.FindSweepable(nil, &other)
	require.NoError(t, err)

	// Assert
	require.Len(t, all, 3)
	assert.True(t, all[0].CouponID().Equals(approved.CouponID()), "最新購買在前")
	assert.Len(t, unused, 2)
	assert.Len(t, sweepable, 2)
	assert.Empty(t, none)
}
