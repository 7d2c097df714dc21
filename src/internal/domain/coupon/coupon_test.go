package coupon

import (
	"testing"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var purchasedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestCoupon(t *testing.T) *Coupon {
	t.Helper()
	snapshot := catalog.NewItemSnapshot(catalog.NewItemID(), "자유시간 10분", catalog.CategoryTime, 30)
	c, err := Issue(student.NewStudentID(), snapshot, purchasedAt, 1)
	require.NoError(t, err)
	c.PullEvents()
	return c
}

func eventTypes(events []shared.DomainEvent) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType())
	}
	return types
}

func TestIssue_NewCouponIsUnusedWithSnapshot(t *testing.T) {
	// Arrange
	sid := student.NewStudentID()
	snapshot := catalog.NewItemSnapshot(catalog.NewItemID(), "자리 바꾸기", catalog.CategoryPrivilege, 80)

	// Act
	c, err := Issue(sid, snapshot, purchasedAt, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StatusUnused, c.Status())
	assert.True(t, c.BelongsTo(sid))
	assert.Equal(t, snapshot, c.Item())
	assert.Equal(t, purchasedAt, c.PurchasedAt())
	assert.Equal(t, purchasedAt.AddDate(0, 1, 0), c.ExpiresAt())
	assert.Nil(t, c.UsedAt())
	assert.Equal(t, []string{"coupon.issued"}, eventTypes(c.PullEvents()))
}

func TestIssue_InvalidInput_ReturnsError(t *testing.T) {
	snapshot := catalog.NewItemSnapshot(catalog.NewItemID(), "x", catalog.CategoryTime, 1)

	_, err := Issue(student.StudentID{}, snapshot, purchasedAt, 1)
	assert.ErrorIs(t, err, student.ErrInvalidStudentID)

	_, err = Issue(student.NewStudentID(), catalog.ItemSnapshot{}, purchasedAt, 1)
	assert.ErrorIs(t, err, catalog.ErrInvalidItemID)

	_, err = Issue(student.NewStudentID(), snapshot, purchasedAt, 0)
	assert.ErrorIs(t, err, ErrInvalidValidity)
}

func TestCoupon_RequestUseThenApprove_SetsUsedAt(t *testing.T) {
	// Arrange
	c := newTestCoupon(t)
	requestAt := purchasedAt.Add(24 * time.Hour)
	approveAt := requestAt.Add(time.Hour)

	// Act
	require.NoError(t, c.RequestUse(requestAt))
	require.NoError(t, c.Approve(approveAt))

	// Assert
	assert.Equal(t, StatusApproved, c.Status())
	require.NotNil(t, c.UsedAt())
	assert.Equal(t, approveAt, *c.UsedAt())
	assert.Equal(t, []string{"coupon.use_requested", "coupon.approved"}, eventTypes(c.PullEvents()))
}

func TestCoupon_ApproveUnused_InvalidTransition(t *testing.T) {
	// Arrange
	c := newTestCoupon(t)

	// Act
	err := c.Approve(purchasedAt.Add(time.Hour))

	// Assert
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.True(t, shared.IsKind(err, shared.KindInvalidTransition))
	assert.Equal(t, StatusUnused, c.Status())
	assert.Nil(t, c.UsedAt())
	assert.Empty(t, c.PullEvents())
}

func TestCoupon_TerminalStatesRejectEverything(t *testing.T) {
	now := purchasedAt.Add(time.Hour)

	approved := newTestCoupon(t)
	require.NoError(t, approved.RequestUse(now))
	require.NoError(t, approved.Approve(now))

	assert.ErrorIs(t, approved.RequestUse(now), ErrInvalidTransition)
	assert.ErrorIs(t, approved.Approve(now), ErrInvalidTransition)

	// approved 即使過期也不會被改為 expired
	assert.False(t, approved.Sweep(approved.ExpiresAt().Add(time.Hour)))
	assert.Equal(t, StatusApproved, approved.Status())
}

func TestCoupon_RequestUseTwice_InvalidTransition(t *testing.T) {
	c := newTestCoupon(t)
	now := purchasedAt.Add(time.Hour)
	require.NoError(t, c.RequestUse(now))

	err := c.RequestUse(now)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, c.Status())
}

func TestCoupon_TransitionAfterDeadline_ExpiresFirst(t *testing.T) {
	// Arrange
	c := newTestCoupon(t)
	late := c.ExpiresAt().Add(time.Minute)

	// Act
	err := c.RequestUse(late)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusExpired, c.Status())
	assert.Equal(t, []string{"coupon.expired"}, eventTypes(c.PullEvents()))
}

func TestCoupon_Sweep_IdempotentAndRecordsOnce(t *testing.T) {
	c := newTestCoupon(t)
	late := c.ExpiresAt().Add(time.Second)

	assert.True(t, c.Sweep(late))
	assert.False(t, c.Sweep(late))
	assert.Equal(t, StatusExpired, c.Status())
	assert.Len(t, c.PullEvents(), 1)
}
