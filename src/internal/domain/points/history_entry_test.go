package points_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryNow = time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)

func mustAmount(t *testing.T, v int) points.PointsAmount {
	t.Helper()
	a, err := points.NewPointsAmount(v)
	require.NoError(t, err)
	return a
}

func TestNewEarnEntry_PositiveSignedAmount(t *testing.T) {
	// Arrange
	sid := student.NewStudentID()

	// Act
	entry, err := points.NewEarnEntry(sid, mustAmount(t, 25), points.SourceAdmin, " 참여 ", entryNow)

	// Assert
	require.NoError(t, err)
	assert.False(t, entry.EntryID().IsEmpty())
	assert.True(t, entry.StudentID().Equals(sid))
	assert.Equal(t, points.EntryTypeEarn, entry.Type())
	assert.Equal(t, 25, entry.Amount())
	assert.Equal(t, "참여", entry.Description())
	assert.Equal(t, entryNow, entry.CreatedAt())
}

func TestNewSpendEntry_NegativeSignedAmount(t *testing.T) {
	// Act
	entry, err := points.NewSpendEntry(student.NewStudentID(), mustAmount(t, 30), points.SourceShop, "자유시간 10분", entryNow)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, points.EntryTypeSpend, entry.Type())
	assert.Equal(t, -30, entry.Amount())
	assert.Equal(t, points.SourceShop, entry.Source())
}

func TestNewEntry_SourceMustMatchType(t *testing.T) {
	sid := student.NewStudentID()
	amount := mustAmount(t, 5)

	tests := []struct {
		name  string
		build func() (*points.HistoryEntry, error)
	}{
		{"商店來源不能獲得點數", func() (*points.HistoryEntry, error) {
			return points.NewEarnEntry(sid, amount, points.SourceShop, "x", entryNow)
		}},
		{"活動來源不能扣點", func() (*points.HistoryEntry, error) {
			return points.NewSpendEntry(sid, amount, points.SourceGoal, "x", entryNow)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := tt.build()

			assert.Nil(t, entry)
			assert.ErrorIs(t, err, points.ErrSourceNotAllowed)
		})
	}
}

func TestNewEntry_BlankDescription_ReturnsError(t *testing.T) {
	entry, err := points.NewEarnEntry(student.NewStudentID(), mustAmount(t, 5), points.SourceAdmin, "   ", entryNow)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, points.ErrInvalidDescription)
}

func TestNewEntry_ZeroAmountOrEmptyStudent_ReturnsError(t *testing.T) {
	_, err := points.NewEarnEntry(student.NewStudentID(), points.PointsAmount{}, points.SourceAdmin, "x", entryNow)
	assert.ErrorIs(t, err, points.ErrInvalidPointsAmount)

	_, err = points.NewEarnEntry(student.StudentID{}, mustAmount(t, 1), points.SourceAdmin, "x", entryNow)
	assert.ErrorIs(t, err, student.ErrInvalidStudentID)
}

func TestReconstructHistoryEntry_SignMismatch_ReturnsError(t *testing.T) {
	_, err := points.ReconstructHistoryEntry(points.NewEntryID(), student.NewStudentID(),
		points.EntryTypeSpend, 30, points.SourceShop, "x", entryNow)

	assert.ErrorIs(t, err, points.ErrCorruptedEntry)
}

func TestEntryRecordedEvent_TypeFollowsEntry(t *testing.T) {
	sid := student.NewStudentID()
	earn, _ := points.NewEarnEntry(sid, mustAmount(t, 25), points.SourceAdmin, "참여", entryNow)
	spend, _ := points.NewSpendEntry(sid, mustAmount(t, 30), points.SourceShop, "쿠폰", entryNow)

	earned := points.NewEntryRecordedEvent(earn, 35)
	spent := points.NewEntryRecordedEvent(spend, 5)

	assert.Equal(t, "points.earned", earned.EventType())
	assert.Equal(t, "points.spent", spent.EventType())
	assert.Equal(t, sid.String(), spent.AggregateID())
	assert.Equal(t, -30, spent.Amount())
	assert.Equal(t, 5, spent.BalanceAfter())
	assert.NotEqual(t, earned.EventID(), spent.EventID())
}
