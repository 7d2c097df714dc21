package points

import (
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/points"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	studentpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ===========================
// LedgerRepository Integration Tests
// ===========================

var ledgerNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

type ledgerFixture struct {
	db       *gorm.DB
	ledger   points.LedgerRepository
	students student.StudentRepository
}

func setupLedger(t *testing.T) (*ledgerFixture, func()) {
	t.Helper()
	db, cleanup := testdb.Setup(t)
	return &ledgerFixture{
		db:       db,
		ledger:   NewLedgerRepository(db),
		students: studentpersistence.NewStudentRepository(db),
	}, cleanup
}

func (f *ledgerFixture) newStudent(t *testing.T, number int) student.StudentID {
	t.Helper()
	seat, err := student.NewSeat(5, 2, number)
	require.NoError(t, err)
	s, err := student.NewStudent("학생", seat, ledgerNow)
	require.NoError(t, err)
	require.NoError(t, f.students.Create(nil, s))
	return s.StudentID()
}

func earn(t *testing.T, sid student.StudentID, v int, desc string) *points.HistoryEntry {
	t.Helper()
	amount, err := points.NewPointsAmount(v)
	require.NoError(t, err)
	e, err := points.NewEarnEntry(sid, amount, points.SourceAdmin, desc, ledgerNow)
	require.NoError(t, err)
	return e
}

func spend(t *testing.T, sid student.StudentID, v int) *points.HistoryEntry {
	t.Helper()
	amount, err := points.NewPointsAmount(v)
	require.NoError(t, err)
	e, err := points.NewSpendEntry(sid, amount, points.SourceShop, "쿠폰", ledgerNow)
	require.NoError(t, err)
	return e
}

func (f *ledgerFixture) balance(t *testing.T, sid student.StudentID) int {
	t.Helper()
	s, err := f.students.FindByID(nil, sid)
	require.NoError(t, err)
	return s.Points()
}

func TestLedger_Record_EarnThenSpend_UpdatesBalanceAndHistory(t *testing.T) {
	// Arrange
	f, cleanup := setupLedger(t)
	defer cleanup()
	sid := f.newStudent(t, 1)

	// Act
	b1, err1 := f.ledger.Record(nil, earn(t, sid, 40, "과제"))
	b2, err2 := f.ledger.Record(nil, spend(t, sid, 30))

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, 40, b1)
	assert.Equal(t, 10, b2)
	assert.Equal(t, 10, f.balance(t, sid))

	history, err := f.ledger.FindByStudentID(nil, sid)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, -30, history[0].Amount(), "最新的紀錄在前")
	assert.Equal(t, points.EntryTypeSpend, history[0].Type())
	assert.Equal(t, 40, history[1].Amount())

	sum, err := f.ledger.SumByStudentID(nil, sid)
	require.NoError(t, err)
	assert.Equal(t, f.balance(t, sid), sum)
}

func TestLedger_Record_WouldGoNegative_RejectsWithoutWriting(t *testing.T) {
	// Arrange
	f, cleanup := setupLedger(t)
	defer cleanup()
	sid := f.newStudent(t, 1)
	_, err := f.ledger.Record(nil, earn(t, sid, 20, "출석"))
	require.NoError(t, err)

	// Act
	_, err = f.ledger.Record(nil, spend(t, sid, 21))

	// Assert
	assert.ErrorIs(t, err, points.ErrInsufficientBalance)
	assert.True(t, shared.IsKind(err, shared.KindInsufficientBalance))
	assert.Equal(t, 20, f.balance(t, sid))

	history, _ := f.ledger.FindByStudentID(nil, sid)
	assert.Len(t, history, 1)
}

func TestLedger_Record_ExactBalance_ReachesZero(t *testing.T) {
	f, cleanup := setupLedger(t)
	defer cleanup()
	sid := f.newStudent(t, 1)
	_, _ = f.ledger.Record(nil, earn(t, sid, 30, "목표"))

	balance, err := f.ledger.Record(nil, spend(t, sid, 30))

	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestLedger_Record_UnknownStudent_ReturnsNotFound(t *testing.T) {
	f, cleanup := setupLedger(t)
	defer cleanup()

	_, err := f.ledger.Record(nil, earn(t, student.NewStudentID(), 5, "x"))

	assert.ErrorIs(t, err, student.ErrStudentNotFound)
}

func TestLedger_Record_RollbackRevertsBalanceAndEntry(t *testing.T) {
	// Arrange
	f, cleanup := setupLedger(t)
	defer cleanup()
	sid := f.newStudent(t, 1)
	txManager := persistence.NewGORMTransactionManager(f.db)

	// Act
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if _, err := f.ledger.Record(ctx, earn(t, sid, 50, "칭찬")); err != nil {
			return err
		}
		return errors.New("simulated failure after ledger write")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, 0, f.balance(t, sid))
	history, _ := f.ledger.FindByStudentID(nil, sid)
	assert.Empty(t, history)
}

func TestLedger_Totals(t *testing.T) {
	// Arrange
	f, cleanup := setupLedger(t)
	defer cleanup()
	a := f.newStudent(t, 1)
	b := f.newStudent(t, 2)
	_, _ = f.ledger.Record(nil, earn(t, a, 40, "x"))
	_, _ = f.ledger.Record(nil, earn(t, b, 15, "y"))
	_, _ = f.ledger.Record(nil, spend(t, a, 30))

	// Act
	earned, spent, err := f.ledger.Totals(nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 55, earned)
	assert.Equal(t, 30, spent)
}

func TestLedger_SumByStudentID_NoEntries_IsZero(t *testing.T) {
	f, cleanup := setupLedger(t)
	defer cleanup()

	sum, err := f.ledger.SumByStudentID(nil, f.newStudent(t, 1))

	require.NoError(t, err)
	assert.Equal(t, 0, sum)
}
