package persistence

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteMemory_RunsMigrations(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Act
	db, err := Open(Options{Driver: DriverSQLite, DSN: ":memory:", Logger: logger})
	require.NoError(t, err)
	defer Close(db)

	// Assert
	for _, table := range []string{"students", "point_history", "shop_items", "coupons"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	assert.Contains(t, buf.String(), "component=gorm")
}

func TestOpen_SQLite_BalanceCheckConstraint(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	err = db.Exec(`INSERT INTO students (id, name, grade, class_no, seat_no, points, created_at, updated_at)
		VALUES ('a', 'x', 1, 1, 1, -1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error

	assert.True(t, IsCheckConstraintError(err))
}

func TestOpen_UnknownDriver_ReturnsError(t *testing.T) {
	_, err := Open(Options{Driver: "oracle", DSN: "x"})

	assert.ErrorContains(t, err, "unsupported db driver")
}
