package persistence

import (
	"errors"
	"testing"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueConstraintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"sqlite", errors.New("UNIQUE constraint failed: students.grade"), true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "students_pkey"`), true},
		{"mysql", errors.New("Error 1062: Duplicate entry 'x' for key 'PRIMARY'"), true},
		{"其他錯誤", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueConstraintError(tt.err))
		})
	}
}

func TestIsCheckConstraintError(t *testing.T) {
	assert.True(t, IsCheckConstraintError(errors.New("CHECK constraint failed: points >= 0")))
	assert.True(t, IsCheckConstraintError(errors.New(`new row for relation "students" violates check constraint "students_points_check"`)))
	assert.False(t, IsCheckConstraintError(errors.New("syntax error")))
}

func TestWrapRepositoryError_KeepsChain(t *testing.T) {
	cause := errors.New("disk I/O error")

	err := WrapRepositoryError("insert history", cause)

	assert.ErrorIs(t, err, shared.ErrRepositoryError)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, shared.KindInternal, shared.KindOf(err))
	assert.Contains(t, err.Error(), "insert history")
	assert.Nil(t, WrapRepositoryError("noop", nil))
}
