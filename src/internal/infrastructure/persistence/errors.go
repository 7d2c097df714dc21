package persistence

import (
	"fmt"
	"strings"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// IsUniqueConstraintError 判斷是否為唯一約束錯誤
//
// - PostgreSQL: "duplicate key value violates unique constraint"
// - SQLite: "UNIQUE constraint failed"
// - MySQL: "Duplicate entry"
func IsUniqueConstraintError(err error) bool {
	return errorContainsAny(err,
		"duplicate key value violates unique constraint",
		"unique constraint failed",
		"duplicate entry",
	)
}

// IsCheckConstraintError 判斷是否為 CHECK 約束錯誤
//
// - PostgreSQL: "violates check constraint"
// - SQLite: "CHECK constraint failed"
func IsCheckConstraintError(err error) bool {
	return errorContainsAny(err,
		"violates check constraint",
		"check constraint failed",
	)
}

func errorContainsAny(err error, substrs ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range substrs {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// WrapRepositoryError 將未分類的資料庫錯誤包裝為 shared.ErrRepositoryError
//
// 原始錯誤保留在錯誤鏈中（errors.Is / errors.As 仍可取得）。
func WrapRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, shared.ErrRepositoryError, err)
}
