package shared

import (
	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 泛型實體 ID 值對象
//
// 泛型參數 T 只是標記類型（marker type），讓 StudentID、CouponID、ItemID
// 成為互不相容的類型，編譯期即可阻止 ID 混用：
//
//	type StudentMarker struct{}
//	type StudentID = shared.EntityID[StudentMarker]
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID 生成新的實體 ID（UUID v4）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.New()}
}

// EntityIDFromString 從字串解析實體 ID
//
// 解析失敗時回傳 errTemplate；若 errTemplate 支援 WithContext（例如 *DomainError），
// 會附上原始輸入與解析錯誤。
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", err.Error(),
			)
		}
		return EntityID[T]{}, errTemplate
	}
	if id == uuid.Nil {
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: id}, nil
}

// String 轉換為字串表示（小寫 UUID）
func (e EntityID[T]) String() string {
	return e.value.String()
}

// Equals 比較兩個同類型 EntityID 是否相等
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為零值 ID
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}
