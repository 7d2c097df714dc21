package student

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// StudentMarker 學生 ID 標記類型
type StudentMarker struct{}

// StudentID 學生 ID 值對象（基於泛型 EntityID）
//
// StudentID 與 CouponID、ItemID 為不同類型，不能混用。
type StudentID = shared.EntityID[StudentMarker]

// NewStudentID 生成新的學生 ID
func NewStudentID() StudentID {
	return shared.NewEntityID[StudentMarker]()
}

// StudentIDFromString 從字串解析學生 ID
//
// 解析失敗時返回 ErrInvalidStudentID。
func StudentIDFromString(value string) (StudentID, error) {
	return shared.EntityIDFromString[StudentMarker](value, ErrInvalidStudentID)
}
