package student

import "fmt"

// ===========================
// Seat Value Object
// ===========================

// Seat 座位值對象（年級 / 班級 / 座號）
//
// 業務規則：
// 1. 年級 1~12
// 2. 班級 1~99
// 3. 座號 1~99
//
// 同一座位在系統中只能有一位學生（由資料庫唯一索引保證）。
type Seat struct {
	grade  int
	class  int
	number int
}

const (
	maxGrade  = 12
	maxClass  = 99
	maxNumber = 99
)

// NewSeat 創建座位值對象（Checked Constructor）
func NewSeat(grade, class, number int) (Seat, error) {
	if grade < 1 || grade > maxGrade ||
		class < 1 || class > maxClass ||
		number < 1 || number > maxNumber {
		return Seat{}, ErrInvalidSeat.WithContext(
			"grade", grade,
			"class", class,
			"number", number,
		)
	}
	return Seat{grade: grade, class: class, number: number}, nil
}

// Grade 返回年級
func (s Seat) Grade() int { return s.grade }

// Class 返回班級
func (s Seat) Class() int { return s.class }

// Number 返回座號
func (s Seat) Number() int { return s.number }

// String 返回顯示格式（例如 "5-2 #13"）
func (s Seat) String() string {
	return fmt.Sprintf("%d-%d #%d", s.grade, s.class, s.number)
}

// Equals 值相等
func (s Seat) Equals(other Seat) bool {
	return s == other
}

// IsZero 是否為零值
func (s Seat) IsZero() bool {
	return s == Seat{}
}
