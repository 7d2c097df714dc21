package points

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ===========================
// PointsAmount
// ===========================

// MaxPointsAmount 單筆異動上限（避免整數溢位與誤輸入）
const MaxPointsAmount = 1_000_000

// PointsAmount 單筆異動的點數數量（恆為正）
//
// 方向由 EntryType 決定，數量本身不帶符號。
type PointsAmount struct {
	value int
}

// NewPointsAmount 建構函數（checked 版本）
//
// 建構約束：1 <= value <= MaxPointsAmount
func NewPointsAmount(value int) (PointsAmount, error) {
	if value <= 0 || value > MaxPointsAmount {
		return PointsAmount{}, fmt.Errorf(
			"%w: attempted to create PointsAmount with value %d",
			ErrInvalidPointsAmount,
			value,
		)
	}
	return PointsAmount{value: value}, nil
}

// Value 獲取點數數量
func (p PointsAmount) Value() int {
	return p.value
}

// IsZero 是否為零值（未初始化）
func (p PointsAmount) IsZero() bool {
	return p.value == 0
}

// ===========================
// EntryType
// ===========================

// EntryType 紀錄類型
type EntryType string

const (
	EntryTypeEarn  EntryType = "earn"
	EntryTypeSpend EntryType = "spend"
)

// ParseEntryType 從字串解析紀錄類型
func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case EntryTypeEarn, EntryTypeSpend:
		return t, nil
	}
	return "", ErrInvalidEntryType.WithContext("type", s)
}

// ===========================
// Source
// ===========================

// Source 點數來源
type Source string

const (
	SourceAssignment     Source = "assignment"
	SourcePraiseReceived Source = "praise_received"
	SourcePraiseGiven    Source = "praise_given"
	SourceGoal           Source = "goal"
	SourceAttendance     Source = "attendance"
	SourceAdmin          Source = "admin"
	SourceShop           Source = "shop"
)

var allSources = []Source{
	SourceAssignment,
	SourcePraiseReceived,
	SourcePraiseGiven,
	SourceGoal,
	SourceAttendance,
	SourceAdmin,
	SourceShop,
}

// ParseSource 從字串解析點數來源
func ParseSource(s string) (Source, error) {
	for _, src := range allSources {
		if string(src) == s {
			return src, nil
		}
	}
	return "", ErrInvalidSource.WithContext("source", s)
}

// IsActivity 是否為學生活動來源（作業、稱讚、目標、出席）
func (s Source) IsActivity() bool {
	switch s {
	case SourceAssignment, SourcePraiseReceived, SourcePraiseGiven, SourceGoal, SourceAttendance:
		return true
	}
	return false
}

// allows 來源是否允許該紀錄類型
//
//	earn:  活動來源 + admin
//	spend: admin + shop
func (s Source) allows(t EntryType) bool {
	switch t {
	case EntryTypeEarn:
		return s.IsActivity() || s == SourceAdmin
	case EntryTypeSpend:
		return s == SourceAdmin || s == SourceShop
	}
	return false
}

// ===========================
// Description
// ===========================

const maxDescriptionLength = 200

func normalizeDescription(description string) (string, error) {
	d := strings.TrimSpace(description)
	if d == "" || utf8.RuneCountInString(d) > maxDescriptionLength {
		return "", ErrInvalidDescription.WithContext("description", description)
	}
	return d, nil
}
