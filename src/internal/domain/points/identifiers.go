package points

import (
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// EntryMarker 是 EntryID 的標記類型
type EntryMarker struct{}

// EntryID 點數歷史紀錄的唯一標識符
type EntryID = shared.EntityID[EntryMarker]

// NewEntryID 生成新的紀錄 ID（UUID v4）
func NewEntryID() EntryID {
	return shared.NewEntityID[EntryMarker]()
}

var errInvalidEntryID = shared.NewDomainError("POINTS_ENTRY_ID_INVALID", shared.KindInvalidArgument, "無效的紀錄 ID")

// EntryIDFromString 從字串解析紀錄 ID
func EntryIDFromString(s string) (EntryID, error) {
	return shared.EntityIDFromString[EntryMarker](s, errInvalidEntryID)
}
