package catalog

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

// ItemMarker 商品 ID 標記類型
type ItemMarker struct{}

// ItemID 商品 ID
type ItemID = shared.EntityID[ItemMarker]

// NewItemID 生成新的商品 ID
func NewItemID() ItemID {
	return shared.NewEntityID[ItemMarker]()
}

// ItemIDFromString 從字串解析商品 ID
func ItemIDFromString(value string) (ItemID, error) {
	return shared.EntityIDFromString[ItemMarker](value, ErrInvalidItemID)
}
