package catalog

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
)

// ShopItemGORM 商品資料表模型
type ShopItemGORM struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description;not null"`
	Category    string    `gorm:"column:category;not null"`
	Price       int       `gorm:"column:price;not null"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (ShopItemGORM) TableName() string {
	return "shop_items"
}

func (m *ShopItemGORM) toDomain() (*catalog.ShopItem, error) {
	itemID, err := catalog.ItemIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	category, err := catalog.ParseCategory(m.Category)
	if err != nil {
		return nil, err
	}

	return catalog.ReconstructShopItem(
		itemID,
		m.Title,
		m.Description,
		category,
		m.Price,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toGORM(i *catalog.ShopItem) *ShopItemGORM {
	return &ShopItemGORM{
		ID:          i.ItemID().String(),
		Title:       i.Title(),
		Description: i.Description(),
		Category:    string(i.Category()),
		Price:       i.Price(),
		IsActive:    i.IsActive(),
		CreatedAt:   i.CreatedAt().UTC(),
		UpdatedAt:   i.UpdatedAt().UTC(),
	}
}
