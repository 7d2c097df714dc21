package catalog

import (
	"errors"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ShopItemRepositoryImpl 商品倉儲實現（GORM）
type ShopItemRepositoryImpl struct {
	db *gorm.DB
}

// NewShopItemRepository 創建商品倉儲
func NewShopItemRepository(db *gorm.DB) catalog.ShopItemRepository {
	return &ShopItemRepositoryImpl{db: db}
}

// Save 新增或更新商品（Upsert，依 id）
//
// 使用 Save 而非 Updates：is_active 可能被改為 false（零值）。
func (r *ShopItemRepositoryImpl) Save(ctx shared.TransactionContext, item *catalog.ShopItem) error {
	db := persistence.DB(ctx, r.db)

	if err := db.Save(toGORM(item)).Error; err != nil {
		return persistence.WrapRepositoryError("save shop item", err)
	}
	return nil
}

// FindByID 根據商品 ID 查找
func (r *ShopItemRepositoryImpl) FindByID(ctx shared.TransactionContext, id catalog.ItemID) (*catalog.ShopItem, error) {
	db := persistence.DB(ctx, r.db)

	var model ShopItemGORM
	result := db.Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound.WithContext("item_id", id.String())
		}
		return nil, persistence.WrapRepositoryError("find shop item", result.Error)
	}

	return model.toDomain()
}

// FindAll 依建立時間排序返回商品
func (r *ShopItemRepositoryImpl) FindAll(ctx shared.TransactionContext, activeOnly bool) ([]*catalog.ShopItem, error) {
	db := persistence.DB(ctx, r.db)

	query := db.Order("created_at, id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []ShopItemGORM
	if err := query.Find(&models).Error; err != nil {
		return nil, persistence.WrapRepositoryError("list shop items", err)
	}

	items := make([]*catalog.ShopItem, 0, len(models))
	for i := range models {
		item, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
