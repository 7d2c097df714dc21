package catalog

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

// ShopItemRepository 商品倉儲接口
//
// Save 為 upsert（依 ItemID），ctx 必須 non-nil；讀操作 ctx 可為 nil。
type ShopItemRepository interface {
	Save(ctx shared.TransactionContext, item *ShopItem) error

	// FindByID 找不到時返回 ErrItemNotFound
	FindByID(ctx shared.TransactionContext, id ItemID) (*ShopItem, error)

	// FindAll 依建立時間排序；activeOnly 為 true 時只返回上架中的商品
	FindAll(ctx shared.TransactionContext, activeOnly bool) ([]*ShopItem, error)
}
