package shop

import (
	"fmt"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/application/common"
	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// ===========================
// Catalog 管理 Use Cases
// ===========================

// ItemCommand 商品欄位
type ItemCommand struct {
	Title       string `json:"title" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
	Category    string `json:"category" validate:"oneof=time privilege"`
	Price       int    `json:"price" validate:"gt=0"`
}

func (c ItemCommand) details() (catalog.ItemDetails, error) {
	category, err := catalog.ParseCategory(c.Category)
	if err != nil {
		return catalog.ItemDetails{}, err
	}
	return catalog.ItemDetails{
		Title:       c.Title,
		Description: c.Description,
		Category:    category,
		Price:       c.Price,
	}, nil
}

// ItemResult 商品資料
type ItemResult struct {
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResult(i *catalog.ShopItem) *ItemResult {
	return &ItemResult{
		ItemID:      i.ItemID().String(),
		Title:       i.Title(),
		Description: i.Description(),
		Category:    string(i.Category()),
		Price:       i.Price(),
		IsActive:    i.IsActive(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

// CatalogUseCase 商品上架、修改、下架與列表
//
// 商品不刪除，只下架。修改不影響已發放優惠券（優惠券保存快照）。
type CatalogUseCase struct {
	itemRepo  catalog.ShopItemRepository
	txManager shared.TransactionManager
	clock     shared.Clock
}

// NewCatalogUseCase 創建 Use Case 實例
func NewCatalogUseCase(
	itemRepo catalog.ShopItemRepository,
	txManager shared.TransactionManager,
	clock shared.Clock,
) *CatalogUseCase {
	return &CatalogUseCase{
		itemRepo:  itemRepo,
		txManager: txManager,
		clock:     clock,
	}
}

// CreateItem 新增上架中的商品
func (uc *CatalogUseCase) CreateItem(cmd ItemCommand) (*ItemResult, error) {
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	details, err := cmd.details()
	if err != nil {
		return nil, err
	}
	item, err := catalog.NewShopItem(details, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.itemRepo.Save(ctx, item)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return newItemResult(item), nil
}

// UpdateItemCommand 修改商品
type UpdateItemCommand struct {
	ItemID string `json:"item_id" validate:"required"`
	ItemCommand
}

// UpdateItem 修改商品欄位
func (uc *CatalogUseCase) UpdateItem(cmd UpdateItemCommand) (*ItemResult, error) {
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	details, err := cmd.details()
	if err != nil {
		return nil, err
	}
	return uc.modify(cmd.ItemID, func(item *catalog.ShopItem, now time.Time) error {
		return item.UpdateDetails(details, now)
	})
}

// SetItemActiveCommand 上架 / 下架
type SetItemActiveCommand struct {
	ItemID string `json:"item_id" validate:"required"`
	Active bool   `json:"active"`
}

// SetItemActive 上架或下架商品
func (uc *CatalogUseCase) SetItemActive(cmd SetItemActiveCommand) (*ItemResult, error) {
	if err := common.Validate(cmd); err != nil {
		return nil, err
	}
	return uc.modify(cmd.ItemID, func(item *catalog.ShopItem, now time.Time) error {
		item.SetActive(cmd.Active, now)
		return nil
	})
}

func (uc *CatalogUseCase) modify(rawID string, fn func(item *catalog.ShopItem, now time.Time) error) (*ItemResult, error) {
	itemID, err := catalog.ItemIDFromString(rawID)
	if err != nil {
		return nil, err
	}

	var item *catalog.ShopItem
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		item, err = uc.itemRepo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if err := fn(item, uc.clock.Now()); err != nil {
			return err
		}
		return uc.itemRepo.Save(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return newItemResult(item), nil
}

// ListItems 列出商品；activeOnly 為 true 時只列上架中（學生商店）
func (uc *CatalogUseCase) ListItems(activeOnly bool) ([]*ItemResult, error) {
	items, err := uc.itemRepo.FindAll(nil, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	results := make([]*ItemResult, 0, len(items))
	for _, i := range items {
		results = append(results, newItemResult(i))
	}
	return results, nil
}
