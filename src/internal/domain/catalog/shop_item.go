package catalog

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ===========================
// ShopItem Aggregate Root
// ===========================

// ShopItem 商品聚合根
//
// 不變量：
//  1. 名稱 1~100 字
//  2. 價格 > 0
//  3. 分類為 time 或 privilege
//
// 商品不刪除，以 isActive 下架。
type ShopItem struct {
	itemID      ItemID
	title       string
	description string
	category    Category
	price       int
	isActive    bool

	createdAt time.Time
	updatedAt time.Time
}

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
	// MaxPrice 商品價格上限
	MaxPrice = 1_000_000
)

// ItemDetails 商品可編輯欄位
type ItemDetails struct {
	Title       string
	Description string
	Category    Category
	Price       int
}

func (d ItemDetails) normalize() (ItemDetails, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)

	if d.Title == "" || utf8.RuneCountInString(d.Title) > maxTitleLength {
		return d, ErrInvalidItemTitle.WithContext("title", d.Title)
	}
	if utf8.RuneCountInString(d.Description) > maxDescriptionLength {
		return d, ErrInvalidItemDescription.WithContext("length", utf8.RuneCountInString(d.Description))
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		return d, err
	}
	if d.Price <= 0 || d.Price > MaxPrice {
		return d, ErrInvalidPrice.WithContext("price", d.Price)
	}
	return d, nil
}

// NewShopItem 建立上架中的新商品
func NewShopItem(details ItemDetails, now time.Time) (*ShopItem, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}

	return &ShopItem{
		itemID:      NewItemID(),
		title:       d.Title,
		description: d.Description,
		category:    d.Category,
		price:       d.Price,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructShopItem 重建商品（用於從資料庫載入）
func ReconstructShopItem(
	itemID ItemID,
	title string,
	description string,
	category Category,
	price int,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) *ShopItem {
	return &ShopItem{
		itemID:      itemID,
		title:       title,
		description: description,
		category:    category,
		price:       price,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ===========================
// 行為方法
// ===========================

// UpdateDetails 修改商品內容（不影響已發放的優惠券）
func (i *ShopItem) UpdateDetails(details ItemDetails, now time.Time) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}

	i.title = d.Title
	i.description = d.Description
	i.category = d.Category
	i.price = d.Price
	i.updatedAt = now
	return nil
}

// SetActive 上架 / 下架
func (i *ShopItem) SetActive(active bool, now time.Time) {
	if i.isActive == active {
		return
	}
	i.isActive = active
	i.updatedAt = now
}

// EnsurePurchasable 確認商品可購買
func (i *ShopItem) EnsurePurchasable() error {
	if !i.isActive {
		return ErrItemInactive.WithContext("item_id", i.itemID.String())
	}
	return nil
}

// Snapshot 取得購買當下的快照
func (i *ShopItem) Snapshot() ItemSnapshot {
	return NewItemSnapshot(i.itemID, i.title, i.category, i.price)
}

// ===========================
// Getters
// ===========================

// ItemID 返回商品 ID
func (i *ShopItem) ItemID() ItemID { return i.itemID }

// Title 返回名稱
func (i *ShopItem) Title() string { return i.title }

// Description 返回說明
func (i *ShopItem) Description() string { return i.description }

// Category 返回分類
func (i *ShopItem) Category() Category { return i.category }

// Price 返回價格
func (i *ShopItem) Price() int { return i.price }

// IsActive 是否上架中
func (i *ShopItem) IsActive() bool { return i.isActive }

// CreatedAt 返回建立時間
func (i *ShopItem) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt 返回更新時間
func (i *ShopItem) UpdatedAt() time.Time { return i.updatedAt }
