package catalog

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

const (
	ErrCodeItemNotFound     shared.ErrorCode = "ITEM_NOT_FOUND"
	ErrCodeItemInactive     shared.ErrorCode = "ITEM_INACTIVE"
	ErrCodeInvalidItemID    shared.ErrorCode = "INVALID_ITEM_ID"
	ErrCodeInvalidItemTitle shared.ErrorCode = "INVALID_ITEM_TITLE"
	ErrCodeInvalidItemDesc  shared.ErrorCode = "INVALID_ITEM_DESCRIPTION"
	ErrCodeInvalidPrice     shared.ErrorCode = "INVALID_ITEM_PRICE"
	ErrCodeInvalidCategory  shared.ErrorCode = "INVALID_ITEM_CATEGORY"
)

var (
	// ErrItemNotFound 商品不存在
	ErrItemNotFound = shared.NewDomainError(ErrCodeItemNotFound, shared.KindNotFound, "商品不存在")

	// ErrItemInactive 商品已下架，不可購買
	ErrItemInactive = shared.NewDomainError(ErrCodeItemInactive, shared.KindItemInactive, "商品已下架")

	// ErrInvalidItemID 商品 ID 格式無效
	ErrInvalidItemID = shared.NewDomainError(ErrCodeInvalidItemID, shared.KindInvalidArgument, "商品 ID 格式無效")

	// ErrInvalidItemTitle 商品名稱為空或過長
	ErrInvalidItemTitle = shared.NewDomainError(ErrCodeInvalidItemTitle, shared.KindInvalidArgument, "商品名稱無效")

	// ErrInvalidItemDescription 商品說明過長
	ErrInvalidItemDescription = shared.NewDomainError(ErrCodeInvalidItemDesc, shared.KindInvalidArgument, "商品說明過長")

	// ErrInvalidPrice 價格必須為正整數
	ErrInvalidPrice = shared.NewDomainError(ErrCodeInvalidPrice, shared.KindInvalidArgument, "商品價格必須為正整數")

	// ErrInvalidCategory 未知的商品分類
	ErrInvalidCategory = shared.NewDomainError(ErrCodeInvalidCategory, shared.KindInvalidArgument, "無效的商品分類")
)
