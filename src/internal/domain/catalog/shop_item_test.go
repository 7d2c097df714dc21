package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemNow = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

func validDetails() ItemDetails {
	return ItemDetails{
		Title:       "자유시간 10분",
		Description: "쉬는 시간 연장",
		Category:    CategoryTime,
		Price:       30,
	}
}

func TestNewShopItem_ValidDetails_ActiveByDefault(t *testing.T) {
	// Act
	item, err := NewShopItem(validDetails(), itemNow)

	// Assert
	require.NoError(t, err)
	assert.False(t, item.ItemID().IsEmpty())
	assert.Equal(t, "자유시간 10분", item.Title())
	assert.Equal(t, CategoryTime, item.Category())
	assert.Equal(t, 30, item.Price())
	assert.True(t, item.IsActive())
	assert.NoError(t, item.EnsurePurchasable())
}

func TestNewShopItem_InvalidDetails_ReturnsError(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *ItemDetails)
		expected error
	}{
		{"空名稱", func(d *ItemDetails) { d.Title = "  " }, ErrInvalidItemTitle},
		{"名稱過長", func(d *ItemDetails) { d.Title = strings.Repeat("a", 101) }, ErrInvalidItemTitle},
		{"說明過長", func(d *ItemDetails) { d.Description = strings.Repeat("a", 501) }, ErrInvalidItemDescription},
		{"價格為 0", func(d *ItemDetails) { d.Price = 0 }, ErrInvalidPrice},
		{"價格為負", func(d *ItemDetails) { d.Price = -5 }, ErrInvalidPrice},
		{"未知分類", func(d *ItemDetails) { d.Category = "food" }, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			d := validDetails()
			tt.mutate(&d)

			// Act
			item, err := NewShopItem(d, itemNow)

			// Assert
			assert.Nil(t, item)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestShopItem_SetActive_BlocksPurchase(t *testing.T) {
	// Arrange
	item, _ := NewShopItem(validDetails(), itemNow)
	later := itemNow.Add(time.Hour)

	// Act
	item.SetActive(false, later)

	// Assert
	assert.False(t, item.IsActive())
	assert.Equal(t, later, item.UpdatedAt())
	assert.ErrorIs(t, item.EnsurePurchasable(), ErrItemInactive)
}

func TestShopItem_SetActive_NoChange_KeepsTimestamp(t *testing.T) {
	item, _ := NewShopItem(validDetails(), itemNow)

	item.SetActive(true, itemNow.Add(time.Hour))

	assert.Equal(t, itemNow, item.UpdatedAt())
}

func TestShopItem_Snapshot_NotAffectedByLaterEdits(t *testing.T) {
	// Arrange
	item, _ := NewShopItem(validDetails(), itemNow)
	snapshot := item.Snapshot()

	// Act
	err := item.UpdateDetails(ItemDetails{Title: "자리 바꾸기", Category: CategoryPrivilege, Price: 80}, itemNow.Add(time.Hour))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "자리 바꾸기", item.Title())
	assert.Equal(t, "자유시간 10분", snapshot.Title())
	assert.Equal(t, CategoryTime, snapshot.Category())
	assert.Equal(t, 30, snapshot.Price())
	assert.True(t, snapshot.ItemID().Equals(item.ItemID()))
}

func TestShopItem_UpdateDetails_Invalid_LeavesItemUnchanged(t *testing.T) {
	item, _ := NewShopItem(validDetails(), itemNow)

	err := item.UpdateDetails(ItemDetails{Title: "x", Category: CategoryTime, Price: 0}, itemNow)

	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Equal(t, 30, item.Price())
}
