package shop

import (
	"testing"

	"github.com/jackyeh168/classpoints/src/internal/application/apptest"
	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogUseCase() (*CatalogUseCase, *apptest.MockShopItemRepository) {
	repo := new(apptest.MockShopItemRepository)
	return NewCatalogUseCase(repo, new(apptest.MockTransactionManager), &shared.FixedClock{T: fixedNow}), repo
}

func TestCatalogUseCase_CreateItem_Success(t *testing.T) {
	uc, repo := newCatalogUseCase()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.CreateItem(ItemCommand{Title: "자리 바꾸기", Category: "privilege", Price: 50})

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	assert.Equal(t, "privilege", result.Category)
	repo.AssertExpectations(t)
}

func TestCatalogUseCase_CreateItem_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  ItemCommand
	}{
		{"價格為 0", ItemCommand{Title: "x", Category: "time", Price: 0}},
		{"未知分類", ItemCommand{Title: "x", Category: "food", Price: 10}},
		{"空白標題", ItemCommand{Title: " ", Category: "time", Price: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newCatalogUseCase()

			_, err := uc.CreateItem(tt.cmd)

			assert.Equal(t, shared.KindInvalidArgument, shared.KindOf(err))
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogUseCase_SetItemActive_Deactivates(t *testing.T) {
	uc, repo := newCatalogUseCase()
	item, _ := catalog.NewShopItem(catalog.ItemDetails{Title: "x", Category: catalog.CategoryTime, Price: 10}, fixedNow)
	repo.On("FindByID", mock.Anything, item.ItemID()).Return(item, nil)
	repo.On("Save", mock.Anything, item).Return(nil)

	result, err := uc.SetItemActive(SetItemActiveCommand{ItemID: item.ItemID().String(), Active: false})

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	assert.ErrorIs(t, item.EnsurePurchasable(), catalog.ErrItemInactive)
}

func TestCatalogUseCase_UpdateItem_NotFound(t *testing.T) {
	uc, repo := newCatalogUseCase()
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, catalog.ErrItemNotFound)

	_, err := uc.UpdateItem(UpdateItemCommand{
		ItemID:      catalog.NewItemID().String(),
		ItemCommand: ItemCommand{Title: "x", Category: "time", Price: 10},
	})

	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
