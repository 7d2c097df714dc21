package catalog

import (
	"testing"
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemNow = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

func newItem(t *testing.T, title string, price int, createdAt time.Time) *catalog.ShopItem {
	t.Helper()
	item, err := catalog.NewShopItem(catalog.ItemDetails{
		Title:    title,
		Category: catalog.CategoryTime,
		Price:    price,
	}, createdAt)
	require.NoError(t, err)
	return item
}

func TestShopItemRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	repo := NewShopItemRepository(db)
	item := newItem(t, "자유시간 10분", 30, itemNow)

	// Act
	require.NoError(t, repo.Save(nil, item))
	found, err := repo.FindByID(nil, item.ItemID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "자유시간 10분", found.Title())
	assert.Equal(t, catalog.CategoryTime, found.Category())
	assert.Equal(t, 30, found.Price())
	assert.True(t, found.IsActive())
}

func TestShopItemRepository_Save_DeactivatePersistsFalse(t *testing.T) {
	// Arrange
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	repo := NewShopItemRepository(db)
	item := newItem(t, "자리 바꾸기", 80, itemNow)
	require.NoError(t, repo.Save(nil, item))

	// Act
	item.SetActive(false, itemNow.Add(time.Hour))
	require.NoError(t, repo.Save(nil, item))

	// Assert
	found, err := repo.FindByID(nil, item.ItemID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
	assert.ErrorIs(t, found.EnsurePurchasable(), catalog.ErrItemInactive)
}

func TestShopItemRepository_FindByID_NotFound(t *testing.T) {
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	repo := NewShopItemRepository(db)

	_, err := repo.FindByID(nil, catalog.NewItemID())

	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestShopItemRepository_FindAll_ActiveOnly(t *testing.T) {
	// Arrange
	db, cleanup := testdb.Setup(t)
	defer cleanup()
	repo := NewShopItemRepository(db)
	a := newItem(t, "A", 10, itemNow)
	b := newItem(t, "B", 20, itemNow.Add(time.Minute))
	b.SetActive(false, itemNow.Add(time.Hour))
	require.NoError(t, repo.Save(nil, a))
	require.NoError(t, repo.Save(nil, b))

	// Act
	all, err := repo.FindAll(nil, false)
	require.NoError(t, err)
	active, err := repo.FindAll(nil, true)
	require.NoError(t, err)

	// Assert
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Title())
	require.Len(t, active, 1)
	assert.Equal(t, "A", active[0].Title())
}
