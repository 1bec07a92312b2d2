package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/db"
)

func setupItemRepoTest(t *testing.T) (ItemRepository, VendorRepository) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)
	return NewItemRepository(testDB), NewVendorRepository(testDB)
}

func createItem(t *testing.T, repo ItemRepository, vendorID uint, name string, itemType model.ItemType) *model.Item {
	t.Helper()
	item := &model.Item{
		VendorID:    vendorID,
		Name:        name,
		Description: name + " description",
		Price:       50,
		Type:        itemType,
		IsAvailable: true,
	}
	require.NoError(t, repo.Create(item))
	return item
}

func TestItemRepository_FindOwned_ScopedByVendor(t *testing.T) {
	items, vendors := setupItemRepoTest(t)

	owner := newTestVendor("owner@example.com")
	intruder := newTestVendor("intruder@example.com")
	require.NoError(t, vendors.Create(owner))
	require.NoError(t, vendors.Create(intruder))

	item := createItem(t, items, owner.ID, "Masala Dosa", model.ItemTypeFood)

	got, err := items.FindOwned(item.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", got.Name)

	// Same id through another vendor's scope reads as absent
	_, err = items.FindOwned(item.ID, intruder.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_DeleteOwned_ScopedByVendor(t *testing.T) {
	items, vendors := setupItemRepoTest(t)

	owner := newTestVendor("owner@example.com")
	intruder := newTestVendor("intruder@example.com")
	require.NoError(t, vendors.Create(owner))
	require.NoError(t, vendors.Create(intruder))

	item := createItem(t, items, owner.ID, "Poha", model.ItemTypeFood)

	assert.ErrorIs(t, items.DeleteOwned(item.ID, intruder.ID), gorm.ErrRecordNotFound)

	require.NoError(t, items.DeleteOwned(item.ID, owner.ID))
	_, err := items.FindOwned(item.ID, owner.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_FindOwnedByIDs(t *testing.T) {
	items, vendors := setupItemRepoTest(t)

	owner := newTestVendor("owner@example.com")
	other := newTestVendor("other@example.com")
	require.NoError(t, vendors.Create(owner))
	require.NoError(t, vendors.Create(other))

	mine := createItem(t, items, owner.ID, "Upma", model.ItemTypeFood)
	foreign := createItem(t, items, other.ID, "Vada", model.ItemTypeFood)

	got, err := items.FindOwnedByIDs([]uint{mine.ID, foreign.ID}, owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestItemRepository_SearchByVendor(t *testing.T) {
	items, vendors := setupItemRepoTest(t)

	owner := newTestVendor("owner@example.com")
	other := newTestVendor("other@example.com")
	require.NoError(t, vendors.Create(owner))
	require.NoError(t, vendors.Create(other))

	createItem(t, items, owner.ID, "Mango Juice", model.ItemTypeJuice)
	createItem(t, items, owner.ID, "Pancakes", model.ItemTypeFood)
	fruitBowl := &model.Item{
		VendorID:    owner.ID,
		Name:        "Fruit Bowl",
		Description: "Seasonal fruit with mango slices",
		Price:       80,
		Type:        model.ItemTypeFood,
		IsAvailable: true,
	}
	require.NoError(t, items.Create(fruitBowl))
	createItem(t, items, other.ID, "Mango Lassi", model.ItemTypeJuice)

	// Case-insensitive, matches name and description, name matches first
	got, err := items.SearchByVendor(owner.ID, "MANGO")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mango Juice", got[0].Name)
	assert.Equal(t, "Fruit Bowl", got[1].Name)

	got, err = items.SearchByVendor(owner.ID, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, got)
}
