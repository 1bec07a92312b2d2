package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/db"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
)

func setupRestaurantRepoTest(t *testing.T) (RestaurantRepository, VendorRepository) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)
	return NewRestaurantRepository(testDB), NewVendorRepository(testDB)
}

func TestRestaurantRepository_OnePerVendor(t *testing.T) {
	restaurants, vendors := setupRestaurantRepoTest(t)

	vendor := newTestVendor("vendor@example.com")
	require.NoError(t, vendors.Create(vendor))

	require.NoError(t, restaurants.Create(&model.Restaurant{
		VendorID: vendor.ID,
		Name:     "Morning Bites",
		Address:  "4 Brigade Road",
	}))

	err := restaurants.Create(&model.Restaurant{
		VendorID: vendor.ID,
		Name:     "Second Attempt",
		Address:  "Elsewhere",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateKey(err))
}

func TestRestaurantRepository_FindAndDeleteByVendor(t *testing.T) {
	restaurants, vendors := setupRestaurantRepoTest(t)

	vendor := newTestVendor("vendor@example.com")
	require.NoError(t, vendors.Create(vendor))

	_, err := restaurants.FindByVendor(vendor.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, restaurants.Create(&model.Restaurant{
		VendorID: vendor.ID,
		Name:     "Morning Bites",
		Address:  "4 Brigade Road",
	}))

	got, err := restaurants.FindByVendor(vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning Bites", got.Name)

	require.NoError(t, restaurants.DeleteByVendor(vendor.ID))
	assert.ErrorIs(t, restaurants.DeleteByVendor(vendor.ID), gorm.ErrRecordNotFound)
}
