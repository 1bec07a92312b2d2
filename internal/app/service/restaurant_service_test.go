package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/internal/db"
)

func setupRestaurantServiceTest(t *testing.T) (*RestaurantService, repository.VendorRepository) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)
	return NewRestaurantService(repository.NewRestaurantRepository(testDB)), repository.NewVendorRepository(testDB)
}

func createServiceTestVendor(t *testing.T, vendors repository.VendorRepository, email string) *model.Vendor {
	t.Helper()
	vendor := &model.Vendor{
		Account: model.Account{
			Name:         "Test Vendor",
			Email:        email,
			PasswordHash: "not-a-real-hash",
			IsVerified:   true,
		},
	}
	require.NoError(t, vendors.Create(vendor))
	return vendor
}

func TestRestaurantService_Lifecycle(t *testing.T) {
	svc, vendors := setupRestaurantServiceTest(t)
	vendor := createServiceTestVendor(t, vendors, "vendor@example.com")

	_, err := svc.Get(vendor.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	restaurant, err := svc.Create(vendor.ID, "Morning Bites", "4 Brigade Road", "9876543210", "6am-11am")
	require.NoError(t, err)
	assert.NotZero(t, restaurant.ID)

	// Only one restaurant per vendor
	_, err = svc.Create(vendor.ID, "Second Shop", "Elsewhere", "", "")
	assert.ErrorIs(t, err, ErrRestaurantExists)

	updated, err := svc.Update(vendor.ID, restaurant.ID, "Morning Bites Deluxe", "", "", "6am-noon")
	require.NoError(t, err)
	assert.Equal(t, "Morning Bites Deluxe", updated.Name)
	assert.Equal(t, "4 Brigade Road", updated.Address)
	assert.Equal(t, "6am-noon", updated.OperatingHours)

	// The id in the request must be the vendor's own restaurant
	_, err = svc.Update(vendor.ID, restaurant.ID+100, "Mismatch", "", "", "")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	require.NoError(t, svc.Delete(vendor.ID, restaurant.ID))
	assert.ErrorIs(t, svc.Delete(vendor.ID, restaurant.ID), ErrRestaurantNotFound)

	// After deletion the vendor can start over
	_, err = svc.Create(vendor.ID, "Fresh Start", "New Address", "", "")
	require.NoError(t, err)
}

func TestRestaurantService_ScopedByVendor(t *testing.T) {
	svc, vendors := setupRestaurantServiceTest(t)
	owner := createServiceTestVendor(t, vendors, "owner@example.com")
	other := createServiceTestVendor(t, vendors, "other@example.com")

	restaurant, err := svc.Create(owner.ID, "Morning Bites", "4 Brigade Road", "", "")
	require.NoError(t, err)

	_, err = svc.Get(other.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	_, err = svc.Update(other.ID, restaurant.ID, "Takeover", "", "", "")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	assert.ErrorIs(t, svc.Delete(other.ID, restaurant.ID), ErrRestaurantNotFound)
}
