package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/internal/db"
)

type packageServiceFixture struct {
	packages *PackageService
	items    *ItemService
	vendors  repository.VendorRepository
}

func setupPackageServiceTest(t *testing.T) packageServiceFixture {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	itemRepo := repository.NewItemRepository(testDB)
	return packageServiceFixture{
		packages: NewPackageService(repository.NewPackageRepository(testDB), itemRepo),
		items:    NewItemService(itemRepo),
		vendors:  repository.NewVendorRepository(testDB),
	}
}

func (f packageServiceFixture) createVendor(t *testing.T, email string) *model.Vendor {
	t.Helper()
	vendor := &model.Vendor{
		Account: model.Account{
			Name:         "Test Vendor",
			Email:        email,
			PasswordHash: "not-a-real-hash",
			IsVerified:   true,
		},
	}
	require.NoError(t, f.vendors.Create(vendor))
	return vendor
}

func (f packageServiceFixture) createItem(t *testing.T, vendorID uint, name string) *model.Item {
	t.Helper()
	item, err := f.items.Create(vendorID, name, "", 50, model.ItemTypeFood, true)
	require.NoError(t, err)
	return item
}

func TestPackageService_Create(t *testing.T) {
	f := setupPackageServiceTest(t)

	vendor := f.createVendor(t, "vendor@example.com")
	idli := f.createItem(t, vendor.ID, "Idli")
	vada := f.createItem(t, vendor.ID, "Vada")

	pkg, err := f.packages.Create(vendor.ID, "Morning Combo", "Two classics", 90, "", true, []uint{idli.ID, vada.ID})
	require.NoError(t, err)
	assert.NotZero(t, pkg.ID)
	assert.Len(t, pkg.Items, 2)

	got, err := f.packages.Get(pkg.ID, vendor.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestPackageService_Create_RejectsForeignItems(t *testing.T) {
	f := setupPackageServiceTest(t)

	owner := f.createVendor(t, "owner@example.com")
	other := f.createVendor(t, "other@example.com")

	mine := f.createItem(t, owner.ID, "Upma")
	foreign := f.createItem(t, other.ID, "Dosa")

	// One foreign id rejects the entire package
	_, err := f.packages.Create(owner.ID, "Mixed Combo", "", 100, "", false, []uint{mine.ID, foreign.ID})
	assert.ErrorIs(t, err, ErrPackageInvalidItems)

	packages, err := f.packages.List(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestPackageService_Create_RejectsUnknownItems(t *testing.T) {
	f := setupPackageServiceTest(t)

	vendor := f.createVendor(t, "vendor@example.com")
	item := f.createItem(t, vendor.ID, "Poha")

	_, err := f.packages.Create(vendor.ID, "Ghost Combo", "", 60, "", false, []uint{item.ID, 9999})
	assert.ErrorIs(t, err, ErrPackageInvalidItems)
}

func TestPackageService_Update_ReplacesItems(t *testing.T) {
	f := setupPackageServiceTest(t)

	vendor := f.createVendor(t, "vendor@example.com")
	first := f.createItem(t, vendor.ID, "Poha")
	second := f.createItem(t, vendor.ID, "Sheera")

	pkg, err := f.packages.Create(vendor.ID, "Rotating Combo", "", 80, "", false, []uint{first.ID})
	require.NoError(t, err)

	newItems := []uint{second.ID}
	newPrice := 95.0
	active := true
	updated, err := f.packages.Update(pkg.ID, vendor.ID, PackageUpdate{
		Price:    &newPrice,
		IsActive: &active,
		ItemIDs:  &newItems,
	})
	require.NoError(t, err)
	assert.Equal(t, 95.0, updated.Price)
	assert.True(t, updated.IsActive)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, second.ID, updated.Items[0].ID)
}

func TestPackageService_Update_ForeignItemsLeaveRecordUntouched(t *testing.T) {
	f := setupPackageServiceTest(t)

	owner := f.createVendor(t, "owner@example.com")
	other := f.createVendor(t, "other@example.com")

	mine := f.createItem(t, owner.ID, "Upma")
	foreign := f.createItem(t, other.ID, "Dosa")

	pkg, err := f.packages.Create(owner.ID, "Safe Combo", "", 70, "", false, []uint{mine.ID})
	require.NoError(t, err)

	badItems := []uint{foreign.ID}
	newName := "Hijacked"
	_, err = f.packages.Update(pkg.ID, owner.ID, PackageUpdate{Name: &newName, ItemIDs: &badItems})
	assert.ErrorIs(t, err, ErrPackageInvalidItems)

	got, err := f.packages.Get(pkg.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Safe Combo", got.Name)
	require.Len(t, got.Items, 1)
	assert.Equal(t, mine.ID, got.Items[0].ID)
}

func TestPackageService_CrossVendorAccess(t *testing.T) {
	f := setupPackageServiceTest(t)

	owner := f.createVendor(t, "owner@example.com")
	intruder := f.createVendor(t, "intruder@example.com")

	pkg, err := f.packages.Create(owner.ID, "Private Combo", "", 60, "", false, nil)
	require.NoError(t, err)

	// Another vendor sees not-found, not forbidden
	_, err = f.packages.Get(pkg.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrPackageNotFound)

	err = f.packages.Delete(pkg.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
