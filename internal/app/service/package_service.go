package service

import (
	"errors"
	"strings"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrPackageInvalidItems = errors.New("one or more items do not belong to this vendor")
)

// PackageUpdate carries the mutable package fields for a partial
// update. Items, when set, replaces the full membership list.
type PackageUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	IsActive    *bool
	ItemIDs     *[]uint
}

// PackageService manages a vendor's breakfast packages. A package may
// only reference items the same vendor owns; membership is validated
// as a whole, so a single foreign id rejects the entire request.
type PackageService struct {
	repo     repository.PackageRepository
	itemRepo repository.ItemRepository
}

func NewPackageService(repo repository.PackageRepository, itemRepo repository.ItemRepository) *PackageService {
	return &PackageService{repo: repo, itemRepo: itemRepo}
}

// resolveItems loads the referenced items scoped to the vendor. Any id
// that is missing, deleted, or owned by another vendor fails the whole
// set.
func (s *PackageService) resolveItems(vendorID uint, itemIDs []uint) ([]model.Item, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	unique := make(map[uint]struct{}, len(itemIDs))
	ids := make([]uint, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, seen := unique[id]; seen {
			continue
		}
		unique[id] = struct{}{}
		ids = append(ids, id)
	}

	items, err := s.itemRepo.FindOwnedByIDs(ids, vendorID)
	if err != nil {
		return nil, err
	}
	if len(items) != len(ids) {
		return nil, ErrPackageInvalidItems
	}
	return items, nil
}

// Create assembles a package from the vendor's own items.
func (s *PackageService) Create(vendorID uint, name, description string, price float64, imageURL string, isActive bool, itemIDs []uint) (*model.Package, error) {
	items, err := s.resolveItems(vendorID, itemIDs)
	if err != nil {
		return nil, err
	}

	pkg := &model.Package{
		VendorID:    vendorID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		IsActive:    isActive,
	}
	if err := s.repo.Create(pkg, items); err != nil {
		return nil, err
	}
	pkg.Items = items

	logger.Info("Package created", map[string]interface{}{
		"id":        pkg.ID,
		"vendor_id": vendorID,
		"name":      pkg.Name,
		"items":     len(items),
	})
	return pkg, nil
}

// List returns all of the vendor's packages with their items.
func (s *PackageService) List(vendorID uint) ([]model.Package, error) {
	return s.repo.FindByVendor(vendorID)
}

// Get returns one of the vendor's packages by id, items included.
func (s *PackageService) Get(id, vendorID uint) (*model.Package, error) {
	pkg, err := s.repo.FindOwned(id, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// Update applies the provided fields; a new item list is validated
// against the vendor's ownership before it replaces the old one.
func (s *PackageService) Update(id, vendorID uint, changes PackageUpdate) (*model.Package, error) {
	pkg, err := s.Get(id, vendorID)
	if err != nil {
		return nil, err
	}

	var newItems []model.Item
	replaceItems := false
	if changes.ItemIDs != nil {
		newItems, err = s.resolveItems(vendorID, *changes.ItemIDs)
		if err != nil {
			return nil, err
		}
		replaceItems = true
	}

	if changes.Name != nil {
		pkg.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.Description != nil {
		pkg.Description = *changes.Description
	}
	if changes.Price != nil {
		pkg.Price = *changes.Price
	}
	if changes.ImageURL != nil {
		pkg.ImageURL = *changes.ImageURL
	}
	if changes.IsActive != nil {
		pkg.IsActive = *changes.IsActive
	}

	if err := s.repo.Update(pkg); err != nil {
		return nil, err
	}
	if replaceItems {
		if err := s.repo.ReplaceItems(pkg, newItems); err != nil {
			return nil, err
		}
		pkg.Items = newItems
	}

	logger.Info("Package updated", map[string]interface{}{
		"id":        pkg.ID,
		"vendor_id": vendorID,
	})
	return pkg, nil
}

// Delete removes one of the vendor's packages and its membership rows.
// The items themselves are untouched.
func (s *PackageService) Delete(id, vendorID uint) error {
	if err := s.repo.DeleteOwned(id, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPackageNotFound
		}
		return err
	}

	logger.Info("Package deleted", map[string]interface{}{
		"id":        id,
		"vendor_id": vendorID,
	})
	return nil
}
