package repository

import (
	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PackageRepository queries are scoped by the owning vendor id. Item
// associations are written through the join table explicitly so a
// package create or update never touches the item rows themselves.
type PackageRepository interface {
	Create(pkg *model.Package, items []model.Item) error
	FindByVendor(vendorID uint) ([]model.Package, error)
	FindOwned(id, vendorID uint) (*model.Package, error)
	Update(pkg *model.Package) error
	ReplaceItems(pkg *model.Package, items []model.Item) error
	DeleteOwned(id, vendorID uint) error
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

// Create persists the package and its item references atomically; if
// the association write fails nothing is kept.
func (r *packageRepository) Create(pkg *model.Package, items []model.Item) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(pkg).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Model(pkg).Association("Items").Append(&items); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create package in database", err, map[string]interface{}{
			"vendor_id": pkg.VendorID,
			"name":      pkg.Name,
		})
		return err
	}
	return nil
}

func (r *packageRepository) FindByVendor(vendorID uint) ([]model.Package, error) {
	var packages []model.Package
	err := r.db.Preload("Items").Where("vendor_id = ?", vendorID).Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) FindOwned(id, vendorID uint) (*model.Package, error) {
	var pkg model.Package
	err := r.db.Preload("Items").
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) Update(pkg *model.Package) error {
	if err := r.db.Omit(clause.Associations).Save(pkg).Error; err != nil {
		logger.Error("Failed to update package in database", err, map[string]interface{}{
			"package_id": pkg.ID,
			"vendor_id":  pkg.VendorID,
		})
		return err
	}
	return nil
}

func (r *packageRepository) ReplaceItems(pkg *model.Package, items []model.Item) error {
	if err := r.db.Model(pkg).Association("Items").Replace(&items); err != nil {
		logger.Error("Failed to replace package items in database", err, map[string]interface{}{
			"package_id": pkg.ID,
			"vendor_id":  pkg.VendorID,
		})
		return err
	}
	return nil
}

func (r *packageRepository) DeleteOwned(id, vendorID uint) error {
	var pkg model.Package
	err := r.db.Where("id = ? AND vendor_id = ?", id, vendorID).First(&pkg).Error
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&pkg).Association("Items").Clear(); err != nil {
			return err
		}
		return tx.Delete(&pkg).Error
	})
}
