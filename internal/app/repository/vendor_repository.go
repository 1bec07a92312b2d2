package repository

import (
	"time"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(vendor *model.Vendor) error
	FindByID(id uint) (*model.Vendor, error)
	FindByEmail(email string) (*model.Vendor, error)
	Update(vendor *model.Vendor) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole() (map[model.Role]int64, error)
	ClearExpiredOTPs(now time.Time) (int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(vendor *model.Vendor) error {
	logger.Debug("Creating vendor in database", map[string]interface{}{
		"email": vendor.Email,
	})

	if err := r.db.Create(vendor).Error; err != nil {
		logger.Error("Failed to create vendor in database", err, map[string]interface{}{
			"email": vendor.Email,
		})
		return err
	}
	return nil
}

func (r *vendorRepository) FindByID(id uint) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByEmail(email string) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.Where("email = ?", email).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Update(vendor *model.Vendor) error {
	if err := r.db.Save(vendor).Error; err != nil {
		logger.Error("Failed to update vendor in database", err, map[string]interface{}{
			"vendor_id": vendor.ID,
		})
		return err
	}
	return nil
}

// Delete removes the vendor and everything it owns in one transaction:
// restaurant, items, packages (with their item associations), then the
// vendor record itself. A failure at any step rolls the whole cascade
// back so no orphaned child rows can survive.
func (r *vendorRepository) Delete(id uint) error {
	logger.Info("Deleting vendor with owned resources", map[string]interface{}{
		"vendor_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", id).Delete(&model.Restaurant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vendor_id = ?", id).Delete(&model.Item{}).Error; err != nil {
			return err
		}

		var packages []model.Package
		if err := tx.Where("vendor_id = ?", id).Find(&packages).Error; err != nil {
			return err
		}
		for i := range packages {
			if err := tx.Model(&packages[i]).Association("Items").Clear(); err != nil {
				return err
			}
		}
		if err := tx.Where("vendor_id = ?", id).Delete(&model.Package{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Vendor{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *vendorRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Vendor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *vendorRepository) CountByRole() (map[model.Role]int64, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	return map[model.Role]int64{model.RoleVendor: count}, nil
}

// ClearExpiredOTPs drops OTP material whose validity window has lapsed.
func (r *vendorRepository) ClearExpiredOTPs(now time.Time) (int64, error) {
	result := r.db.Model(&model.Vendor{}).
		Where("otp_expiry IS NOT NULL AND otp_expiry < ?", now).
		Updates(map[string]interface{}{"otp_hash": nil, "otp_expiry": nil})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
