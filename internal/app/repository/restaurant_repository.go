package repository

import (
	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"gorm.io/gorm"
)

// RestaurantRepository queries are scoped by the owning vendor id. An
// id alone is never enough to reach another vendor's restaurant.
type RestaurantRepository interface {
	Create(restaurant *model.Restaurant) error
	FindByVendor(vendorID uint) (*model.Restaurant, error)
	Update(restaurant *model.Restaurant) error
	DeleteByVendor(vendorID uint) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *model.Restaurant) error {
	if err := r.db.Create(restaurant).Error; err != nil {
		logger.Error("Failed to create restaurant in database", err, map[string]interface{}{
			"vendor_id": restaurant.VendorID,
		})
		return err
	}
	return nil
}

func (r *restaurantRepository) FindByVendor(vendorID uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.Where("vendor_id = ?", vendorID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) Update(restaurant *model.Restaurant) error {
	if err := r.db.Save(restaurant).Error; err != nil {
		logger.Error("Failed to update restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"vendor_id":     restaurant.VendorID,
		})
		return err
	}
	return nil
}

func (r *restaurantRepository) DeleteByVendor(vendorID uint) error {
	result := r.db.Where("vendor_id = ?", vendorID).Delete(&model.Restaurant{})
	if result.Error != nil {
		logger.Error("Failed to delete restaurant from database", result.Error, map[string]interface{}{
			"vendor_id": vendorID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
