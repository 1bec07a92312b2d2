package service

import (
	"errors"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRestaurantExists   = errors.New("restaurant already exists for this vendor")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// RestaurantService manages the single restaurant profile each vendor
// owns. Every operation is keyed by the vendor id from the session, so
// a vendor can never read or touch another vendor's profile.
type RestaurantService struct {
	repo repository.RestaurantRepository
}

func NewRestaurantService(repo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// Create registers the vendor's restaurant profile. At most one per
// vendor; the unique index on vendor_id backs the pre-check.
func (s *RestaurantService) Create(vendorID uint, name, address, phone, operatingHours string) (*model.Restaurant, error) {
	if _, err := s.repo.FindByVendor(vendorID); err == nil {
		return nil, ErrRestaurantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	restaurant := &model.Restaurant{
		VendorID:       vendorID,
		Name:           name,
		Address:        address,
		Phone:          phone,
		OperatingHours: operatingHours,
	}
	if err := s.repo.Create(restaurant); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrRestaurantExists
		}
		return nil, err
	}

	logger.Info("Restaurant created", map[string]interface{}{
		"id":        restaurant.ID,
		"vendor_id": vendorID,
		"name":      name,
	})
	return restaurant, nil
}

// Get returns the vendor's restaurant profile.
func (s *RestaurantService) Get(vendorID uint) (*model.Restaurant, error) {
	restaurant, err := s.repo.FindByVendor(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// Update applies non-empty fields to the vendor's restaurant. The
// restaurant id must belong to the acting vendor; anything else reads
// as not found.
func (s *RestaurantService) Update(vendorID, restaurantID uint, name, address, phone, operatingHours string) (*model.Restaurant, error) {
	restaurant, err := s.Get(vendorID)
	if err != nil {
		return nil, err
	}
	if restaurant.ID != restaurantID {
		return nil, ErrRestaurantNotFound
	}

	if name != "" {
		restaurant.Name = name
	}
	if address != "" {
		restaurant.Address = address
	}
	if phone != "" {
		restaurant.Phone = phone
	}
	if operatingHours != "" {
		restaurant.OperatingHours = operatingHours
	}

	if err := s.repo.Update(restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant updated", map[string]interface{}{
		"id":        restaurant.ID,
		"vendor_id": vendorID,
	})
	return restaurant, nil
}

// Delete removes the vendor's restaurant profile. Items and packages
// are independent of the profile and survive it.
func (s *RestaurantService) Delete(vendorID, restaurantID uint) error {
	restaurant, err := s.Get(vendorID)
	if err != nil {
		return err
	}
	if restaurant.ID != restaurantID {
		return ErrRestaurantNotFound
	}

	if err := s.repo.DeleteByVendor(vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}

	logger.Info("Restaurant deleted", map[string]interface{}{
		"vendor_id": vendorID,
	})
	return nil
}
