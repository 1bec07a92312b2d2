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
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidItemType    = errors.New("item type must be Food or Juice")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

// ItemUpdate carries the mutable item fields for a partial update.
// Pointers distinguish "leave alone" from an explicit new value, which
// matters for IsAvailable and zero prices.
type ItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Type        *model.ItemType
	IsAvailable *bool
}

// ItemService manages a vendor's menu items. Lookups are scoped by the
// session's vendor id; an item owned by someone else reads as absent.
type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create adds a menu item for the vendor.
func (s *ItemService) Create(vendorID uint, name, description string, price float64, itemType model.ItemType, isAvailable bool) (*model.Item, error) {
	if !model.ValidItemType(itemType) {
		return nil, ErrInvalidItemType
	}
	if len(description) > model.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	item := &model.Item{
		VendorID:    vendorID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Type:        itemType,
		IsAvailable: isAvailable,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	logger.Info("Item created", map[string]interface{}{
		"id":        item.ID,
		"vendor_id": vendorID,
		"name":      item.Name,
		"type":      item.Type,
	})
	return item, nil
}

// List returns all of the vendor's items ordered by name.
func (s *ItemService) List(vendorID uint) ([]model.Item, error) {
	return s.repo.FindByVendor(vendorID)
}

// Get returns one of the vendor's items by id.
func (s *ItemService) Get(id, vendorID uint) (*model.Item, error) {
	item, err := s.repo.FindOwned(id, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Update applies the provided fields to one of the vendor's items.
func (s *ItemService) Update(id, vendorID uint, changes ItemUpdate) (*model.Item, error) {
	item, err := s.Get(id, vendorID)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		item.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.Description != nil {
		if len(*changes.Description) > model.MaxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		item.Description = *changes.Description
	}
	if changes.Price != nil {
		item.Price = *changes.Price
	}
	if changes.Type != nil {
		if !model.ValidItemType(*changes.Type) {
			return nil, ErrInvalidItemType
		}
		item.Type = *changes.Type
	}
	if changes.IsAvailable != nil {
		item.IsAvailable = *changes.IsAvailable
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	logger.Info("Item updated", map[string]interface{}{
		"id":        item.ID,
		"vendor_id": vendorID,
	})
	return item, nil
}

// Delete removes one of the vendor's items.
func (s *ItemService) Delete(id, vendorID uint) error {
	if err := s.repo.DeleteOwned(id, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	logger.Info("Item deleted", map[string]interface{}{
		"id":        id,
		"vendor_id": vendorID,
	})
	return nil
}

// Search finds the vendor's items whose name or description contains
// the query, case-insensitively. Name matches sort first. An empty
// query returns the full list.
func (s *ItemService) Search(vendorID uint, query string) ([]model.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.FindByVendor(vendorID)
	}
	return s.repo.SearchByVendor(vendorID, query)
}
