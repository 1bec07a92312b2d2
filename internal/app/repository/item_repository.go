package repository

import (
	"strings"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository queries are scoped by the owning vendor id.
type ItemRepository interface {
	Create(item *model.Item) error
	FindByVendor(vendorID uint) ([]model.Item, error)
	FindOwned(id, vendorID uint) (*model.Item, error)
	FindOwnedByIDs(ids []uint, vendorID uint) ([]model.Item, error)
	Update(item *model.Item) error
	DeleteOwned(id, vendorID uint) error
	SearchByVendor(vendorID uint, query string) ([]model.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *model.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create item in database", err, map[string]interface{}{
			"vendor_id": item.VendorID,
			"name":      item.Name,
		})
		return err
	}
	return nil
}

func (r *itemRepository) FindByVendor(vendorID uint) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.Where("vendor_id = ?", vendorID).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindOwned(id, vendorID uint) (*model.Item, error) {
	var item model.Item
	err := r.db.Where("id = ? AND vendor_id = ?", id, vendorID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindOwnedByIDs returns only those of the given items that exist and
// belong to the vendor. Callers compare lengths to detect foreign or
// unknown ids.
func (r *itemRepository) FindOwnedByIDs(ids []uint, vendorID uint) ([]model.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []model.Item
	err := r.db.Where("id IN ? AND vendor_id = ?", ids, vendorID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Update(item *model.Item) error {
	if err := r.db.Save(item).Error; err != nil {
		logger.Error("Failed to update item in database", err, map[string]interface{}{
			"item_id":   item.ID,
			"vendor_id": item.VendorID,
		})
		return err
	}
	return nil
}

func (r *itemRepository) DeleteOwned(id, vendorID uint) error {
	result := r.db.Where("id = ? AND vendor_id = ?", id, vendorID).Delete(&model.Item{})
	if result.Error != nil {
		logger.Error("Failed to delete item from database", result.Error, map[string]interface{}{
			"item_id":   id,
			"vendor_id": vendorID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchByVendor does a case-insensitive match over name and
// description, name matches first.
func (r *itemRepository) SearchByVendor(vendorID uint, query string) ([]model.Item, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var items []model.Item
	err := r.db.Where("vendor_id = ? AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)",
		vendorID, pattern, pattern).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN LOWER(name) LIKE ? THEN 0 ELSE 1 END, name",
			Vars:               []interface{}{pattern},
			WithoutParentheses: true,
		}}).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
