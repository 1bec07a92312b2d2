package model

import "time"

type ItemType string

const (
	ItemTypeFood  ItemType = "Food"
	ItemTypeJuice ItemType = "Juice"
)

// ValidItemType reports whether t is a known item type.
func ValidItemType(t ItemType) bool {
	return t == ItemTypeFood || t == ItemTypeJuice
}

const MaxDescriptionLength = 500

type Item struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VendorID    uint      `gorm:"index;not null" json:"vendor_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Type        ItemType  `gorm:"type:varchar(20);not null" json:"type"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}
