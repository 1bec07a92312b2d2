package model

import "time"

// Package is a bundled breakfast offering referencing the owning
// vendor's items. Every referenced item must belong to the same vendor;
// that invariant is checked whenever the item list is written.
type Package struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VendorID    uint      `gorm:"index;not null" json:"vendor_id"`
	Name        string    `gorm:"not null" json:"package_name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Items       []Item    `gorm:"many2many:package_items;" json:"items,omitempty"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `gorm:"default:false" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Package) TableName() string {
	return "packages"
}
