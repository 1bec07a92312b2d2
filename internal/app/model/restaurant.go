package model

import "time"

// Restaurant is a vendor's storefront. One per vendor, enforced by the
// unique index on VendorID.
type Restaurant struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	VendorID       uint      `gorm:"uniqueIndex;not null" json:"vendor_id"`
	Name           string    `gorm:"not null" json:"name"`
	Address        string    `gorm:"not null" json:"address"`
	Phone          string    `gorm:"not null" json:"phone"`
	OperatingHours string    `gorm:"not null" json:"operating_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
