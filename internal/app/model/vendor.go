package model

import "time"

// Vendor is the seller-side principal. Its role is fixed; everything a
// vendor owns (restaurant, items, packages) hangs off its id and is
// removed with it.
type Vendor struct {
	ID        uint `gorm:"primarykey" json:"id"`
	Account   `gorm:"embedded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Restaurant *Restaurant `gorm:"foreignKey:VendorID" json:"restaurant,omitempty"`
	Items      []Item      `gorm:"foreignKey:VendorID" json:"items,omitempty"`
	Packages   []Package   `gorm:"foreignKey:VendorID" json:"packages,omitempty"`
}

func (Vendor) TableName() string {
	return "vendors"
}

func (v *Vendor) PrincipalID() uint     { return v.ID }
func (v *Vendor) PrincipalRole() Role   { return RoleVendor }
func (v *Vendor) Credentials() *Account { return &v.Account }
