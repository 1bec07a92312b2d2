package model

import "time"

type Role string

const (
	RoleUser            Role = "user"
	RoleVendor          Role = "vendor"
	RoleDeliveryPartner Role = "deliverypartner"
	RoleAdmin           Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleVendor, RoleDeliveryPartner, RoleAdmin:
		return true
	}
	return false
}

// Account holds the identity, credential and verification state shared
// by both principal variants. It is embedded into User and Vendor so the
// account lifecycle (registration, OTP verification, login, profile and
// password updates, deletion) is implemented once.
//
// Password and OTP values are only ever stored hashed.
type Account struct {
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	PhoneNumber  string     `gorm:"not null" json:"phone_number"`
	Address      string     `gorm:"not null" json:"address"`
	OTPHash      *string    `json:"-"`
	OTPExpiry    *time.Time `json:"-"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
}

// Principal is an authenticated account: a User or a Vendor.
type Principal interface {
	PrincipalID() uint
	PrincipalRole() Role
	Credentials() *Account
}
