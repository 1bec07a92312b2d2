package model

import "time"

type User struct {
	ID        uint `gorm:"primarykey" json:"id"`
	Account   `gorm:"embedded"`
	Role      Role      `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) PrincipalID() uint     { return u.ID }
func (u *User) PrincipalRole() Role   { return u.Role }
func (u *User) Credentials() *Account { return &u.Account }
