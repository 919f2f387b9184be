package entity

import (
	"gorm.io/gorm"
)

// User = staff login (system_users). Role: admin / manager / cashier / kitchen / waiter
type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:cashier" json:"role"`
	Active      bool   `gorm:"default:true" json:"active"`

	Permissions []UserPermission `json:"-"`
	Orders      []Order          `gorm:"foreignKey:CreatedByID" json:"-"`
}
