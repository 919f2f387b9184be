package entity

import (
	"gorm.io/gorm"
)

// Customer is phone-keyed and created/updated opportunistically at checkout.
type Customer struct {
	gorm.Model
	Name          string `json:"name"`
	Phone         string `gorm:"size:30;index" json:"phone"`
	Address       string `json:"address"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
	Suspicious    bool   `json:"suspicious"`
	Notes         string `json:"notes"`

	Orders              []Order              `json:"-"`
	LoyaltyTransactions []LoyaltyTransaction `json:"-"`
}
