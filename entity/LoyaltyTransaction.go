package entity

import (
	"gorm.io/gorm"
)

const (
	LoyaltyTxRedeem = "redeem" // spent at checkout
	LoyaltyTxEarn   = "earn"   // credited at order completion
	LoyaltyTxRefund = "refund" // returned on cancellation
)

type LoyaltyTransaction struct {
	gorm.Model
	CustomerID uint     `json:"customerId" gorm:"index"`
	Customer   Customer `json:"-"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`

	Type        string `gorm:"size:10;not null" json:"type"`
	Points      int    `json:"points"` // negative for redeem
	Description string `json:"description"`
}
