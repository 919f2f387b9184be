package entity

import (
	"gorm.io/gorm"
)

// Cart = staff working cart on the PDV, one per user.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
