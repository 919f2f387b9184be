package entity

import (
	"gorm.io/gorm"
)

type CartItemVariation struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	ItemVariationID uint          `json:"itemVariationId"`
	ItemVariation   ItemVariation `json:"-"`

	// snapshot so the line survives later menu edits
	Name       string `json:"name"`
	Type       string `json:"type"`
	PriceDelta int64  `json:"priceDelta"`
}
