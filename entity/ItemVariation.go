package entity

import (
	"gorm.io/gorm"
)

// variation types
const (
	VariationTypeSize   = "size"
	VariationTypeSauce  = "sauce"
	VariationTypeBorder = "border"
	VariationTypeExtra  = "extra"
	VariationTypeDrink  = "drink"
)

// ItemVariation belongs to one MenuItem. Required=true means the customer
// must pick one variation of that Type when ordering the item.
type ItemVariation struct {
	gorm.Model
	MenuItemID uint     `json:"menuItemId" gorm:"index"`
	MenuItem   MenuItem `json:"-"`

	Name            string `gorm:"not null" json:"name"`
	Type            string `gorm:"size:20;not null" json:"type"` // size / sauce / border / extra / drink
	PriceAdjustment int64  `json:"priceAdjustment"`              // centavos, can be negative
	Required        bool   `json:"required"`
	Available       bool   `gorm:"default:true" json:"available"`
}
