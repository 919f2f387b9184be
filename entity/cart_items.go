package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // snapshot: effective price + variation deltas
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	// serialized variation id set; line identity = item + key + note
	VariationKey string `gorm:"size:200;index" json:"-"`

	Variations []CartItemVariation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variations"`
}
