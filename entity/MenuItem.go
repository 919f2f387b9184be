package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	Detail string `json:"detail"`

	// prices in centavos
	Price            int64  `json:"price"`
	PromotionalPrice *int64 `json:"promotionalPrice,omitempty"` // nil = no promo
	Available        bool   `gorm:"default:true" json:"available"`
	PrepTimeMinutes  int    `json:"prepTimeMinutes"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload on detail only

	// optional stock link: checkout consumes ConsumeAmount per unit sold
	InventoryItemID *uint          `json:"inventoryItemId,omitempty"`
	InventoryItem   *InventoryItem `json:"-"`
	ConsumeAmount   float64        `json:"consumeAmount"`

	Variations []ItemVariation `json:"variations"`
	OrderItems []OrderItem     `json:"-"`
}

// EffectivePrice = promotional price when set, base price otherwise.
func (m *MenuItem) EffectivePrice() int64 {
	if m.PromotionalPrice != nil {
		return *m.PromotionalPrice
	}
	return m.Price
}
