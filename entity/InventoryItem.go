package entity

import (
	"gorm.io/gorm"
)

type InventoryItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Unit        string  `gorm:"size:20" json:"unit"` // kg, un, l...
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"minQuantity"` // below this the item shows on the low-stock list
	UnitCost    int64   `json:"unitCost"`    // centavos

	SupplierID *uint     `json:"supplierId,omitempty"`
	Supplier   *Supplier `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
