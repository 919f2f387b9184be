package entity

import (
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `gorm:"size:30" json:"document"` // CNPJ/CPF
	Category string `json:"category"`
	Notes    string `json:"notes"`

	InventoryItems []InventoryItem `json:"-"`
	Expenses       []Expense       `json:"-"`
}
