package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `gorm:"default:true" json:"active"`

	MenuItems []MenuItem `json:"-"` // preload only on menu screens
}
