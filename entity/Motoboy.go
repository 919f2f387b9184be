package entity

import (
	"gorm.io/gorm"
)

// Motoboy = delivery courier registry; assigned when an order goes out for delivery.
type Motoboy struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	Phone  string `json:"phone"`
	Plate  string `gorm:"size:15" json:"plate"`
	Active bool   `gorm:"default:true" json:"active"`

	Orders []Order `gorm:"foreignKey:MotoboyID" json:"-"`
}

func (Motoboy) TableName() string { return "motoboys" }
