package entity

import (
	"gorm.io/gorm"
)

const (
	TableStatusFree     = "free"
	TableStatusOccupied = "occupied"
	TableStatusReserved = "reserved"
)

type DiningTable struct {
	gorm.Model
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	Seats  int    `json:"seats"`
	Status string `gorm:"size:15;not null;default:free" json:"status"`

	Orders []Order `gorm:"foreignKey:TableID" json:"-"`
}

func (DiningTable) TableName() string { return "tables" }
