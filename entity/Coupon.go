package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	CouponTypePercentage   = "percentage"
	CouponTypeFixed        = "fixed"
	CouponTypeFreeShipping = "free_shipping"
)

type Coupon struct {
	gorm.Model
	Code          string     `gorm:"size:50;uniqueIndex;not null" json:"code"` // stored uppercase, matched case-insensitive
	Description   string     `json:"description"`
	Type          string     `gorm:"size:20;not null" json:"type"` // percentage / fixed / free_shipping
	DiscountValue int64      `json:"discountValue"`                // percent for percentage, centavos for fixed
	MinOrderValue int64      `json:"minOrderValue"`
	MaxUses       int        `json:"maxUses"` // 0 = unlimited
	CurrentUses   int        `json:"currentUses"`
	Active        bool       `gorm:"default:true" json:"active"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`

	Orders []Order `json:"-"`
}
