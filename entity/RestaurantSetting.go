package entity

import (
	"gorm.io/gorm"
)

// RestaurantSetting is a single row (id=1) read by pricing, receipts and the
// customer menu.
type RestaurantSetting struct {
	gorm.Model
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Open    bool   `gorm:"default:true" json:"open"`

	DeliveryFee       int64 `json:"deliveryFee"`       // centavos, default fee for delivery orders
	ServiceFeePercent int64 `json:"serviceFeePercent"` // applied to dine-in subtotals

	// loyalty: earn LoyaltyEarnRate points per whole currency unit spent,
	// each point worth LoyaltyRedeemValue centavos on redemption
	LoyaltyEarnRate    int `gorm:"default:1" json:"loyaltyEarnRate"`
	LoyaltyRedeemValue int `gorm:"default:1" json:"loyaltyRedeemValue"`
}

func (RestaurantSetting) TableName() string { return "restaurant_settings" }
