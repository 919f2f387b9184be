package entity

import (
	"time"

	"gorm.io/gorm"
)

// order status flow: new → confirmed → preparing → ready → [out_for_delivery] → completed
const (
	OrderStatusNew            = "new"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDineIn   = "dine_in"
)

type Order struct {
	gorm.Model
	// display number derived from the timestamp; the row id is the real key
	OrderNumber  string `gorm:"size:30;index" json:"orderNumber"`
	DeliveryType string `gorm:"size:20;not null" json:"deliveryType"` // delivery / pickup / dine_in
	Status       string `gorm:"size:20;not null;index" json:"status"`

	// centavos
	Subtotal        int64 `json:"subtotal"`
	DeliveryFee     int64 `json:"deliveryFee"`
	ServiceFee      int64 `json:"serviceFee"`
	CouponDiscount  int64 `json:"couponDiscount"`
	LoyaltyDiscount int64 `json:"loyaltyDiscount"`
	Total           int64 `json:"total"`

	PaymentMethod string `gorm:"size:30" json:"paymentMethod"`
	Notes         string `json:"notes"`

	CouponID   *uint   `json:"couponId,omitempty"`
	Coupon     *Coupon `json:"-"`
	PointsUsed int     `json:"pointsUsed"`

	// snapshot identity so receipts survive customer edits
	CustomerID      *uint     `json:"customerId,omitempty"`
	Customer        *Customer `json:"-"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	DeliveryAddress string    `json:"deliveryAddress"`

	TableID *uint        `json:"tableId,omitempty"`
	Table   *DiningTable `json:"-"`

	MotoboyID *uint    `json:"motoboyId,omitempty"`
	Motoboy   *Motoboy `json:"-"`

	CreatedByID *uint `json:"createdById,omitempty"` // staff user, nil on customer-menu orders
	CreatedBy   *User `json:"-"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`

	OrderItems    []OrderItem    `json:"-"` // preload on detail only
	CashMovements []CashMovement `json:"-"`
}

// Discount = total discount recorded on the order (coupon + loyalty).
func (o *Order) Discount() int64 { return o.CouponDiscount + o.LoyaltyDiscount }
