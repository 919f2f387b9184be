package services

import (
	"errors"
	"testing"
	"time"

	"backend/entity"
)

func TestValidate(t *testing.T) {
	db := newTestDB(t)
	svc := newPricing(db)

	past := time.Now().Add(-time.Hour)
	coupons := []entity.Coupon{
		{Code: "DEZ", Type: entity.CouponTypePercentage, DiscountValue: 10, Active: true},
		{Code: "MORTO", Type: entity.CouponTypeFixed, DiscountValue: 500, Active: false},
		{Code: "VENCIDO", Type: entity.CouponTypeFixed, DiscountValue: 500, Active: true, ExpiresAt: &past},
		{Code: "LOTADO", Type: entity.CouponTypeFixed, DiscountValue: 500, Active: true, MaxUses: 3, CurrentUses: 3},
		{Code: "MIN50", Type: entity.CouponTypePercentage, DiscountValue: 10, Active: true, MinOrderValue: 5000},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("seed coupon: %v", err)
		}
	}

	cases := []struct {
		name     string
		code     string
		subtotal int64
		want     error
	}{
		{"ok", "DEZ", 3000, nil},
		{"case-insensitive lookup", "dez", 3000, nil},
		{"unknown code", "NADA", 3000, ErrCouponInvalid},
		{"inactive", "MORTO", 3000, ErrCouponInvalid},
		{"expired", "VENCIDO", 3000, ErrCouponInvalid},
		{"exhausted", "LOTADO", 3000, ErrCouponExhausted},
		{"below minimum", "MIN50", 4999, ErrCouponBelowMinimum},
		{"at minimum", "MIN50", 5000, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Validate(tc.code, tc.subtotal)
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate(%q, %d) = %v, want %v", tc.code, tc.subtotal, err, tc.want)
			}
		})
	}
}

func TestCouponDiscount(t *testing.T) {
	cases := []struct {
		name     string
		cp       *entity.Coupon
		subtotal int64
		want     int64
	}{
		{"nil coupon", nil, 5000, 0},
		{"percentage", &entity.Coupon{Type: entity.CouponTypePercentage, DiscountValue: 15}, 10000, 1500},
		{"percentage truncates", &entity.Coupon{Type: entity.CouponTypePercentage, DiscountValue: 10}, 4999, 499},
		{"fixed", &entity.Coupon{Type: entity.CouponTypeFixed, DiscountValue: 1500}, 10000, 1500},
		{"fixed above subtotal not clamped here", &entity.Coupon{Type: entity.CouponTypeFixed, DiscountValue: 9000}, 5000, 9000},
		{"free shipping has no monetary discount", &entity.Coupon{Type: entity.CouponTypeFreeShipping, DiscountValue: 0}, 5000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CouponDiscount(tc.cp, tc.subtotal); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

// settings in newTestDB: delivery fee 800, service fee 10%, redeem value 1.
func TestPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newPricing(db)

	coupons := []entity.Coupon{
		{Code: "DEZ", Type: entity.CouponTypePercentage, DiscountValue: 10, Active: true},
		{Code: "GRATIS", Type: entity.CouponTypeFreeShipping, Active: true},
		{Code: "GIGANTE", Type: entity.CouponTypeFixed, DiscountValue: 99999, Active: true},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("seed coupon: %v", err)
		}
	}

	cases := []struct {
		name         string
		subtotal     int64
		deliveryType string
		coupon       string
		points       int
		balance      int
		want         Quote
	}{
		{
			name: "pickup plain", subtotal: 5000, deliveryType: "pickup",
			want: Quote{Subtotal: 5000, Total: 5000},
		},
		{
			name: "delivery adds fee", subtotal: 5000, deliveryType: "delivery",
			want: Quote{Subtotal: 5000, DeliveryFee: 800, Total: 5800},
		},
		{
			name: "dine_in adds service fee", subtotal: 5000, deliveryType: "dine_in",
			want: Quote{Subtotal: 5000, ServiceFee: 500, Total: 5500},
		},
		{
			name: "percentage coupon", subtotal: 10000, deliveryType: "pickup", coupon: "DEZ",
			want: Quote{Subtotal: 10000, CouponDiscount: 1000, Total: 9000},
		},
		{
			name: "free shipping waives the fee", subtotal: 5000, deliveryType: "delivery", coupon: "GRATIS",
			want: Quote{Subtotal: 5000, DeliveryFee: 0, Total: 5000},
		},
		{
			name: "fixed coupon clamps total at zero", subtotal: 5000, deliveryType: "pickup", coupon: "GIGANTE",
			want: Quote{Subtotal: 5000, CouponDiscount: 99999, Total: 0},
		},
		{
			name: "points capped at balance", subtotal: 5000, deliveryType: "pickup", points: 1000, balance: 300,
			want: Quote{Subtotal: 5000, LoyaltyDiscount: 300, PointsUsed: 300, Total: 4700},
		},
		{
			name: "points within balance", subtotal: 5000, deliveryType: "pickup", points: 200, balance: 300,
			want: Quote{Subtotal: 5000, LoyaltyDiscount: 200, PointsUsed: 200, Total: 4800},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := svc.Price(tc.subtotal, tc.deliveryType, tc.coupon, tc.points, tc.balance)
			if err != nil {
				t.Fatalf("Price: %v", err)
			}
			q.Coupon = nil
			if *q != tc.want {
				t.Errorf("quote = %+v, want %+v", *q, tc.want)
			}
		})
	}
}

func TestPriceRejectsBadCoupon(t *testing.T) {
	db := newTestDB(t)
	svc := newPricing(db)

	_, err := svc.Price(5000, "pickup", "NADA", 0, 0)
	if !errors.Is(err, ErrCouponInvalid) {
		t.Errorf("got %v, want ErrCouponInvalid", err)
	}
}
