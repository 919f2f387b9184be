package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrCouponInvalid      = errors.New("coupon invalid or expired")
	ErrCouponExhausted    = errors.New("coupon exhausted")
	ErrCouponBelowMinimum = errors.New("order below coupon minimum")
)

// CouponService is the discount engine: coupon eligibility, coupon/loyalty
// discount math and the final total.
type CouponService struct {
	CouponRepo   *repository.CouponRepository
	SettingsRepo *repository.SettingsRepository
}

func NewCouponService(cr *repository.CouponRepository, sr *repository.SettingsRepository) *CouponService {
	return &CouponService{CouponRepo: cr, SettingsRepo: sr}
}

// Validate checks eligibility against the subtotal without consuming a use.
func (s *CouponService) Validate(code string, subtotal int64) (*entity.Coupon, error) {
	cp, err := s.CouponRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponInvalid
		}
		return nil, err
	}
	if !cp.Active {
		return nil, ErrCouponInvalid
	}
	if cp.ExpiresAt != nil && cp.ExpiresAt.Before(time.Now()) {
		return nil, ErrCouponInvalid
	}
	if cp.MaxUses > 0 && cp.CurrentUses >= cp.MaxUses {
		return nil, ErrCouponExhausted
	}
	if subtotal < cp.MinOrderValue {
		return nil, ErrCouponBelowMinimum
	}
	return cp, nil
}

// CouponDiscount: percentage → subtotal×value/100; fixed → value, deliberately
// NOT clamped to the subtotal (the clamp happens on the final total);
// free_shipping → no monetary discount, the delivery fee is waived instead.
func CouponDiscount(cp *entity.Coupon, subtotal int64) int64 {
	if cp == nil {
		return 0
	}
	switch cp.Type {
	case entity.CouponTypePercentage:
		return subtotal * cp.DiscountValue / 100
	case entity.CouponTypeFixed:
		return cp.DiscountValue
	default:
		return 0
	}
}

type Quote struct {
	Subtotal        int64          `json:"subtotal"`
	DeliveryFee     int64          `json:"deliveryFee"`
	ServiceFee      int64          `json:"serviceFee"`
	CouponDiscount  int64          `json:"couponDiscount"`
	LoyaltyDiscount int64          `json:"loyaltyDiscount"`
	Total           int64          `json:"total"`
	PointsUsed      int            `json:"pointsUsed"`
	Coupon          *entity.Coupon `json:"-"`
}

// Price computes the full breakdown for a would-be order.
// pointsBalance caps the redemption; total is clamped at zero.
func (s *CouponService) Price(subtotal int64, deliveryType, couponCode string, pointsToUse, pointsBalance int) (*Quote, error) {
	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}

	q := &Quote{Subtotal: subtotal}

	if deliveryType == entity.DeliveryTypeDelivery {
		q.DeliveryFee = settings.DeliveryFee
	}
	if deliveryType == entity.DeliveryTypeDineIn {
		q.ServiceFee = subtotal * settings.ServiceFeePercent / 100
	}

	if couponCode != "" {
		cp, err := s.Validate(couponCode, subtotal)
		if err != nil {
			return nil, err
		}
		q.Coupon = cp
		q.CouponDiscount = CouponDiscount(cp, subtotal)
		if cp.Type == entity.CouponTypeFreeShipping {
			q.DeliveryFee = 0
		}
	}

	if pointsToUse > 0 {
		if pointsToUse > pointsBalance {
			pointsToUse = pointsBalance
		}
		q.PointsUsed = pointsToUse
		q.LoyaltyDiscount = int64(pointsToUse) * int64(settings.LoyaltyRedeemValue)
	}

	q.Total = q.Subtotal + q.DeliveryFee + q.ServiceFee - q.CouponDiscount - q.LoyaltyDiscount
	if q.Total < 0 {
		q.Total = 0 // silent clamp, a fixed coupon may exceed the subtotal
	}
	return q, nil
}
