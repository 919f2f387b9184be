package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidDelivery    = errors.New("invalid delivery type")
	ErrTableRequired      = errors.New("dine-in order requires a table")
	ErrAddressRequired    = errors.New("delivery order requires an address")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	ErrOrderNotOpen       = errors.New("order is not open")
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	MenuRepo     *repository.MenuRepository
	CustomerRepo *repository.CustomerRepository
	CouponRepo   *repository.CouponRepository
	TableRepo    *repository.TableRepository
	InvRepo      *repository.InventoryRepository
	Pricing      *CouponService
	Events       OrderEvents
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	customerRepo *repository.CustomerRepository,
	couponRepo *repository.CouponRepository,
	tableRepo *repository.TableRepository,
	invRepo *repository.InventoryRepository,
	pricing *CouponService,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		MenuRepo:     menuRepo,
		CustomerRepo: customerRepo,
		CouponRepo:   couponRepo,
		TableRepo:    tableRepo,
		InvRepo:      invRepo,
		Pricing:      pricing,
		Events:       NopEvents{},
	}
}

// ----- DTOs from Controller -----

type CheckoutItemIn struct {
	MenuItemID   uint   `json:"menuItemId" binding:"required"`
	Qty          int    `json:"qty" binding:"min=1"`
	Note         string `json:"note"`
	VariationIDs []uint `json:"variationIds"`
}

type CheckoutIn struct {
	DeliveryType  string `json:"deliveryType" binding:"required,oneof=delivery pickup dine_in"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`

	TableID *uint `json:"tableId,omitempty"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`

	CouponCode  string `json:"couponCode"`
	PointsToUse int    `json:"pointsToUse"`

	// empty → checkout consumes the staff cart
	Items []CheckoutItemIn `json:"items"`
}

type CheckoutOut struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"orderNumber"`
	Total       int64  `json:"total"`
}

// line assembled before the write
type orderLine struct {
	menuItemID  uint
	name        string
	qty         int
	unitPrice   int64
	note        string
	consumeItem *uint
	consumeAmt  float64
}

// Checkout writes the order, its items and every side effect (customer
// upsert, coupon use, loyalty debit, inventory, table) in one transaction.
func (s *OrderService) Checkout(staffID *uint, in *CheckoutIn) (*CheckoutOut, error) {
	switch in.DeliveryType {
	case entity.DeliveryTypeDelivery:
		if strings.TrimSpace(in.DeliveryAddress) == "" {
			return nil, ErrAddressRequired
		}
	case entity.DeliveryTypePickup:
	case entity.DeliveryTypeDineIn:
		if in.TableID == nil {
			return nil, ErrTableRequired
		}
	default:
		return nil, ErrInvalidDelivery
	}

	var (
		lines    []orderLine
		fromCart bool
		err      error
	)
	if len(in.Items) > 0 {
		lines, err = s.linesFromItems(in.Items)
	} else if staffID != nil {
		fromCart = true
		lines, err = s.linesFromCart(*staffID)
	} else {
		return nil, ErrEmptyOrder
	}
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var subtotal int64
	for _, l := range lines {
		subtotal += l.unitPrice * int64(l.qty)
	}

	var out CheckoutOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// customer identity is optional (walk-in dine_in has none)
		var cust *entity.Customer
		if in.CustomerPhone != "" {
			cust, err = s.CustomerRepo.UpsertByPhone(tx, in.CustomerName, in.CustomerPhone, in.DeliveryAddress)
			if err != nil {
				return err
			}
		}

		balance := 0
		if cust != nil {
			balance = cust.LoyaltyPoints
		}
		quote, err := s.Pricing.Price(subtotal, in.DeliveryType, in.CouponCode, in.PointsToUse, balance)
		if err != nil {
			return err
		}

		if quote.Coupon != nil {
			ok, err := s.CouponRepo.ConsumeUse(tx, quote.Coupon.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCouponExhausted
			}
		}

		order := entity.Order{
			OrderNumber:     GenerateOrderNumber(),
			DeliveryType:    in.DeliveryType,
			Status:          entity.OrderStatusNew,
			Subtotal:        quote.Subtotal,
			DeliveryFee:     quote.DeliveryFee,
			ServiceFee:      quote.ServiceFee,
			CouponDiscount:  quote.CouponDiscount,
			LoyaltyDiscount: quote.LoyaltyDiscount,
			Total:           quote.Total,
			PaymentMethod:   in.PaymentMethod,
			Notes:           in.Notes,
			PointsUsed:      quote.PointsUsed,
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			DeliveryAddress: in.DeliveryAddress,
			TableID:         in.TableID,
			CreatedByID:     staffID,
		}
		if quote.Coupon != nil {
			order.CouponID = &quote.Coupon.ID
		}
		if cust != nil {
			order.CustomerID = &cust.ID
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// points are debited now; earning waits for completion
		if quote.PointsUsed > 0 {
			ok, err := s.CustomerRepo.DebitPoints(tx, cust.ID, quote.PointsUsed)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientPoints
			}
			ltx := entity.LoyaltyTransaction{
				CustomerID:  cust.ID,
				OrderID:     &order.ID,
				Type:        entity.LoyaltyTxRedeem,
				Points:      -quote.PointsUsed,
				Description: fmt.Sprintf("Resgate no pedido %s", order.OrderNumber),
			}
			if err := s.CustomerRepo.CreateLoyaltyTx(tx, &ltx); err != nil {
				return err
			}
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.menuItemID,
				Name:       l.name,
				Qty:        l.qty,
				UnitPrice:  l.unitPrice,
				Total:      l.unitPrice * int64(l.qty),
				Note:       l.note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			if l.consumeItem != nil && l.consumeAmt > 0 {
				if err := s.InvRepo.Consume(tx, *l.consumeItem, l.consumeAmt*float64(l.qty)); err != nil {
					return err
				}
			}
		}

		if in.DeliveryType == entity.DeliveryTypeDineIn {
			if err := s.TableRepo.SetStatus(tx, *in.TableID, entity.TableStatusOccupied); err != nil {
				return err
			}
		}

		if fromCart {
			if err := s.CartRepo.ClearCart(tx, *staffID); err != nil {
				return err
			}
		}

		out = CheckoutOut{ID: order.ID, OrderNumber: order.OrderNumber, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if o, err := s.Repo.GetOrder(out.ID); err == nil {
		s.Events.OrderCreated(o)
	}
	return &out, nil
}

// linesFromItems validates a direct item list (customer menu / table order flow).
func (s *OrderService) linesFromItems(items []CheckoutItemIn) ([]orderLine, error) {
	lines := make([]orderLine, 0, len(items))
	for _, it := range items {
		if it.Qty <= 0 {
			it.Qty = 1
		}
		m, err := s.MenuRepo.GetItemBasics(it.MenuItemID)
		if err != nil {
			return nil, errors.New("menu item not found")
		}
		if !m.Available {
			return nil, ErrItemUnavailable
		}

		if len(it.VariationIDs) > 0 {
			cnt, err := s.MenuRepo.CountVariationsBelongToItem(m.ID, it.VariationIDs)
			if err != nil {
				return nil, err
			}
			if cnt != int64(len(it.VariationIDs)) {
				return nil, ErrInvalidVariation
			}
		}
		vars, err := s.MenuRepo.GetVariationsByIDs(it.VariationIDs)
		if err != nil {
			return nil, err
		}
		required, err := s.MenuRepo.RequiredVariationTypes(m.ID)
		if err != nil {
			return nil, err
		}
		chosen := map[string]bool{}
		for _, v := range vars {
			chosen[v.Type] = true
		}
		for _, t := range required {
			if !chosen[t] {
				return nil, ErrMissingVariation
			}
		}

		unit := m.EffectivePrice()
		var variationNames []string
		for _, v := range vars {
			unit += v.PriceAdjustment
			variationNames = append(variationNames, v.Name)
		}
		note := it.Note
		if len(variationNames) > 0 {
			joined := strings.Join(variationNames, ", ")
			if note != "" {
				note = joined + " | " + note
			} else {
				note = joined
			}
		}

		lines = append(lines, orderLine{
			menuItemID:  m.ID,
			name:        m.Name,
			qty:         it.Qty,
			unitPrice:   unit,
			note:        note,
			consumeItem: m.InventoryItemID,
			consumeAmt:  m.ConsumeAmount,
		})
	}
	return lines, nil
}

// linesFromCart snapshots the staff cart.
func (s *OrderService) linesFromCart(userID uint) ([]orderLine, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]orderLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		m, err := s.MenuRepo.GetItemBasics(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		var variationNames []string
		for _, v := range it.Variations {
			variationNames = append(variationNames, v.Name)
		}
		note := it.Note
		if len(variationNames) > 0 {
			joined := strings.Join(variationNames, ", ")
			if note != "" {
				note = joined + " | " + note
			} else {
				note = joined
			}
		}
		lines = append(lines, orderLine{
			menuItemID:  it.MenuItemID,
			name:        m.Name,
			qty:         it.Qty,
			unitPrice:   it.UnitPrice, // cart snapshot wins over current menu price
			note:        note,
			consumeItem: m.InventoryItemID,
			consumeAmt:  m.ConsumeAmount,
		})
	}
	return lines, nil
}

// AppendItems adds lines to an open comanda (dine-in order) and re-derives
// the totals. Coupon/loyalty discounts recorded at checkout are kept as-is.
func (s *OrderService) AppendItems(orderID uint, items []CheckoutItemIn) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == entity.OrderStatusCompleted || o.Status == entity.OrderStatusCancelled {
		return nil, ErrOrderNotOpen
	}

	lines, err := s.linesFromItems(items)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	settings, err := s.Pricing.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var added int64
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    o.ID,
				MenuItemID: l.menuItemID,
				Name:       l.name,
				Qty:        l.qty,
				UnitPrice:  l.unitPrice,
				Total:      l.unitPrice * int64(l.qty),
				Note:       l.note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			if l.consumeItem != nil && l.consumeAmt > 0 {
				if err := s.InvRepo.Consume(tx, *l.consumeItem, l.consumeAmt*float64(l.qty)); err != nil {
					return err
				}
			}
			added += oi.Total
		}

		o.Subtotal += added
		if o.DeliveryType == entity.DeliveryTypeDineIn {
			o.ServiceFee = o.Subtotal * settings.ServiceFeePercent / 100
		}
		o.Total = o.Subtotal + o.DeliveryFee + o.ServiceFee - o.CouponDiscount - o.LoyaltyDiscount
		if o.Total < 0 {
			o.Total = 0
		}
		return tx.Model(&entity.Order{}).Where("id = ?", o.ID).
			Updates(map[string]any{
				"subtotal":    o.Subtotal,
				"service_fee": o.ServiceFee,
				"total":       o.Total,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	s.Events.OrderStatusChanged(o)
	return o, nil
}

// ----- List & Detail -----

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) List(status, deliveryType string, page, limit int) (*OrderListOut, error) {
	items, total, err := s.Repo.ListOrders(status, deliveryType, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// GenerateOrderNumber derives a display number from the clock, like the
// storefront always did. Not collision-proof under concurrent submissions;
// the row id stays the real key.
func GenerateOrderNumber() string {
	now := time.Now()
	return fmt.Sprintf("%s-%03d", now.Format("20060102-150405"), now.UnixMilli()%1000)
}
