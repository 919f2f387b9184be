package services

import (
	"errors"
	"testing"

	"backend/entity"
)

func TestCheckoutValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Calabresa", 4500)
	items := []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}}

	cases := []struct {
		name string
		in   CheckoutIn
		want error
	}{
		{"delivery without address", CheckoutIn{DeliveryType: "delivery", Items: items}, ErrAddressRequired},
		{"dine_in without table", CheckoutIn{DeliveryType: "dine_in", Items: items}, ErrTableRequired},
		{"unknown delivery type", CheckoutIn{DeliveryType: "teleport", Items: items}, ErrInvalidDelivery},
		{"no items and no staff cart", CheckoutIn{DeliveryType: "pickup"}, ErrEmptyOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Checkout(nil, &tc.in)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

// Checkout writes the order and all side effects together: coupon use counted,
// points debited with a ledger row, stock consumed.
func TestCheckoutSideEffects(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	inv := entity.InventoryItem{Name: "Mussarela", Unit: "kg", Quantity: 10}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	item := seedItem(t, db, "Mussarela Grande", 5000)
	if err := db.Model(item).Updates(map[string]any{
		"inventory_item_id": inv.ID,
		"consume_amount":    0.4,
	}).Error; err != nil {
		t.Fatalf("link inventory: %v", err)
	}

	cp := entity.Coupon{Code: "UMAVEZ", Type: entity.CouponTypePercentage, DiscountValue: 10, Active: true, MaxUses: 1}
	if err := db.Create(&cp).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}
	seedCustomer(t, db, "Ana", "11999990000", 500)

	out, err := svc.Checkout(nil, &CheckoutIn{
		DeliveryType:    "delivery",
		PaymentMethod:   "pix",
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		DeliveryAddress: "Rua A, 10",
		CouponCode:      "umavez",
		PointsToUse:     200,
		Items:           []CheckoutItemIn{{MenuItemID: item.ID, Qty: 2}},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var o entity.Order
	if err := db.First(&o, out.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	// 10000 subtotal + 800 fee - 1000 coupon - 200 points
	if o.Subtotal != 10000 || o.DeliveryFee != 800 || o.CouponDiscount != 1000 || o.LoyaltyDiscount != 200 || o.Total != 9600 {
		t.Errorf("order totals = %+v", o)
	}
	if o.Status != entity.OrderStatusNew {
		t.Errorf("status = %q, want new", o.Status)
	}
	if o.PointsUsed != 200 {
		t.Errorf("points used = %d, want 200", o.PointsUsed)
	}

	var gotCp entity.Coupon
	db.First(&gotCp, cp.ID)
	if gotCp.CurrentUses != 1 {
		t.Errorf("coupon uses = %d, want 1", gotCp.CurrentUses)
	}

	var cust entity.Customer
	db.Where("phone = ?", "11999990000").First(&cust)
	if cust.LoyaltyPoints != 300 {
		t.Errorf("points balance = %d, want 300", cust.LoyaltyPoints)
	}
	var ltx entity.LoyaltyTransaction
	if err := db.Where("customer_id = ? AND type = ?", cust.ID, entity.LoyaltyTxRedeem).First(&ltx).Error; err != nil {
		t.Fatalf("redeem ledger row missing: %v", err)
	}
	if ltx.Points != -200 {
		t.Errorf("redeem ledger points = %d, want -200", ltx.Points)
	}

	var gotInv entity.InventoryItem
	db.First(&gotInv, inv.ID)
	if gotInv.Quantity != 10-0.4*2 {
		t.Errorf("stock = %v, want %v", gotInv.Quantity, 10-0.4*2)
	}

	var itemCount int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", o.ID).Count(&itemCount)
	if itemCount != 1 {
		t.Errorf("order items = %d, want 1", itemCount)
	}

	// the single-use coupon is now spent
	_, err = svc.Checkout(nil, &CheckoutIn{
		DeliveryType:    "delivery",
		CustomerPhone:   "11999990000",
		DeliveryAddress: "Rua A, 10",
		CouponCode:      "UMAVEZ",
		Items:           []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})
	if !errors.Is(err, ErrCouponExhausted) {
		t.Errorf("second use: got %v, want ErrCouponExhausted", err)
	}
}

func TestCheckoutFromCartOccupiesTableAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	cartSvc := newCartService(db)

	item := seedItem(t, db, "Portuguesa", 5200)
	table := seedTable(t, db, 3)
	const staff uint = 7

	if err := cartSvc.Add(staff, &AddToCartIn{MenuItemID: item.ID, Qty: 2, Note: "bem assada"}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	sid := staff
	out, err := svc.Checkout(&sid, &CheckoutIn{
		DeliveryType: "dine_in",
		TableID:      &table.ID,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var o entity.Order
	db.First(&o, out.ID)
	// 10400 subtotal + 10% service fee
	if o.Subtotal != 10400 || o.ServiceFee != 1040 || o.Total != 11440 {
		t.Errorf("totals = subtotal %d fee %d total %d", o.Subtotal, o.ServiceFee, o.Total)
	}
	if o.CreatedByID == nil || *o.CreatedByID != staff {
		t.Errorf("created_by = %v, want %d", o.CreatedByID, staff)
	}

	var oi entity.OrderItem
	db.Where("order_id = ?", o.ID).First(&oi)
	if oi.Note != "bem assada" {
		t.Errorf("note = %q", oi.Note)
	}

	var tb entity.DiningTable
	db.First(&tb, table.ID)
	if tb.Status != entity.TableStatusOccupied {
		t.Errorf("table status = %q, want occupied", tb.Status)
	}

	cart, _, _ := cartSvc.Get(staff)
	if len(cart.Items) != 0 {
		t.Errorf("cart should be empty after checkout, got %d lines", len(cart.Items))
	}
}

// Redemption is capped at the balance read inside the checkout transaction.
func TestCheckoutCapsPointsAtBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Frango", 4000)
	cust := seedCustomer(t, db, "Bia", "11888880000", 50)

	out, err := svc.Checkout(nil, &CheckoutIn{
		DeliveryType:  "pickup",
		CustomerPhone: "11888880000",
		PointsToUse:   100,
		Items:         []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// only the available 50 were redeemed
	var o entity.Order
	db.First(&o, out.ID)
	if o.PointsUsed != 50 || o.LoyaltyDiscount != 50 {
		t.Errorf("points used = %d discount = %d, want 50/50", o.PointsUsed, o.LoyaltyDiscount)
	}
	var got entity.Customer
	db.First(&got, cust.ID)
	if got.LoyaltyPoints != 0 {
		t.Errorf("balance = %d, want 0", got.LoyaltyPoints)
	}
}

func TestAppendItemsRecomputesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	pizza := seedItem(t, db, "Calabresa", 5000)
	drink := seedItem(t, db, "Guaraná", 700)
	table := seedTable(t, db, 1)

	out, err := svc.Checkout(nil, &CheckoutIn{
		DeliveryType: "dine_in",
		TableID:      &table.ID,
		Items:        []CheckoutItemIn{{MenuItemID: pizza.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	o, err := svc.AppendItems(out.ID, []CheckoutItemIn{{MenuItemID: drink.ID, Qty: 2}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	// 5000 + 1400 = 6400 subtotal, 10% service fee
	if o.Subtotal != 6400 || o.ServiceFee != 640 || o.Total != 7040 {
		t.Errorf("totals = subtotal %d fee %d total %d", o.Subtotal, o.ServiceFee, o.Total)
	}

	var count int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", o.ID).Count(&count)
	if count != 2 {
		t.Errorf("order items = %d, want 2", count)
	}
}

func TestAppendItemsRejectsClosedOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Mussarela", 4000)

	out, err := svc.Checkout(nil, &CheckoutIn{
		DeliveryType: "pickup",
		Items:        []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if err := db.Model(&entity.Order{}).Where("id = ?", out.ID).
		Update("status", entity.OrderStatusCancelled).Error; err != nil {
		t.Fatalf("force cancel: %v", err)
	}

	_, err = svc.AppendItems(out.ID, []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}})
	if !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("got %v, want ErrOrderNotOpen", err)
	}
}
