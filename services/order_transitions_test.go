package services

import (
	"errors"
	"testing"

	"backend/entity"
)

func checkout(t *testing.T, svc *OrderService, in *CheckoutIn) *CheckoutOut {
	t.Helper()
	out, err := svc.Checkout(nil, in)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return out
}

func advance(t *testing.T, svc *OrderService, orderID uint, statuses ...string) {
	t.Helper()
	for _, st := range statuses {
		if _, err := svc.UpdateStatus(orderID, st, nil); err != nil {
			t.Fatalf("advance to %s: %v", st, err)
		}
	}
}

func TestStatusFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Calabresa", 4500)

	out := checkout(t, svc, &CheckoutIn{
		DeliveryType: "pickup",
		Items:        []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})
	advance(t, svc, out.ID,
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
		entity.OrderStatusCompleted,
	)

	var o entity.Order
	db.First(&o, out.ID)
	if o.Status != entity.OrderStatusCompleted {
		t.Errorf("status = %q, want completed", o.Status)
	}
	if o.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
}

func TestInvalidTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Mussarela", 4000)

	cases := []struct {
		name    string
		prepare []string // statuses to walk through first
		to      string
	}{
		{"new cannot skip to ready", nil, entity.OrderStatusReady},
		{"new cannot complete", nil, entity.OrderStatusCompleted},
		{"pickup never goes out for delivery", []string{entity.OrderStatusConfirmed, entity.OrderStatusPreparing, entity.OrderStatusReady}, entity.OrderStatusOutForDelivery},
		{"completed is terminal", []string{entity.OrderStatusConfirmed, entity.OrderStatusPreparing, entity.OrderStatusReady, entity.OrderStatusCompleted}, entity.OrderStatusCancelled},
		{"cancelled is terminal", []string{entity.OrderStatusCancelled}, entity.OrderStatusConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := checkout(t, svc, &CheckoutIn{
				DeliveryType: "pickup",
				Items:        []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
			})
			advance(t, svc, out.ID, tc.prepare...)
			if _, err := svc.UpdateStatus(out.ID, tc.to, nil); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("got %v, want ErrInvalidTransition", err)
			}
		})
	}
}

// Completion closes out the sale: table freed, one ledger entry, points earned.
func TestCompleteSideEffects(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	item := seedItem(t, db, "Portuguesa", 5000)
	table := seedTable(t, db, 2)
	seedCustomer(t, db, "Ana", "11999990000", 0)

	out := checkout(t, svc, &CheckoutIn{
		DeliveryType:  "dine_in",
		TableID:       &table.ID,
		PaymentMethod: "cash",
		CustomerPhone: "11999990000",
		Items:         []CheckoutItemIn{{MenuItemID: item.ID, Qty: 2}},
	})
	advance(t, svc, out.ID,
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
		entity.OrderStatusCompleted,
	)

	var o entity.Order
	db.First(&o, out.ID)

	var tb entity.DiningTable
	db.First(&tb, table.ID)
	if tb.Status != entity.TableStatusFree {
		t.Errorf("table status = %q, want free", tb.Status)
	}

	var movs []entity.CashMovement
	db.Where("order_id = ?", o.ID).Find(&movs)
	if len(movs) != 1 {
		t.Fatalf("cash movements = %d, want 1", len(movs))
	}
	if movs[0].Type != entity.CashMovementIn || movs[0].Amount != o.Total || movs[0].PaymentMethod != "cash" {
		t.Errorf("movement = %+v", movs[0])
	}

	// earn rate 1 point per whole currency unit of the total
	var cust entity.Customer
	db.Where("phone = ?", "11999990000").First(&cust)
	wantPoints := int(o.Total / 100)
	if cust.LoyaltyPoints != wantPoints {
		t.Errorf("points = %d, want %d", cust.LoyaltyPoints, wantPoints)
	}
	var earn entity.LoyaltyTransaction
	if err := db.Where("customer_id = ? AND type = ?", cust.ID, entity.LoyaltyTxEarn).First(&earn).Error; err != nil {
		t.Fatalf("earn ledger row missing: %v", err)
	}
	if earn.Points != wantPoints {
		t.Errorf("earn ledger points = %d, want %d", earn.Points, wantPoints)
	}
}

// Two screens completing the same order: the guarded update lets one through,
// so the ledger gets exactly one entry.
func TestDoubleCompleteWritesOneCashMovement(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Frango", 4200)

	out := checkout(t, svc, &CheckoutIn{
		DeliveryType: "pickup",
		Items:        []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})
	advance(t, svc, out.ID,
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
	)

	// both sides loaded the order while it was still ready
	stale, err := svc.Repo.GetOrder(out.ID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}

	if err := svc.complete(stale); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if err := svc.complete(stale); !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("second complete: got %v, want ErrStatusConflict", err)
	}

	var count int64
	db.Model(&entity.CashMovement{}).Where("order_id = ?", out.ID).Count(&count)
	if count != 1 {
		t.Errorf("cash movements = %d, want exactly 1", count)
	}
}

func TestCancelRefundsPointsAndFreesTable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	item := seedItem(t, db, "Quatro Queijos", 4800)
	table := seedTable(t, db, 5)
	cust := seedCustomer(t, db, "Bia", "11888880000", 300)

	out := checkout(t, svc, &CheckoutIn{
		DeliveryType:  "dine_in",
		TableID:       &table.ID,
		CustomerPhone: "11888880000",
		PointsToUse:   300,
		Items:         []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})

	var after entity.Customer
	db.First(&after, cust.ID)
	if after.LoyaltyPoints != 0 {
		t.Fatalf("points after checkout = %d, want 0", after.LoyaltyPoints)
	}

	if _, err := svc.UpdateStatus(out.ID, entity.OrderStatusCancelled, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	db.First(&after, cust.ID)
	if after.LoyaltyPoints != 300 {
		t.Errorf("points after cancel = %d, want 300", after.LoyaltyPoints)
	}
	var refund entity.LoyaltyTransaction
	if err := db.Where("customer_id = ? AND type = ?", cust.ID, entity.LoyaltyTxRefund).First(&refund).Error; err != nil {
		t.Fatalf("refund ledger row missing: %v", err)
	}
	if refund.Points != 300 {
		t.Errorf("refund points = %d, want 300", refund.Points)
	}

	var tb entity.DiningTable
	db.First(&tb, table.ID)
	if tb.Status != entity.TableStatusFree {
		t.Errorf("table status = %q, want free", tb.Status)
	}

	// no sale, no ledger entry
	var count int64
	db.Model(&entity.CashMovement{}).Where("order_id = ?", out.ID).Count(&count)
	if count != 0 {
		t.Errorf("cash movements = %d, want 0", count)
	}
}

func TestOutForDeliveryAssignsMotoboy(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "Calabresa", 4500)

	mb := entity.Motoboy{Name: "Carlos", Active: true}
	if err := db.Create(&mb).Error; err != nil {
		t.Fatalf("seed motoboy: %v", err)
	}

	out := checkout(t, svc, &CheckoutIn{
		DeliveryType:    "delivery",
		DeliveryAddress: "Rua B, 20",
		Items:           []CheckoutItemIn{{MenuItemID: item.ID, Qty: 1}},
	})
	advance(t, svc, out.ID,
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
	)

	o, err := svc.UpdateStatus(out.ID, entity.OrderStatusOutForDelivery, &mb.ID)
	if err != nil {
		t.Fatalf("out_for_delivery: %v", err)
	}
	if o.MotoboyID == nil || *o.MotoboyID != mb.ID {
		t.Errorf("motoboy = %v, want %d", o.MotoboyID, mb.ID)
	}
}
