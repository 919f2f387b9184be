package services

import (
	"errors"
	"testing"

	"backend/entity"
)

func TestAddMergesIdenticalLines(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	item := seedItem(t, db, "Calabresa", 4500)
	v1 := seedVariation(t, db, item.ID, "Grande", entity.VariationTypeSize, 1000, false)
	v2 := seedVariation(t, db, item.ID, "Catupiry", entity.VariationTypeBorder, 500, false)

	// same selection in a different ID order must land on the same line
	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 1, VariationIDs: []uint{v2.ID, v1.ID}}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 2, VariationIDs: []uint{v1.ID, v2.ID}}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	cart, subtotal, err := svc.Get(1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("want 1 merged line, got %d", len(cart.Items))
	}
	line := cart.Items[0]
	if line.Qty != 3 {
		t.Errorf("qty = %d, want 3", line.Qty)
	}
	wantUnit := int64(4500 + 1000 + 500)
	if line.UnitPrice != wantUnit {
		t.Errorf("unit price = %d, want %d", line.UnitPrice, wantUnit)
	}
	if subtotal != wantUnit*3 {
		t.Errorf("subtotal = %d, want %d", subtotal, wantUnit*3)
	}
}

func TestAddDifferentNoteKeepsSeparateLines(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedItem(t, db, "Mussarela", 4000)

	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 1, Note: "sem cebola"}); err != nil {
		t.Fatalf("add with note: %v", err)
	}

	cart, _, err := svc.Get(1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("want 2 lines, got %d", len(cart.Items))
	}
}

func TestAddUsesPromotionalPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	item := seedItem(t, db, "Portuguesa", 5000)
	promo := int64(3990)
	if err := db.Model(item).Update("promotional_price", promo).Error; err != nil {
		t.Fatalf("set promo: %v", err)
	}

	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, subtotal, _ := svc.Get(1)
	if cart.Items[0].UnitPrice != promo {
		t.Errorf("unit price = %d, want promo %d", cart.Items[0].UnitPrice, promo)
	}
	if subtotal != promo*2 {
		t.Errorf("subtotal = %d, want %d", subtotal, promo*2)
	}
}

func TestAddValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	pizza := seedItem(t, db, "Frango", 4200)
	seedVariation(t, db, pizza.ID, "Média", entity.VariationTypeSize, 0, true)
	other := seedItem(t, db, "Coca-Cola", 800)
	otherVar := seedVariation(t, db, other.ID, "Lata", entity.VariationTypeDrink, 0, false)

	off := seedItem(t, db, "Esgotada", 4000)
	if err := db.Model(off).Update("available", false).Error; err != nil {
		t.Fatalf("set unavailable: %v", err)
	}

	cases := []struct {
		name string
		in   AddToCartIn
		want error
	}{
		{"unavailable item", AddToCartIn{MenuItemID: off.ID, Qty: 1}, ErrItemUnavailable},
		{"missing required size", AddToCartIn{MenuItemID: pizza.ID, Qty: 1}, ErrMissingVariation},
		{"variation of another item", AddToCartIn{MenuItemID: pizza.ID, Qty: 1, VariationIDs: []uint{otherVar.ID}}, ErrInvalidVariation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Add(1, &tc.in); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestUpdateQtyZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedItem(t, db, "Quatro Queijos", 4800)

	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, _, _ := svc.Get(1)
	lineID := cart.Items[0].ID

	if err := svc.UpdateQty(1, lineID, 5); err != nil {
		t.Fatalf("update qty: %v", err)
	}
	cart, subtotal, _ := svc.Get(1)
	if cart.Items[0].Qty != 5 || cart.Items[0].Total != 4800*5 {
		t.Errorf("line = qty %d total %d, want qty 5 total %d", cart.Items[0].Qty, cart.Items[0].Total, 4800*5)
	}
	if subtotal != 4800*5 {
		t.Errorf("subtotal = %d, want %d", subtotal, 4800*5)
	}

	if err := svc.UpdateQty(1, lineID, 0); err != nil {
		t.Fatalf("update qty to zero: %v", err)
	}
	cart, _, _ = svc.Get(1)
	if len(cart.Items) != 0 {
		t.Fatalf("want empty cart after zero qty, got %d lines", len(cart.Items))
	}
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedItem(t, db, "Marguerita", 4600)

	if err := svc.Add(1, &AddToCartIn{MenuItemID: item.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, subtotal, _ := svc.Get(1)
	if len(cart.Items) != 0 || subtotal != 0 {
		t.Fatalf("want empty cart, got %d lines subtotal %d", len(cart.Items), subtotal)
	}

	// clearing a user with no cart is a no-op
	if err := svc.Clear(99); err != nil {
		t.Fatalf("clear unknown user: %v", err)
	}
}
