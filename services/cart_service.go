package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrItemUnavailable  = errors.New("item unavailable")
	ErrInvalidVariation = errors.New("invalid variation")
	ErrMissingVariation = errors.New("required variation not selected")
)

// CartService = the PDV working cart: one per staff user, lines carry price
// snapshots so totals stay stable while the order is being assembled.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID   uint   `json:"menuItemId" binding:"required"`
	Qty          int    `json:"qty" binding:"min=1"`
	Note         string `json:"note"`
	VariationIDs []uint `json:"variationIds"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	line, err := s.buildLine(in.MenuItemID, in.Qty, in.Note, in.VariationIDs)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line, line.VariationKey)
	})
}

// buildLine validates the item + variation selection and snapshots prices.
// Unit price = (promotional price ?? price) + Σ variation adjustments.
func (s *CartService) buildLine(menuItemID uint, qty int, note string, variationIDs []uint) (*entity.CartItem, error) {
	m, err := s.MenuRepo.GetItemBasics(menuItemID)
	if err != nil {
		return nil, err
	}
	if !m.Available {
		return nil, ErrItemUnavailable
	}

	if len(variationIDs) > 0 {
		cnt, err := s.MenuRepo.CountVariationsBelongToItem(m.ID, variationIDs)
		if err != nil {
			return nil, err
		}
		if cnt != int64(len(variationIDs)) {
			return nil, ErrInvalidVariation
		}
	}
	vars, err := s.MenuRepo.GetVariationsByIDs(variationIDs)
	if err != nil {
		return nil, err
	}

	// every required variation type must have a pick
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
	selRows := make([]entity.CartItemVariation, 0, len(vars))
	for _, v := range vars {
		unit += v.PriceAdjustment
		selRows = append(selRows, entity.CartItemVariation{
			ItemVariationID: v.ID,
			Name:            v.Name,
			Type:            v.Type,
			PriceDelta:      v.PriceAdjustment,
		})
	}

	return &entity.CartItem{
		MenuItemID:   m.ID,
		Qty:          qty,
		UnitPrice:    unit,
		Total:        unit * int64(qty),
		Note:         note,
		VariationKey: variationKey(variationIDs),
		Variations:   selRows,
	}, nil
}

// variationKey serializes the selection set so identical lines merge.
func variationKey(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

// UpdateQty clamps at zero; zero removes the line.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
