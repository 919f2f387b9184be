// services/order_transitions.go
package services

import (
	"errors"
	"fmt"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("invalid_or_conflict")
)

// legal jumps; terminal states have no entry
var transitions = map[string][]string{
	entity.OrderStatusNew:            {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed:      {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing:      {entity.OrderStatusReady, entity.OrderStatusCancelled},
	entity.OrderStatusReady:          {entity.OrderStatusOutForDelivery, entity.OrderStatusCompleted, entity.OrderStatusCancelled},
	entity.OrderStatusOutForDelivery: {entity.OrderStatusCompleted, entity.OrderStatusCancelled},
}

func canTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus advances the order. The from→to check plus the guarded UPDATE
// make the jump atomic: two screens racing on the same order cannot both win,
// and completion side effects run exactly once.
func (s *OrderService) UpdateStatus(orderID uint, to string, motoboyID *uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(o.Status, to) {
		return nil, ErrInvalidTransition
	}
	if to == entity.OrderStatusOutForDelivery && o.DeliveryType != entity.DeliveryTypeDelivery {
		return nil, ErrInvalidTransition
	}

	switch to {
	case entity.OrderStatusCompleted:
		err = s.complete(o)
	case entity.OrderStatusCancelled:
		err = s.cancel(o)
	default:
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStatusConflict
			}
			if to == entity.OrderStatusOutForDelivery && motoboyID != nil {
				if err := tx.Model(&entity.Order{}).Where("id = ?", o.ID).
					Update("motoboy_id", *motoboyID).Error; err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	o, err = s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	s.Events.OrderStatusChanged(o)
	return o, nil
}

// complete = the close-out: completed_at stamp, table released, sale entered
// in the cash ledger and loyalty points finally credited. One transaction, so
// the ledger row and the points cannot drift from the status.
func (s *OrderService) complete(o *entity.Order) error {
	settings, err := s.Pricing.SettingsRepo.Get()
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderStatusCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}

		now := time.Now()
		if err := tx.Model(&entity.Order{}).Where("id = ?", o.ID).
			Update("completed_at", now).Error; err != nil {
			return err
		}

		if o.TableID != nil {
			if err := s.TableRepo.SetStatus(tx, *o.TableID, entity.TableStatusFree); err != nil {
				return err
			}
		}

		mov := entity.CashMovement{
			Type:          entity.CashMovementIn,
			Amount:        o.Total,
			Description:   fmt.Sprintf("Pedido %s", o.OrderNumber),
			PaymentMethod: o.PaymentMethod,
			OrderID:       &o.ID,
		}
		if err := tx.Create(&mov).Error; err != nil {
			return err
		}

		// earn: LoyaltyEarnRate points per whole currency unit of the total
		if o.CustomerID != nil && settings.LoyaltyEarnRate > 0 {
			points := int(o.Total/100) * settings.LoyaltyEarnRate
			if points > 0 {
				if err := s.CustomerRepo.CreditPoints(tx, *o.CustomerID, points); err != nil {
					return err
				}
				ltx := entity.LoyaltyTransaction{
					CustomerID:  *o.CustomerID,
					OrderID:     &o.ID,
					Type:        entity.LoyaltyTxEarn,
					Points:      points,
					Description: fmt.Sprintf("Pontos do pedido %s", o.OrderNumber),
				}
				if err := s.CustomerRepo.CreateLoyaltyTx(tx, &ltx); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// cancel frees the table and refunds redeemed points. Inventory is not
// restocked: prepared food does not go back on the shelf.
func (s *OrderService) cancel(o *entity.Order) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}

		if o.TableID != nil {
			if err := s.TableRepo.SetStatus(tx, *o.TableID, entity.TableStatusFree); err != nil {
				return err
			}
		}

		if o.CustomerID != nil && o.PointsUsed > 0 {
			if err := s.CustomerRepo.CreditPoints(tx, *o.CustomerID, o.PointsUsed); err != nil {
				return err
			}
			ltx := entity.LoyaltyTransaction{
				CustomerID:  *o.CustomerID,
				OrderID:     &o.ID,
				Type:        entity.LoyaltyTxRefund,
				Points:      o.PointsUsed,
				Description: fmt.Sprintf("Estorno do pedido %s", o.OrderNumber),
			}
			if err := s.CustomerRepo.CreateLoyaltyTx(tx, &ltx); err != nil {
				return err
			}
		}
		return nil
	})
}
