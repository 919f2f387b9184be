package services

import (
	"backend/entity"
)

// OrderEvents is notified after order writes commit; the ws hub implements it
// to feed the KDS and ops screens.
type OrderEvents interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(o *entity.Order)
}

type NopEvents struct{}

func (NopEvents) OrderCreated(*entity.Order)       {}
func (NopEvents) OrderStatusChanged(*entity.Order) {}
