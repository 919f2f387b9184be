package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint      `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	DeliveryType  string    `json:"deliveryType"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customerName"`
	TableID       *uint     `json:"tableId,omitempty"`
	Total         int64     `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(status string, deliveryType string, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	base := r.DB.Model(&entity.Order{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if deliveryType != "" {
		base = base.Where("delivery_type = ?", deliveryType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := base.
		Select("id, order_number, delivery_type, status, customer_name, table_id, total, payment_method, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// ListKitchenQueue: active orders oldest-first for the KDS.
func (r *OrderRepository) ListKitchenQueue() ([]entity.Order, error) {
	active := []string{
		entity.OrderStatusNew,
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
	}
	var orders []entity.Order
	err := r.DB.Where("status IN ?", active).
		Preload("OrderItems").
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListOrdersForTable(tableID uint, activeOnly bool) ([]entity.Order, error) {
	q := r.DB.Where("table_id = ?", tableID)
	if activeOnly {
		q = q.Where("status NOT IN ?", []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled})
	}
	var orders []entity.Order
	err := q.Order("id DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips status only when the order is still at `from`.
// RowsAffected == 0 means a lost race or an illegal jump.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, order_id, menu_item_id, name, qty, unit_price, total, note").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
