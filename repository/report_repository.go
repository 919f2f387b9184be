package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{DB: db} }

type SalesTotals struct {
	Orders   int64 `json:"orders"`
	Revenue  int64 `json:"revenue"`
	Discount int64 `json:"discount"`
}

// CompletedTotals aggregates completed orders in [from, to).
func (r *ReportRepository) CompletedTotals(from, to time.Time) (*SalesTotals, error) {
	var row SalesTotals
	err := r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total),0) AS revenue, COALESCE(SUM(coupon_discount + loyalty_discount),0) AS discount").
		Where("status = ? AND completed_at >= ? AND completed_at < ?", entity.OrderStatusCompleted, from, to).
		Scan(&row).Error
	return &row, err
}

type PaymentSplit struct {
	PaymentMethod string `json:"paymentMethod"`
	Orders        int64  `json:"orders"`
	Revenue       int64  `json:"revenue"`
}

func (r *ReportRepository) RevenueByPaymentMethod(from, to time.Time) ([]PaymentSplit, error) {
	var rows []PaymentSplit
	err := r.DB.Model(&entity.Order{}).
		Select("payment_method, COUNT(*) AS orders, COALESCE(SUM(total),0) AS revenue").
		Where("status = ? AND completed_at >= ? AND completed_at < ?", entity.OrderStatusCompleted, from, to).
		Group("payment_method").
		Scan(&rows).Error
	return rows, err
}

type TopItem struct {
	Name    string `json:"name"`
	Qty     int64  `json:"qty"`
	Revenue int64  `json:"revenue"`
}

func (r *ReportRepository) TopItems(from, to time.Time, limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []TopItem
	err := r.DB.Table("order_items AS oi").
		Select("oi.name, SUM(oi.qty) AS qty, SUM(oi.total) AS revenue").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status = ? AND o.completed_at >= ? AND o.completed_at < ?", entity.OrderStatusCompleted, from, to).
		Group("oi.name").
		Order("qty DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) CountByStatus(from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS cnt").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Cnt
	}
	return out, nil
}
