package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service  *services.OrderService
	Pricing  *services.CouponService
	Receipts *services.ReceiptService
	CustRepo *repository.CustomerRepository
}

func NewOrderController(s *services.OrderService, p *services.CouponService, r *services.ReceiptService, cr *repository.CustomerRepository) *OrderController {
	return &OrderController{Service: s, Pricing: p, Receipts: r, CustRepo: cr}
}

// maps service sentinels onto the envelope
func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCouponInvalid),
		errors.Is(err, services.ErrCouponExhausted),
		errors.Is(err, services.ErrCouponBelowMinimum),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidDelivery),
		errors.Is(err, services.ErrTableRequired),
		errors.Is(err, services.ErrAddressRequired),
		errors.Is(err, services.ErrInsufficientPoints),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidVariation),
		errors.Is(err, services.ErrMissingVariation),
		errors.Is(err, services.ErrOrderNotOpen):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}

// ===== Checkout =====

// Create: PDV checkout (cart or explicit items) and the customer-menu flow.
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}

	var staffID *uint
	if id := utils.CurrentUserID(c); id != 0 {
		staffID = &id
	}

	out, err := ctl.Service.Checkout(staffID, &req)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.Created(c, out)
}

// ===== Quote (pricing preview, no write) =====

type quoteReq struct {
	Subtotal      int64  `json:"subtotal" binding:"min=0"`
	DeliveryType  string `json:"deliveryType" binding:"required,oneof=delivery pickup dine_in"`
	CouponCode    string `json:"couponCode"`
	PointsToUse   int    `json:"pointsToUse"`
	CustomerPhone string `json:"customerPhone"`
}

func (ctl *OrderController) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}

	balance := 0
	if req.CustomerPhone != "" {
		var cust struct{ LoyaltyPoints int }
		if err := ctl.CustRepo.DB.Table("customers").
			Select("loyalty_points").
			Where("phone = ? AND deleted_at IS NULL", req.CustomerPhone).
			Limit(1).Scan(&cust).Error; err == nil {
			balance = cust.LoyaltyPoints
		}
	}

	q, err := ctl.Pricing.Price(req.Subtotal, req.DeliveryType, req.CouponCode, req.PointsToUse, balance)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, q)
}

// ===== List & Detail =====

func (ctl *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	out, err := ctl.Service.List(c.Query("status"), c.Query("deliveryType"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

func (ctl *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := ctl.Service.Detail(uint(id))
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, out)
}

// ===== Comanda: append items to an open dine-in order =====

type appendItemsReq struct {
	Items []services.CheckoutItemIn `json:"items" binding:"required,min=1"`
}

func (ctl *OrderController) AppendItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req appendItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	o, err := ctl.Service.AppendItems(uint(id), req.Items)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, o)
}

// ===== Status =====

type statusReq struct {
	Status    string `json:"status" binding:"required,oneof=confirmed preparing ready out_for_delivery completed cancelled"`
	MotoboyID *uint  `json:"motoboyId"`
}

func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	o, err := ctl.Service.UpdateStatus(uint(id), req.Status, req.MotoboyID)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, o)
}

// ===== Receipt =====

func (ctl *OrderController) Receipt(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	html, err := ctl.Receipts.Render(uint(id))
	if err != nil {
		orderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
