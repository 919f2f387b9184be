package controllers

import (
	"strconv"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponController struct {
	DB      *gorm.DB
	Repo    *repository.CouponRepository
	Pricing *services.CouponService
}

func NewCouponController(db *gorm.DB, r *repository.CouponRepository, p *services.CouponService) *CouponController {
	return &CouponController{DB: db, Repo: r, Pricing: p}
}

func (ctl *CouponController) List(c *gin.Context) {
	rows, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type couponReq struct {
	Code          string     `json:"code" binding:"required"`
	Description   string     `json:"description"`
	Type          string     `json:"type" binding:"required,oneof=percentage fixed free_shipping"`
	DiscountValue int64      `json:"discountValue" binding:"min=0"`
	MinOrderValue int64      `json:"minOrderValue" binding:"min=0"`
	MaxUses       int        `json:"maxUses" binding:"min=0"`
	Active        *bool      `json:"active"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

func (ctl *CouponController) Create(c *gin.Context) {
	var req couponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:   req.Description,
		Type:          req.Type,
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		MaxUses:       req.MaxUses,
		Active:        true,
		ExpiresAt:     req.ExpiresAt,
	}
	if req.Active != nil {
		row.Active = *req.Active
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.BadRequest(c, "code already exists")
		return
	}
	resp.Created(c, row)
}

func (ctl *CouponController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.Coupon
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "coupon not found")
		return
	}
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if code, ok := req["code"].(string); ok {
		req["code"] = strings.ToUpper(strings.TrimSpace(code))
	}
	if err := ctl.DB.Model(&row).Updates(req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}

func (ctl *CouponController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.Coupon{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// Validate previews eligibility + discount for the PDV before checkout.
type validateCouponReq struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

func (ctl *CouponController) Validate(c *gin.Context) {
	var req validateCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	cp, err := ctl.Pricing.Validate(req.Code, req.Subtotal)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{
		"coupon":   cp,
		"discount": services.CouponDiscount(cp, req.Subtotal),
	})
}
