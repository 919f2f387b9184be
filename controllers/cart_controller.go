package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Service *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Service: s}
}

func (ctl *CartController) Get(c *gin.Context) {
	cart, subtotal, err := ctl.Service.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

func (ctl *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.Service.Add(utils.CurrentUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrItemUnavailable),
			errors.Is(err, services.ErrInvalidVariation),
			errors.Is(err, services.ErrMissingVariation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"added": true})
}

type updateQtyReq struct {
	Qty int `json:"qty"`
}

func (ctl *CartController) UpdateQty(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("itemId"))
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.Service.UpdateQty(utils.CurrentUserID(c), uint(itemID), req.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": itemID, "qty": req.Qty})
}

func (ctl *CartController) RemoveItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("itemId"))
	if err := ctl.Service.RemoveItem(utils.CurrentUserID(c), uint(itemID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": itemID})
}

func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Service.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
