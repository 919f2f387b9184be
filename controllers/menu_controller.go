package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuController = categories, menu items and their variations.
type MenuController struct{ DB *gorm.DB }

func NewMenuController(db *gorm.DB) *MenuController { return &MenuController{DB: db} }

// ---------------- Categories ----------------

func (ctl *MenuController) Categories(c *gin.Context) {
	var rows []entity.Category
	if err := ctl.DB.Order("sort_order, name").Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type categoryReq struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.Category{Name: req.Name, SortOrder: req.SortOrder, Active: true}
	if req.Active != nil {
		row.Active = *req.Active
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.Category
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "category not found")
		return
	}
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.DB.Model(&row).Updates(req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}

// ---------------- Menu items ----------------

// List is public so the customer menu can render; staff gets unavailable
// items too via ?all=1.
func (ctl *MenuController) Items(c *gin.Context) {
	q := ctl.DB.Preload("Variations")
	if c.Query("all") == "" {
		q = q.Where("available = ?", true)
	}
	if cat := c.Query("categoryId"); cat != "" {
		q = q.Where("category_id = ?", cat)
	}
	var rows []entity.MenuItem
	if err := q.Order("name").Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

func (ctl *MenuController) ItemDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.MenuItem
	err := ctl.DB.Preload("Variations").First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}

type menuItemReq struct {
	Name             string  `json:"name" binding:"required"`
	Detail           string  `json:"detail"`
	Price            int64   `json:"price" binding:"min=0"`
	PromotionalPrice *int64  `json:"promotionalPrice"`
	Available        *bool   `json:"available"`
	PrepTimeMinutes  int     `json:"prepTimeMinutes"`
	CategoryID       uint    `json:"categoryId" binding:"required"`
	InventoryItemID  *uint   `json:"inventoryItemId"`
	ConsumeAmount    float64 `json:"consumeAmount"`
}

func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.MenuItem{
		Name:             req.Name,
		Detail:           req.Detail,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		Available:        true,
		PrepTimeMinutes:  req.PrepTimeMinutes,
		CategoryID:       req.CategoryID,
		InventoryItemID:  req.InventoryItemID,
		ConsumeAmount:    req.ConsumeAmount,
	}
	if req.Available != nil {
		row.Available = *req.Available
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.MenuItem
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "item not found")
		return
	}
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.DB.Model(&row).Updates(req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}

func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.MenuItem{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// ---------------- Variations ----------------

type variationReq struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=size sauce border extra drink"`
	PriceAdjustment int64  `json:"priceAdjustment"`
	Required        bool   `json:"required"`
	Available       *bool  `json:"available"`
}

func (ctl *MenuController) CreateVariation(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("id"))
	var cnt int64
	ctl.DB.Model(&entity.MenuItem{}).Where("id = ?", itemID).Count(&cnt)
	if cnt == 0 {
		resp.NotFound(c, "item not found")
		return
	}

	var req variationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.ItemVariation{
		MenuItemID:      uint(itemID),
		Name:            req.Name,
		Type:            req.Type,
		PriceAdjustment: req.PriceAdjustment,
		Required:        req.Required,
		Available:       true,
	}
	if req.Available != nil {
		row.Available = *req.Available
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

func (ctl *MenuController) UpdateVariation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("vid"))
	var row entity.ItemVariation
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "variation not found")
		return
	}
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.DB.Model(&row).Updates(req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}

func (ctl *MenuController) DeleteVariation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("vid"))
	if err := ctl.DB.Delete(&entity.ItemVariation{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
