package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB   *gorm.DB
	Repo *repository.InventoryRepository
}

func NewInventoryController(db *gorm.DB, r *repository.InventoryRepository) *InventoryController {
	return &InventoryController{DB: db, Repo: r}
}

func (ctl *InventoryController) List(c *gin.Context) {
	if c.Query("low") == "1" {
		rows, err := ctl.Repo.ListLowStock()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, rows)
		return
	}
	rows, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type inventoryReq struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"minQuantity"`
	UnitCost    int64   `json:"unitCost"`
	SupplierID  *uint   `json:"supplierId"`
}

func (ctl *InventoryController) Create(c *gin.Context) {
	var req inventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.InventoryItem{
		Name:        req.Name,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		UnitCost:    req.UnitCost,
		SupplierID:  req.SupplierID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

func (ctl *InventoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.InventoryItem
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "inventory item not found")
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

type restockReq struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (ctl *InventoryController) Restock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req restockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.Repo.Restock(ctl.DB, uint(id), req.Amount); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "added": req.Amount})
}

func (ctl *InventoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.InventoryItem{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
