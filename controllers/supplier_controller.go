package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupplierController struct{ DB *gorm.DB }

func NewSupplierController(db *gorm.DB) *SupplierController { return &SupplierController{DB: db} }

func (ctl *SupplierController) List(c *gin.Context) {
	var rows []entity.Supplier
	if err := ctl.DB.Order("name").Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type supplierReq struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

func (ctl *SupplierController) Create(c *gin.Context) {
	var req supplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.Supplier{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Document: req.Document,
		Category: req.Category,
		Notes:    req.Notes,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

func (ctl *SupplierController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.Supplier
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "supplier not found")
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

func (ctl *SupplierController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.Supplier{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
