package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MotoboyController struct{ DB *gorm.DB }

func NewMotoboyController(db *gorm.DB) *MotoboyController { return &MotoboyController{DB: db} }

func (ctl *MotoboyController) List(c *gin.Context) {
	q := ctl.DB.Model(&entity.Motoboy{})
	if c.Query("active") == "1" {
		q = q.Where("active = ?", true)
	}
	var rows []entity.Motoboy
	if err := q.Order("name").Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type motoboyReq struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
	Plate  string `json:"plate"`
	Active *bool  `json:"active"`
}

func (ctl *MotoboyController) Create(c *gin.Context) {
	var req motoboyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.Motoboy{Name: req.Name, Phone: req.Phone, Plate: req.Plate, Active: true}
	if req.Active != nil {
		row.Active = *req.Active
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

func (ctl *MotoboyController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.Motoboy
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "motoboy not found")
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

func (ctl *MotoboyController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.Motoboy{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
