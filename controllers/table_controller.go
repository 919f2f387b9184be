package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableController struct {
	DB        *gorm.DB
	Repo      *repository.TableRepository
	OrderRepo *repository.OrderRepository
}

func NewTableController(db *gorm.DB, r *repository.TableRepository, or *repository.OrderRepository) *TableController {
	return &TableController{DB: db, Repo: r, OrderRepo: or}
}

func (ctl *TableController) List(c *gin.Context) {
	rows, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type tableReq struct {
	Number int `json:"number" binding:"required,min=1"`
	Seats  int `json:"seats"`
}

func (ctl *TableController) Create(c *gin.Context) {
	var req tableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	row := entity.DiningTable{Number: req.Number, Seats: req.Seats, Status: entity.TableStatusFree}
	if err := ctl.DB.Create(&row).Error; err != nil {
		resp.BadRequest(c, "table number already exists")
		return
	}
	resp.Created(c, row)
}

// SetStatus handles the manual cases (reserve, force-free); order flow moves
// tables by itself.
type tableStatusReq struct {
	Status string `json:"status" binding:"required,oneof=free occupied reserved"`
}

func (ctl *TableController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req tableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ctl.Repo.SetStatus(ctl.DB, uint(id), req.Status); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// Orders: the open comanda(s) for a table, newest first.
func (ctl *TableController) Orders(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	activeOnly := c.DefaultQuery("active", "1") == "1"
	orders, err := ctl.OrderRepo.ListOrdersForTable(uint(id), activeOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.DB.Delete(&entity.DiningTable{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
