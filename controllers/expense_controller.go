package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExpenseController struct {
	DB  *gorm.DB
	Svc *services.ExpenseService
}

func NewExpenseController(db *gorm.DB, svc *services.ExpenseService) *ExpenseController {
	return &ExpenseController{DB: db, Svc: svc}
}

func (ctl *ExpenseController) List(c *gin.Context) {
	q := ctl.DB.Model(&entity.Expense{}).Preload("Supplier")
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
	var rows []entity.Expense
	if err := q.Order("created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

func (ctl *ExpenseController) Create(c *gin.Context) {
	var in services.ExpenseIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	staffID := utils.CurrentUserID(c)
	exp, err := ctl.Svc.Create(&staffID, &in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, exp)
}
