package controllers

import (
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CashController struct {
	DB   *gorm.DB
	Repo *repository.CashRepository
}

func NewCashController(db *gorm.DB, r *repository.CashRepository) *CashController {
	return &CashController{DB: db, Repo: r}
}

// parses ?date=2006-01-02 into a [from, to) day window
func dayWindow(c *gin.Context) (*time.Time, *time.Time) {
	d := c.Query("date")
	if d == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", d, time.Local)
	if err != nil {
		return nil, nil
	}
	to := day.AddDate(0, 0, 1)
	return &day, &to
}

func (ctl *CashController) List(c *gin.Context) {
	from, to := dayWindow(c)
	rows, err := ctl.Repo.List(from, to, 200)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	balance, err := ctl.Repo.Balance(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"movements": rows, "balance": balance})
}

type movementReq struct {
	Type          string `json:"type" binding:"required,oneof=in out"`
	Amount        int64  `json:"amount" binding:"required,min=1"`
	Description   string `json:"description" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

// Create = manual ledger entry (caixa inicial, sangria, troco...).
func (ctl *CashController) Create(c *gin.Context) {
	var req movementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	staffID := utils.CurrentUserID(c)
	row := entity.CashMovement{
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		CreatedByID:   &staffID,
	}
	if err := ctl.Repo.Create(ctl.DB, &row); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}
