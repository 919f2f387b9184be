package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB   *gorm.DB
	Repo *repository.CustomerRepository
}

func NewCustomerController(db *gorm.DB, r *repository.CustomerRepository) *CustomerController {
	return &CustomerController{DB: db, Repo: r}
}

func (ctl *CustomerController) List(c *gin.Context) {
	q := ctl.DB.Model(&entity.Customer{})
	if s := c.Query("search"); s != "" {
		like := "%" + s + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	if c.Query("suspicious") == "1" {
		q = q.Where("suspicious = ?", true)
	}
	var rows []entity.Customer
	if err := q.Order("name").Limit(200).Find(&rows).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

func (ctl *CustomerController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cust, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "customer not found")
		return
	}
	history, err := ctl.Repo.ListLoyaltyTx(cust.ID, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"customer": cust, "loyaltyHistory": history})
}

func (ctl *CustomerController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var row entity.Customer
	if err := ctl.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "customer not found")
		return
	}
	var req struct {
		Name       *string `json:"name"`
		Address    *string `json:"address"`
		Suspicious *bool   `json:"suspicious"`
		Notes      *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Suspicious != nil {
		updates["suspicious"] = *req.Suspicious
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}
