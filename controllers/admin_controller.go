package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController = staff accounts and permissions.
type AdminController struct {
	DB       *gorm.DB
	Auth     *services.AuthService
	UserRepo *repository.UserRepository
}

func NewAdminController(db *gorm.DB, auth *services.AuthService, ur *repository.UserRepository) *AdminController {
	return &AdminController{DB: db, Auth: auth, UserRepo: ur}
}

func (ac *AdminController) Users(c *gin.Context) {
	type row struct {
		ID        uint   `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Role      string `json:"role"`
		Active    bool   `json:"active"`
	}
	var items []row
	if err := ac.DB.Model(&entity.User{}).
		Select("id, email, first_name, last_name, role, active").
		Order("id").
		Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

type createUserReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"omitempty,oneof=admin manager cashier kitchen waiter"`
}

func (ac *AdminController) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	user, err := ac.Auth.Register(req.Email, req.Password, req.FirstName, req.LastName, req.Phone, req.Role)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type updateUserReq struct {
	Role   *string `json:"role" binding:"omitempty,oneof=admin manager cashier kitchen waiter"`
	Active *bool   `json:"active"`
}

func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}

	updates := map[string]any{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ac.UserRepo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// ---------------- Permissions ----------------

func (ac *AdminController) Permissions(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rows, err := ac.UserRepo.ListPermissions(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type permReq struct {
	Permission string `json:"permission" binding:"required"`
}

func (ac *AdminController) Grant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req permReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ac.UserRepo.GrantPermission(uint(id), req.Permission); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"userId": id, "permission": req.Permission})
}

func (ac *AdminController) Revoke(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req permReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	if err := ac.UserRepo.RevokePermission(uint(id), req.Permission); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"userId": id, "permission": req.Permission})
}
