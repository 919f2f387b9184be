package controllers

import (
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Repo *repository.SettingsRepository
}

func NewSettingsController(r *repository.SettingsRepository) *SettingsController {
	return &SettingsController{Repo: r}
}

func (ctl *SettingsController) Get(c *gin.Context) {
	s, err := ctl.Repo.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

func (ctl *SettingsController) Update(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	s, err := ctl.Repo.Update(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}
