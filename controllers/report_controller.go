package controllers

import (
	"time"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

// Daily: ?date=2006-01-02, defaults to today.
func (ctl *ReportController) Daily(c *gin.Context) {
	day := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid date, want YYYY-MM-DD")
			return
		}
		day = parsed
	}
	summary, err := ctl.Svc.Daily(day)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}
