package controllers

import (
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// KitchenController feeds the KDS queue; realtime updates come over /ws/kitchen.
type KitchenController struct {
	Repo *repository.OrderRepository
}

func NewKitchenController(r *repository.OrderRepository) *KitchenController {
	return &KitchenController{Repo: r}
}

// Queue: active orders oldest-first, items preloaded.
func (ctl *KitchenController) Queue(c *gin.Context) {
	orders, err := ctl.Repo.ListKitchenQueue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type queueRow struct {
		ID           uint   `json:"id"`
		OrderNumber  string `json:"orderNumber"`
		DeliveryType string `json:"deliveryType"`
		Status       string `json:"status"`
		TableID      *uint  `json:"tableId,omitempty"`
		Notes        string `json:"notes"`
		CreatedAt    string `json:"createdAt"`
		Items        []struct {
			Name string `json:"name"`
			Qty  int    `json:"qty"`
			Note string `json:"note"`
		} `json:"items"`
	}

	out := make([]queueRow, 0, len(orders))
	for _, o := range orders {
		row := queueRow{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			DeliveryType: o.DeliveryType,
			Status:       o.Status,
			TableID:      o.TableID,
			Notes:        o.Notes,
			CreatedAt:    o.CreatedAt.Format("15:04:05"),
		}
		for _, it := range o.OrderItems {
			row.Items = append(row.Items, struct {
				Name string `json:"name"`
				Qty  int    `json:"qty"`
				Note string `json:"note"`
			}{it.Name, it.Qty, it.Note})
		}
		out = append(out, row)
	}
	resp.OK(c, out)
}
