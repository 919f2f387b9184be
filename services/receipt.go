package services

import (
	"fmt"
	"html/template"
	"strings"

	"backend/entity"
	"backend/repository"
)

// ReceiptService renders the print receipt: a self-contained HTML document the
// FE hands to window.print(). Layout only, nothing parses this.
type ReceiptService struct {
	OrderRepo    *repository.OrderRepository
	SettingsRepo *repository.SettingsRepository
}

func NewReceiptService(or *repository.OrderRepository, sr *repository.SettingsRepository) *ReceiptService {
	return &ReceiptService{OrderRepo: or, SettingsRepo: sr}
}

var paymentLabels = map[string]string{
	"cash":   "Dinheiro",
	"card":   "Cartão",
	"pix":    "PIX",
	"online": "Pagamento Online",
}

var deliveryLabels = map[string]string{
	entity.DeliveryTypeDelivery: "Entrega",
	entity.DeliveryTypePickup:   "Retirada",
	entity.DeliveryTypeDineIn:   "Mesa",
}

// money formats centavos as "R$ 12,34".
func money(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, v/100, v%100)
}

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": money,
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Pedido {{.Order.OrderNumber}}</title>
<style>
  body { font-family: monospace; width: 280px; margin: 0 auto; font-size: 12px; }
  h1 { font-size: 14px; text-align: center; margin: 8px 0; }
  .center { text-align: center; }
  .line { border-top: 1px dashed #000; margin: 6px 0; }
  table { width: 100%; border-collapse: collapse; }
  td.qty { width: 28px; vertical-align: top; }
  td.val { text-align: right; white-space: nowrap; }
  .totals td { padding-top: 2px; }
  .grand { font-weight: bold; }
  .note { font-size: 10px; }
</style>
</head>
<body onload="window.print()">
<h1>{{.Settings.Name}}</h1>
{{if .Settings.Address}}<div class="center">{{.Settings.Address}}</div>{{end}}
{{if .Settings.Phone}}<div class="center">{{.Settings.Phone}}</div>{{end}}
<div class="line"></div>
<div>Pedido: {{.Order.OrderNumber}}</div>
<div>{{.DeliveryLabel}}{{if .Order.CustomerName}} — {{.Order.CustomerName}}{{end}}</div>
{{if .Order.CustomerPhone}}<div>Tel: {{.Order.CustomerPhone}}</div>{{end}}
{{if .Order.DeliveryAddress}}<div>End: {{.Order.DeliveryAddress}}</div>{{end}}
<div>{{.Order.CreatedAt.Format "02/01/2006 15:04"}}</div>
<div class="line"></div>
<table>
{{range .Items}}
  <tr>
    <td class="qty">{{.Qty}}x</td>
    <td>{{.Name}}{{if .Note}}<div class="note">{{.Note}}</div>{{end}}</td>
    <td class="val">{{money .Total}}</td>
  </tr>
{{end}}
</table>
<div class="line"></div>
<table class="totals">
  <tr><td>Subtotal</td><td class="val">{{money .Order.Subtotal}}</td></tr>
  {{if .Order.DeliveryFee}}<tr><td>Entrega</td><td class="val">{{money .Order.DeliveryFee}}</td></tr>{{end}}
  {{if .Order.ServiceFee}}<tr><td>Serviço</td><td class="val">{{money .Order.ServiceFee}}</td></tr>{{end}}
  {{if .Discount}}<tr><td>Desconto</td><td class="val">-{{money .Discount}}</td></tr>{{end}}
  <tr class="grand"><td>Total</td><td class="val">{{money .Order.Total}}</td></tr>
</table>
{{if .PaymentLabel}}<div>Pagamento: {{.PaymentLabel}}</div>{{end}}
{{if .Order.Notes}}<div class="line"></div><div class="note">{{.Order.Notes}}</div>{{end}}
<div class="line"></div>
<div class="center">Obrigado pela preferência!</div>
</body>
</html>
`))

type receiptData struct {
	Order         *entity.Order
	Items         []entity.OrderItem
	Settings      *entity.RestaurantSetting
	Discount      int64
	PaymentLabel  string
	DeliveryLabel string
}

func (s *ReceiptService) Render(orderID uint) (string, error) {
	o, err := s.OrderRepo.GetOrder(orderID)
	if err != nil {
		return "", err
	}
	items, err := s.OrderRepo.GetOrderItems(o.ID)
	if err != nil {
		return "", err
	}
	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return "", err
	}

	label := paymentLabels[o.PaymentMethod]
	if label == "" {
		label = o.PaymentMethod
	}

	var buf strings.Builder
	err = receiptTmpl.Execute(&buf, receiptData{
		Order:         o,
		Items:         items,
		Settings:      settings,
		Discount:      o.Discount(),
		PaymentLabel:  label,
		DeliveryLabel: deliveryLabels[o.DeliveryType],
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
