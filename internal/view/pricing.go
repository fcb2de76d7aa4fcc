package view

import (
	"math"

	"luminax_client/internal/model"
	"luminax_client/internal/util"
)

const DefaultTaxRate = 0.10

// Totals 订单金额，内部不做舍入，只在 Display 时保留两位小数
type Totals struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func ComputeTotals(cart []model.CartItem, taxRate float64) Totals {
	var subtotal float64
	for _, item := range cart {
		subtotal += item.Course.Price
	}
	tax := subtotal * taxRate
	return Totals{
		ItemCount: len(cart),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
	}
}

func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal: util.FormatMoney(t.Subtotal),
		Tax:      util.FormatMoney(t.Tax),
		Total:    util.FormatMoney(t.Total),
	}
}

// DiscountPercent 原价高于现价时返回折扣百分比
func DiscountPercent(c model.Course) (int, bool) {
	if c.OriginalPrice == nil || *c.OriginalPrice <= c.Price || *c.OriginalPrice <= 0 {
		return 0, false
	}
	orig := *c.OriginalPrice
	return int(math.Round((orig - c.Price) / orig * 100)), true
}
