package billing

import (
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

// LineTotals is the computed breakdown for one invoice line.
type LineTotals struct {
	Gross            float64 `json:"gross"`
	DiscountAmount   float64 `json:"discountAmount"`
	NetAfterDiscount float64 `json:"netAfterDiscount"`
	VATAmount        float64 `json:"vatAmount"`
	TotalLine        float64 `json:"totalLine"`
}

// ComputeLine prices a single invoice line. VAT applies to the discounted
// net, never the gross; swapping that order changes totals and is wrong.
func ComputeLine(cfg Config, item models.LineItem) (LineTotals, error) {
	if item.Quantity < 0 {
		return LineTotals{}, domain.ValidationError{Field: "quantity", Msg: "must not be negative"}
	}
	if item.UnitPrice < 0 {
		return LineTotals{}, domain.ValidationError{Field: "unitPrice", Msg: "must not be negative"}
	}
	if item.DiscountPct < 0 || item.DiscountPct > 100 {
		return LineTotals{}, domain.ValidationError{Field: "discountPct", Msg: "must be between 0 and 100"}
	}

	gross := item.Quantity * item.UnitPrice
	discount := (item.DiscountPct / 100) * gross
	net := gross - discount

	var vat float64
	if item.IncludeVAT {
		vat = net * cfg.VATRate
	}

	return LineTotals{
		Gross:            gross,
		DiscountAmount:   discount,
		NetAfterDiscount: net,
		VATAmount:        vat,
		TotalLine:        net + vat,
	}, nil
}
