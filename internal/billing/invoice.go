package billing

import (
	"math"

	"fleetops/internal/domain/models"
)

// InvoiceBreakdown is the aggregated view of one invoice. Recorded and
// recomputed totals are both carried: the recorded subtotal/VAT fields are
// the display source of truth, while line totals are recomputed independently
// for the itemized table. They may diverge by rounding; neither is silently
// reconciled into the other.
type InvoiceBreakdown struct {
	Net           float64      `json:"net"`
	VAT           float64      `json:"vat"`
	DiscountTotal float64      `json:"discountTotal"`
	Total         float64      `json:"total"`
	Paid          float64      `json:"paid"`
	// Owing is clamped at zero for display; OwingRaw keeps the signed value
	// so overpayments stay visible.
	Owing    float64 `json:"owing"`
	OwingRaw float64 `json:"owingRaw"`
	Overpaid bool    `json:"overpaid"`

	Lines           []LineTotals `json:"lines"`
	RecordedTotal   float64      `json:"recordedTotal"`
	RecomputedTotal float64      `json:"recomputedTotal"`
	// PrecisionAmbiguous flags recorded-vs-recomputed drift beyond the
	// configured tolerance times the line count. Reported, never fatal.
	PrecisionAmbiguous bool `json:"precisionAmbiguous"`
}

// AggregateInvoice sums line computations and reconciles them against the
// invoice's recorded amounts. An invoice with no lines yields an all-zero
// breakdown rather than an error.
func AggregateInvoice(cfg Config, inv models.Invoice) (InvoiceBreakdown, error) {
	if len(inv.Lines) == 0 {
		return InvoiceBreakdown{Lines: []LineTotals{}}, nil
	}

	lines := make([]LineTotals, 0, len(inv.Lines))
	var discountTotal, recomputed float64
	for _, item := range inv.Lines {
		lt, err := ComputeLine(cfg, item)
		if err != nil {
			return InvoiceBreakdown{}, err
		}
		lines = append(lines, lt)
		discountTotal += lt.DiscountAmount
		recomputed += lt.TotalLine
	}

	net := inv.Subtotal
	vat := inv.VATAmount
	total := net + vat - discountTotal
	owingRaw := total - inv.PaidAmount

	owing := owingRaw
	if owing < 0 {
		owing = 0
	}

	tolerance := cfg.ReconcileTolerance * float64(len(inv.Lines))
	ambiguous := math.Abs(inv.Total-recomputed) > tolerance

	return InvoiceBreakdown{
		Net:                net,
		VAT:                vat,
		DiscountTotal:      discountTotal,
		Total:              total,
		Paid:               inv.PaidAmount,
		Owing:              owing,
		OwingRaw:           owingRaw,
		Overpaid:           owingRaw < 0,
		Lines:              lines,
		RecordedTotal:      inv.Total,
		RecomputedTotal:    recomputed,
		PrecisionAmbiguous: ambiguous,
	}, nil
}
