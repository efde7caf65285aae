package models

import "time"

// Payment statuses. Older records use "unpaid"; the boundary normalizes that
// to pending so the engine only ever sees one status set.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

// LineItem is one billable entry on an invoice. Quantity is usually a whole
// number but fractional values are accepted for time-based items.
type LineItem struct {
	ID          int64   `json:"id,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	DiscountPct float64 `json:"discountPct"`
	IncludeVAT  bool    `json:"includeVAT"`
}

// Invoice carries recorded aggregate fields alongside its lines. The recorded
// subtotal/VAT/total are persisted as entered; billing recomputes line totals
// independently and shows both.
type Invoice struct {
	ID            int64      `json:"id"`
	Number        string     `json:"number"`
	CustomerName  string     `json:"customerName,omitempty"`
	Lines         []LineItem `json:"lines,omitempty"`
	Subtotal      float64    `json:"subtotal"`
	VATAmount     float64    `json:"vatAmount"`
	Total         float64    `json:"total"`
	PaidAmount    float64    `json:"paidAmount"`
	Remaining     float64    `json:"remaining"`
	DueDate       time.Time  `json:"dueDate"`
	PaymentStatus string     `json:"paymentStatus"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
}

// NormalizePaymentStatus maps legacy status spellings onto the canonical set.
func NormalizePaymentStatus(s string) string {
	switch s {
	case "unpaid", "":
		return PaymentPending
	default:
		return s
	}
}
