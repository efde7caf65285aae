package billing

import (
	"time"

	"fleetops/internal/domain/models"
)

// ReportPageSize is the fixed page size used by paginated invoice reports.
const ReportPageSize = 10

// PortfolioSummary is the derived view over a collection of invoices,
// computed at call time and never cached across collection changes.
type PortfolioSummary struct {
	InvoiceCount     int     `json:"invoiceCount"`
	TotalAmount      float64 `json:"totalAmount"`
	TotalPaid        float64 `json:"totalPaid"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	OverdueCount     int     `json:"overdueCount"`
	PageCount        int     `json:"pageCount"`
}

// SummarizePortfolio totals a batch of invoices for reporting. An invoice
// counts as overdue when it is not paid and its due date is before asOf.
func SummarizePortfolio(invoices []models.Invoice, asOf time.Time) PortfolioSummary {
	out := PortfolioSummary{
		InvoiceCount: len(invoices),
		PageCount:    PageCount(len(invoices)),
	}
	for _, inv := range invoices {
		out.TotalAmount += inv.Total
		out.TotalPaid += inv.PaidAmount
		out.TotalOutstanding += inv.Remaining
		if models.NormalizePaymentStatus(inv.PaymentStatus) != models.PaymentPaid && inv.DueDate.Before(asOf) {
			out.OverdueCount++
		}
	}
	return out
}

// PageCount returns how many fixed-size report pages n records fill.
func PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + ReportPageSize - 1) / ReportPageSize
}

// Paginate splits invoices into report pages of ReportPageSize, preserving
// order. The last page may be short.
func Paginate(invoices []models.Invoice) [][]models.Invoice {
	if len(invoices) == 0 {
		return nil
	}
	pages := make([][]models.Invoice, 0, PageCount(len(invoices)))
	for start := 0; start < len(invoices); start += ReportPageSize {
		end := start + ReportPageSize
		if end > len(invoices) {
			end = len(invoices)
		}
		pages = append(pages, invoices[start:end])
	}
	return pages
}
