package billing

import (
	"fmt"
	"testing"
	"time"

	"fleetops/internal/domain/models"
)

func TestSummarizePortfolio(t *testing.T) {
	asOf := date(2025, time.March, 15)
	invoices := []models.Invoice{
		{Total: 100, PaidAmount: 100, Remaining: 0, PaymentStatus: models.PaymentPaid, DueDate: date(2025, time.March, 1)},
		{Total: 200, PaidAmount: 50, Remaining: 150, PaymentStatus: models.PaymentPending, DueDate: date(2025, time.March, 10)},
		{Total: 300, PaidAmount: 0, Remaining: 300, PaymentStatus: models.PaymentPending, DueDate: date(2025, time.March, 20)},
		// Legacy spelling still counts as unpaid.
		{Total: 50, PaidAmount: 0, Remaining: 50, PaymentStatus: "unpaid", DueDate: date(2025, time.March, 2)},
	}

	s := SummarizePortfolio(invoices, asOf)
	if s.TotalAmount != 650 || s.TotalPaid != 150 || s.TotalOutstanding != 500 {
		t.Fatalf("totals wrong: %+v", s)
	}
	// Paid-but-past-due does not count; pending-and-future does not count.
	if s.OverdueCount != 2 {
		t.Fatalf("overdue count wrong, got %d", s.OverdueCount)
	}
	if s.InvoiceCount != 4 || s.PageCount != 1 {
		t.Fatalf("counts wrong: %+v", s)
	}
}

func TestPageCount(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 10: 1, 11: 2, 20: 2, 23: 3}
	for n, want := range cases {
		if got := PageCount(n); got != want {
			t.Fatalf("PageCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestPaginateTwentyThreeInvoices(t *testing.T) {
	invoices := make([]models.Invoice, 23)
	for i := range invoices {
		invoices[i] = models.Invoice{ID: int64(i + 1), Number: fmt.Sprintf("INV-%03d", i+1)}
	}

	pages := Paginate(invoices)
	if len(pages) != 3 {
		t.Fatalf("23 invoices should fill 3 pages, got %d", len(pages))
	}
	if len(pages[0]) != 10 || len(pages[1]) != 10 || len(pages[2]) != 3 {
		t.Fatalf("page sizes wrong: %d/%d/%d", len(pages[0]), len(pages[1]), len(pages[2]))
	}
	// Order preserved across the page split.
	if pages[2][0].ID != 21 {
		t.Fatalf("page order broken, got id %d", pages[2][0].ID)
	}
}
