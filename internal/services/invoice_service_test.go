package services

import (
	"testing"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func invoiceColumns() []string {
	return []string{
		"id", "number", "customer_name", "subtotal", "vat_amount", "total",
		"paid_amount", "remaining_amount", "due_date", "payment_status", "created_at",
	}
}

func lineColumns() []string {
	return []string{"id", "description", "quantity", "unit_price", "discount_pct", "include_vat"}
}

func TestInvoiceServiceBreakdown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	due := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM invoices").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(invoiceColumns()).
			AddRow(5, "INV-005", "Acme Ltd", 90.0, 18.0, 108.0, 50.0, 58.0, due, "pending", due))
	mock.ExpectQuery("FROM invoice_lines").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(lineColumns()).
			AddRow(1, "Hire charge", 2.0, 50.0, 10.0, true))

	svc := InvoiceService{
		InvoiceRepo: repositories.InvoiceRepository{DB: db},
		Config:      billing.DefaultConfig(),
	}

	inv, b, err := svc.Breakdown(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Number != "INV-005" || len(inv.Lines) != 1 {
		t.Fatalf("invoice load wrong: %+v", inv)
	}
	if b.DiscountTotal != 10 || b.Total != 98 {
		t.Fatalf("breakdown wrong: %+v", b)
	}
	if b.RecomputedTotal != 108 {
		t.Fatalf("line recompute wrong, got %v", b.RecomputedTotal)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInvoiceServiceRecordPaymentClampsRemaining(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	due := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM invoices").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(invoiceColumns()).
			AddRow(7, "INV-007", "", 100.0, 0.0, 100.0, 80.0, 20.0, due, "pending", due))
	mock.ExpectQuery("FROM invoice_lines").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(lineColumns()))

	// Payment of 50 overpays by 30: stored remaining clamps to 0 and the
	// invoice flips to paid.
	mock.ExpectExec("UPDATE invoices").
		WithArgs(130.0, 0.0, "paid", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := InvoiceService{
		InvoiceRepo: repositories.InvoiceRepository{DB: db},
		Config:      billing.DefaultConfig(),
	}

	if err := svc.RecordPayment(7, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
