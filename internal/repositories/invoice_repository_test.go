package repositories

import (
	"testing"
	"time"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func invoiceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "number", "customer_name", "subtotal", "vat_amount", "total",
		"paid_amount", "remaining_amount", "due_date", "payment_status", "created_at",
	})
}

func TestInvoiceRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	due := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM invoices").
		WithArgs(int64(3)).
		WillReturnRows(invoiceRows().
			AddRow(3, "INV-0003", "Acme Ltd", 90.0, 18.0, 108.0, 50.0, 58.0, due, "unpaid", due))
	mock.ExpectQuery("FROM invoice_lines").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "quantity", "unit_price", "discount_pct", "include_vat"}).
			AddRow(1, "Vehicle hire", 2.0, 50.0, 10.0, true))

	repo := InvoiceRepository{DB: db}
	inv, err := repo.GetByID(3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if inv.Number != "INV-0003" {
		t.Fatalf("number = %q", inv.Number)
	}
	if inv.PaymentStatus != "pending" {
		t.Fatalf("legacy unpaid status not normalised, got %q", inv.PaymentStatus)
	}
	if len(inv.Lines) != 1 || inv.Lines[0].Description != "Vehicle hire" {
		t.Fatalf("lines = %+v", inv.Lines)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInvoiceRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM invoices").
		WithArgs(int64(99)).
		WillReturnRows(invoiceRows())

	repo := InvoiceRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestInvoiceRepositoryListPendingIncludesLegacyUnpaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`payment_status IN \(\?, 'unpaid'\)`).
		WithArgs("pending").
		WillReturnRows(invoiceRows().
			AddRow(2, "INV-0002", "", 100.0, 0.0, 100.0, 0.0, 100.0, now, "unpaid", now).
			AddRow(1, "INV-0001", "", 50.0, 10.0, 60.0, 0.0, 60.0, now, "pending", now))

	repo := InvoiceRepository{DB: db}
	list, err := repo.List("pending", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(list))
	}
	if list[0].ID != 2 {
		t.Fatalf("expected newest first, got id %d", list[0].ID)
	}
}

func TestInvoiceRepositoryRecordPaymentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE invoices").
		WithArgs(30.0, 70.0, "pending", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := InvoiceRepository{DB: db}
	if err := repo.RecordPayment(8, 30, 70, false); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestInvoiceRepositoryCreateRejectsEmptyNumber(t *testing.T) {
	repo := InvoiceRepository{}
	if _, err := repo.Create(models.Invoice{Number: "  "}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
