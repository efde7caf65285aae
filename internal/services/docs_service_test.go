package services

import (
	"testing"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/domain/models"
)

func TestDocsServiceGenerateInvoicePDF(t *testing.T) {
	loader := func(id int64) (models.Invoice, error) {
		lines := make([]models.LineItem, 0, 12)
		for i := 0; i < 12; i++ {
			lines = append(lines, models.LineItem{
				Description: "Hire day",
				Quantity:    1,
				UnitPrice:   60,
				IncludeVAT:  true,
			})
		}
		return models.Invoice{
			ID:           id,
			Number:       "INV-0042",
			CustomerName: "Tester",
			Subtotal:     720,
			VATAmount:    144,
			Total:        864,
			PaidAmount:   100,
			DueDate:      time.Now().AddDate(0, 0, 14),
			Lines:        lines,
		}, nil
	}

	svc := DocsService{Config: billing.DefaultConfig(), InvoiceLoader: loader}

	pdf, filename, err := svc.GenerateInvoicePDF(42)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateInvoicePDF returned empty data")
	}
}

func TestDocsServiceGenerateHireAgreement(t *testing.T) {
	loader := func(id int64) (models.Rental, models.Vehicle, error) {
		start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
		return models.Rental{
				ID:            id,
				VehicleID:     7,
				Kind:          models.KindClaim,
				Start:         start,
				End:           start.AddDate(0, 0, 5),
				DurationUnits: 5,
				Rate:          340,
				Total:         1700,
			}, models.Vehicle{
				ID:           7,
				Registration: "LX21 ABC",
				Make:         "Ford",
				Model:        "Transit",
			}, nil
	}

	svc := DocsService{Config: billing.DefaultConfig(), RentalLoader: loader}

	pdf, filename, err := svc.GenerateHireAgreement(1, ClaimExtras{
		DeliveryCharge:   50,
		CollectionCharge: 50,
		InsurancePerDay:  10,
		StorageTotal:     80,
	})
	if err != nil {
		t.Fatalf("GenerateHireAgreement returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateHireAgreement returned empty data")
	}
}
