package billing

import (
	"math"
	"testing"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

func TestComputeLineDiscountThenVAT(t *testing.T) {
	cfg := DefaultConfig()
	lt, err := ComputeLine(cfg, models.LineItem{
		Description: "Hire charge",
		Quantity:    2,
		UnitPrice:   50,
		DiscountPct: 10,
		IncludeVAT:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lt.Gross != 100 {
		t.Fatalf("gross wrong, got %v", lt.Gross)
	}
	if lt.DiscountAmount != 10 {
		t.Fatalf("discount wrong, got %v", lt.DiscountAmount)
	}
	if lt.NetAfterDiscount != 90 {
		t.Fatalf("net wrong, got %v", lt.NetAfterDiscount)
	}
	// VAT on the discounted net: 90 * 0.20 = 18, never 100 * 0.20.
	if lt.VATAmount != 18 {
		t.Fatalf("vat wrong, got %v", lt.VATAmount)
	}
	if lt.TotalLine != 108 {
		t.Fatalf("total wrong, got %v", lt.TotalLine)
	}
}

func TestComputeLinePlain(t *testing.T) {
	cfg := DefaultConfig()
	lt, err := ComputeLine(cfg, models.LineItem{Quantity: 3, UnitPrice: 25.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lt.TotalLine != 3*25.5 {
		t.Fatalf("no discount, no VAT should be qty*price, got %v", lt.TotalLine)
	}
	if lt.VATAmount != 0 || lt.DiscountAmount != 0 {
		t.Fatalf("unexpected vat/discount: %+v", lt)
	}
}

func TestComputeLineVATExact(t *testing.T) {
	cfg := DefaultConfig()
	lt, err := ComputeLine(cfg, models.LineItem{Quantity: 7, UnitPrice: 13.37, DiscountPct: 5, IncludeVAT: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := math.Abs(lt.VATAmount - lt.NetAfterDiscount*0.20); diff > 1e-9 {
		t.Fatalf("vat must be exactly 20%% of net, drift %v", diff)
	}
}

func TestComputeLineIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	item := models.LineItem{Quantity: 1.5, UnitPrice: 42, DiscountPct: 12.5, IncludeVAT: true}

	first, err := ComputeLine(cfg, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeLine(cfg, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("same input must yield identical output: %+v vs %+v", first, second)
	}
}

func TestComputeLineValidation(t *testing.T) {
	cfg := DefaultConfig()
	bad := []models.LineItem{
		{Quantity: -1, UnitPrice: 10},
		{Quantity: 1, UnitPrice: -10},
		{Quantity: 1, UnitPrice: 10, DiscountPct: -5},
		{Quantity: 1, UnitPrice: 10, DiscountPct: 101},
	}
	for i, item := range bad {
		if _, err := ComputeLine(cfg, item); !domain.IsValidation(err) {
			t.Fatalf("case %d should yield ValidationError, got %v", i, err)
		}
	}
}
