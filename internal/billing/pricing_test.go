package billing

import (
	"testing"
	"time"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

func TestPriceRentalWeeklyMidWeek(t *testing.T) {
	cfg := DefaultConfig()
	tuesday := date(2025, time.March, 4)
	req := models.RentalRequest{Kind: models.KindWeekly, Start: tuesday, WeekCount: 2}
	v := models.Vehicle{ID: 1, WeeklyRate: fptr(400)}

	q, err := PriceRental(cfg, req, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 800 {
		t.Fatalf("two weeks at 400 should total 800, got %v", q.Total)
	}
	if q.DurationUnits != 2 || q.Rate != 400 {
		t.Fatalf("quote units/rate wrong: %+v", q)
	}
	// Tue start bills from next Monday, so two weeks end one week after it.
	want := date(2025, time.March, 10).AddDate(0, 0, 7)
	if !q.End.Equal(want) {
		t.Fatalf("aligned end wrong, got %v want %v", q.End, want)
	}
}

func TestPriceRentalWeeklyDefaultRate(t *testing.T) {
	cfg := DefaultConfig()
	req := models.RentalRequest{Kind: models.KindWeekly, Start: date(2025, time.March, 3), WeekCount: 1}

	q, err := PriceRental(cfg, req, models.Vehicle{ID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 360 {
		t.Fatalf("missing weekly rate should fall back to 360, got %v", q.Total)
	}
}

func TestPriceRentalDailyPartialDayRoundsUp(t *testing.T) {
	cfg := DefaultConfig()
	start := date(2025, time.March, 3)
	req := models.RentalRequest{
		Kind:  models.KindDaily,
		Start: start,
		End:   start.Add(2*24*time.Hour + 3*time.Hour),
	}

	q, err := PriceRental(cfg, req, models.Vehicle{ID: 3, DailyRate: fptr(80)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DurationUnits != 3 {
		t.Fatalf("2d3h should bill 3 days, got %d", q.DurationUnits)
	}
	if q.Total != 240 {
		t.Fatalf("total wrong, got %v want 240", q.Total)
	}
}

func TestPriceRentalClaimIgnoresVehicleRates(t *testing.T) {
	cfg := DefaultConfig()
	start := date(2025, time.March, 3)
	req := models.RentalRequest{Kind: models.KindClaim, Start: start, End: start.AddDate(0, 0, 5)}
	v := models.Vehicle{ID: 4, DailyRate: fptr(55), WeeklyRate: fptr(300)}

	q, err := PriceRental(cfg, req, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Rate != cfg.ClaimDailyRate {
		t.Fatalf("claim hire must bill the claim rate, got %v", q.Rate)
	}
	if q.Total != 5*340 {
		t.Fatalf("claim total wrong, got %v want %v", q.Total, 5*340)
	}
}

func TestPriceRentalRejectsEndBeforeStart(t *testing.T) {
	cfg := DefaultConfig()
	start := date(2025, time.March, 10)
	req := models.RentalRequest{Kind: models.KindDaily, Start: start, End: start.AddDate(0, 0, -1)}

	_, err := PriceRental(cfg, req, models.Vehicle{ID: 5})
	if err == nil {
		t.Fatalf("end before start should be rejected")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestPriceRentalRejectsUnknownKind(t *testing.T) {
	cfg := DefaultConfig()
	req := models.RentalRequest{Kind: "hourly", Start: date(2025, time.March, 3)}
	if _, err := PriceRental(cfg, req, models.Vehicle{ID: 6}); !domain.IsValidation(err) {
		t.Fatalf("unknown kind should yield ValidationError, got %v", err)
	}
}

func TestResolveRateFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	zero := models.Vehicle{}
	if got := ResolveRate(cfg, zero, models.KindDaily); got != 60 {
		t.Fatalf("daily default wrong, got %v", got)
	}
	if got := ResolveRate(cfg, zero, models.KindWeekly); got != 360 {
		t.Fatalf("weekly default wrong, got %v", got)
	}
	// Non-positive stored rates also fall back.
	neg := models.Vehicle{DailyRate: fptr(0), WeeklyRate: fptr(-10)}
	if got := ResolveRate(cfg, neg, models.KindDaily); got != 60 {
		t.Fatalf("zero daily rate should fall back, got %v", got)
	}
	if got := ResolveRate(cfg, neg, models.KindWeekly); got != 360 {
		t.Fatalf("negative weekly rate should fall back, got %v", got)
	}
}
