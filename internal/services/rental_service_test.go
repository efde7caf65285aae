package services

import (
	"testing"
	"time"

	"fleetops/internal/billing"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func weeklyRate(v float64) *float64 { return &v }

func TestRentalServiceQuoteWeekly(t *testing.T) {
	svc := RentalService{
		Config: billing.DefaultConfig(),
		FetchVehicle: func(id uint64) (models.Vehicle, error) {
			return models.Vehicle{ID: id, WeeklyRate: weeklyRate(400)}, nil
		},
	}

	tuesday := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	q, err := svc.Quote(models.RentalRequest{VehicleID: 1, Kind: models.KindWeekly, Start: tuesday, WeekCount: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 800 {
		t.Fatalf("quote total wrong, got %v", q.Total)
	}
	if q.End.Weekday() != time.Monday {
		t.Fatalf("weekly rental must end on a Monday, got %v", q.End.Weekday())
	}
}

func TestRentalServiceQuoteValidation(t *testing.T) {
	svc := RentalService{
		Config: billing.DefaultConfig(),
		FetchVehicle: func(id uint64) (models.Vehicle, error) {
			return models.Vehicle{ID: id}, nil
		},
	}

	_, err := svc.Quote(models.RentalRequest{VehicleID: 1, Kind: models.KindWeekly, Start: time.Now(), WeekCount: 0})
	if !domain.IsValidation(err) {
		t.Fatalf("bad week count should yield ValidationError, got %v", err)
	}

	_, err = svc.Quote(models.RentalRequest{Kind: models.KindDaily})
	if !domain.IsValidation(err) {
		t.Fatalf("missing vehicle id should yield ValidationError, got %v", err)
	}
}

func TestRentalServiceCreatePersistsQuote(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO rentals").
		WillReturnResult(sqlmock.NewResult(9, 1))

	svc := RentalService{
		RentalRepo: repositories.RentalRepository{DB: db},
		Config:     billing.DefaultConfig(),
		FetchVehicle: func(id uint64) (models.Vehicle, error) {
			return models.Vehicle{ID: id}, nil
		},
	}

	monday := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	rental, err := svc.CreateRental(models.RentalRequest{VehicleID: 3, Kind: models.KindWeekly, Start: monday, WeekCount: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rental.ID != 9 {
		t.Fatalf("rental id not taken from insert, got %d", rental.ID)
	}
	if rental.Total != 360 {
		t.Fatalf("default weekly rate should apply, got %v", rental.Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
