package services

import (
	"fmt"

	"fleetops/internal/billing"
	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// EngineConfig builds the billing config, applying env overrides on top of
// the engine defaults.
func EngineConfig(env intconfig.Env) billing.Config {
	cfg := billing.DefaultConfig()
	if env.DailyRateDefault > 0 {
		cfg.DefaultDailyRate = env.DailyRateDefault
	}
	if env.WeeklyRateDefault > 0 {
		cfg.DefaultWeeklyRate = env.WeeklyRateDefault
	}
	if env.ClaimDailyRate > 0 {
		cfg.ClaimDailyRate = env.ClaimDailyRate
	}
	return cfg
}

// RentalService prices bookings and persists them.
type RentalService struct {
	VehicleRepo repositories.VehicleRepository
	RentalRepo  repositories.RentalRepository
	Config      billing.Config
	RequestID   string

	// FetchVehicle overrides the repo lookup in tests.
	FetchVehicle func(uint64) (models.Vehicle, error)
}

// Quote prices a rental request without persisting anything.
func (s RentalService) Quote(req models.RentalRequest) (billing.Quote, error) {
	if req.VehicleID == 0 {
		return billing.Quote{}, domain.ValidationError{Field: "vehicleId", Msg: "must be positive"}
	}
	v, err := s.vehicle(req.VehicleID)
	if err != nil {
		return billing.Quote{}, err
	}
	return billing.PriceRental(s.Config, req, v)
}

// CreateRental prices the request and stores the resulting booking.
func (s RentalService) CreateRental(req models.RentalRequest) (models.Rental, error) {
	q, err := s.Quote(req)
	if err != nil {
		return models.Rental{}, err
	}

	rental := models.Rental{
		VehicleID:     req.VehicleID,
		Kind:          q.Kind,
		Start:         q.Start,
		End:           q.End,
		WeekCount:     req.WeekCount,
		DurationUnits: q.DurationUnits,
		Rate:          q.Rate,
		Total:         q.Total,
		Status:        "active",
	}
	id, err := s.RentalRepo.Create(rental)
	if err != nil {
		return models.Rental{}, err
	}
	rental.ID = id

	utils.LogEvent(s.RequestID, "rental", "create",
		fmt.Sprintf("rental_id=%d vehicle_id=%d kind=%s units=%d total=%s",
			id, req.VehicleID, q.Kind, q.DurationUnits, utils.FormatAmount(q.Total)))
	return rental, nil
}

func (s RentalService) vehicle(id uint64) (models.Vehicle, error) {
	if s.FetchVehicle != nil {
		return s.FetchVehicle(id)
	}
	return s.VehicleRepo.GetByID(id)
}
