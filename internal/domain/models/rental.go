package models

import "time"

// Rental kinds. Claim hires bill at a statutory daily rate instead of the
// vehicle's commercial rate.
const (
	KindDaily  = "daily"
	KindWeekly = "weekly"
	KindClaim  = "claim"
)

// RentalRequest is a booking before pricing. Weekly rentals carry WeekCount
// and no end instant; daily/claim rentals carry an explicit End.
type RentalRequest struct {
	VehicleID uint64    `json:"vehicleId"`
	Kind      string    `json:"kind"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end,omitempty"`
	WeekCount int       `json:"weekCount,omitempty"`
}

// Rental is a priced booking as persisted.
type Rental struct {
	ID            int64     `json:"id"`
	VehicleID     uint64    `json:"vehicleId"`
	Kind          string    `json:"kind"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	WeekCount     int       `json:"weekCount,omitempty"`
	DurationUnits int       `json:"durationUnits"`
	Rate          float64   `json:"rate"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
}

// IsRentalKind reports whether s is a kind the pricer understands.
func IsRentalKind(s string) bool {
	switch s {
	case KindDaily, KindWeekly, KindClaim:
		return true
	}
	return false
}
