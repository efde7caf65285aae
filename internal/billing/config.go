// Package billing holds the pure rental/invoice/finance calculations. Every
// function here is side-effect-free over plain values; persistence and
// presentation live elsewhere.
package billing

// Config carries the rates and tolerances every computation uses. Passed
// explicitly on each call so tests can vary rates without globals.
type Config struct {
	DefaultDailyRate  float64
	DefaultWeeklyRate float64
	// ClaimDailyRate is the statutory/contractual rate for claim hires,
	// independent of the vehicle's commercial rates.
	ClaimDailyRate float64
	VATRate        float64
	// ReconcileTolerance is the allowed drift per line between recorded
	// invoice aggregates and independently recomputed line totals.
	ReconcileTolerance float64
}

func DefaultConfig() Config {
	return Config{
		DefaultDailyRate:   60,
		DefaultWeeklyRate:  360,
		ClaimDailyRate:     340,
		VATRate:            0.20,
		ReconcileTolerance: 0.01,
	}
}
