package billing

import "fleetops/internal/domain/models"

// ResolveRate returns the chargeable rate for one billing unit (day or week)
// of the given rental kind. Missing or non-positive vehicle rates fall back
// to the configured defaults; claim hires always bill at the claim rate.
func ResolveRate(cfg Config, v models.Vehicle, kind string) float64 {
	switch kind {
	case models.KindWeekly:
		if v.WeeklyRate != nil && *v.WeeklyRate > 0 {
			return *v.WeeklyRate
		}
		return cfg.DefaultWeeklyRate
	case models.KindClaim:
		return cfg.ClaimDailyRate
	default:
		if v.DailyRate != nil && *v.DailyRate > 0 {
			return *v.DailyRate
		}
		return cfg.DefaultDailyRate
	}
}
