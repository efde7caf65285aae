package billing

import (
	"math"
	"time"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

// Quote is the priced base hire for a booking. Claim extras (delivery,
// collection, insurance, storage) are added by the document layer, not here.
type Quote struct {
	Kind          string    `json:"kind"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationUnits int       `json:"durationUnits"`
	Rate          float64   `json:"rate"`
	Total         float64   `json:"total"`
}

// PriceRental resolves the rate, aligns the billing period, and prices the
// booking. Daily/claim kinds bill whole days with partial days rounded up;
// weekly kinds bill WeekCount weeks against the Monday-aligned end.
func PriceRental(cfg Config, req models.RentalRequest, v models.Vehicle) (Quote, error) {
	if !models.IsRentalKind(req.Kind) {
		return Quote{}, domain.ValidationError{Field: "kind", Msg: "must be daily, weekly or claim"}
	}
	rate := ResolveRate(cfg, v, req.Kind)

	if req.Kind == models.KindWeekly {
		end, err := AlignWeeklyEnd(req.Start, req.WeekCount)
		if err != nil {
			return Quote{}, err
		}
		return Quote{
			Kind:          req.Kind,
			Start:         req.Start,
			End:           end,
			DurationUnits: req.WeekCount,
			Rate:          rate,
			Total:         float64(req.WeekCount) * rate,
		}, nil
	}

	if req.End.Before(req.Start) {
		return Quote{}, domain.ValidationError{Field: "end", Msg: "end is before start"}
	}
	units := wholeDays(req.Start, req.End)
	return Quote{
		Kind:          req.Kind,
		Start:         req.Start,
		End:           req.End,
		DurationUnits: units,
		Rate:          rate,
		Total:         float64(units) * rate,
	}, nil
}

// wholeDays counts billable days between two instants, rounding partial days
// up. Equal instants bill zero days.
func wholeDays(start, end time.Time) int {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	return int(math.Ceil(span.Hours() / 24))
}
