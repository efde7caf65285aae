package billing

import (
	"time"

	"fleetops/internal/domain"
)

// AlignWeeklyEnd computes the billing end for a weekly rental. Weekly billing
// runs Monday to Monday: a rental starting on a Monday ends weekCount weeks
// later; a rental starting mid-week is billed from the next Monday, so the
// end is that Monday plus weekCount-1 further weeks. Customers picking up
// mid-week are therefore charged from the following Monday, not the pickup
// day. Confirm with the domain owner before changing this rule; it moves
// billed amounts.
func AlignWeeklyEnd(start time.Time, weekCount int) (time.Time, error) {
	if weekCount < 1 {
		return time.Time{}, domain.ValidationError{Field: "weekCount", Msg: "must be at least 1"}
	}
	if start.Weekday() == time.Monday {
		return start.AddDate(0, 0, 7*weekCount), nil
	}
	return nextMonday(start).AddDate(0, 0, 7*(weekCount-1)), nil
}

// nextMonday returns the first Monday strictly after t, keeping the clock time.
func nextMonday(t time.Time) time.Time {
	days := int(time.Monday - t.Weekday())
	if days <= 0 {
		days += 7
	}
	return t.AddDate(0, 0, days)
}
