package billing

import (
	"testing"
	"time"

	"fleetops/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestAlignWeeklyEndFromMonday(t *testing.T) {
	monday := date(2025, time.March, 3)
	if monday.Weekday() != time.Monday {
		t.Fatalf("fixture is not a Monday: %v", monday.Weekday())
	}

	end, err := AlignWeeklyEnd(monday, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := monday.AddDate(0, 0, 7); !end.Equal(want) {
		t.Fatalf("Monday start should end one week later, got %v want %v", end, want)
	}

	end, err = AlignWeeklyEnd(monday, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := monday.AddDate(0, 0, 21); !end.Equal(want) {
		t.Fatalf("three weeks from Monday wrong, got %v want %v", end, want)
	}
}

func TestAlignWeeklyEndMidWeek(t *testing.T) {
	wednesday := date(2025, time.March, 5)
	if wednesday.Weekday() != time.Wednesday {
		t.Fatalf("fixture is not a Wednesday: %v", wednesday.Weekday())
	}

	// One week from a mid-week start ends at the following Monday, with no
	// extra week added.
	end, err := AlignWeeklyEnd(wednesday, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nextMon := date(2025, time.March, 10)
	if !end.Equal(nextMon) {
		t.Fatalf("mid-week one-week rental should end next Monday, got %v want %v", end, nextMon)
	}

	end, err = AlignWeeklyEnd(wednesday, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := nextMon.AddDate(0, 0, 7); !end.Equal(want) {
		t.Fatalf("two-week mid-week rental wrong, got %v want %v", end, want)
	}
}

func TestAlignWeeklyEndSundayStart(t *testing.T) {
	sunday := date(2025, time.March, 9)
	end, err := AlignWeeklyEnd(sunday, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2025, time.March, 10); !end.Equal(want) {
		t.Fatalf("Sunday start should align to the very next day, got %v want %v", end, want)
	}
}

func TestAlignWeeklyEndRejectsBadWeekCount(t *testing.T) {
	for _, weeks := range []int{0, -1} {
		_, err := AlignWeeklyEnd(date(2025, time.March, 3), weeks)
		if err == nil {
			t.Fatalf("weekCount=%d should be rejected", weeks)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("weekCount=%d should yield ValidationError, got %T", weeks, err)
		}
	}
}
