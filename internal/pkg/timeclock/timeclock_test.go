package timeclock

import (
	"testing"
	"time"
)

func TestBusinessDateCrossesMidnight(t *testing.T) {
	// 01:30 UTC is still the previous day at UTC-3.
	instant := time.Date(2026, 1, 1, 1, 30, 0, 0, time.UTC)
	if got := BusinessDate(instant); got != "2025-12-31" {
		t.Errorf("BusinessDate = %q, want 2025-12-31", got)
	}
	if got := Clock(instant); got != "22:30:00" {
		t.Errorf("Clock = %q, want 22:30:00", got)
	}
}

func TestCurrentWeek(t *testing.T) {
	// Wednesday 2026-08-26 falls in the Sunday-based week 08-23..08-29.
	wednesday := time.Date(2026, 8, 26, 12, 0, 0, 0, Business)
	start, end := CurrentWeek(wednesday)
	if start != "2026-08-23" || end != "2026-08-29" {
		t.Errorf("CurrentWeek = %s..%s, want 2026-08-23..2026-08-29", start, end)
	}

	// A Sunday starts its own week.
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, Business)
	start, end = CurrentWeek(sunday)
	if start != "2026-08-23" || end != "2026-08-29" {
		t.Errorf("CurrentWeek on Sunday = %s..%s, want 2026-08-23..2026-08-29", start, end)
	}
}

func TestPreviousWeek(t *testing.T) {
	wednesday := time.Date(2026, 8, 26, 12, 0, 0, 0, Business)
	start, end := PreviousWeek(wednesday)
	if start != "2026-08-16" || end != "2026-08-22" {
		t.Errorf("PreviousWeek = %s..%s, want 2026-08-16..2026-08-22", start, end)
	}
}
