package timeclock

import "time"

// Business is the fixed company timezone (UTC-3, Buenos Aires). Every
// "today" and day-grouping decision in the engine happens at this offset;
// a business day starts at midnight UTC-3, not midnight UTC.
var Business = time.FixedZone("UTC-3", -3*60*60)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// Now returns the current instant in the business timezone.
func Now() time.Time {
	return time.Now().In(Business)
}

// Today returns the current business date as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateLayout)
}

// BusinessDate returns the business calendar date of t.
func BusinessDate(t time.Time) string {
	return t.In(Business).Format(DateLayout)
}

// Clock returns the business time-of-day of t as HH:MM:SS.
func Clock(t time.Time) string {
	return t.In(Business).Format(ClockLayout)
}

// CurrentWeek returns the Sunday-based calendar week containing t.
func CurrentWeek(t time.Time) (start, end string) {
	local := t.In(Business)
	sunday := local.AddDate(0, 0, -int(local.Weekday()))
	return sunday.Format(DateLayout), sunday.AddDate(0, 0, 6).Format(DateLayout)
}

// PreviousWeek returns the Sunday-based week before the one containing t.
func PreviousWeek(t time.Time) (start, end string) {
	local := t.In(Business)
	sunday := local.AddDate(0, 0, -int(local.Weekday())-7)
	return sunday.Format(DateLayout), sunday.AddDate(0, 0, 6).Format(DateLayout)
}
