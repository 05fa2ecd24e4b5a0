package attendance

import (
	"math"
	"strconv"
	"strings"

	"github.com/rioplata/fichadas-backend/internal/domain/schedule"
)

// ToleranceMinutes is the grace period after the expected start before a
// first punch-in counts as late. The boundary is inclusive: expected+10 is
// still on time.
const ToleranceMinutes = 10

// Punctuality is the classification of an employee's first punch-in of a day
// against the expected start parsed from their schedule description.
type Punctuality string

const (
	PunctualityAbsent  Punctuality = "absent"
	PunctualityPresent Punctuality = "present"
	PunctualityOnTime  Punctuality = "on_time"
	PunctualityLate    Punctuality = "late"
)

// Tier buckets a compliance percentage.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierLow       Tier = "low"
)

// DayAttendance is a derived view of one employee's business day. It is
// recomputed from raw punches on every request and never persisted; punches
// can arrive between two reads of the same day.
type DayAttendance struct {
	Date           string
	FirstIn        *string
	LastOut        *string
	WorkedHours    float64
	ExpectedHours  float64
	Difference     float64
	MetExpectation bool
}

// NewDayAttendance builds the derived day record from the day's earliest "in"
// and latest "out" clock strings (HH:MM or HH:MM:SS, business-local).
// Intermediate punches do not participate in the hours figure.
func NewDayAttendance(date string, firstIn, lastOut *string, expectedDaily float64) DayAttendance {
	worked := WorkedHours(firstIn, lastOut)
	return DayAttendance{
		Date:           date,
		FirstIn:        firstIn,
		LastOut:        lastOut,
		WorkedHours:    worked,
		ExpectedHours:  expectedDaily,
		Difference:     Round2(worked - expectedDaily),
		MetExpectation: worked >= expectedDaily,
	}
}

// WorkedHours converts a first-in/last-out clock pair into worked hours,
// rounded to two decimals. Either end missing yields 0. An "out" earlier in
// the day than the "in" yields a negative value on purpose: the anomaly is
// surfaced to callers instead of being clamped, and days with worked <= 0
// never count toward summary totals.
func WorkedHours(firstIn, lastOut *string) float64 {
	if firstIn == nil || lastOut == nil {
		return 0
	}

	inMinutes, ok := minuteOfDay(*firstIn)
	if !ok {
		return 0
	}
	outMinutes, ok := minuteOfDay(*lastOut)
	if !ok {
		return 0
	}

	return Round2(float64(outMinutes-inMinutes) / 60)
}

// minuteOfDay parses "HH:MM" or "HH:MM:SS" into minutes from midnight.
// Seconds are ignored, matching the minute resolution of the hours figure.
func minuteOfDay(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return hour*60 + minute, true
}

// Classify determines punctuality for a day. Priority order: no first-in at
// all is absent; a first-in without a parseable expected start is present
// (timeliness cannot be judged); within expected+tolerance is on time;
// anything after is late.
func Classify(firstIn *string, expected *schedule.ClockTime) Punctuality {
	if firstIn == nil {
		return PunctualityAbsent
	}
	if expected == nil {
		return PunctualityPresent
	}

	actualMinutes, ok := minuteOfDay(*firstIn)
	if !ok {
		return PunctualityPresent
	}

	if actualMinutes <= expected.MinuteOfDay()+ToleranceMinutes {
		return PunctualityOnTime
	}
	return PunctualityLate
}

// ComplianceWindow scores an employee's trailing days with punch data.
type ComplianceWindow struct {
	DaysCounted int
	DaysMet     int
	Percentage  float64
	Tier        Tier
}

// ScoreCompliance computes the rolling compliance window from derived day
// records. Only days with worked > 0 enter the denominator; a day meets
// expectation when worked >= the employee's expected daily hours. No counted
// days yields 0 percent, never NaN.
func ScoreCompliance(days []DayAttendance) ComplianceWindow {
	counted := 0
	met := 0
	for _, day := range days {
		if day.WorkedHours <= 0 {
			continue
		}
		counted++
		if day.WorkedHours >= day.ExpectedHours {
			met++
		}
	}

	percentage := 0.0
	if counted > 0 {
		percentage = float64(met) / float64(counted) * 100
	}

	return ComplianceWindow{
		DaysCounted: counted,
		DaysMet:     met,
		Percentage:  percentage,
		Tier:        TierFor(percentage),
	}
}

// TierFor buckets a compliance percentage: >= 90 excellent, >= 70 good,
// below that low.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 70:
		return TierGood
	default:
		return TierLow
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
