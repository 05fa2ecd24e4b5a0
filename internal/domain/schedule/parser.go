package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

// ClockTime is a time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the minute offset from midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

var startTimeRegex = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// ParseExpectedStart extracts an expected start time from a freeform schedule
// description such as "Lunes a Viernes 8:00-17:00" or "Mon-Fri 08:00-17:00".
// The first H:MM or HH:MM occurrence anywhere in the string wins; there is no
// check that the match is actually a start time, so a description beginning
// with an end time will be taken at face value. Returns nil when no pattern
// is present.
func ParseExpectedStart(description string) *ClockTime {
	match := startTimeRegex.FindStringSubmatch(description)
	if match == nil {
		return nil
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}

	return &ClockTime{Hour: hour, Minute: minute}
}
