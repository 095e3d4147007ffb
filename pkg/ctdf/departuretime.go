package ctdf

import (
	"fmt"
	"time"
)

const DepartureTimeLayout = "15:04"

// DepartureTime is a time of day with minute precision.
type DepartureTime struct {
	minutes int
}

type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format %q, expected HH:MM", e.Value)
}

func ParseDepartureTime(value string) (DepartureTime, error) {
	// time.Parse accepts a single digit hour for "15"
	if len(value) != len(DepartureTimeLayout) {
		return DepartureTime{}, &TimeFormatError{Value: value}
	}

	parsed, err := time.Parse(DepartureTimeLayout, value)
	if err != nil {
		return DepartureTime{}, &TimeFormatError{Value: value}
	}

	return DepartureTime{minutes: parsed.Hour()*60 + parsed.Minute()}, nil
}

func (d DepartureTime) Hour() int {
	return d.minutes / 60
}

func (d DepartureTime) Minute() int {
	return d.minutes % 60
}

func (d DepartureTime) After(other DepartureTime) bool {
	return d.minutes > other.minutes
}

func (d DepartureTime) Before(other DepartureTime) bool {
	return d.minutes < other.minutes
}

func (d DepartureTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour(), d.Minute())
}
