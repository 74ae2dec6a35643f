// Package period computes the calendar ranges a report covers.
package period

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the format used for dates in JQL queries.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidMonth is returned for a month outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidYear is returned for a year below 1.
	ErrInvalidYear = errors.New("year must be a positive number")
)

// Range is an inclusive span of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}

// Month returns the range covering every day of the given month. Dates are
// built in UTC so the local timezone never shifts a day.
func Month(month, year int) (Range, error) {
	if month < 1 || month > 12 {
		return Range{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if year < 1 {
		return Range{}, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the following month normalizes to the last day of this one.
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	return Range{Start: start, End: end}, nil
}

// StartDate returns the first day formatted as YYYY-MM-DD.
func (r Range) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate returns the last day formatted as YYYY-MM-DD.
func (r Range) EndDate() string {
	return r.End.Format(DateLayout)
}

func (r Range) String() string {
	return r.StartDate() + ".." + r.EndDate()
}
