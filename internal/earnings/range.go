package earnings

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for civil dates. ISO dates
// compare lexicographically in chronological order, so inclusive range
// queries work the same on every backing store.
const DateLayout = "2006-01-02"

// Range is an inclusive [Start, End] pair of calendar dates.
// All range arithmetic is done in UTC.
type Range struct {
	Start time.Time
	End   time.Time
}

// StartDate returns the range start as a YYYY-MM-DD string.
func (r Range) StartDate() string { return r.Start.Format(DateLayout) }

// EndDate returns the range end as a YYYY-MM-DD string.
func (r Range) EndDate() string { return r.End.Format(DateLayout) }

// Contains reports whether the ISO date d falls inside the range.
func (r Range) Contains(d string) bool {
	return d >= r.StartDate() && d <= r.EndDate()
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// CivilDate truncates t to its UTC calendar date.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the single-day range [today, today].
func Today(now time.Time) Range {
	d := CivilDate(now)
	return Range{Start: d, End: d}
}

// LastDays is the trailing range [today-n, today].
func LastDays(now time.Time, n int) Range {
	d := CivilDate(now)
	return Range{Start: d.AddDate(0, 0, -n), End: d}
}

// WeeksBack is a fixed 7-day block offset n weeks into the past:
// end = today - 7n, start = end - 6. For n=1 that is the window 7 to 13
// days before today, today excluded.
func WeeksBack(now time.Time, n int) Range {
	end := CivilDate(now).AddDate(0, 0, -7*n)
	return Range{Start: end.AddDate(0, 0, -6), End: end}
}

// MonthToDate is [first day of the current month, today].
func MonthToDate(now time.Time) Range {
	d := CivilDate(now)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: first, End: d}
}
