// Package biztime provides time utilities for the engine.
// All storage and transport use UTC; timestamps never rely on the
// implicit local timezone.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfYearUTC returns January 1st 00:00:00 UTC of the given year.
func StartOfYearUTC(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
