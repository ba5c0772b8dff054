// Package calc holds the aggregation core: baseline resolution, reduction
// metrics, streak counting, and monthly series building. Every function is
// pure and total over its inputs; all I/O lives in the callers.
package calc

import (
	"time"

	"github.com/julianstephens/offscreen/internal/constants"
)

// Normalize truncates a timestamp to the start of its calendar day,
// preserving the location. All date comparisons in the app are day-granular.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey returns the canonical YYYY-MM-DD key for a timestamp. Two days
// compare equal iff their keys are equal.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// MonthBounds returns the first and last calendar day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
