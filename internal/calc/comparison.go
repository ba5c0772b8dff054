package calc

import "github.com/julianstephens/offscreen/internal/models"

// Inputs carries the optional historical values baseline resolution can
// draw from. A nil field means no prior data exists for that lookback
// window. Only the field matching the requested mode is consulted.
type Inputs struct {
	YesterdayMinutes   *float64
	WeekAverageMinutes *float64
	BestMinutes        *float64
}

// ResolveBaseline picks the minute value today's usage is compared against.
// It prefers real history and degrades to the sanitized fallback when the
// matching historical value is absent or not positive. A stored zero-minute
// day intentionally counts as "no usable baseline". The result is always
// a positive number.
func ResolveBaseline(mode models.ComparisonMode, fallbackMinutes float64, in Inputs) float64 {
	fallback := fallbackMinutes
	if fallback <= 0 {
		fallback = 1
	}

	var historical *float64
	switch mode {
	case models.ComparisonYesterday:
		historical = in.YesterdayMinutes
	case models.ComparisonWeekAvg:
		historical = in.WeekAverageMinutes
	case models.ComparisonBest:
		historical = in.BestMinutes
	default:
		return fallback
	}

	if historical == nil || *historical <= 0 {
		return fallback
	}
	return *historical
}
