package calc

// Reduction holds the derived metrics for a single day. ReducedMinutes is
// signed: positive means usage came in under the baseline.
type Reduction struct {
	ReducedMinutes float64
	ReductionRate  float64
}

// ReductionMetrics derives reduced minutes and the reduction rate from a
// baseline and the day's actual usage. The baseline is clamped to a minimum
// of 1 so the rate can never divide by zero. The rate may exceed 1.0 in
// magnitude when the baseline is tiny; that is intentional.
func ReductionMetrics(baseline, actualMinutes float64) Reduction {
	base := baseline
	if base <= 0 {
		base = 1
	}
	reduced := base - actualMinutes
	return Reduction{
		ReducedMinutes: reduced,
		ReductionRate:  reduced / base,
	}
}

// Average returns the arithmetic mean of values. An empty input returns 0
// so callers never need to special-case missing history.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
