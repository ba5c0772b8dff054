package calc

import (
	"math"
	"testing"
)

func TestReductionMetrics_Improvement(t *testing.T) {
	m := ReductionMetrics(100, 80)
	if m.ReducedMinutes != 20 {
		t.Errorf("ReducedMinutes = %v, want 20", m.ReducedMinutes)
	}
	if m.ReductionRate != 0.2 {
		t.Errorf("ReductionRate = %v, want 0.2", m.ReductionRate)
	}
}

func TestReductionMetrics_OverBaseline(t *testing.T) {
	m := ReductionMetrics(60, 90)
	if m.ReducedMinutes != -30 {
		t.Errorf("ReducedMinutes = %v, want -30", m.ReducedMinutes)
	}
	if m.ReductionRate != -0.5 {
		t.Errorf("ReductionRate = %v, want -0.5", m.ReductionRate)
	}
}

func TestReductionMetrics_SanitizesZeroBaseline(t *testing.T) {
	// Baseline clamps to 1, so the rate can legitimately exceed 1.0 in
	// magnitude. That matches the displayed metric, not an error.
	m := ReductionMetrics(0, 50)
	if m.ReducedMinutes != -50 {
		t.Errorf("ReducedMinutes = %v, want -50", m.ReducedMinutes)
	}
	if m.ReductionRate != -50 {
		t.Errorf("ReductionRate = %v, want -50", m.ReductionRate)
	}
}

func TestReductionMetrics_NeverNaN(t *testing.T) {
	for _, baseline := range []float64{-10, 0, 0.5, 1, 1440} {
		m := ReductionMetrics(baseline, 0)
		if math.IsNaN(m.ReductionRate) || math.IsInf(m.ReductionRate, 0) {
			t.Errorf("ReductionMetrics(%v, 0) produced non-finite rate %v", baseline, m.ReductionRate)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty returns zero", nil, 0},
		{"single value", []float64{10}, 10},
		{"two values", []float64{10, 20}, 15},
		{"mixed values", []float64{0, 30, 60}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.values); got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
