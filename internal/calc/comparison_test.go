package calc

import (
	"testing"

	"github.com/julianstephens/offscreen/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestResolveBaseline_PrefersHistory(t *testing.T) {
	got := ResolveBaseline(models.ComparisonYesterday, 120, Inputs{YesterdayMinutes: fptr(90)})
	if got != 90 {
		t.Errorf("ResolveBaseline() = %v, want 90", got)
	}
}

func TestResolveBaseline_FallsBackWhenAbsent(t *testing.T) {
	got := ResolveBaseline(models.ComparisonYesterday, 120, Inputs{})
	if got != 120 {
		t.Errorf("ResolveBaseline() = %v, want 120", got)
	}
}

func TestResolveBaseline_TreatsStoredZeroAsNoBaseline(t *testing.T) {
	// A recorded 0-minute day is deliberately not a usable baseline; it
	// falls back just like a missing day.
	got := ResolveBaseline(models.ComparisonYesterday, 120, Inputs{YesterdayMinutes: fptr(0)})
	if got != 120 {
		t.Errorf("ResolveBaseline() = %v, want 120", got)
	}
}

func TestResolveBaseline_SanitizesFallback(t *testing.T) {
	tests := []struct {
		name     string
		fallback float64
		want     float64
	}{
		{"zero fallback", 0, 1},
		{"negative fallback", -30, 1},
		{"positive fallback", 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBaseline(models.ComparisonBest, tt.fallback, Inputs{})
			if got != tt.want {
				t.Errorf("ResolveBaseline(fallback=%v) = %v, want %v", tt.fallback, got, tt.want)
			}
		})
	}
}

func TestResolveBaseline_SelectsFieldByMode(t *testing.T) {
	in := Inputs{
		YesterdayMinutes:   fptr(100),
		WeekAverageMinutes: fptr(200),
		BestMinutes:        fptr(50),
	}

	if got := ResolveBaseline(models.ComparisonYesterday, 1, in); got != 100 {
		t.Errorf("yesterday baseline = %v, want 100", got)
	}
	if got := ResolveBaseline(models.ComparisonWeekAvg, 1, in); got != 200 {
		t.Errorf("week average baseline = %v, want 200", got)
	}
	if got := ResolveBaseline(models.ComparisonBest, 1, in); got != 50 {
		t.Errorf("best baseline = %v, want 50", got)
	}
}

func TestResolveBaseline_UnknownModeUsesFallback(t *testing.T) {
	got := ResolveBaseline(models.ComparisonMode("bogus"), 45, Inputs{YesterdayMinutes: fptr(90)})
	if got != 45 {
		t.Errorf("ResolveBaseline() = %v, want 45", got)
	}
}
