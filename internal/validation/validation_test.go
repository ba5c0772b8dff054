package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/offscreen/internal/models"
)

func TestValidateSaveInput_Valid(t *testing.T) {
	result := ValidateSaveInput(90, 60, models.ComparisonYesterday)
	if result.HasErrors() {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
}

func TestValidateSaveInput_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		target    int
		actual    int
		wantField string
	}{
		{"target zero", 0, 60, "targetMinutes"},
		{"target negative", -5, 60, "targetMinutes"},
		{"target over one day", 1441, 60, "targetMinutes"},
		{"actual negative", 90, -1, "actualMinutes"},
		{"actual over one day", 90, 1441, "actualMinutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSaveInput(tt.target, tt.actual, models.ComparisonBest)
			if !result.HasErrors() {
				t.Fatal("expected validation errors, got none")
			}
			if _, ok := result.Errors[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestValidateSaveInput_BoundaryValuesAccepted(t *testing.T) {
	for _, tt := range []struct{ target, actual int }{
		{1, 0},
		{1440, 1440},
	} {
		result := ValidateSaveInput(tt.target, tt.actual, models.ComparisonWeekAvg)
		if result.HasErrors() {
			t.Errorf("ValidateSaveInput(%d, %d) errors: %v", tt.target, tt.actual, result.Errors)
		}
	}
}

func TestValidateSaveInput_UnknownComparison(t *testing.T) {
	result := ValidateSaveInput(90, 60, models.ComparisonMode("weekly"))
	if !result.HasErrors() {
		t.Fatal("expected validation errors for unknown comparison mode")
	}
	if _, ok := result.Errors["comparison"]; !ok {
		t.Errorf("expected error on comparison field, got %v", result.Errors)
	}
}

func TestValidateSaveInput_CollectsAllFieldErrors(t *testing.T) {
	result := ValidateSaveInput(0, -1, models.ComparisonMode("nope"))
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestFormatReport(t *testing.T) {
	clean := Result{}
	if clean.FormatReport() != "No validation errors." {
		t.Errorf("unexpected report for clean result: %q", clean.FormatReport())
	}

	result := ValidateSaveInput(0, 60, models.ComparisonBest)
	report := result.FormatReport()
	if !strings.Contains(report, "targetMinutes") {
		t.Errorf("report missing field name: %q", report)
	}
}
