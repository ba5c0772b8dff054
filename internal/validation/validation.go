package validation

import (
	"fmt"

	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/models"
)

// Result maps field names to human-readable validation messages. An empty
// map means the input is acceptable.
type Result struct {
	Errors map[string]string
}

// HasErrors returns true if any field failed validation.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// FormatReport returns a human-readable report of all field errors.
func (r *Result) FormatReport() string {
	if !r.HasErrors() {
		return "No validation errors."
	}

	report := "Validation errors:\n"
	for field, msg := range r.Errors {
		report += fmt.Sprintf("- %s: %s\n", field, msg)
	}
	return report
}

func (r *Result) add(field, msg string) {
	if r.Errors == nil {
		r.Errors = map[string]string{}
	}
	r.Errors[field] = msg
}

// ValidateSaveInput checks a daily usage submission. Target must be within
// [1,1440], actual within [0,1440], and the comparison mode must be one of
// the known variants. No partial acceptance: callers save only when the
// result carries no errors.
func ValidateSaveInput(targetMinutes, actualMinutes int, comparison models.ComparisonMode) Result {
	var result Result

	if targetMinutes < constants.MinTargetMinutes || targetMinutes > constants.MaxDayMinutes {
		result.add("targetMinutes", fmt.Sprintf("target minutes must be between %d and %d", constants.MinTargetMinutes, constants.MaxDayMinutes))
	}

	if actualMinutes < 0 || actualMinutes > constants.MaxDayMinutes {
		result.add("actualMinutes", fmt.Sprintf("actual minutes must be between 0 and %d", constants.MaxDayMinutes))
	}

	if _, err := models.ParseComparisonMode(string(comparison)); err != nil {
		result.add("comparison", err.Error())
	}

	return result
}
