package models

// Settings are the persisted user preferences.
type Settings struct {
	DefaultTargetMinutes int            `json:"default_target_minutes"`
	DefaultComparison    ComparisonMode `json:"default_comparison"`
	Timezone             string         `json:"timezone"` // IANA name or "Local"
}
