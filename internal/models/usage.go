package models

import (
	"fmt"
	"time"
)

// ComparisonMode determines which historical aggregate today's usage is
// compared against.
type ComparisonMode string

const (
	ComparisonYesterday ComparisonMode = "yesterday"
	ComparisonWeekAvg   ComparisonMode = "week_avg"
	ComparisonBest      ComparisonMode = "best"
)

// ParseComparisonMode parses a user-supplied comparison mode string.
func ParseComparisonMode(s string) (ComparisonMode, error) {
	switch ComparisonMode(s) {
	case ComparisonYesterday, ComparisonWeekAvg, ComparisonBest:
		return ComparisonMode(s), nil
	default:
		return "", fmt.Errorf("invalid comparison mode: %s (expected yesterday|week_avg|best)", s)
	}
}

// User maps an external authentication principal to an internal identifier.
type User struct {
	ID        string    `json:"id"`
	Principal string    `json:"principal"`
	CreatedAt time.Time `json:"created_at"`
}

// UsageRecord is one day's logged device usage. At most one record exists
// per (user, date); saves are upserts keyed by that pair.
type UsageRecord struct {
	UserID         string    `json:"user_id"`
	Date           string    `json:"date"` // YYYY-MM-DD format
	ActualMinutes  int       `json:"actual_minutes"`
	TargetMinutes  int       `json:"target_minutes"`
	ReducedMinutes float64   `json:"reduced_minutes"`
	ReductionRate  float64   `json:"reduction_rate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MonthlyPoint is one calendar day in a monthly series. ActualMinutes and
// TargetMinutes are nil when no record exists for that day; a recorded zero
// stays distinguishable from a missing day.
type MonthlyPoint struct {
	ISODate       string `json:"iso_date"` // YYYY-MM-DD format
	Label         string `json:"label"`    // day of month, no leading zero
	ActualMinutes *int   `json:"actual_minutes"`
	TargetMinutes *int   `json:"target_minutes"`
}

// TodayMetrics is the dashboard card for the current day.
type TodayMetrics struct {
	ActualMinutes  int     `json:"actual_minutes"`
	TargetMinutes  int     `json:"target_minutes"`
	ReducedMinutes float64 `json:"reduced_minutes"`
	ReductionRate  float64 `json:"reduction_rate"`
	Recorded       bool    `json:"recorded"`
}

// Comparisons holds the resolved baseline for each comparison mode.
type Comparisons struct {
	Yesterday float64 `json:"yesterday"`
	WeekAvg   float64 `json:"week_avg"`
	Best      float64 `json:"best"`
}

// Dashboard is the full snapshot served to the presentation layer. It is
// derived fresh from stored records on every read.
type Dashboard struct {
	Date         string         `json:"date"` // YYYY-MM-DD format
	Today        TodayMetrics   `json:"today"`
	Comparisons  Comparisons    `json:"comparisons"`
	MonthAverage float64        `json:"month_average"`
	StreakDays   int            `json:"streak_days"`
	Monthly      []MonthlyPoint `json:"monthly"`
}
