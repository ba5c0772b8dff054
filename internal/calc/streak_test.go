package calc

import (
	"testing"
	"time"

	"github.com/julianstephens/offscreen/internal/models"
)

func day(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", key)
	if err != nil {
		t.Fatalf("bad test date %q: %v", key, err)
	}
	return parsed
}

func rec(date string, actual, target int) models.UsageRecord {
	return models.UsageRecord{Date: date, ActualMinutes: actual, TargetMinutes: target}
}

func TestStreakDays_NoRecords(t *testing.T) {
	if got := StreakDays(nil, day(t, "2025-06-15")); got != 0 {
		t.Errorf("StreakDays() = %d, want 0", got)
	}
}

func TestStreakDays_TodayMissing(t *testing.T) {
	records := []models.UsageRecord{
		rec("2025-06-14", 50, 60),
		rec("2025-06-13", 50, 60),
	}
	if got := StreakDays(records, day(t, "2025-06-15")); got != 0 {
		t.Errorf("StreakDays() = %d, want 0 when today has no record", got)
	}
}

func TestStreakDays_StopsAtFailure(t *testing.T) {
	// Today succeeds, yesterday went over target.
	records := []models.UsageRecord{
		rec("2025-06-15", 50, 60),
		rec("2025-06-14", 70, 60),
	}
	if got := StreakDays(records, day(t, "2025-06-15")); got != 1 {
		t.Errorf("StreakDays() = %d, want 1", got)
	}
}

func TestStreakDays_StopsAtGap(t *testing.T) {
	// Three successful days ending today, then a gap on the fourth.
	records := []models.UsageRecord{
		rec("2025-06-15", 40, 60),
		rec("2025-06-14", 60, 60),
		rec("2025-06-13", 30, 60),
		// 2025-06-12 missing
		rec("2025-06-11", 10, 60),
	}
	if got := StreakDays(records, day(t, "2025-06-15")); got != 3 {
		t.Errorf("StreakDays() = %d, want 3", got)
	}
}

func TestStreakDays_TodayOverTarget(t *testing.T) {
	records := []models.UsageRecord{
		rec("2025-06-15", 90, 60),
		rec("2025-06-14", 30, 60),
	}
	if got := StreakDays(records, day(t, "2025-06-15")); got != 0 {
		t.Errorf("StreakDays() = %d, want 0 when today fails", got)
	}
}

func TestStreakDays_ExactlyOnTargetCounts(t *testing.T) {
	records := []models.UsageRecord{
		rec("2025-06-15", 60, 60),
	}
	if got := StreakDays(records, day(t, "2025-06-15")); got != 1 {
		t.Errorf("StreakDays() = %d, want 1 when actual == target", got)
	}
}

func TestStreakDays_CrossesMonthBoundary(t *testing.T) {
	records := []models.UsageRecord{
		rec("2025-07-01", 30, 60),
		rec("2025-06-30", 30, 60),
		rec("2025-06-29", 30, 60),
	}
	if got := StreakDays(records, day(t, "2025-07-01")); got != 3 {
		t.Errorf("StreakDays() = %d, want 3 across month boundary", got)
	}
}

func TestStreakDays_IgnoresTimeOfDay(t *testing.T) {
	records := []models.UsageRecord{
		rec("2025-06-15", 30, 60),
	}
	today := time.Date(2025, 6, 15, 23, 45, 12, 0, time.UTC)
	if got := StreakDays(records, today); got != 1 {
		t.Errorf("StreakDays() = %d, want 1 regardless of time of day", got)
	}
}
