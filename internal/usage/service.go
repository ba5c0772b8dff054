// Package usage orchestrates saving daily records and assembling dashboard
// snapshots from the calculation core. All persistence goes through the
// injected storage.Provider; the package holds no state of its own.
package usage

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/offscreen/internal/calc"
	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/logger"
	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/internal/storage"
	"github.com/julianstephens/offscreen/internal/utils"
	"github.com/julianstephens/offscreen/internal/validation"
)

// SaveInput is one day's usage submission.
type SaveInput struct {
	TargetMinutes int
	ActualMinutes int
	Comparison    models.ComparisonMode
}

// SaveResult reports the outcome of a save. Errors carries field-level
// validation messages; it is nil when the input was well-formed.
type SaveResult struct {
	Success bool
	Message string
	Errors  map[string]string
}

// Service wires the record store to the calculation core. Now is the
// injectable clock; tests pin it for deterministic "today".
type Service struct {
	Store storage.Provider
	Now   func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{
		Store: store,
		Now:   time.Now,
	}
}

// today returns the current calendar day in the user's configured timezone.
func (s *Service) today() time.Time {
	tz := constants.DefaultTimezone
	if settings, err := s.Store.GetSettings(); err == nil {
		tz = settings.Timezone
	}

	loc, err := utils.LoadLocation(tz)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local time", "timezone", tz, "error", err)
		loc = time.Local
	}
	return calc.Normalize(s.Now().In(loc))
}

// SaveDailyUsage validates and upserts today's record, recomputing the
// derived reduction metrics against the chosen comparison baseline.
// Validation failures and storage failures both come back as a non-success
// result; nothing is partially saved.
func (s *Service) SaveDailyUsage(userID string, in SaveInput) SaveResult {
	result := validation.ValidateSaveInput(in.TargetMinutes, in.ActualMinutes, in.Comparison)
	if result.HasErrors() {
		return SaveResult{
			Success: false,
			Message: "Check your input.",
			Errors:  result.Errors,
		}
	}

	today := s.today()

	inputs, err := s.comparisonInputs(userID, today, in.Comparison)
	if err != nil {
		logger.Error("Failed to load comparison inputs", "user_id", userID, "error", err)
		return SaveResult{Success: false, Message: "Save failed, please retry later."}
	}

	baseline := calc.ResolveBaseline(in.Comparison, float64(in.TargetMinutes), inputs)
	metrics := calc.ReductionMetrics(baseline, float64(in.ActualMinutes))

	record := models.UsageRecord{
		UserID:         userID,
		Date:           calc.DateKey(today),
		ActualMinutes:  in.ActualMinutes,
		TargetMinutes:  in.TargetMinutes,
		ReducedMinutes: metrics.ReducedMinutes,
		ReductionRate:  metrics.ReductionRate,
	}
	if err := s.Store.UpsertUsage(record); err != nil {
		logger.Error("Failed to save usage record", "user_id", userID, "date", record.Date, "error", err)
		return SaveResult{Success: false, Message: "Save failed, please retry later."}
	}

	return SaveResult{Success: true, Message: "Saved today's usage."}
}

// comparisonInputs fetches only the historical value the chosen mode needs.
func (s *Service) comparisonInputs(userID string, today time.Time, mode models.ComparisonMode) (calc.Inputs, error) {
	var inputs calc.Inputs

	switch mode {
	case models.ComparisonYesterday:
		rec, err := s.Store.GetUsage(userID, calc.DateKey(today.AddDate(0, 0, -1)))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return inputs, nil
			}
			return inputs, err
		}
		v := float64(rec.ActualMinutes)
		inputs.YesterdayMinutes = &v

	case models.ComparisonWeekAvg:
		records, err := s.Store.ListUsage(userID,
			calc.DateKey(today.AddDate(0, 0, -constants.WeekWindowDays)),
			calc.DateKey(today.AddDate(0, 0, -1)),
		)
		if err != nil {
			return inputs, err
		}
		avg := calc.Average(actualMinutes(records))
		inputs.WeekAverageMinutes = &avg

	case models.ComparisonBest:
		rec, err := s.Store.GetBestUsage(userID, calc.DateKey(today))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return inputs, nil
			}
			return inputs, err
		}
		v := float64(rec.ActualMinutes)
		inputs.BestMinutes = &v
	}

	return inputs, nil
}

// Dashboard assembles the full snapshot for a user: today's metrics, the
// three baselines, month average, streak, and the gap-filled series from
// the start of the month through today. It reads, never writes; two calls
// with no intervening save return identical data.
func (s *Service) Dashboard(userID string) (models.Dashboard, error) {
	today := s.today()
	todayKey := calc.DateKey(today)
	yesterdayKey := calc.DateKey(today.AddDate(0, 0, -1))
	weekStartKey := calc.DateKey(today.AddDate(0, 0, -constants.WeekWindowDays))
	monthStart, monthEnd := calc.MonthBounds(today)

	todayRec, recorded, err := s.optionalUsage(userID, todayKey)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	yesterdayRec, hasYesterday, err := s.optionalUsage(userID, yesterdayKey)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to load yesterday's record: %w", err)
	}

	weekRecords, err := s.Store.ListUsage(userID, weekStartKey, yesterdayKey)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to load week records: %w", err)
	}

	monthRecords, err := s.Store.ListUsage(userID, calc.DateKey(monthStart), calc.DateKey(monthEnd))
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to load month records: %w", err)
	}

	streakRecords, err := s.Store.ListUsageThrough(userID, todayKey)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to load streak records: %w", err)
	}

	bestRec, hasBest, err := s.optionalBest(userID, todayKey)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("failed to load best record: %w", err)
	}

	weekAvg := calc.Average(actualMinutes(weekRecords))

	todayMetrics := models.TodayMetrics{
		TargetMinutes: constants.DefaultTargetMinutes,
	}
	if recorded {
		todayMetrics = models.TodayMetrics{
			ActualMinutes:  todayRec.ActualMinutes,
			TargetMinutes:  todayRec.TargetMinutes,
			ReducedMinutes: todayRec.ReducedMinutes,
			ReductionRate:  todayRec.ReductionRate,
			Recorded:       true,
		}
	}

	// Baselines shown on the dashboard fall back to today's target, or
	// today's actual, before the stock default.
	fallback := float64(constants.DefaultFallbackMinutes)
	if recorded {
		fallback = float64(todayRec.TargetMinutes)
	} else if todayMetrics.ActualMinutes > 0 {
		fallback = float64(todayMetrics.ActualMinutes)
	}

	var inputs calc.Inputs
	if hasYesterday {
		v := float64(yesterdayRec.ActualMinutes)
		inputs.YesterdayMinutes = &v
	}
	inputs.WeekAverageMinutes = &weekAvg
	if hasBest {
		v := float64(bestRec.ActualMinutes)
		inputs.BestMinutes = &v
	}

	return models.Dashboard{
		Date:  todayKey,
		Today: todayMetrics,
		Comparisons: models.Comparisons{
			Yesterday: calc.ResolveBaseline(models.ComparisonYesterday, fallback, inputs),
			WeekAvg:   calc.ResolveBaseline(models.ComparisonWeekAvg, fallback, inputs),
			Best:      calc.ResolveBaseline(models.ComparisonBest, fallback, inputs),
		},
		MonthAverage: calc.Average(actualMinutes(monthRecords)),
		StreakDays:   calc.StreakDays(streakRecords, today),
		Monthly:      calc.BuildMonthlySeries(monthRecords, monthStart, today),
	}, nil
}

func (s *Service) optionalUsage(userID, date string) (models.UsageRecord, bool, error) {
	rec, err := s.Store.GetUsage(userID, date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.UsageRecord{}, false, nil
		}
		return models.UsageRecord{}, false, err
	}
	return rec, true, nil
}

func (s *Service) optionalBest(userID, before string) (models.UsageRecord, bool, error) {
	rec, err := s.Store.GetBestUsage(userID, before)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.UsageRecord{}, false, nil
		}
		return models.UsageRecord{}, false, err
	}
	return rec, true, nil
}

func actualMinutes(records []models.UsageRecord) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		values = append(values, float64(r.ActualMinutes))
	}
	return values
}
