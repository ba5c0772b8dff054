package calc

import (
	"time"

	"github.com/julianstephens/offscreen/internal/models"
)

// StreakDays counts consecutive days ending at today where actual usage
// stayed at or under target. The walk starts at today and moves backward
// one day at a time; a missing day or a day over target stops it. A missing
// record for today itself yields 0.
func StreakDays(records []models.UsageRecord, today time.Time) int {
	if len(records) == 0 {
		return 0
	}

	byDate := make(map[string]models.UsageRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	cursor := Normalize(today)
	streak := 0
	for {
		rec, ok := byDate[DateKey(cursor)]
		if !ok {
			break
		}
		if rec.ActualMinutes > rec.TargetMinutes {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}
