package calc

import (
	"strconv"
	"time"

	"github.com/julianstephens/offscreen/internal/models"
)

// BuildMonthlySeries produces one MonthlyPoint per calendar day from start
// through end, both inclusive. Days without a record carry nil minute
// values so consumers render them as gaps rather than zeros. The output
// length is always the day count between the bounds regardless of how
// sparse records is.
func BuildMonthlySeries(records []models.UsageRecord, start, end time.Time) []models.MonthlyPoint {
	byDate := make(map[string]models.UsageRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	cursor := Normalize(start)
	last := Normalize(end)

	var series []models.MonthlyPoint
	for !cursor.After(last) {
		key := DateKey(cursor)
		point := models.MonthlyPoint{
			ISODate: key,
			Label:   strconv.Itoa(cursor.Day()),
		}
		if rec, ok := byDate[key]; ok {
			actual := rec.ActualMinutes
			target := rec.TargetMinutes
			point.ActualMinutes = &actual
			point.TargetMinutes = &target
		}
		series = append(series, point)
		cursor = cursor.AddDate(0, 0, 1)
	}

	return series
}
