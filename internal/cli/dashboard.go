package cli

import (
	"fmt"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	svc := ctx.Service()
	dash, err := svc.Dashboard(user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Dashboard for %s:\n\n", dash.Date)

	if dash.Today.Recorded {
		fmt.Printf("  Today:       %d min used of %d min target\n", dash.Today.ActualMinutes, dash.Today.TargetMinutes)
		fmt.Printf("  Reduced:     %s (%.0f%%)\n", formatMinutes(dash.Today.ReducedMinutes), dash.Today.ReductionRate*100)
	} else {
		fmt.Printf("  Today:       not logged yet (target %d min)\n", dash.Today.TargetMinutes)
	}

	fmt.Println()
	fmt.Printf("  Yesterday:   %s\n", formatMinutes(dash.Comparisons.Yesterday))
	fmt.Printf("  7-day avg:   %s\n", formatMinutes(dash.Comparisons.WeekAvg))
	fmt.Printf("  Best day:    %s\n", formatMinutes(dash.Comparisons.Best))
	fmt.Println()
	fmt.Printf("  Month avg:   %s\n", formatMinutes(dash.MonthAverage))
	fmt.Printf("  Streak:      %s\n", formatStreak(dash.StreakDays))

	return nil
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
