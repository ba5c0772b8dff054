package cli

import (
	"fmt"
	"strings"
)

type MonthCmd struct{}

func (c *MonthCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	svc := ctx.Service()
	dash, err := svc.Dashboard(user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Usage for %s:\n\n", dash.Date[:7])

	for _, point := range dash.Monthly {
		if point.ActualMinutes == nil {
			fmt.Printf("  %2s  %s\n", point.Label, "·")
			continue
		}

		marker := " "
		if point.TargetMinutes != nil && *point.ActualMinutes <= *point.TargetMinutes {
			marker = "✓"
		}
		fmt.Printf("  %2s  %s %s %d min\n", point.Label, usageBar(*point.ActualMinutes), marker, *point.ActualMinutes)
	}

	return nil
}

// usageBar renders minutes as a proportional bar, one cell per half hour.
func usageBar(minutes int) string {
	cells := minutes / 30
	if cells > 24 {
		cells = 24
	}
	return strings.Repeat("█", cells)
}
