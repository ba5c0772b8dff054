package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/internal/usage"
)

type LogCmd struct {
	Actual     int    `short:"a" help:"Minutes of device usage today." default:"-1"`
	Target     int    `short:"t" help:"Target minutes for today (defaults to your configured target)." default:"-1"`
	Comparison string `short:"c" help:"Comparison mode (yesterday|week_avg|best), defaults to your configured mode."`
}

func (c *LogCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	target := c.Target
	if target < 0 {
		target = settings.DefaultTargetMinutes
	}
	comparison := settings.DefaultComparison
	if c.Comparison != "" {
		mode, err := models.ParseComparisonMode(c.Comparison)
		if err != nil {
			return err
		}
		comparison = mode
	}

	actual := c.Actual
	if actual < 0 {
		actual, target, comparison, err = promptForUsage(target, comparison)
		if err != nil {
			return err
		}
	}

	svc := ctx.Service()
	result := svc.SaveDailyUsage(user.ID, usage.SaveInput{
		TargetMinutes: target,
		ActualMinutes: actual,
		Comparison:    comparison,
	})

	if !result.Success {
		if len(result.Errors) > 0 {
			fields := make([]string, 0, len(result.Errors))
			for field := range result.Errors {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Printf("  %s: %s\n", field, result.Errors[field])
			}
		}
		return fmt.Errorf("%s", result.Message)
	}

	fmt.Println(result.Message)
	return nil
}

// promptForUsage collects today's numbers interactively, prefilled from the
// stored defaults.
func promptForUsage(target int, comparison models.ComparisonMode) (int, int, models.ComparisonMode, error) {
	actualStr := ""
	targetStr := strconv.Itoa(target)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes used today").
				Value(&actualStr).
				Validate(validateMinutes(0, constants.MaxDayMinutes)),
			huh.NewInput().
				Title("Target minutes").
				Value(&targetStr).
				Validate(validateMinutes(constants.MinTargetMinutes, constants.MaxDayMinutes)),
			huh.NewSelect[models.ComparisonMode]().
				Title("Compare against").
				Options(
					huh.NewOption("Yesterday", models.ComparisonYesterday),
					huh.NewOption("7-day average", models.ComparisonWeekAvg),
					huh.NewOption("Best day", models.ComparisonBest),
				).
				Value(&comparison),
		),
	)
	if err := form.Run(); err != nil {
		return 0, 0, "", err
	}

	actual, err := strconv.Atoi(strings.TrimSpace(actualStr))
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid minutes: %q", actualStr)
	}
	target, err = strconv.Atoi(strings.TrimSpace(targetStr))
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid target: %q", targetStr)
	}
	return actual, target, comparison, nil
}

func validateMinutes(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number of minutes")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}
