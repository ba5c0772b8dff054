package cli

import (
	"fmt"

	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/internal/utils"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	fmt.Println("Current settings:")
	fmt.Printf("  Default target:      %d min\n", settings.DefaultTargetMinutes)
	fmt.Printf("  Default comparison:  %s\n", settings.DefaultComparison)
	fmt.Printf("  Timezone:            %s\n", settings.Timezone)
	return nil
}

type SettingsSetCmd struct {
	Target     int    `short:"t" help:"Default daily target in minutes." default:"-1"`
	Comparison string `short:"c" help:"Default comparison mode (yesterday|week_avg|best)."`
	Timezone   string `short:"z" help:"IANA timezone name (e.g. America/New_York) or 'Local'."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed := false

	if c.Target >= 0 {
		if c.Target < constants.MinTargetMinutes || c.Target > constants.MaxDayMinutes {
			return fmt.Errorf("target must be between %d and %d minutes", constants.MinTargetMinutes, constants.MaxDayMinutes)
		}
		settings.DefaultTargetMinutes = c.Target
		changed = true
	}

	if c.Comparison != "" {
		mode, err := models.ParseComparisonMode(c.Comparison)
		if err != nil {
			return err
		}
		settings.DefaultComparison = mode
		changed = true
	}

	if c.Timezone != "" {
		if !utils.ValidateTimezone(c.Timezone) {
			return fmt.Errorf("unknown timezone: %s", c.Timezone)
		}
		settings.Timezone = c.Timezone
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update, pass --target, --comparison, or --timezone")
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Settings updated.")
	return nil
}
