package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/offscreen/internal/cli"
	"github.com/julianstephens/offscreen/internal/constants"
	apperrors "github.com/julianstephens/offscreen/internal/errors"
	"github.com/julianstephens/offscreen/internal/identity"
	"github.com/julianstephens/offscreen/internal/logger"
	"github.com/julianstephens/offscreen/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/offscreen/offscreen.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize offscreen storage."`
	Login     cli.LoginCmd     `cmd:"" help:"Sign in with an account identifier."`
	Logout    cli.LogoutCmd    `cmd:"" help:"Sign out."`
	Whoami    cli.WhoamiCmd    `cmd:"" help:"Show the signed-in account."`
	Log       cli.LogCmd       `cmd:"" help:"Log today's device usage."`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show today's dashboard."`
	Month     cli.MonthCmd     `cmd:"" help:"Show this month's daily usage."`
	Streak    cli.StreakCmd    `cmd:"" help:"Show the current streak."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks."`
	Settings  struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Update settings."`
	} `cmd:"" help:"Manage settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("offscreen"),
		kong.Description("Daily screen-time reduction tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		ConfigDir: filepath.Dir(CLI.Config),
		Debug:     CLI.Debug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Storage type follows the config file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:    store,
		Identity: identity.NewKeyringProvider(),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
