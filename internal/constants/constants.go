package constants

const (
	AppName           = "offscreen"
	DefaultConfigPath = "~/.config/offscreen/offscreen.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Minute bounds for a single calendar day
	MinTargetMinutes = 1
	MaxDayMinutes    = 24 * 60

	// DefaultFallbackMinutes is the comparison fallback when no target or
	// usage exists yet for today
	DefaultFallbackMinutes = 120

	// Defaults written by init
	DefaultTargetMinutes = 120
	DefaultTimezone      = "Local"

	// Week lookback window for the week-average baseline, in days
	WeekWindowDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "offscreen-"
	BackupFileSuffix = ".db"
)
