package storage

import (
	"errors"

	"github.com/julianstephens/offscreen/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Provider is the record store the aggregation core is fed from. Dates are
// YYYY-MM-DD keys; there is at most one usage record per (user, date) and
// UpsertUsage is last-write-wins for that pair.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Users
	GetOrCreateUser(principal string) (models.User, error)

	// Usage records
	GetUsage(userID, date string) (models.UsageRecord, error)
	ListUsage(userID, from, to string) ([]models.UsageRecord, error)
	ListUsageThrough(userID, to string) ([]models.UsageRecord, error)
	GetBestUsage(userID, before string) (models.UsageRecord, error)
	UpsertUsage(models.UsageRecord) error

	// Utils
	GetConfigPath() string
}
