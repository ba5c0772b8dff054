package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/migration"
	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaultSettings := models.Settings{
			DefaultTargetMinutes: constants.DefaultTargetMinutes,
			DefaultComparison:    models.ComparisonYesterday,
			Timezone:             constants.DefaultTimezone,
		}
		if err := s.SaveSettings(defaultSettings); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'offscreen init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for health checks.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(nil)
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	return runner.ValidateVersion()
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow("SELECT default_target_minutes, default_comparison, timezone FROM settings WHERE id = 1")

	var settings models.Settings
	var comparison string
	if err := row.Scan(&settings.DefaultTargetMinutes, &comparison, &settings.Timezone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, ErrNotFound
		}
		return models.Settings{}, err
	}
	settings.DefaultComparison = models.ComparisonMode(comparison)

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, default_target_minutes, default_comparison, timezone)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			default_target_minutes = excluded.default_target_minutes,
			default_comparison = excluded.default_comparison,
			timezone = excluded.timezone`,
		settings.DefaultTargetMinutes, string(settings.DefaultComparison), settings.Timezone,
	)
	return err
}

func (s *SQLiteStore) GetOrCreateUser(principal string) (models.User, error) {
	user, err := s.getUserByPrincipal(principal)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	user = models.User{
		ID:        uuid.New().String(),
		Principal: principal,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(`
		INSERT INTO users (id, principal, created_at) VALUES (?, ?, ?)
		ON CONFLICT(principal) DO NOTHING`,
		user.ID, user.Principal, user.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	// Re-read so a concurrent insert for the same principal resolves to a
	// single row.
	return s.getUserByPrincipal(principal)
}

func (s *SQLiteStore) getUserByPrincipal(principal string) (models.User, error) {
	row := s.db.QueryRow("SELECT id, principal, created_at FROM users WHERE principal = ?", principal)

	var user models.User
	var createdAt string
	if err := row.Scan(&user.ID, &user.Principal, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	user.CreatedAt = parsed

	return user, nil
}
