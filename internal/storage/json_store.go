package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/offscreen/internal/constants"
	"github.com/julianstephens/offscreen/internal/models"
)

type jsonFile struct {
	Version  int                                      `json:"version"`
	Settings models.Settings                          `json:"settings"`
	Users    map[string]models.User                   `json:"users"` // keyed by principal
	Usage    map[string]map[string]models.UsageRecord `json:"usage"` // user id -> date key -> record
}

// JSONStore is a flat-file Provider for setups that want a human-readable
// store. Everything loads into memory and saves whole-file, which keeps
// the per-day upsert atomic enough for a single local user.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Settings: models.Settings{
			DefaultTargetMinutes: constants.DefaultTargetMinutes,
			DefaultComparison:    models.ComparisonYesterday,
			Timezone:             constants.DefaultTimezone,
		},
		Users: make(map[string]models.User),
		Usage: make(map[string]map[string]models.UsageRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.file != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'offscreen init' first")
		}
		return fmt.Errorf("failed to read storage file: %w", err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse storage file: %w", err)
	}
	if file.Users == nil {
		file.Users = make(map[string]models.User)
	}
	if file.Usage == nil {
		file.Usage = make(map[string]map[string]models.UsageRecord)
	}
	s.file = &file

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.file == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.file.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.file.Settings = settings
	return s.save()
}

func (s *JSONStore) GetOrCreateUser(principal string) (models.User, error) {
	if s.file == nil {
		return models.User{}, fmt.Errorf("storage not loaded")
	}

	if user, ok := s.file.Users[principal]; ok {
		return user, nil
	}

	user := models.User{
		ID:        uuid.New().String(),
		Principal: principal,
		CreatedAt: time.Now().UTC(),
	}
	s.file.Users[principal] = user
	if err := s.save(); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *JSONStore) GetUsage(userID, date string) (models.UsageRecord, error) {
	if s.file == nil {
		return models.UsageRecord{}, fmt.Errorf("storage not loaded")
	}

	rec, ok := s.file.Usage[userID][date]
	if !ok {
		return models.UsageRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *JSONStore) ListUsage(userID, from, to string) ([]models.UsageRecord, error) {
	if s.file == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var records []models.UsageRecord
	for date, rec := range s.file.Usage[userID] {
		if date >= from && date <= to {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	return records, nil
}

func (s *JSONStore) ListUsageThrough(userID, to string) ([]models.UsageRecord, error) {
	if s.file == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var records []models.UsageRecord
	for date, rec := range s.file.Usage[userID] {
		if date <= to {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

func (s *JSONStore) GetBestUsage(userID, before string) (models.UsageRecord, error) {
	if s.file == nil {
		return models.UsageRecord{}, fmt.Errorf("storage not loaded")
	}

	var best *models.UsageRecord
	for date, rec := range s.file.Usage[userID] {
		if date >= before {
			continue
		}
		rec := rec
		if best == nil || rec.ActualMinutes < best.ActualMinutes ||
			(rec.ActualMinutes == best.ActualMinutes && rec.Date > best.Date) {
			best = &rec
		}
	}
	if best == nil {
		return models.UsageRecord{}, ErrNotFound
	}
	return *best, nil
}

func (s *JSONStore) UpsertUsage(record models.UsageRecord) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	now := time.Now().UTC()
	if existing, ok := s.file.Usage[record.UserID][record.Date]; ok {
		record.CreatedAt = existing.CreatedAt
	} else if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	if s.file.Usage[record.UserID] == nil {
		s.file.Usage[record.UserID] = make(map[string]models.UsageRecord)
	}
	s.file.Usage[record.UserID][record.Date] = record

	return s.save()
}
