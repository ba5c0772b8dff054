package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/offscreen/internal/models"
)

const usageColumns = "user_id, date, actual_minutes, target_minutes, reduced_minutes, reduction_rate, created_at, updated_at"

func (s *SQLiteStore) GetUsage(userID, date string) (models.UsageRecord, error) {
	row := s.db.QueryRow(
		"SELECT "+usageColumns+" FROM usage_records WHERE user_id = ? AND date = ?",
		userID, date,
	)
	return scanUsage(row)
}

func (s *SQLiteStore) ListUsage(userID, from, to string) ([]models.UsageRecord, error) {
	rows, err := s.db.Query(
		"SELECT "+usageColumns+" FROM usage_records WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date ASC",
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsage(rows)
}

func (s *SQLiteStore) ListUsageThrough(userID, to string) ([]models.UsageRecord, error) {
	rows, err := s.db.Query(
		"SELECT "+usageColumns+" FROM usage_records WHERE user_id = ? AND date <= ? ORDER BY date DESC",
		userID, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsage(rows)
}

func (s *SQLiteStore) GetBestUsage(userID, before string) (models.UsageRecord, error) {
	// Minimum actual minutes strictly before the given date; ties resolve
	// to the most recent day.
	row := s.db.QueryRow(
		"SELECT "+usageColumns+" FROM usage_records WHERE user_id = ? AND date < ? ORDER BY actual_minutes ASC, date DESC LIMIT 1",
		userID, before,
	)
	return scanUsage(row)
}

func (s *SQLiteStore) UpsertUsage(record models.UsageRecord) error {
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO usage_records (user_id, date, actual_minutes, target_minutes, reduced_minutes, reduction_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			actual_minutes = excluded.actual_minutes,
			target_minutes = excluded.target_minutes,
			reduced_minutes = excluded.reduced_minutes,
			reduction_rate = excluded.reduction_rate,
			updated_at = excluded.updated_at`,
		record.UserID, record.Date, record.ActualMinutes, record.TargetMinutes,
		record.ReducedMinutes, record.ReductionRate,
		record.CreatedAt.Format(time.RFC3339), record.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert usage record: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUsage(row rowScanner) (models.UsageRecord, error) {
	var rec models.UsageRecord
	var createdAt, updatedAt string

	err := row.Scan(
		&rec.UserID, &rec.Date, &rec.ActualMinutes, &rec.TargetMinutes,
		&rec.ReducedMinutes, &rec.ReductionRate, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UsageRecord{}, ErrNotFound
		}
		return models.UsageRecord{}, err
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.UsageRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.UsageRecord{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return rec, nil
}

func collectUsage(rows *sql.Rows) ([]models.UsageRecord, error) {
	var records []models.UsageRecord
	for rows.Next() {
		rec, err := scanUsage(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", err)
	}
	return records, nil
}
