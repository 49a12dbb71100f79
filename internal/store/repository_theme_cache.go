package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/models"
)

// themeCacheRepository is the PostgreSQL-backed implementation of
// [ThemeCacheRepository] against the "monthly_theme_cache" table.
// One blob per (user_id, year, month), upserted in place.
type themeCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewThemeCacheRepository constructs a [ThemeCacheRepository] backed by the
// provided database connection and logger.
func NewThemeCacheRepository(db *DB, logger *logger.Logger) ThemeCacheRepository {
	logger.Debug().Msg("creating theme cache repository")
	return &themeCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// Get retrieves the cached blob for one calendar month.
//
// Returns [ErrCacheRecordNotFound] when no blob exists; the caller treats
// that as "absent", never as a failure.
func (r *themeCacheRepository) Get(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlyThemeRecord, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getThemeRecord, userID, year, int(month))

	var record models.MonthlyThemeRecord
	var monthNumber int
	var themesJSON []byte

	err := row.Scan(
		&record.UserID,
		&record.Year,
		&monthNumber,
		&themesJSON,
		&record.Summary,
		&record.EntryCount,
		&record.LastEntryAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MonthlyThemeRecord{}, ErrCacheRecordNotFound
		}
		log.Err(err).
			Str("func", "*themeCacheRepository.Get").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", int(month)).
			Msg("failed to scan theme cache row")
		return models.MonthlyThemeRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record.Month = time.Month(monthNumber)
	if err := json.Unmarshal(themesJSON, &record.Themes); err != nil {
		return models.MonthlyThemeRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// Upsert writes the blob for (record.UserID, record.Year, record.Month),
// overwriting any previous blob for that month.
func (r *themeCacheRepository) Upsert(ctx context.Context, record models.MonthlyThemeRecord) error {
	log := logger.FromContext(ctx)

	themesJSON, err := json.Marshal(record.Themes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.DB.ExecContext(ctx, upsertThemeRecord,
		record.UserID,
		record.Year,
		int(record.Month),
		themesJSON,
		record.Summary,
		record.EntryCount,
		record.LastEntryAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*themeCacheRepository.Upsert").
			Int64("user_id", record.UserID).
			Int("year", record.Year).
			Int("month", int(record.Month)).
			Msg("failed to upsert theme cache record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the cached blob for one calendar month. Deleting an absent
// blob is not an error.
func (r *themeCacheRepository) Delete(ctx context.Context, userID int64, year int, month time.Month) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteThemeRecord, userID, year, int(month))
	if err != nil {
		log.Err(err).
			Str("func", "*themeCacheRepository.Delete").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", int(month)).
			Msg("failed to delete theme cache record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteAll removes every cached blob belonging to the user.
func (r *themeCacheRepository) DeleteAll(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteAllThemeRecords, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*themeCacheRepository.DeleteAll").
			Int64("user_id", userID).
			Msg("failed to clear theme cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
