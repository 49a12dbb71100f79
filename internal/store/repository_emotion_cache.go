package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/models"
)

// dateLayout is the wire format for calendar-day keys in the emotion cache.
const dateLayout = "2006-01-02"

// emotionCacheRepository is the PostgreSQL-backed implementation of
// [EmotionCacheRepository] against the "emotional_analysis_cache" table.
// One row per (user_id, date); writes are upserts, so regeneration
// overwrites in place and the row count never grows past one per day.
type emotionCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmotionCacheRepository constructs an [EmotionCacheRepository] backed by
// the provided database connection and logger.
func NewEmotionCacheRepository(db *DB, logger *logger.Logger) EmotionCacheRepository {
	logger.Debug().Msg("creating emotion cache repository")
	return &emotionCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// GetByDateRange retrieves every cached daily record whose date falls in the
// closed range [start, end]. Missing days are simply absent from the result;
// an empty slice is not an error.
func (r *emotionCacheRepository) GetByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getEmotionRecords,
		userID, start.UTC().Format(dateLayout), end.UTC().Format(dateLayout))
	if err != nil {
		log.Err(err).
			Str("func", "*emotionCacheRepository.GetByDateRange").
			Int64("user_id", userID).
			Msg("failed to execute emotion cache query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.DailyEmotionRecord, 0, 31)

	for rows.Next() {
		var record models.DailyEmotionRecord
		var date time.Time
		var emotionsJSON []byte

		scanErr := rows.Scan(
			&record.UserID,
			&date,
			&record.EmotionalScore,
			&emotionsJSON,
			&record.Summary,
			&record.EntryCount,
			&record.LastEntryAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*emotionCacheRepository.GetByDateRange").
				Int64("user_id", userID).
				Msg("failed to scan emotion cache row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		record.Date = date.UTC().Format(dateLayout)
		if err := json.Unmarshal(emotionsJSON, &record.DominantEmotions); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*emotionCacheRepository.GetByDateRange").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Upsert writes the record for (record.UserID, record.Date), overwriting any
// previous row for that day. Each upsert is an independent atomic write; no
// transaction spans multiple days.
func (r *emotionCacheRepository) Upsert(ctx context.Context, record models.DailyEmotionRecord) error {
	log := logger.FromContext(ctx)

	emotionsJSON, err := json.Marshal(record.DominantEmotions)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.DB.ExecContext(ctx, upsertEmotionRecord,
		record.UserID,
		record.Date,
		record.EmotionalScore,
		emotionsJSON,
		record.Summary,
		record.EntryCount,
		record.LastEntryAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*emotionCacheRepository.Upsert").
			Int64("user_id", record.UserID).
			Str("date", record.Date).
			Msg("failed to upsert emotion cache record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the cached record for one calendar day. Deleting an absent
// row is not an error: invalidation is unconditional and idempotent.
func (r *emotionCacheRepository) Delete(ctx context.Context, userID int64, date time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteEmotionRecord, userID, date.UTC().Format(dateLayout))
	if err != nil {
		log.Err(err).
			Str("func", "*emotionCacheRepository.Delete").
			Int64("user_id", userID).
			Time("date", date).
			Msg("failed to delete emotion cache record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteAll removes every cached record belonging to the user.
func (r *emotionCacheRepository) DeleteAll(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteAllEmotionRecords, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*emotionCacheRepository.DeleteAll").
			Int64("user_id", userID).
			Msg("failed to clear emotion cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
