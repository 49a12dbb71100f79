package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/models"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. It executes all journal entry CRUD operations against
// the "journal_entries" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, entry_id, etc.).
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry persists a new journal entry and returns the fully populated
// [models.JournalEntry] with server-assigned timestamps.
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createEntry,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Prompt)

	var saved models.JournalEntry
	if err := scanEntryRow(row, &saved); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to insert journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetEntry retrieves a single entry owned by userID.
//
// Returns [ErrEntryNotFound] when no row matches the (user_id, id) pair.
func (r *entryRepository) GetEntry(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getEntry, userID, entryID)

	var entry models.JournalEntry
	if err := scanEntryRow(row, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "*entryRepository.GetEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to scan journal entry row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListEntries retrieves the user's entries newest first, narrowed by the
// optional search and favorites filters.
func (r *entryRepository) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", userID).
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", userID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// GetRecentEntries retrieves the user's most recent entries, newest first,
// capped at limit. Used to build context for prompt generation.
func (r *entryRepository) GetRecentEntries(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getRecentEntries, userID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.GetRecentEntries").
			Int64("user_id", userID).
			Msg("failed to execute recent entries query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// GetEntriesByDateRange retrieves every entry with a creation timestamp in
// the closed range [start, end], ordered oldest first. The ascending order is
// relied upon by the analysis engines when concatenating a day's entries.
func (r *entryRepository) GetEntriesByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getEntriesByDateRange, userID, start, end)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.GetEntriesByDateRange").
			Int64("user_id", userID).
			Time("start", start).
			Time("end", end).
			Msg("failed to execute date range query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// UpdateEntry rewrites the title and content of an existing entry and bumps
// its updated_at timestamp. CreatedAt never changes on update; the entry
// stays anchored to its original calendar day.
//
// Returns [ErrEntryNotFound] when no row matches the (user_id, id) pair.
func (r *entryRepository) UpdateEntry(ctx context.Context, userID int64, entryID, title, content string) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateEntry, title, content, userID, entryID)

	var entry models.JournalEntry
	if err := scanEntryRow(row, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "*entryRepository.UpdateEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to update journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// SetFavorite flips the favorite flag of an existing entry.
//
// Returns [ErrEntryNotFound] when no row matches the (user_id, id) pair.
func (r *entryRepository) SetFavorite(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, setEntryFavorite, favorite, userID, entryID)

	var entry models.JournalEntry
	if err := scanEntryRow(row, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "*entryRepository.SetFavorite").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to set favorite flag")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// DeleteEntry removes the entry and returns its creation timestamp, which
// the caller needs to invalidate the affected day and month caches.
//
// Returns [ErrEntryNotFound] when no row matches the (user_id, id) pair.
func (r *entryRepository) DeleteEntry(ctx context.Context, userID int64, entryID string) (time.Time, error) {
	log := logger.FromContext(ctx)

	var createdAt time.Time
	row := r.DB.QueryRowContext(ctx, deleteEntry, userID, entryID)
	if err := row.Scan(&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to delete journal entry")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return createdAt, nil
}

func scanEntryRow(row *sql.Row, entry *models.JournalEntry) error {
	return row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.Prompt,
		&entry.IsFavorite,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

func collectEntries(rows *sql.Rows) ([]models.JournalEntry, error) {
	results := make([]models.JournalEntry, 0, 50)

	for rows.Next() {
		var entry models.JournalEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Title,
			&entry.Content,
			&entry.Prompt,
			&entry.IsFavorite,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
