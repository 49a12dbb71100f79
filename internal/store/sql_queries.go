package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/reenu-kutty/dear-diary/models"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, emergency_contact_email, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, emergency_contact_email, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, name, password_hash, emergency_contact_email, created_at
    FROM users
    WHERE user_id = $1;`

	updateEmergencyContact = `UPDATE users
    SET emergency_contact_email = $1
    WHERE user_id = $2;`

	entryColumns = `id, user_id, title, content, prompt, is_favorite, created_at, updated_at`

	createEntry = `INSERT INTO journal_entries (id, user_id, title, content, prompt)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + entryColumns + `;`

	getEntry = `SELECT ` + entryColumns + `
    FROM journal_entries
    WHERE user_id = $1 AND id = $2;`

	getEntriesByDateRange = `SELECT ` + entryColumns + `
    FROM journal_entries
    WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
    ORDER BY created_at ASC;`

	getRecentEntries = `SELECT ` + entryColumns + `
    FROM journal_entries
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2;`

	updateEntry = `UPDATE journal_entries
    SET title = $1, content = $2, updated_at = NOW()
    WHERE user_id = $3 AND id = $4
    RETURNING ` + entryColumns + `;`

	setEntryFavorite = `UPDATE journal_entries
    SET is_favorite = $1, updated_at = NOW()
    WHERE user_id = $2 AND id = $3
    RETURNING ` + entryColumns + `;`

	deleteEntry = `DELETE FROM journal_entries
    WHERE user_id = $1 AND id = $2
    RETURNING created_at;`

	emotionCacheColumns = `user_id, date, emotional_score, dominant_emotions, summary, entry_count, last_entry_at`

	getEmotionRecords = `SELECT ` + emotionCacheColumns + `
    FROM emotional_analysis_cache
    WHERE user_id = $1 AND date >= $2 AND date <= $3;`

	upsertEmotionRecord = `INSERT INTO emotional_analysis_cache
    (user_id, date, emotional_score, dominant_emotions, summary, entry_count, last_entry_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    ON CONFLICT (user_id, date) DO UPDATE SET
        emotional_score   = EXCLUDED.emotional_score,
        dominant_emotions = EXCLUDED.dominant_emotions,
        summary           = EXCLUDED.summary,
        entry_count       = EXCLUDED.entry_count,
        last_entry_at     = EXCLUDED.last_entry_at,
        updated_at        = NOW();`

	deleteEmotionRecord = `DELETE FROM emotional_analysis_cache
    WHERE user_id = $1 AND date = $2;`

	deleteAllEmotionRecords = `DELETE FROM emotional_analysis_cache
    WHERE user_id = $1;`

	themeCacheColumns = `user_id, year, month, themes, summary, entry_count, last_entry_at`

	getThemeRecord = `SELECT ` + themeCacheColumns + `
    FROM monthly_theme_cache
    WHERE user_id = $1 AND year = $2 AND month = $3;`

	upsertThemeRecord = `INSERT INTO monthly_theme_cache
    (user_id, year, month, themes, summary, entry_count, last_entry_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    ON CONFLICT (user_id, year, month) DO UPDATE SET
        themes        = EXCLUDED.themes,
        summary       = EXCLUDED.summary,
        entry_count   = EXCLUDED.entry_count,
        last_entry_at = EXCLUDED.last_entry_at,
        updated_at    = NOW();`

	deleteThemeRecord = `DELETE FROM monthly_theme_cache
    WHERE user_id = $1 AND year = $2 AND month = $3;`

	deleteAllThemeRecords = `DELETE FROM monthly_theme_cache
    WHERE user_id = $1;`
)

// buildListEntriesQuery builds the dynamic listing query: always scoped to
// the user, newest first, with optional search and favorites filters.
func buildListEntriesQuery(userID int64, filter models.EntryFilter) (string, []any, error) {
	builder := sq.Select(
		"id", "user_id", "title", "content", "prompt",
		"is_favorite", "created_at", "updated_at",
	).
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	if filter.FavoritesOnly {
		builder = builder.Where(sq.Eq{"is_favorite": true})
	}

	return builder.ToSql()
}
