package store

import (
	"context"
	"time"

	"github.com/reenu-kutty/dear-diary/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateEmergencyContact(ctx context.Context, userID int64, email string) error
}

// EntryRepository persists journal entries. All operations are owner-scoped:
// a mismatched user ID behaves exactly like a missing entry.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	GetEntry(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error)
	ListEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error)
	GetRecentEntries(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error)
	GetEntriesByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, userID int64, entryID, title, content string) (models.JournalEntry, error)
	SetFavorite(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error)
	// DeleteEntry removes the entry and returns its creation timestamp so
	// that the caller can invalidate the affected cache periods.
	DeleteEntry(ctx context.Context, userID int64, entryID string) (time.Time, error)
}

// EmotionCacheRepository persists per-day emotional analysis records.
type EmotionCacheRepository interface {
	GetByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error)
	Upsert(ctx context.Context, record models.DailyEmotionRecord) error
	Delete(ctx context.Context, userID int64, date time.Time) error
	DeleteAll(ctx context.Context, userID int64) error
}

// ThemeCacheRepository persists per-month theme analysis blobs.
type ThemeCacheRepository interface {
	Get(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlyThemeRecord, error)
	Upsert(ctx context.Context, record models.MonthlyThemeRecord) error
	Delete(ctx context.Context, userID int64, year int, month time.Month) error
	DeleteAll(ctx context.Context, userID int64) error
}
