package models

import "time"

// JournalEntry represents a single dated journal record owned by one user.
// Content is mutated only through explicit update operations; CreatedAt is
// the anchor for all derived-analysis bucketing (day and month) and does not
// change when the entry is edited.
type JournalEntry struct {
	// ID is the unique entry identifier (UUID, server-assigned).
	ID string `json:"id"`

	// UserID is the internal identifier of the owning user.
	// It is not exposed via JSON; ownership is enforced by scoped queries.
	UserID int64 `json:"-"`

	// Title is the user-provided entry title. May be empty.
	Title string `json:"title"`

	// Content is the entry body text.
	Content string `json:"content"`

	// Prompt is the AI-generated writing prompt that elicited this entry,
	// if any. Stored verbatim for display alongside the entry.
	Prompt string `json:"prompt,omitempty"`

	// IsFavorite marks the entry as a user favorite.
	IsFavorite bool `json:"is_favorite"`

	// CreatedAt is the creation timestamp. The UTC date portion determines
	// which daily emotion record and monthly theme blob the entry feeds.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the JournalEntry model.
func (e JournalEntry) TableName() string {
	return "journal_entries"
}

// Day returns the UTC calendar date of the entry's creation timestamp,
// truncated to day granularity.
func (e JournalEntry) Day() time.Time {
	y, m, d := e.CreatedAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
