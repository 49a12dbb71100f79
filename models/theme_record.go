package models

import "time"

// MonthlyThemeRecord is the cached theme analysis of one user's entries for
// one calendar month. It shares the freshness fingerprint discipline of
// [DailyEmotionRecord] (EntryCount + LastEntryAt), scoped to the month.
type MonthlyThemeRecord struct {
	// UserID is the owning user. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Year and Month identify the calendar month the blob covers.
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	// Themes lists up to 3 prominent themes, most prominent first.
	Themes []string `json:"themes"`

	// Summary is a short free-text description of the month's focus areas.
	Summary string `json:"summary"`

	// EntryCount is the number of entries folded into this record.
	EntryCount int `json:"entry_count"`

	// LastEntryAt is the creation timestamp of the newest contributing entry.
	LastEntryAt time.Time `json:"last_entry_at"`
}

// TableName returns the name of the database table
// associated with the MonthlyThemeRecord model.
func (r MonthlyThemeRecord) TableName() string {
	return "monthly_theme_cache"
}

// MonthlyThemes is the caller-facing result of a theme analysis: the cached
// or freshly generated themes without cache bookkeeping fields.
type MonthlyThemes struct {
	Themes  []string `json:"themes"`
	Summary string   `json:"summary"`
}
