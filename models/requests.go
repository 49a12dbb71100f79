package models

import "time"

// EntryCreateRequest is the body of POST /api/entries.
type EntryCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Prompt  string `json:"prompt,omitempty"`
}

// EntryUpdateRequest is the body of PUT /api/entries/{id}.
type EntryUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FavoriteRequest is the body of PUT /api/entries/{id}/favorite.
type FavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

// EntryFilter narrows entry listings. Zero value means "all entries,
// newest first".
type EntryFilter struct {
	// Search matches title or content case-insensitively when non-empty.
	Search string

	// FavoritesOnly restricts the listing to favorite entries.
	FavoritesOnly bool
}

// AnalysisRangeRequest is the body of the emotional and theme analysis
// endpoints: a closed timestamp range. For theme analysis the range is
// expected to span exactly one calendar month.
type AnalysisRangeRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CrisisCheckRequest is the body of POST /api/analysis/crisis.
type CrisisCheckRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EmergencyContactRequest is the body of PUT /api/user/emergency-contact.
type EmergencyContactRequest struct {
	Email string `json:"email"`
}
