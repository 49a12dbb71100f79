package service

import (
	"context"
	"time"

	"github.com/reenu-kutty/dear-diary/models"
)

// AuthService manages user accounts and JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UpdateEmergencyContact(ctx context.Context, userID int64, email string) error
}

// EntryService owns journal entry CRUD. Every content mutation invalidates
// the derived-analysis caches for the entry's day and month, and every saved
// text is screened for crisis indicators as a side channel that never fails
// the write.
type EntryService interface {
	CreateEntry(ctx context.Context, userID int64, req models.EntryCreateRequest) (models.EntryWriteResponse, error)
	GetEntry(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error)
	ListEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, userID int64, entryID string, req models.EntryUpdateRequest) (models.EntryWriteResponse, error)
	SetFavorite(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID int64, entryID string) error
}

// EmotionAnalysisService produces per-day emotional analysis records for a
// timestamp range, regenerating only the days whose cache is stale.
type EmotionAnalysisService interface {
	AnalyzeRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error)
	ClearCache(ctx context.Context, userID int64) error
}

// ThemeAnalysisService produces the theme blob for the calendar month the
// given range falls in.
type ThemeAnalysisService interface {
	AnalyzeMonth(ctx context.Context, userID int64, start, end time.Time) (models.MonthlyThemes, error)
	ClearCache(ctx context.Context, userID int64) error
}

// CrisisService screens entry text for signs of self-harm or suicidal
// ideation. Assessments are produced fresh on every call and never persisted.
// Assess cannot fail: any gateway or parsing problem yields the fail-safe
// non-crisis default.
type CrisisService interface {
	Assess(ctx context.Context, title, content string) models.CrisisAssessment
}

// PromptService generates a reflective journaling question from the user's
// recent entries.
type PromptService interface {
	DailyPrompt(ctx context.Context, userID int64) (string, error)
}
