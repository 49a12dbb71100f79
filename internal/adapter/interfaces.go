// Package adapter provides the HTTP client used to talk to the journaling
// server from command-line tooling.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the wire protocol. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/reenu-kutty/dear-diary/models"
)

// ServerAdapter defines transport-agnostic communication with the journaling
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateEntry saves a new journal entry and returns it together with the
	// crisis assessment of its text.
	CreateEntry(ctx context.Context, req models.EntryCreateRequest) (models.EntryWriteResponse, error)

	// ListEntries retrieves the account's entries newest first, narrowed by
	// the filter.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.JournalEntry, error)

	// GetEntry retrieves one entry by ID.
	GetEntry(ctx context.Context, entryID string) (models.JournalEntry, error)

	// UpdateEntry rewrites an entry's title and content.
	UpdateEntry(ctx context.Context, entryID string, req models.EntryUpdateRequest) (models.EntryWriteResponse, error)

	// SetFavorite toggles the favorite flag on an entry.
	SetFavorite(ctx context.Context, entryID string, favorite bool) (models.JournalEntry, error)

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, entryID string) error

	// AnalyzeEmotions requests per-day emotion records for a date range.
	AnalyzeEmotions(ctx context.Context, start, end time.Time) ([]models.DailyEmotionRecord, error)

	// AnalyzeThemes requests the theme blob for the month the range falls in.
	AnalyzeThemes(ctx context.Context, start, end time.Time) (models.MonthlyThemes, error)

	// ClearEmotionCache drops the account's cached per-day emotion records.
	ClearEmotionCache(ctx context.Context) error

	// ClearThemeCache drops the account's cached monthly theme blobs.
	ClearThemeCache(ctx context.Context) error

	// CheckCrisis screens arbitrary text for crisis indicators.
	CheckCrisis(ctx context.Context, title, content string) (models.CrisisAssessment, error)

	// DailyPrompt fetches a reflective journaling question.
	DailyPrompt(ctx context.Context) (string, error)

	// SetEmergencyContact registers the address alerted on high-severity
	// crisis assessments. An empty email clears it.
	SetEmergencyContact(ctx context.Context, email string) error

	// ServerVersion reports the server's version string.
	ServerVersion(ctx context.Context) (string, error)
}
