package http

import (
	"context"
	"time"

	"github.com/reenu-kutty/dear-diary/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn           func(ctx context.Context, user models.User) (models.User, error)
	loginFn                  func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn            func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn             func(ctx context.Context, tokenString string) (models.Token, error)
	updateEmergencyContactFn func(ctx context.Context, userID int64, email string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UpdateEmergencyContact(ctx context.Context, userID int64, email string) error {
	return m.updateEmergencyContactFn(ctx, userID, email)
}

// ─────────────────────────────────────────────
// Mock EntryService
// ─────────────────────────────────────────────

type mockEntryService struct {
	createEntryFn func(ctx context.Context, userID int64, req models.EntryCreateRequest) (models.EntryWriteResponse, error)
	getEntryFn    func(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error)
	listEntriesFn func(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error)
	updateEntryFn func(ctx context.Context, userID int64, entryID string, req models.EntryUpdateRequest) (models.EntryWriteResponse, error)
	setFavoriteFn func(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error)
	deleteEntryFn func(ctx context.Context, userID int64, entryID string) error
}

func (m *mockEntryService) CreateEntry(ctx context.Context, userID int64, req models.EntryCreateRequest) (models.EntryWriteResponse, error) {
	return m.createEntryFn(ctx, userID, req)
}

func (m *mockEntryService) GetEntry(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error) {
	return m.getEntryFn(ctx, userID, entryID)
}

func (m *mockEntryService) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error) {
	return m.listEntriesFn(ctx, userID, filter)
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, userID int64, entryID string, req models.EntryUpdateRequest) (models.EntryWriteResponse, error) {
	return m.updateEntryFn(ctx, userID, entryID, req)
}

func (m *mockEntryService) SetFavorite(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error) {
	return m.setFavoriteFn(ctx, userID, entryID, favorite)
}

func (m *mockEntryService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	return m.deleteEntryFn(ctx, userID, entryID)
}

// ─────────────────────────────────────────────
// Mock analysis services
// ─────────────────────────────────────────────

type mockEmotionAnalysisService struct {
	analyzeRangeFn func(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error)
	clearCacheFn   func(ctx context.Context, userID int64) error
}

func (m *mockEmotionAnalysisService) AnalyzeRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error) {
	return m.analyzeRangeFn(ctx, userID, start, end)
}

func (m *mockEmotionAnalysisService) ClearCache(ctx context.Context, userID int64) error {
	return m.clearCacheFn(ctx, userID)
}

type mockThemeAnalysisService struct {
	analyzeMonthFn func(ctx context.Context, userID int64, start, end time.Time) (models.MonthlyThemes, error)
	clearCacheFn   func(ctx context.Context, userID int64) error
}

func (m *mockThemeAnalysisService) AnalyzeMonth(ctx context.Context, userID int64, start, end time.Time) (models.MonthlyThemes, error) {
	return m.analyzeMonthFn(ctx, userID, start, end)
}

func (m *mockThemeAnalysisService) ClearCache(ctx context.Context, userID int64) error {
	return m.clearCacheFn(ctx, userID)
}

type mockCrisisService struct {
	assessFn func(ctx context.Context, title, content string) models.CrisisAssessment
}

func (m *mockCrisisService) Assess(ctx context.Context, title, content string) models.CrisisAssessment {
	return m.assessFn(ctx, title, content)
}

type mockPromptService struct {
	dailyPromptFn func(ctx context.Context, userID int64) (string, error)
}

func (m *mockPromptService) DailyPrompt(ctx context.Context, userID int64) (string, error) {
	return m.dailyPromptFn(ctx, userID)
}
