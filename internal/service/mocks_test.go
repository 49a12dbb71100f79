package service

import (
	"context"
	"errors"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/notify"
	"github.com/reenu-kutty/dear-diary/models"
)

var (
	errStorage = errors.New("storage error")
	errGateway = errors.New("gateway error")
)

// ─────────────────────────────────────────────
// Mock: ai.Completer
// ─────────────────────────────────────────────

type mockCompleter struct {
	completeFn func(ctx context.Context, req ai.Request) (string, error)

	// calls records every request in order.
	calls []ai.Request
}

func (m *mockCompleter) Complete(ctx context.Context, req ai.Request) (string, error) {
	m.calls = append(m.calls, req)
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return "", nil
}

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn             func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn        func(ctx context.Context, login string) (models.User, error)
	findUserByIDFn           func(ctx context.Context, userID int64) (models.User, error)
	updateEmergencyContactFn func(ctx context.Context, userID int64, email string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateEmergencyContact(ctx context.Context, userID int64, email string) error {
	if m.updateEmergencyContactFn != nil {
		return m.updateEmergencyContactFn(ctx, userID, email)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.EntryRepository
// ─────────────────────────────────────────────

type mockEntryRepository struct {
	createEntryFn           func(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	getEntryFn              func(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error)
	listEntriesFn           func(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error)
	getRecentEntriesFn      func(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error)
	getEntriesByDateRangeFn func(ctx context.Context, userID int64, start, end time.Time) ([]models.JournalEntry, error)
	updateEntryFn           func(ctx context.Context, userID int64, entryID, title, content string) (models.JournalEntry, error)
	setFavoriteFn           func(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error)
	deleteEntryFn           func(ctx context.Context, userID int64, entryID string) (time.Time, error)
}

func (m *mockEntryRepository) CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if m.createEntryFn != nil {
		return m.createEntryFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockEntryRepository) GetEntry(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error) {
	if m.getEntryFn != nil {
		return m.getEntryFn(ctx, userID, entryID)
	}
	return models.JournalEntry{}, nil
}

func (m *mockEntryRepository) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error) {
	if m.listEntriesFn != nil {
		return m.listEntriesFn(ctx, userID, filter)
	}
	return nil, nil
}

func (m *mockEntryRepository) GetRecentEntries(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error) {
	if m.getRecentEntriesFn != nil {
		return m.getRecentEntriesFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockEntryRepository) GetEntriesByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.JournalEntry, error) {
	if m.getEntriesByDateRangeFn != nil {
		return m.getEntriesByDateRangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockEntryRepository) UpdateEntry(ctx context.Context, userID int64, entryID, title, content string) (models.JournalEntry, error) {
	if m.updateEntryFn != nil {
		return m.updateEntryFn(ctx, userID, entryID, title, content)
	}
	return models.JournalEntry{}, nil
}

func (m *mockEntryRepository) SetFavorite(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error) {
	if m.setFavoriteFn != nil {
		return m.setFavoriteFn(ctx, userID, entryID, favorite)
	}
	return models.JournalEntry{}, nil
}

func (m *mockEntryRepository) DeleteEntry(ctx context.Context, userID int64, entryID string) (time.Time, error) {
	if m.deleteEntryFn != nil {
		return m.deleteEntryFn(ctx, userID, entryID)
	}
	return time.Time{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.EmotionCacheRepository
// ─────────────────────────────────────────────

type mockEmotionCacheRepository struct {
	getByDateRangeFn func(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error)
	upsertFn         func(ctx context.Context, record models.DailyEmotionRecord) error
	deleteFn         func(ctx context.Context, userID int64, date time.Time) error
	deleteAllFn      func(ctx context.Context, userID int64) error

	// upserts and deletes record the mutations applied to the cache.
	upserts []models.DailyEmotionRecord
	deletes []time.Time
}

func (m *mockEmotionCacheRepository) GetByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error) {
	if m.getByDateRangeFn != nil {
		return m.getByDateRangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockEmotionCacheRepository) Upsert(ctx context.Context, record models.DailyEmotionRecord) error {
	m.upserts = append(m.upserts, record)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, record)
	}
	return nil
}

func (m *mockEmotionCacheRepository) Delete(ctx context.Context, userID int64, date time.Time) error {
	m.deletes = append(m.deletes, date)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, date)
	}
	return nil
}

func (m *mockEmotionCacheRepository) DeleteAll(ctx context.Context, userID int64) error {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ThemeCacheRepository
// ─────────────────────────────────────────────

type themeCacheKey struct {
	year  int
	month time.Month
}

type mockThemeCacheRepository struct {
	getFn       func(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlyThemeRecord, error)
	upsertFn    func(ctx context.Context, record models.MonthlyThemeRecord) error
	deleteFn    func(ctx context.Context, userID int64, year int, month time.Month) error
	deleteAllFn func(ctx context.Context, userID int64) error

	upserts []models.MonthlyThemeRecord
	deletes []themeCacheKey
}

func (m *mockThemeCacheRepository) Get(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlyThemeRecord, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, year, month)
	}
	return models.MonthlyThemeRecord{}, nil
}

func (m *mockThemeCacheRepository) Upsert(ctx context.Context, record models.MonthlyThemeRecord) error {
	m.upserts = append(m.upserts, record)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, record)
	}
	return nil
}

func (m *mockThemeCacheRepository) Delete(ctx context.Context, userID int64, year int, month time.Month) error {
	m.deletes = append(m.deletes, themeCacheKey{year: year, month: month})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, year, month)
	}
	return nil
}

func (m *mockThemeCacheRepository) DeleteAll(ctx context.Context, userID int64) error {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: CrisisService
// ─────────────────────────────────────────────

type mockCrisisService struct {
	assessFn func(ctx context.Context, title, content string) models.CrisisAssessment

	// assessed records every (title, content) pair screened.
	assessed [][2]string
}

func (m *mockCrisisService) Assess(ctx context.Context, title, content string) models.CrisisAssessment {
	m.assessed = append(m.assessed, [2]string{title, content})
	if m.assessFn != nil {
		return m.assessFn(ctx, title, content)
	}
	return models.SafeCrisisAssessment()
}

// ─────────────────────────────────────────────
// Mock: notify.Notifier
// ─────────────────────────────────────────────

type mockNotifier struct {
	notifyFn func(ctx context.Context, alert notify.Alert) error

	alerts []notify.Alert
}

func (m *mockNotifier) NotifyEmergencyContact(ctx context.Context, alert notify.Alert) error {
	m.alerts = append(m.alerts, alert)
	if m.notifyFn != nil {
		return m.notifyFn(ctx, alert)
	}
	return nil
}
