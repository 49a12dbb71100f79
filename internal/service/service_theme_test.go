package service

import (
	"context"
	"testing"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/store"
	"github.com/reenu-kutty/dear-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThemeService(entries *mockEntryRepository, cache *mockThemeCacheRepository, completer *mockCompleter) ThemeAnalysisService {
	return NewThemeService(entries, cache, completer, logger.Nop())
}

func marchEntries() []models.JournalEntry {
	return []models.JournalEntry{
		entryOn("2026-03-02", 9, "work trouble"),
		entryOn("2026-03-15", 20, "family dinner"),
	}
}

const themeReplyJSON = `{"themes": ["navigating workplace conflicts", "strengthening family bonds"], "summary": "a month of push and pull"}`

// ─────────────────────────────────────────────
// Cache reuse
// ─────────────────────────────────────────────

func TestThemeService_AnalyzeMonth_FreshCacheSkipsGateway(t *testing.T) {
	cached := models.MonthlyThemeRecord{
		UserID:      testUserID,
		Year:        2026,
		Month:       time.March,
		Themes:      []string{"old theme"},
		Summary:     "cached summary",
		EntryCount:  2,
		LastEntryAt: day("2026-03-15", 20),
	}

	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, year int, month time.Month) (models.MonthlyThemeRecord, error) {
			assert.Equal(t, 2026, year)
			assert.Equal(t, time.March, month)
			return cached, nil
		},
	}
	completer := &mockCompleter{}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.Equal(t, models.MonthlyThemes{Themes: []string{"old theme"}, Summary: "cached summary"}, result)
	assert.Empty(t, completer.calls)
	assert.Empty(t, cache.upserts)
}

func TestThemeService_AnalyzeMonth_StaleCacheRegenerates(t *testing.T) {
	stale := models.MonthlyThemeRecord{
		UserID:      testUserID,
		Year:        2026,
		Month:       time.March,
		EntryCount:  1,
		LastEntryAt: day("2026-03-02", 9),
	}

	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, _ int, _ time.Month) (models.MonthlyThemeRecord, error) {
			return stale, nil
		},
	}
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return themeReplyJSON, nil
		},
	}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.Equal(t, []string{"navigating workplace conflicts", "strengthening family bonds"}, result.Themes)

	require.Len(t, cache.upserts, 1)
	assert.Equal(t, 2026, cache.upserts[0].Year)
	assert.Equal(t, time.March, cache.upserts[0].Month)
	assert.Equal(t, 2, cache.upserts[0].EntryCount)
	assert.Equal(t, day("2026-03-15", 20), cache.upserts[0].LastEntryAt)
}

func TestThemeService_AnalyzeMonth_MissingCacheRegenerates(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, _ int, _ time.Month) (models.MonthlyThemeRecord, error) {
			return models.MonthlyThemeRecord{}, store.ErrCacheRecordNotFound
		},
	}
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return themeReplyJSON, nil
		},
	}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Themes)
	assert.Len(t, cache.upserts, 1)
}

// ─────────────────────────────────────────────
// Result shape
// ─────────────────────────────────────────────

func TestThemeService_AnalyzeMonth_NoEntries(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return nil, nil
		},
	}
	completer := &mockCompleter{}
	svc := newThemeService(entryRepo, &mockThemeCacheRepository{}, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.Empty(t, result.Themes)
	assert.Equal(t, "No entries found for this month.", result.Summary)
	assert.Empty(t, completer.calls)
}

func TestThemeService_AnalyzeMonth_TruncatesToThreeThemes(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, _ int, _ time.Month) (models.MonthlyThemeRecord, error) {
			return models.MonthlyThemeRecord{}, store.ErrCacheRecordNotFound
		},
	}
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"themes": ["a", "b", "c", "d", "e"], "summary": "busy"}`, nil
		},
	}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, result.Themes)
}

func TestThemeService_AnalyzeMonth_EmptySummaryGetsDefault(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, _ int, _ time.Month) (models.MonthlyThemeRecord, error) {
			return models.MonthlyThemeRecord{}, store.ErrCacheRecordNotFound
		},
	}
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"themes": ["a"]}`, nil
		},
	}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.Equal(t, "No clear themes identified for this month.", result.Summary)
}

// ─────────────────────────────────────────────
// Failure degradation
// ─────────────────────────────────────────────

func TestThemeService_AnalyzeMonth_GatewayFailureDegrades(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, _ int, _ time.Month) (models.MonthlyThemeRecord, error) {
			return models.MonthlyThemeRecord{}, store.ErrCacheRecordNotFound
		},
	}
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return "", errGateway
		},
	}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err, "a failed generation degrades instead of erroring")
	assert.Empty(t, result.Themes)
	assert.Equal(t, "Unable to analyze themes for this month.", result.Summary)
	assert.Empty(t, cache.upserts, "a failed generation must not be cached")
}

func TestThemeService_AnalyzeMonth_MalformedReplyDegrades(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return marchEntries(), nil
		},
	}
	cache := &mockThemeCacheRepository{
		getFn: func(_ context.Context, _ int64, _ int, _ time.Month) (models.MonthlyThemeRecord, error) {
			return models.MonthlyThemeRecord{}, store.ErrCacheRecordNotFound
		},
	}
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return "sorry, no themes today", nil
		},
	}
	svc := newThemeService(entryRepo, cache, completer)

	start, end := rangeOver("2026-03-01", "2026-03-31")
	result, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.NoError(t, err)
	assert.Equal(t, "Unable to analyze themes for this month.", result.Summary)
	assert.Empty(t, cache.upserts)
}

func TestThemeService_AnalyzeMonth_EntriesFetchError(t *testing.T) {
	entryRepo := &mockEntryRepository{
		getEntriesByDateRangeFn: func(_ context.Context, _ int64, _, _ time.Time) ([]models.JournalEntry, error) {
			return nil, errStorage
		},
	}
	svc := newThemeService(entryRepo, &mockThemeCacheRepository{}, &mockCompleter{})

	start, end := rangeOver("2026-03-01", "2026-03-31")
	_, err := svc.AnalyzeMonth(context.Background(), testUserID, start, end)

	require.ErrorIs(t, err, errStorage)
}

func TestThemeService_ClearCache_Success(t *testing.T) {
	var clearedFor int64
	cache := &mockThemeCacheRepository{
		deleteAllFn: func(_ context.Context, userID int64) error {
			clearedFor = userID
			return nil
		},
	}
	svc := newThemeService(&mockEntryRepository{}, cache, &mockCompleter{})

	err := svc.ClearCache(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testUserID, clearedFor)
}

func TestThemeService_ClearCache_StorageError(t *testing.T) {
	cache := &mockThemeCacheRepository{
		deleteAllFn: func(_ context.Context, _ int64) error {
			return errStorage
		},
	}
	svc := newThemeService(&mockEntryRepository{}, cache, &mockCompleter{})

	err := svc.ClearCache(context.Background(), testUserID)

	require.ErrorIs(t, err, errStorage)
}
