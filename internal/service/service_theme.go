package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/store"
	"github.com/reenu-kutty/dear-diary/models"
)

const (
	themeSystemPrompt = "You are a thoughtful journal analysis assistant. " +
		"Identify meaningful themes and patterns in journal entries to help users understand " +
		"their life focus areas and recurring topics."

	themeTemperature = 0.3
	themeMaxTokens   = 400

	maxThemes = 3

	themeSummaryNoEntries  = "No entries found for this month."
	themeSummaryUnanalyzed = "Unable to analyze themes for this month."
	themeSummaryNoThemes   = "No clear themes identified for this month."
)

// themeService is the concrete implementation of ThemeAnalysisService.
//
// Themes are cached as one blob per calendar month under the same
// fingerprint discipline as the per-day emotion records: the blob is reused
// while its entry count and newest-entry timestamp match the live month.
type themeService struct {
	entryRepository store.EntryRepository
	cacheRepository store.ThemeCacheRepository
	completer       ai.Completer
	logger          *logger.Logger
}

// NewThemeService constructs a ThemeAnalysisService from its collaborators.
func NewThemeService(
	entryRepository store.EntryRepository,
	cacheRepository store.ThemeCacheRepository,
	completer ai.Completer,
	logger *logger.Logger,
) ThemeAnalysisService {
	return &themeService{
		entryRepository: entryRepository,
		cacheRepository: cacheRepository,
		completer:       completer,
		logger:          logger,
	}
}

// themeReply is the JSON shape the model is instructed to answer with.
type themeReply struct {
	Themes  []string `json:"themes"`
	Summary string   `json:"summary"`
}

// AnalyzeMonth returns up to three prominent themes for the calendar month
// the range falls in (the month is taken from the range start, in UTC).
//
// A month with no entries yields an empty theme list with an explanatory
// summary. A failed generation also degrades to an empty result instead of
// an error, and leaves any previously cached blob untouched for the next
// attempt.
func (s *themeService) AnalyzeMonth(ctx context.Context, userID int64, start, end time.Time) (models.MonthlyThemes, error) {
	log := logger.FromContext(ctx)

	if err := validateRange(start, end); err != nil {
		return models.MonthlyThemes{}, err
	}

	year, month, _ := start.UTC().Date()

	entries, err := s.entryRepository.GetEntriesByDateRange(ctx, userID, start, end)
	if err != nil {
		log.Err(err).
			Str("func", "*themeService.AnalyzeMonth").
			Int64("user_id", userID).
			Msg("journal entries fetch failed")
		return models.MonthlyThemes{}, fmt.Errorf("journal entries fetch failed: %w", err)
	}

	if len(entries) == 0 {
		return models.MonthlyThemes{
			Themes:  []string{},
			Summary: themeSummaryNoEntries,
		}, nil
	}

	latest := latestEntryTime(entries)

	cached, err := s.cacheRepository.Get(ctx, userID, year, month)
	switch {
	case err == nil:
		if cached.EntryCount == len(entries) && !cached.LastEntryAt.Before(latest) {
			return models.MonthlyThemes{
				Themes:  cached.Themes,
				Summary: cached.Summary,
			}, nil
		}
	case !errors.Is(err, store.ErrCacheRecordNotFound):
		// A broken cache read forces regeneration, nothing worse.
		log.Err(err).
			Str("func", "*themeService.AnalyzeMonth").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", int(month)).
			Msg("theme cache read failed; regenerating")
	}

	result, err := s.analyzeEntries(ctx, entries)
	if err != nil {
		log.Err(err).
			Str("func", "*themeService.AnalyzeMonth").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", int(month)).
			Msg("theme analysis failed")
		return models.MonthlyThemes{
			Themes:  []string{},
			Summary: themeSummaryUnanalyzed,
		}, nil
	}

	record := models.MonthlyThemeRecord{
		UserID:      userID,
		Year:        year,
		Month:       month,
		Themes:      result.Themes,
		Summary:     result.Summary,
		EntryCount:  len(entries),
		LastEntryAt: latest,
	}
	if err := s.cacheRepository.Upsert(ctx, record); err != nil {
		// The themes are still good; only the next request pays for the
		// missed cache write.
		log.Err(err).
			Str("func", "*themeService.AnalyzeMonth").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", int(month)).
			Msg("theme cache upsert failed")
	}

	return result, nil
}

// ClearCache drops every cached theme blob for the user.
func (s *themeService) ClearCache(ctx context.Context, userID int64) error {
	if err := s.cacheRepository.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("theme cache clear failed: %w", err)
	}
	return nil
}

func (s *themeService) analyzeEntries(ctx context.Context, entries []models.JournalEntry) (models.MonthlyThemes, error) {
	raw, err := s.completer.Complete(ctx, ai.Request{
		System:      themeSystemPrompt,
		Prompt:      buildThemePrompt(entries),
		Temperature: themeTemperature,
		MaxTokens:   themeMaxTokens,
	})
	if err != nil {
		return models.MonthlyThemes{}, fmt.Errorf("theme analysis call failed: %w", err)
	}

	payload, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return models.MonthlyThemes{}, fmt.Errorf("theme analysis reply carried no JSON object: %w", err)
	}

	var reply themeReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return models.MonthlyThemes{}, fmt.Errorf("theme analysis reply failed to parse: %w", err)
	}

	result := models.MonthlyThemes{
		Themes:  reply.Themes,
		Summary: reply.Summary,
	}
	if result.Themes == nil {
		result.Themes = []string{}
	}
	if len(result.Themes) > maxThemes {
		result.Themes = result.Themes[:maxThemes]
	}
	if result.Summary == "" {
		result.Summary = themeSummaryNoThemes
	}

	return result, nil
}

func buildThemePrompt(entries []models.JournalEntry) string {
	return fmt.Sprintf(`Analyze the following journal entries from a month and identify the top 3 most prominent themes or topics that appear across the entries. Focus on recurring subjects, concerns, activities, relationships, or life areas that the person writes about most frequently.

Journal entries:
%s

Please provide:
1. The top 3 most prominent themes (be specific and descriptive)
2. A brief summary of the overall month's focus

Respond in JSON format:
{
  "themes": ["theme1", "theme2", "theme3"],
  "summary": "brief summary of the month's main focus areas"
}

Make the themes specific and meaningful, not generic. For example, instead of "relationships" say "navigating workplace conflicts" or "strengthening family bonds".`, combineEntries(entries))
}
