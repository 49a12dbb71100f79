package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/store"
	"github.com/reenu-kutty/dear-diary/models"
)

const (
	emotionSystemPrompt = "You are an empathetic emotional analysis assistant. " +
		"Analyze journal entries with care and provide helpful insights about emotional patterns."

	emotionTemperature = 0.3
	emotionMaxTokens   = 300

	// dayLayout is the cache key format for one UTC calendar day.
	dayLayout = "2006-01-02"
)

// emotionService is the concrete implementation of EmotionAnalysisService.
//
// The caching contract: the per-day cache row is authoritative while its
// fingerprint (entry count + newest entry timestamp) matches the live
// entries for that day. Only stale days hit the gateway; a failed
// regeneration is skipped silently, leaving any prior row untouched so the
// next request retries it.
type emotionService struct {
	entryRepository store.EntryRepository
	cacheRepository store.EmotionCacheRepository
	completer       ai.Completer
	logger          *logger.Logger
}

// NewEmotionService constructs an EmotionAnalysisService from its
// collaborators.
func NewEmotionService(
	entryRepository store.EntryRepository,
	cacheRepository store.EmotionCacheRepository,
	completer ai.Completer,
	logger *logger.Logger,
) EmotionAnalysisService {
	return &emotionService{
		entryRepository: entryRepository,
		cacheRepository: cacheRepository,
		completer:       completer,
		logger:          logger,
	}
}

// emotionReply is the JSON shape the model is instructed to answer with.
type emotionReply struct {
	EmotionalScore   float64  `json:"emotional_score"`
	DominantEmotions []string `json:"dominant_emotions"`
	Summary          string   `json:"summary"`
}

// AnalyzeRange returns one emotion record per calendar day in [start, end]
// that has journal entries, reusing cached records whose fingerprint still
// matches and regenerating the rest.
//
// Days whose regeneration fails are represented by their previous cached
// record when one exists, and are absent otherwise. Results are sorted by
// date ascending and never contain duplicate dates.
func (s *emotionService) AnalyzeRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DailyEmotionRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	// A failed cache read degrades to a full regeneration, not a failure.
	cached, err := s.cacheRepository.GetByDateRange(ctx, userID, start, end)
	if err != nil {
		log.Err(err).
			Str("func", "*emotionService.AnalyzeRange").
			Int64("user_id", userID).
			Msg("emotion cache read failed; regenerating the whole range")
		cached = nil
	}

	entries, err := s.entryRepository.GetEntriesByDateRange(ctx, userID, start, end)
	if err != nil {
		log.Err(err).
			Str("func", "*emotionService.AnalyzeRange").
			Int64("user_id", userID).
			Msg("journal entries fetch failed")
		return nil, fmt.Errorf("journal entries fetch failed: %w", err)
	}

	if len(entries) == 0 {
		sortRecordsByDate(cached)
		return cached, nil
	}

	entriesByDate := groupEntriesByDay(entries)

	cachedByDate := make(map[string]models.DailyEmotionRecord, len(cached))
	for _, record := range cached {
		cachedByDate[record.Date] = record
	}

	results := make([]models.DailyEmotionRecord, 0, len(entriesByDate))

	for date, dayEntries := range entriesByDate {
		prior, hasPrior := cachedByDate[date]
		latest := latestEntryTime(dayEntries)

		if hasPrior && prior.EntryCount == len(dayEntries) && !prior.LastEntryAt.Before(latest) {
			results = append(results, prior)
			continue
		}

		record, err := s.analyzeDay(ctx, userID, date, dayEntries, latest)
		if err != nil {
			// Skip on failure: the prior row (if any) stays in place and
			// this day is retried on the next request.
			log.Err(err).
				Str("func", "*emotionService.AnalyzeRange").
				Int64("user_id", userID).
				Str("date", date).
				Msg("day analysis failed; skipping")
			if hasPrior {
				results = append(results, prior)
			}
			continue
		}

		results = append(results, record)
	}

	sortRecordsByDate(results)

	return results, nil
}

// ClearCache drops every cached emotion record for the user. The next
// analysis sees an empty cache and regenerates all requested days.
func (s *emotionService) ClearCache(ctx context.Context, userID int64) error {
	if err := s.cacheRepository.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("emotion cache clear failed: %w", err)
	}
	return nil
}

// analyzeDay runs one gateway call for a single day's entries, sanitizes the
// reply, and upserts the resulting record. The cache is written only on full
// success so that a failure never poisons a previously valid row.
func (s *emotionService) analyzeDay(ctx context.Context, userID int64, date string, dayEntries []models.JournalEntry, latest time.Time) (models.DailyEmotionRecord, error) {
	raw, err := s.completer.Complete(ctx, ai.Request{
		System:      emotionSystemPrompt,
		Prompt:      buildEmotionPrompt(date, dayEntries),
		Temperature: emotionTemperature,
		MaxTokens:   emotionMaxTokens,
	})
	if err != nil {
		return models.DailyEmotionRecord{}, fmt.Errorf("emotion analysis call failed: %w", err)
	}

	payload, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return models.DailyEmotionRecord{}, fmt.Errorf("emotion analysis reply carried no JSON object: %w", err)
	}

	var reply emotionReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return models.DailyEmotionRecord{}, fmt.Errorf("emotion analysis reply failed to parse: %w", err)
	}

	record := models.DailyEmotionRecord{
		UserID:           userID,
		Date:             date,
		EmotionalScore:   clampInt(int(reply.EmotionalScore), 1, 10),
		DominantEmotions: reply.DominantEmotions,
		Summary:          reply.Summary,
		EntryCount:       len(dayEntries),
		LastEntryAt:      latest,
	}
	if record.DominantEmotions == nil {
		record.DominantEmotions = []string{}
	}

	if err := s.cacheRepository.Upsert(ctx, record); err != nil {
		return models.DailyEmotionRecord{}, fmt.Errorf("emotion cache upsert failed: %w", err)
	}

	return record, nil
}

func buildEmotionPrompt(date string, dayEntries []models.JournalEntry) string {
	return fmt.Sprintf(`Analyze the emotional content of the following journal entries from %s.

Journal entries:
%s

Please provide:
1. An emotional score from 1-10 (1 = very negative/sad, 10 = very positive/happy)
2. The top 2-3 dominant emotions present
3. A brief summary of the emotional state

Respond in JSON format:
{
  "emotional_score": number,
  "dominant_emotions": ["emotion1", "emotion2"],
  "summary": "brief emotional summary"
}`, date, combineEntries(dayEntries))
}

// combineEntries concatenates entries as "Title: content" blocks for prompt
// context.
func combineEntries(entries []models.JournalEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		title := entry.Title
		if title == "" {
			title = "Untitled"
		}
		parts = append(parts, title+": "+entry.Content)
	}
	return strings.Join(parts, "\n\n")
}

// groupEntriesByDay buckets entries by their UTC calendar date.
func groupEntriesByDay(entries []models.JournalEntry) map[string][]models.JournalEntry {
	byDate := make(map[string][]models.JournalEntry)
	for _, entry := range entries {
		date := entry.Day().Format(dayLayout)
		byDate[date] = append(byDate[date], entry)
	}
	return byDate
}

// latestEntryTime returns the newest creation timestamp among entries.
func latestEntryTime(entries []models.JournalEntry) time.Time {
	var latest time.Time
	for _, entry := range entries {
		if entry.CreatedAt.After(latest) {
			latest = entry.CreatedAt
		}
	}
	return latest
}

func sortRecordsByDate(records []models.DailyEmotionRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}

// validateRange rejects zero or inverted analysis ranges.
func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrValidationEmptyRange
	}
	if start.After(end) {
		return ErrValidationRangeOrder
	}
	return nil
}
