package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/store"
	"github.com/reenu-kutty/dear-diary/models"
)

const (
	promptSystemPrompt = "You are a compassionate journaling companion who helps people reflect " +
		"on their thoughts and experiences through thoughtful questions."

	// Prompt generation runs warmer than the analysis engines so repeated
	// questions vary.
	promptTemperature = 0.7
	promptMaxTokens   = 150

	// recentEntryLimit is how many entries feed the question context.
	recentEntryLimit = 5

	// promptContextChars caps how much of each entry's content is quoted.
	promptContextChars = 500

	fallbackQuestion = "What emotions are you experiencing right now, and what might be behind them?"
)

// promptService is the concrete implementation of PromptService.
type promptService struct {
	entryRepository store.EntryRepository
	completer       ai.Completer
	logger          *logger.Logger
}

// NewPromptService constructs a PromptService from its collaborators.
func NewPromptService(entryRepository store.EntryRepository, completer ai.Completer, logger *logger.Logger) PromptService {
	return &promptService{
		entryRepository: entryRepository,
		completer:       completer,
		logger:          logger,
	}
}

// DailyPrompt generates one reflective question from the user's five most
// recent entries. A gateway failure falls back to a static question rather
// than an error: the journaling flow must not stall because the model is
// down.
func (s *promptService) DailyPrompt(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	entries, err := s.entryRepository.GetRecentEntries(ctx, userID, recentEntryLimit)
	if err != nil {
		log.Err(err).
			Str("func", "*promptService.DailyPrompt").
			Int64("user_id", userID).
			Msg("recent entries fetch failed")
		return "", fmt.Errorf("recent entries fetch failed: %w", err)
	}

	raw, err := s.completer.Complete(ctx, ai.Request{
		System:      promptSystemPrompt,
		Prompt:      buildDailyPrompt(entries),
		Temperature: promptTemperature,
		MaxTokens:   promptMaxTokens,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*promptService.DailyPrompt").
			Int64("user_id", userID).
			Msg("prompt generation call failed; using fallback question")
		return fallbackQuestion, nil
	}

	question := strings.TrimSpace(raw)
	if question == "" {
		return fallbackQuestion, nil
	}

	return question, nil
}

func buildDailyPrompt(entries []models.JournalEntry) string {
	return fmt.Sprintf(`Based on the following recent journal entries from a user, generate ONE empathetic and thoughtful follow-up question that would encourage deeper reflection and continued journaling. The question should be:

1. Empathetic and supportive in tone
2. Open-ended to encourage reflection
3. Related to themes or emotions present in their recent entries
4. Suitable for personal journaling
5. Not too personal or invasive
6. Encouraging growth and self-discovery

Recent journal entries:
%s

Generate only the question, nothing else. Make it warm, thoughtful, and encouraging.`, promptContext(entries))
}

// promptContext renders each entry as a truncated "Title/Content" block so
// the request stays within a predictable size.
func promptContext(entries []models.JournalEntry) string {
	if len(entries) == 0 {
		return "No previous entries found."
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		title := entry.Title
		if title == "" {
			title = "Untitled"
		}

		content := entry.Content
		if len(content) > promptContextChars {
			content = content[:promptContextChars] + "..."
		}

		parts = append(parts, "Title: "+title+"\nContent: "+content)
	}

	return strings.Join(parts, "\n\n---\n\n")
}
