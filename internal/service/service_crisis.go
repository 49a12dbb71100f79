package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/models"
)

const (
	crisisSystemPrompt = "You are a mental health crisis detection system. " +
		"Your role is to identify potential signs of suicidal ideation or self-harm in journal entries. " +
		"Be extremely careful and sensitive, erring on the side of caution to protect user safety."

	// Low temperature keeps repeated assessments of the same text consistent.
	crisisTemperature = 0.1
	crisisMaxTokens   = 300
)

// crisisService is the concrete implementation of CrisisService.
type crisisService struct {
	completer ai.Completer
	logger    *logger.Logger
}

// NewCrisisService constructs a CrisisService backed by the given gateway.
func NewCrisisService(completer ai.Completer, logger *logger.Logger) CrisisService {
	return &crisisService{
		completer: completer,
		logger:    logger,
	}
}

// crisisReply is the JSON shape the model is instructed to answer with.
type crisisReply struct {
	IsCrisis           bool     `json:"is_crisis"`
	Confidence         float64  `json:"confidence"`
	DetectedIndicators []string `json:"detected_indicators"`
	Severity           string   `json:"severity"`
}

// Assess screens one entry's text.
//
// Blank content short-circuits to the safe default without touching the
// gateway. Gateway or parsing failures also yield the safe default: a
// screening error must never block an entry from being saved, and a broken
// model reply must never be presumed a crisis.
func (s *crisisService) Assess(ctx context.Context, title, content string) models.CrisisAssessment {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(content) == "" {
		return models.SafeCrisisAssessment()
	}

	raw, err := s.completer.Complete(ctx, ai.Request{
		System:      crisisSystemPrompt,
		Prompt:      buildCrisisPrompt(title, content),
		Temperature: crisisTemperature,
		MaxTokens:   crisisMaxTokens,
	})
	if err != nil {
		log.Err(err).Str("func", "*crisisService.Assess").Msg("crisis screening call failed")
		return models.SafeCrisisAssessment()
	}

	payload, err := ai.ExtractJSONObject(raw)
	if err != nil {
		log.Err(err).Str("func", "*crisisService.Assess").Msg("crisis screening reply carried no JSON object")
		return models.SafeCrisisAssessment()
	}

	var reply crisisReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		log.Err(err).Str("func", "*crisisService.Assess").Msg("crisis screening reply failed to parse")
		return models.SafeCrisisAssessment()
	}

	result := models.CrisisAssessment{
		IsCrisis:           reply.IsCrisis,
		Confidence:         clampInt(int(reply.Confidence), 0, 100),
		DetectedIndicators: reply.DetectedIndicators,
		Severity:           coerceSeverity(reply.Severity),
	}
	if result.DetectedIndicators == nil {
		result.DetectedIndicators = []string{}
	}

	return result
}

// coerceSeverity maps any unknown severity label to SeverityLow.
func coerceSeverity(severity string) string {
	switch severity {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh:
		return severity
	default:
		return models.SeverityLow
	}
}

func buildCrisisPrompt(title, content string) string {
	if title == "" {
		title = "Untitled"
	}

	return fmt.Sprintf(`Analyze the following journal entry for signs of suicidal ideation, self-harm, or mental health crisis. Be very careful and err on the side of caution.

Title: %s
Content: %s

Look for indicators such as:
- Direct mentions of suicide, self-harm, or wanting to die
- Expressions of hopelessness or feeling trapped
- Mentions of having no reason to live
- References to ending pain or suffering
- Goodbye messages or final preparations
- Feeling like a burden to others
- Extreme despair or emotional pain

Respond in JSON format:
{
  "is_crisis": boolean,
  "confidence": number (0-100),
  "detected_indicators": ["indicator1", "indicator2"],
  "severity": "low" | "medium" | "high"
}

Be sensitive but thorough. If there's any doubt about potential self-harm, mark as crisis.`, title, content)
}

// clampInt bounds v to the closed interval [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
