package service

import (
	"context"
	"testing"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCrisisService(completer *mockCompleter) CrisisService {
	return NewCrisisService(completer, logger.Nop())
}

// ─────────────────────────────────────────────
// Blank content short-circuit
// ─────────────────────────────────────────────

func TestCrisisService_Assess_EmptyContentSkipsGateway(t *testing.T) {
	completer := &mockCompleter{}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "", "")

	assert.Equal(t, models.SafeCrisisAssessment(), result)
	assert.Empty(t, completer.calls, "blank content must not reach the gateway")
}

func TestCrisisService_Assess_WhitespaceContentSkipsGateway(t *testing.T) {
	completer := &mockCompleter{}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "title", "   \n\t  ")

	assert.Equal(t, models.SafeCrisisAssessment(), result)
	assert.Empty(t, completer.calls)
}

// ─────────────────────────────────────────────
// Reply sanitization
// ─────────────────────────────────────────────

func TestCrisisService_Assess_ValidReply(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"is_crisis": true, "confidence": 85, "detected_indicators": ["hopelessness"], "severity": "high"}`, nil
		},
	}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "a hard day", "I feel trapped")

	assert.True(t, result.IsCrisis)
	assert.Equal(t, 85, result.Confidence)
	assert.Equal(t, []string{"hopelessness"}, result.DetectedIndicators)
	assert.Equal(t, models.SeverityHigh, result.Severity)
}

func TestCrisisService_Assess_ClampsConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence string
		want       int
	}{
		{name: "above upper bound", confidence: "150", want: 100},
		{name: "below lower bound", confidence: "-5", want: 0},
		{name: "within bounds", confidence: "42", want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{
				completeFn: func(_ context.Context, _ ai.Request) (string, error) {
					return `{"is_crisis": true, "confidence": ` + tt.confidence + `, "detected_indicators": [], "severity": "medium"}`, nil
				},
			}
			svc := newCrisisService(completer)

			result := svc.Assess(context.Background(), "", "some content")

			assert.Equal(t, tt.want, result.Confidence)
		})
	}
}

func TestCrisisService_Assess_CoercesUnknownSeverity(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"is_crisis": true, "confidence": 90, "detected_indicators": [], "severity": "catastrophic"}`, nil
		},
	}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "", "some content")

	assert.Equal(t, models.SeverityLow, result.Severity)
}

func TestCrisisService_Assess_MissingIndicatorsDefaultToEmptyList(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"is_crisis": false, "confidence": 10, "severity": "low"}`, nil
		},
	}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "", "some content")

	require.NotNil(t, result.DetectedIndicators)
	assert.Empty(t, result.DetectedIndicators)
}

func TestCrisisService_Assess_FencedJSONReply(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return "```json\n{\"is_crisis\": true, \"confidence\": 60, \"detected_indicators\": [], \"severity\": \"medium\"}\n```", nil
		},
	}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "", "some content")

	assert.True(t, result.IsCrisis)
	assert.Equal(t, models.SeverityMedium, result.Severity)
}

// ─────────────────────────────────────────────
// Fail-safe defaults
// ─────────────────────────────────────────────

func TestCrisisService_Assess_GatewayErrorReturnsSafeDefault(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return "", errGateway
		},
	}
	svc := newCrisisService(completer)

	result := svc.Assess(context.Background(), "", "some content")

	assert.Equal(t, models.SafeCrisisAssessment(), result)
}

func TestCrisisService_Assess_MalformedReplyReturnsSafeDefault(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "no JSON object", reply: "I cannot answer that."},
		{name: "broken JSON", reply: `{"is_crisis": tru`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{
				completeFn: func(_ context.Context, _ ai.Request) (string, error) {
					return tt.reply, nil
				},
			}
			svc := newCrisisService(completer)

			result := svc.Assess(context.Background(), "", "some content")

			assert.Equal(t, models.SafeCrisisAssessment(), result)
		})
	}
}

// ─────────────────────────────────────────────
// Request shaping
// ─────────────────────────────────────────────

func TestCrisisService_Assess_RunsCold(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"is_crisis": false, "confidence": 0, "detected_indicators": [], "severity": "low"}`, nil
		},
	}
	svc := newCrisisService(completer)

	svc.Assess(context.Background(), "my title", "my content")

	require.Len(t, completer.calls, 1)
	req := completer.calls[0]
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)
	assert.Equal(t, 300, req.MaxTokens)
	assert.Contains(t, req.Prompt, "my title")
	assert.Contains(t, req.Prompt, "my content")
}

func TestCrisisService_Assess_EmptyTitleRendersUntitled(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ ai.Request) (string, error) {
			return `{"is_crisis": false, "confidence": 0, "detected_indicators": [], "severity": "low"}`, nil
		},
	}
	svc := newCrisisService(completer)

	svc.Assess(context.Background(), "", "my content")

	require.Len(t, completer.calls, 1)
	assert.Contains(t, completer.calls[0].Prompt, "Title: Untitled")
}
