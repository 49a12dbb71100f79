package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/config"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEmptyCompletion is returned when the gateway answers successfully but
// with no content.
var ErrEmptyCompletion = errors.New("gateway returned an empty completion")

// Client is the production [Completer] backed by an OpenAI-compatible
// chat-completions endpoint through langchaingo. The endpoint is asked for
// json_object responses so that well-behaved models return bare JSON.
type Client struct {
	model   llms.Model
	timeout time.Duration
	logger  *logger.Logger
}

// NewClient constructs a [Client] from the AI config section.
func NewClient(cfg config.AI, log *logger.Logger) (*Client, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create language model client: %w", err)
	}

	log.Debug().Str("model", cfg.Model).Msg("language model gateway created")

	return &Client{
		model:   model,
		timeout: cfg.RequestTimeout,
		logger:  log,
	}, nil
}

// Complete issues one chat completion and returns the raw response text.
// The call is bounded by the configured request timeout when one is set.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.System)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(req.Prompt)},
		},
	}

	options := []llms.CallOption{
		llms.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		options = append(options, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := c.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return "", fmt.Errorf("gateway completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Content, nil
}
