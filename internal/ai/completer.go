// Package ai wraps the language model gateway used by the analysis engines.
//
// The gateway is a stateless request/response text-generation service: given
// system instructions and a user prompt it returns a JSON-shaped answer. It
// may fail or return malformed output; callers own the decision of what a
// failure means for their unit of work (skip the period, fall back, etc.).
package ai

import "context"

// Request is a single completion request. Temperature and MaxTokens are set
// per engine: analysis engines run cold (0.1-0.3), prompt generation warmer.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completer is the minimal gateway surface the engines depend on. The
// production implementation is [Client]; tests substitute a func-field mock.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
