package service

import (
	"context"
	"errors"
)

// Failure taxonomy for the completion path. The primary generation path
// degrades to the template fallback on any of these; the enhancement path
// surfaces them to the caller.
var (
	ErrAuthFailed    = errors.New("completion API authentication failed")
	ErrRateLimited   = errors.New("completion API rate limited")
	ErrTimeout       = errors.New("completion API request timed out")
	ErrInvalidFormat = errors.New("completion response has invalid format")
	ErrNotEnabled    = errors.New("completion API is not enabled (missing API key)")
)

// CompletionClient is the interface for hosted completion providers
type CompletionClient interface {
	// Complete performs one chat completion and returns the raw text payload.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Ping probes the endpoint with a minimal request using the given key.
	Ping(ctx context.Context, apiKey string) error

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// CompletionRequest carries one rendered prompt plus its sampling parameters.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int

	// APIKey overrides the configured credential for this call. The
	// user-supplied key is never persisted.
	APIKey string
}

// Ensure GroqClient implements CompletionClient
var _ CompletionClient = (*GroqClient)(nil)
