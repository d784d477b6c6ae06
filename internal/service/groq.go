package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"listinggen/internal/config"
)

// GroqClient handles Groq's OpenAI-compatible chat completion API
type GroqClient struct {
	config     *config.GroqConfig
	httpClient *http.Client

	// backoff unit for the linear 429 retry schedule; overridable in tests
	backoff time.Duration
}

// NewGroqClient creates a new completion client
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	backoff := time.Duration(cfg.BackoffSeconds) * time.Second
	if cfg.BackoffSeconds <= 0 {
		backoff = 2 * time.Second
	}
	return &GroqClient{
		config:  cfg,
		backoff: backoff,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether a server-side credential is configured
func (c *GroqClient) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete performs a chat completion with the fixed retry policy:
// 429 is retried up to the configured attempt bound with linearly increasing
// backoff, a timeout is retried once with fixed backoff, 401 and everything
// else fail immediately.
func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = c.config.APIKey
	}
	if apiKey == "" {
		return "", ErrNotEnabled
	}

	body := ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: req.Temperature,
		TopP:        c.config.TopP,
		MaxTokens:   req.MaxTokens,
	}
	if body.MaxTokens == 0 {
		body.MaxTokens = c.config.MaxTokens
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, ChatMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, ChatMessage{Role: "user", Content: req.UserPrompt})

	attempts := c.config.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}

	timeoutRetried := false
	for attempt := 0; attempt < attempts; attempt++ {
		text, err := c.doCompletion(ctx, apiKey, body)
		if err == nil {
			return text, nil
		}

		switch {
		case errors.Is(err, ErrRateLimited):
			if attempt < attempts-1 {
				wait := time.Duration(attempt+1) * c.backoff
				log.Printf("Warning: completion API rate limited, retrying in %v (attempt %d/%d)", wait, attempt+1, attempts)
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return "", fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
				}
				continue
			}
			return "", err
		case errors.Is(err, ErrTimeout):
			if !timeoutRetried {
				timeoutRetried = true
				log.Printf("Warning: completion API timed out, retrying once in %v", c.backoff)
				select {
				case <-time.After(c.backoff):
				case <-ctx.Done():
					return "", err
				}
				// the timeout retry does not consume a rate-limit attempt
				attempt--
				continue
			}
			return "", err
		default:
			// 401, 400 and transport errors are not retried
			return "", err
		}
	}

	return "", ErrRateLimited
}

// doCompletion issues exactly one HTTP request and maps the status code to
// the failure taxonomy.
func (c *GroqClient) doCompletion(ctx context.Context, apiKey string, req ChatCompletionRequest) (string, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeoutErr(err) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding below
	case http.StatusUnauthorized:
		return "", fmt.Errorf("%w: status 401: %s", ErrAuthFailed, truncate(string(respBody), 200))
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: status 429: %s", ErrRateLimited, truncate(string(respBody), 200))
	case http.StatusBadRequest:
		return "", fmt.Errorf("API rejected request with status 400: %s", truncate(string(respBody), 200))
	default:
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrInvalidFormat)
	}

	return result.Choices[0].Message.Content, nil
}

// Ping probes the completion endpoint with a one-message request. Used by
// the connection-test endpoint; shares the status mapping but never retries.
func (c *GroqClient) Ping(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		apiKey = c.config.APIKey
	}
	if apiKey == "" {
		return ErrNotEnabled
	}

	req := ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    []ChatMessage{{Role: "user", Content: "Say 'API is working!'"}},
		Temperature: 0.5,
		MaxTokens:   50,
	}
	_, err := c.doCompletion(ctx, apiKey, req)
	return err
}

func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
