package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"listinggen/internal/model"
	"listinggen/internal/utils"
)

// Generator orchestrates the completion path and the template fallback.
type Generator struct {
	client        CompletionClient
	enhanceTokens int
}

// NewGenerator creates a generation orchestrator. A nil client pins the
// orchestrator to the fallback path.
func NewGenerator(client CompletionClient, enhanceTokens int) *Generator {
	if enhanceTokens <= 0 {
		enhanceTokens = 1500
	}
	return &Generator{
		client:        client,
		enhanceTokens: enhanceTokens,
	}
}

// GenerateOutcome reports which path produced the result.
type GenerateOutcome struct {
	Result   *model.GenerationResult
	Fallback bool
}

// Generate produces a result for the record at the given variation seed.
// Never fails: any failure on the completion path degrades to the
// deterministic fallback. apiKey is the caller-supplied credential; empty
// means use the configured one, and the fallback path when neither exists.
func (g *Generator) Generate(ctx context.Context, record *model.PropertyRecord, seed int, apiKey string) GenerateOutcome {
	if !g.aiAvailable(apiKey) {
		return GenerateOutcome{Result: GenerateFallback(record), Fallback: true}
	}

	variation := VariationFor(seed)
	req := CompletionRequest{
		SystemPrompt: SystemPromptFor(variation),
		UserPrompt:   BuildListingPrompt(record, seed),
		Temperature:  TemperatureFor(seed),
		APIKey:       apiKey,
	}

	raw, err := g.client.Complete(ctx, req)
	if err != nil {
		log.Printf("Completion call failed (%v), using template fallback", err)
		return GenerateOutcome{Result: GenerateFallback(record), Fallback: true}
	}

	result, err := ParseResult(raw)
	if err != nil {
		log.Printf("Completion response unusable (%v), using template fallback", err)
		return GenerateOutcome{Result: GenerateFallback(record), Fallback: true}
	}

	return GenerateOutcome{Result: result}
}

// Enhance rewrites an existing description under the named style and length
// band. No fallback: a missing credential or any completion failure is
// surfaced to the caller and nothing is stored.
func (g *Generator) Enhance(ctx context.Context, originalDesc string, record *model.PropertyRecord, style, length, apiKey string) (string, error) {
	if !g.aiAvailable(apiKey) {
		return "", ErrNotEnabled
	}

	req := CompletionRequest{
		SystemPrompt: EnhanceSystemPrompt,
		UserPrompt:   BuildEnhancePrompt(originalDesc, record, style, length),
		Temperature:  0.8,
		MaxTokens:    g.enhanceTokens,
		APIKey:       apiKey,
	}

	raw, err := g.client.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	enhanced := utils.StripLeadIn(raw)
	if strings.TrimSpace(enhanced) == "" {
		return "", fmt.Errorf("%w: empty enhancement", ErrInvalidFormat)
	}

	return enhanced, nil
}

func (g *Generator) aiAvailable(apiKey string) bool {
	if g.client == nil {
		return false
	}
	return apiKey != "" || g.client.IsEnabled()
}
