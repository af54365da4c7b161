package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/promptrelay/internal/observability"
)

// CompletionService routes a prompt to the provider serving the configured model.
// It implements CompletionClient: one upstream call per prompt, no retries.
type CompletionService struct {
	registry    ProviderRegistry
	model       string
	maxTokens   int
	temperature float64
}

// NewCompletionService creates a new completion service (DI constructor).
func NewCompletionService(registry ProviderRegistry, cfg *RelayConfig) *CompletionService {
	return &CompletionService{
		registry:    registry,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Complete sends prompt upstream and returns the finished text.
// Every failure, including an empty answer, is reported as ErrUpstream.
func (s *CompletionService) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("prompt cannot be empty")
	}

	if s.model == "" {
		return "", fmt.Errorf("%w: model cannot be empty", ErrUpstream)
	}

	ctx = observability.WithModel(ctx, s.model)

	// Route to appropriate provider based on model.
	provider, err := s.registry.GetByModel(ctx, s.model)
	if err != nil {
		return "", fmt.Errorf("%w: provider routing failed: %w", ErrUpstream, err)
	}

	ctx = observability.WithProvider(ctx, provider.Name())
	logger := observability.FromContext(ctx)

	start := time.Now()

	// Execute request.
	response, err := provider.Complete(ctx, &CompletionRequest{
		Model:       s.model,
		Prompt:      prompt,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: completion failed: %w", ErrUpstream, err)
	}

	if response == nil || strings.TrimSpace(response.Content) == "" {
		return "", fmt.Errorf("%w: provider returned an empty completion", ErrUpstream)
	}

	logger.Info("completion succeeded",
		observability.Int("prompt_tokens", response.Usage.PromptTokens),
		observability.Int("completion_tokens", response.Usage.CompletionTokens),
		observability.Int("content_length", len(response.Content)),
		observability.Duration("latency", time.Since(start)),
	)

	return response.Content, nil
}
