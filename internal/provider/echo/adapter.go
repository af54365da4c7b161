// Package echo provides an offline provider that answers with the prompt itself.
// It implements the domain.Provider interface without making external API calls,
// so the relay can be exercised end to end in development (COMPLETION_MODEL=echo).
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/observability"
)

const (
	providerName = "echo"
	modelName    = "echo"
)

// Provider implements the domain.Provider interface for echo testing.
type Provider struct {
	name            string
	supportedModels map[string]bool
}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: providerName,
		supportedModels: map[string]bool{
			modelName: true,
		},
	}
}

// Complete returns the prompt as the completion.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if !p.supportedModels[req.Model] {
		return nil, fmt.Errorf("model %s is not supported by echo provider", req.Model)
	}

	// Count tokens (simple word-based counting)
	tokens := countTokens(req.Prompt)

	observability.FromContext(ctx).Debug("echo completed",
		observability.Int("prompt_tokens", tokens),
	)

	return &domain.CompletionResponse{
		ID:       fmt.Sprintf("echo-%d", time.Now().UnixNano()),
		Model:    req.Model,
		Provider: p.name,
		Content:  req.Prompt,
		Usage: domain.Usage{
			PromptTokens:     tokens,
			CompletionTokens: tokens,
			TotalTokens:      tokens * 2,
		},
		FinishTime: time.Now(),
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// IsModelSupported checks if the provider supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return p.supportedModels[model]
}

// SupportedModels returns a list of all models this provider supports.
func (p *Provider) SupportedModels(_ context.Context) []string {
	models := make([]string, 0, len(p.supportedModels))
	for model := range p.supportedModels {
		models = append(models, model)
	}
	return models
}

// countTokens performs simple word-based token counting.
func countTokens(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Fields(content))
}
