// Package anthropic provides an adapter for the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/observability"
)

const providerName = "anthropic"

// SupportedModels returns the list of models advertised by the Anthropic provider.
func SupportedModels() []string {
	return []string{
		"claude-sonnet-4-5",
		"claude-opus-4-1",
		"claude-3-5-haiku-latest",
	}
}

// Provider implements the domain.Provider interface for Anthropic.
type Provider struct {
	client    anthropic.Client
	name      string
	maxTokens int64
}

// NewProvider creates a new Anthropic provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	maxTokens := int64(config.DefaultMaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &Provider{
		client:    anthropic.NewClient(opts...),
		name:      providerName,
		maxTokens: maxTokens,
	}, nil
}

// Complete sends the prompt as a single user message and joins the text blocks of the answer.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Anthropic API")

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = int64(req.MaxTokens)
	}

	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		logger.Error("Anthropic API call failed", observability.Error(err))
		return nil, fmt.Errorf("Anthropic API call failed: %w", err)
	}

	// Extract text content from response
	var content strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &domain.CompletionResponse{
		ID:       message.ID,
		Model:    string(message.Model),
		Provider: p.name,
		Content:  content.String(),
		Usage: domain.Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
		FinishTime: time.Now(),
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// IsModelSupported accepts any claude-* model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return strings.HasPrefix(model, "claude-")
}

// SupportedModels returns the advertised models.
func (p *Provider) SupportedModels(_ context.Context) []string {
	return SupportedModels()
}
