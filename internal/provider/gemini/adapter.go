// Package gemini provides an adapter for Google's Gemini API using the genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/observability"
)

const providerName = "gemini"

// SupportedModels returns the list of models advertised by the Gemini provider.
func SupportedModels() []string {
	return []string{
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
	}
}

// Provider implements the domain.Provider interface for Gemini.
type Provider struct {
	client *genai.Client
	name   string
}

// NewProvider creates a new Gemini provider.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}

	if config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.BaseURL
	}

	if config.Timeout > 0 {
		timeout := time.Duration(config.Timeout) * time.Second
		clientConfig.HTTPOptions.Timeout = &timeout
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Provider{
		client: client,
		name:   providerName,
	}, nil
}

// Complete sends the prompt as a single user turn and returns the finished text.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Gemini API")

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), toGenerateConfig(req))
	if err != nil {
		logger.Error("Gemini API call failed", observability.Error(err))
		return nil, fmt.Errorf("Gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		reason := "no candidates"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = "prompt blocked: " + string(resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("Gemini returned no answer (%s)", reason)
	}

	return p.toDomainResponse(req.Model, resp), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// IsModelSupported accepts any gemini-* model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return strings.HasPrefix(model, "gemini-")
}

// SupportedModels returns the advertised models.
func (p *Provider) SupportedModels(_ context.Context) []string {
	return SupportedModels()
}

func toGenerateConfig(req *domain.CompletionRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}

	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	return config
}

func (p *Provider) toDomainResponse(model string, resp *genai.GenerateContentResponse) *domain.CompletionResponse {
	out := &domain.CompletionResponse{
		ID:         resp.ResponseID,
		Model:      model,
		Provider:   p.name,
		Content:    resp.Text(),
		FinishTime: time.Now(),
	}

	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}

	if usage := resp.UsageMetadata; usage != nil {
		out.Usage = domain.Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}

	return out
}
