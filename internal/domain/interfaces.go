package domain

import "context"

// Provider represents any generative-text backend.
type Provider interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider identifier.
	Name() string

	// IsModelSupported checks if the provider supports the given model.
	IsModelSupported(ctx context.Context, model string) bool

	// SupportedModels returns the models the provider advertises.
	SupportedModels(ctx context.Context) []string
}

// ProviderRegistry manages available providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (Provider, error)

	// GetByModel retrieves the provider serving the given model.
	GetByModel(ctx context.Context, model string) (Provider, error)

	// List returns all available providers.
	List(ctx context.Context) ([]string, error)
}

// CompletionClient turns a prompt into finished text with a single upstream call.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ReplyChannel is the transport capability used to answer one interaction.
type ReplyChannel interface {
	// Acknowledge tells the transport a reply is coming (deferred response).
	Acknowledge(ctx context.Context) error

	// InitialReply sends the first visible message for the interaction.
	InitialReply(ctx context.Context, text string) error

	// FollowUp sends an additional message after the initial reply.
	FollowUp(ctx context.Context, text string) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
