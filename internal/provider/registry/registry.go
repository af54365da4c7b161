// Package registry keeps the completion providers configured at startup.
// It is written once during container construction and read concurrently afterwards.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/observability"
)

// Registry implements the ProviderRegistry interface.
type Registry struct {
	mu              sync.RWMutex
	providers       map[string]domain.Provider
	order           []string
	modelToProvider map[string]string
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:              sync.RWMutex{},
		providers:       make(map[string]domain.Provider),
		order:           nil,
		modelToProvider: make(map[string]string),
	}
}

// Register adds a provider to the registry.
// The first provider to advertise a model owns it.
func (r *Registry) Register(ctx context.Context, provider domain.Provider) error {
	if provider == nil {
		return errors.New("provider cannot be nil")
	}

	name := provider.Name()
	if name == "" {
		return errors.New("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}

	r.providers[name] = provider
	r.order = append(r.order, name)

	// Build reverse index from provider's advertised models
	models := provider.SupportedModels(ctx)
	for _, model := range models {
		if _, taken := r.modelToProvider[model]; !taken {
			r.modelToProvider[model] = name
		}
	}

	observability.FromContext(ctx).Info("provider registered",
		observability.String("provider", name),
		observability.Int("advertised_models", len(models)))

	return nil
}

// Get retrieves a provider by name.
func (r *Registry) Get(_ context.Context, providerName string) (domain.Provider, error) {
	if providerName == "" {
		return nil, errors.New("provider name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[providerName]
	if !exists {
		return nil, fmt.Errorf("provider %s not found", providerName)
	}

	return provider, nil
}

// List returns registered provider names in registration order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)

	return names, nil
}

// GetByModel retrieves the provider that serves the given model.
func (r *Registry) GetByModel(ctx context.Context, model string) (domain.Provider, error) {
	if model == "" {
		return nil, errors.New("model cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if providerName, exists := r.modelToProvider[model]; exists {
		return r.providers[providerName], nil
	}

	// Models outside the advertised lists (new releases, previews) are matched
	// by asking each provider, in registration order.
	for _, name := range r.order {
		if provider := r.providers[name]; provider.IsModelSupported(ctx, model) {
			return provider, nil
		}
	}

	return nil, fmt.Errorf("no provider found for model: %s", model)
}
