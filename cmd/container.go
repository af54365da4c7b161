package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/promptrelay/internal/config"
	"github.com/davidbz/promptrelay/internal/discord"
	"github.com/davidbz/promptrelay/internal/domain"
	httpserver "github.com/davidbz/promptrelay/internal/http"
	"github.com/davidbz/promptrelay/internal/http/middleware"
	"github.com/davidbz/promptrelay/internal/observability"
	"github.com/davidbz/promptrelay/internal/provider/anthropic"
	"github.com/davidbz/promptrelay/internal/provider/echo"
	"github.com/davidbz/promptrelay/internal/provider/gemini"
	"github.com/davidbz/promptrelay/internal/provider/openai"
	"github.com/davidbz/promptrelay/internal/provider/registry"
)

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	constructors := []struct {
		name string
		fn   interface{}
	}{
		// Configuration
		{"config", config.Load},
		{"config dependencies", config.ParseDependenciesConfig},

		// Observability
		{"logger", func(cfg *config.LogConfig) (*zap.Logger, error) {
			return observability.InitLogger(cfg.Level)
		}},
		{"event bus", func(logger *zap.Logger) domain.EventPublisher {
			return observability.NewEventBus(logger)
		}},

		// Providers
		{"provider registry", newProviderRegistry},

		// Domain Services
		{"prompt builder", domain.NewPromptBuilder},
		{"sequencer", domain.NewSequencer},
		{"completion service", func(reg domain.ProviderRegistry, cfg *domain.RelayConfig) domain.CompletionClient {
			return domain.NewCompletionService(reg, cfg)
		}},
		{"relay", domain.NewRelay},

		// Discord
		{"discord session", discord.NewSession},
		{"command registrar", func(session *discordgo.Session, cfg *discord.Config) *discord.Registrar {
			return discord.NewRegistrar(session, cfg)
		}},
		{"interaction handler", func(relay *domain.Relay) *discord.Handler {
			return discord.NewHandler(relay)
		}},
		{"bot", discord.NewBot},

		// HTTP Layer
		{"middleware chain", middleware.BuildMiddlewareChain},
		{"HTTP handler", httpserver.NewHandler},
		{"HTTP server", httpserver.NewServer},
	}

	for _, c := range constructors {
		if err := container.Provide(c.fn); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", c.name, err)
		}
	}

	return container, nil
}

// newProviderRegistry registers every configured provider. Gemini is registered
// first so it owns the models it advertises; OpenAI and Anthropic are optional.
// The logger parameter orders construction after InitLogger so registration is logged.
func newProviderRegistry(
	cfg *config.Config,
	_ *zap.Logger,
) (domain.ProviderRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	geminiProvider, err := gemini.NewProvider(ctx, cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
	}
	providers := []domain.Provider{geminiProvider}

	if cfg.OpenAI.APIKey != "" {
		openaiProvider, err := openai.NewProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI provider: %w", err)
		}
		providers = append(providers, openaiProvider)
	}

	if cfg.Anthropic.APIKey != "" {
		anthropicProvider, err := anthropic.NewProvider(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("failed to create Anthropic provider: %w", err)
		}
		providers = append(providers, anthropicProvider)
	}

	providers = append(providers, echo.NewProvider())

	for _, p := range providers {
		if err := reg.Register(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to register %s provider: %w", p.Name(), err)
		}
	}

	return reg, nil
}
