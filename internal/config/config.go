package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/promptrelay/internal/discord"
	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/provider/anthropic"
	"github.com/davidbz/promptrelay/internal/provider/gemini"
	"github.com/davidbz/promptrelay/internal/provider/openai"
)

// Config represents the relay configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Discord   discord.Config
	Relay     domain.RelayConfig
	Gemini    gemini.Config
	OpenAI    openai.Config
	Anthropic anthropic.Config
}

// ServerConfig contains health-check HTTP server settings.
type ServerConfig struct {
	Port         int `env:"PORT"                 envDefault:"3000"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"10"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,HEAD,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server    *ServerConfig
	CORS      *CORSConfig
	Log       *LogConfig
	Discord   *discord.Config
	Relay     *domain.RelayConfig
	Gemini    *gemini.Config
	OpenAI    *openai.Config
	Anthropic *anthropic.Config
}

// Load loads environment files and parses configuration.
// DISCORD_TOKEN, CLIENT_ID and GEMINI_API_KEY are required.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := domain.ParseUnit(cfg.Relay.ChunkUnit); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:       dig.Out{},
		Server:    &cfg.Server,
		CORS:      &cfg.CORS,
		Log:       &cfg.Log,
		Discord:   &cfg.Discord,
		Relay:     &cfg.Relay,
		Gemini:    &cfg.Gemini,
		OpenAI:    &cfg.OpenAI,
		Anthropic: &cfg.Anthropic,
	}
}
