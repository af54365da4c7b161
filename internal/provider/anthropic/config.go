package anthropic

// Config contains Anthropic provider configuration.
// The provider is optional: it is registered only when APIKey is set.
type Config struct {
	APIKey  string `env:"ANTHROPIC_API_KEY"`
	BaseURL string `env:"ANTHROPIC_BASE_URL"`
	// DefaultMaxTokens applies when the relay does not set a limit; the API requires one.
	DefaultMaxTokens int `env:"ANTHROPIC_DEFAULT_MAX_TOKENS" envDefault:"4096"`
}
