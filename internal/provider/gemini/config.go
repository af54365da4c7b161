package gemini

// Config contains Gemini provider configuration.
type Config struct {
	APIKey  string `env:"GEMINI_API_KEY,required,notEmpty"`
	BaseURL string `env:"GEMINI_BASE_URL"`
	// Timeout in seconds; 0 leaves the call unbounded.
	Timeout int `env:"GEMINI_TIMEOUT" envDefault:"0"`
}
