package domain

// RelayConfig contains completion and delivery settings for the relay.
type RelayConfig struct {
	Model        string  `env:"COMPLETION_MODEL"       envDefault:"gemini-2.0-flash"`
	MaxTokens    int     `env:"COMPLETION_MAX_TOKENS"  envDefault:"0"`
	Temperature  float64 `env:"COMPLETION_TEMPERATURE" envDefault:"0"`
	MessageLimit int     `env:"MESSAGE_LIMIT"          envDefault:"2000"`
	ChunkUnit    string  `env:"CHUNK_UNIT"             envDefault:"runes"`
}
