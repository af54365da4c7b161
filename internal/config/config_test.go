package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/promptrelay/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("DISCORD_TOKEN", "discord-token")
	t.Setenv("CLIENT_ID", "123456789012345678")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
}

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()
		setRequired(t)

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 3000, cfg.Server.Port)
		require.Equal(t, "gemini-2.0-flash", cfg.Relay.Model)
		require.Equal(t, 2000, cfg.Relay.MessageLimit)
		require.Equal(t, "runes", cfg.Relay.ChunkUnit)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, 0, cfg.OpenAI.MaxRetries)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Empty(t, cfg.Anthropic.APIKey)
		require.Equal(t, "Chatting with Gemini AI", cfg.Discord.Activity)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "9000")
		t.Setenv("COMPLETION_MODEL", "gpt-4o-mini")
		t.Setenv("MESSAGE_LIMIT", "1000")
		t.Setenv("CHUNK_UNIT", "graphemes")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_BASE_URL", "https://test.openai.com")
		t.Setenv("DISCORD_GUILD_ID", "42")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "discord-token", cfg.Discord.Token)
		require.Equal(t, "123456789012345678", cfg.Discord.ClientID)
		require.Equal(t, "42", cfg.Discord.GuildID)
		require.Equal(t, "gemini-key", cfg.Gemini.APIKey)
		require.Equal(t, "gpt-4o-mini", cfg.Relay.Model)
		require.Equal(t, 1000, cfg.Relay.MessageLimit)
		require.Equal(t, "graphemes", cfg.Relay.ChunkUnit)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://test.openai.com", cfg.OpenAI.BaseURL)
	})

	t.Run("should fail when a required secret is missing", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("DISCORD_TOKEN", "discord-token")
		t.Setenv("CLIENT_ID", "123")

		cfg, err := config.Load()

		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("should fail on an unknown chunk unit", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CHUNK_UNIT", "words")

		_, err := config.Load()

		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown chunk unit")
	})
}
