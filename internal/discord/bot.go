package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/davidbz/promptrelay/internal/observability"
)

// NewSession creates a discordgo session for the bot token (DI constructor).
// REST retries are disabled so a failed send surfaces as a delivery error;
// discordgo still waits out rate-limit buckets before each request.
func NewSession(cfg *Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent
	session.MaxRestRetries = 0
	session.ShouldRetryOnRateLimit = true

	routeLogs()

	return session, nil
}

// Bot owns the gateway connection.
type Bot struct {
	session  *discordgo.Session
	handler  *Handler
	activity string
	removers []func()
}

// NewBot creates a new bot (DI constructor).
func NewBot(session *discordgo.Session, handler *Handler, cfg *Config) *Bot {
	return &Bot{
		session:  session,
		handler:  handler,
		activity: cfg.Activity,
	}
}

// Start installs the event handlers and opens the gateway connection.
func (b *Bot) Start(ctx context.Context) error {
	logger := observability.FromContext(ctx)

	b.removers = append(b.removers,
		b.session.AddHandler(b.onReady),
		b.session.AddHandler(b.handler.OnInteractionCreate),
	)

	if err := b.session.Open(); err != nil {
		b.removeHandlers()
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	logger.Info("discord gateway connected")

	return nil
}

// Close removes the handlers and closes the gateway connection.
func (b *Bot) Close(ctx context.Context) error {
	b.removeHandlers()

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord gateway: %w", err)
	}

	observability.FromContext(ctx).Info("discord gateway closed")

	return nil
}

func (b *Bot) removeHandlers() {
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger := observability.Logger()

	logger.Info("bot is online",
		observability.String("user", r.User.String()),
		observability.Int("guilds", len(r.Guilds)))

	if b.activity == "" {
		return
	}

	if err := s.UpdateGameStatus(0, b.activity); err != nil {
		logger.Warn("failed to set activity", observability.Error(err))
	}
}
