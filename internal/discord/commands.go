package discord

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/bwmarrin/discordgo"

	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/observability"
)

// OptionName converts a catalog parameter name to a Discord option name.
// Discord only accepts lowercase option names, so targetLanguage becomes target_language.
func OptionName(param string) string {
	var b strings.Builder
	for i, r := range param {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BuildCommands converts the command catalog into Discord application commands.
func BuildCommands(catalog []domain.CommandSpec) []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(catalog))

	for _, spec := range catalog {
		options := make([]*discordgo.ApplicationCommandOption, 0, len(spec.Params))
		for _, p := range spec.Params {
			option := &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionName(p.Name),
				Description: p.Description,
				Required:    true,
			}
			for _, choice := range p.Choices {
				option.Choices = append(option.Choices, &discordgo.ApplicationCommandOptionChoice{
					Name:  choice,
					Value: choice,
				})
			}
			options = append(options, option)
		}

		commands = append(commands, &discordgo.ApplicationCommand{
			Name:        spec.Name,
			Description: spec.Description,
			Options:     options,
		})
	}

	return commands
}

// Registrar publishes the command catalog to Discord.
type Registrar struct {
	api      commandAPI
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
}

// NewRegistrar creates a registrar for the static command catalog.
func NewRegistrar(api commandAPI, cfg *Config) *Registrar {
	return &Registrar{
		api:      api,
		appID:    cfg.ClientID,
		guildID:  cfg.GuildID,
		commands: BuildCommands(domain.Catalog()),
	}
}

// Register overwrites the application's commands with the catalog in one call.
// Failures wrap domain.ErrRegistration; callers log them and keep running.
func (r *Registrar) Register(ctx context.Context) error {
	logger := observability.FromContext(ctx)

	scope := "global"
	if r.guildID != "" {
		scope = "guild"
	}

	logger.Info("registering slash commands",
		observability.Int("commands", len(r.commands)),
		observability.String("scope", scope))

	created, err := r.api.ApplicationCommandBulkOverwrite(r.appID, r.guildID, r.commands, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRegistration, err)
	}

	logger.Info("slash commands registered", observability.Int("commands", len(created)))

	return nil
}
