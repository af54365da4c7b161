// Package discord is the transport: it registers the command catalog as Discord
// slash commands and turns interactions into relay requests.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

// interactionAPI is the part of *discordgo.Session used to answer one interaction.
type interactionAPI interface {
	InteractionRespond(
		interaction *discordgo.Interaction,
		resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption,
	) error
	InteractionResponseEdit(
		interaction *discordgo.Interaction,
		newresp *discordgo.WebhookEdit,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
	FollowupMessageCreate(
		interaction *discordgo.Interaction,
		wait bool,
		data *discordgo.WebhookParams,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// commandAPI is the part of *discordgo.Session used to publish commands.
type commandAPI interface {
	ApplicationCommandBulkOverwrite(
		appID string,
		guildID string,
		commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption,
	) ([]*discordgo.ApplicationCommand, error)
}

var (
	_ interactionAPI = (*discordgo.Session)(nil)
	_ commandAPI     = (*discordgo.Session)(nil)
)
