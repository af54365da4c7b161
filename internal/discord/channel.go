package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// noMentions keeps model output from pinging users, roles or @everyone.
func noMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}

// interactionChannel implements domain.ReplyChannel for one interaction.
// It is used by a single goroutine and is not safe for concurrent use.
type interactionChannel struct {
	api          interactionAPI
	interaction  *discordgo.Interaction
	acknowledged bool
}

func newInteractionChannel(api interactionAPI, interaction *discordgo.Interaction) *interactionChannel {
	return &interactionChannel{
		api:         api,
		interaction: interaction,
	}
}

// Acknowledge sends a deferred response so Discord shows "thinking" while the completion runs.
func (c *interactionChannel) Acknowledge(ctx context.Context) error {
	err := c.api.InteractionRespond(c.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("defer interaction: %w", err)
	}

	c.acknowledged = true
	return nil
}

// InitialReply edits the deferred response, or answers directly when nothing was deferred.
func (c *interactionChannel) InitialReply(ctx context.Context, text string) error {
	if c.acknowledged {
		_, err := c.api.InteractionResponseEdit(c.interaction, &discordgo.WebhookEdit{
			Content:         &text,
			AllowedMentions: noMentions(),
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("edit deferred response: %w", err)
		}
		return nil
	}

	err := c.api.InteractionRespond(c.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         text,
			AllowedMentions: noMentions(),
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("respond to interaction: %w", err)
	}

	c.acknowledged = true
	return nil
}

// FollowUp posts an additional message; wait=true makes the call return only once Discord stored it.
func (c *interactionChannel) FollowUp(ctx context.Context, text string) error {
	_, err := c.api.FollowupMessageCreate(c.interaction, true, &discordgo.WebhookParams{
		Content:         text,
		AllowedMentions: noMentions(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create follow-up: %w", err)
	}
	return nil
}
