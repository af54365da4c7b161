package discord

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"

	"github.com/davidbz/promptrelay/internal/domain"
	"github.com/davidbz/promptrelay/internal/observability"
)

// Relayer runs one command request against a reply channel.
type Relayer interface {
	Handle(ctx context.Context, req domain.CommandRequest, channel domain.ReplyChannel) (domain.State, error)
}

// Handler dispatches slash-command interactions to the relay.
type Handler struct {
	relay Relayer
	// params maps command name -> Discord option name -> catalog parameter name.
	params map[string]map[string]string
}

// NewHandler creates a new interaction handler (DI constructor).
func NewHandler(relay Relayer) *Handler {
	params := make(map[string]map[string]string)
	for _, spec := range domain.Catalog() {
		names := make(map[string]string, len(spec.Params))
		for _, p := range spec.Params {
			names[OptionName(p.Name)] = p.Name
		}
		params[spec.Name] = names
	}

	return &Handler{
		relay:  relay,
		params: params,
	}
}

// OnInteractionCreate is the discordgo event handler. discordgo runs every
// event handler on its own goroutine, so interactions are handled independently.
func (h *Handler) OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.handle(s, i.Interaction)
}

func (h *Handler) handle(api interactionAPI, interaction *discordgo.Interaction) {
	if interaction == nil || interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx := observability.StartTrace(context.Background())
	ctx = observability.WithInteractionID(ctx, interaction.ID)
	logger := observability.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("interaction handler panicked",
				observability.String("panic", fmt.Sprint(r)),
				observability.String("stack", string(debug.Stack())))
		}
	}()

	req := h.toCommandRequest(interaction.ApplicationCommandData())

	logger.Info("interaction received",
		observability.String("command", req.Name),
		observability.String("user_id", userID(interaction)),
		observability.String("guild_id", interaction.GuildID))

	state, err := h.relay.Handle(ctx, req, newInteractionChannel(api, interaction))
	if err != nil && domain.IsValidationError(err) {
		logger.Info("interaction rejected",
			observability.String("state", state.String()),
			observability.Error(err))
		return
	}
	if err != nil {
		logger.Warn("interaction ended with error",
			observability.String("state", state.String()),
			observability.Error(err))
		return
	}

	logger.Info("interaction completed", observability.String("state", state.String()))
}

func (h *Handler) toCommandRequest(data discordgo.ApplicationCommandInteractionData) domain.CommandRequest {
	names := h.params[data.Name]
	params := make(map[string]string, len(data.Options))

	for _, opt := range data.Options {
		name := opt.Name
		if mapped, ok := names[opt.Name]; ok {
			name = mapped
		}

		if opt.Type == discordgo.ApplicationCommandOptionString {
			params[name] = opt.StringValue()
			continue
		}
		params[name] = fmt.Sprint(opt.Value)
	}

	return domain.CommandRequest{
		Name:   data.Name,
		Params: params,
	}
}

func userID(interaction *discordgo.Interaction) string {
	switch {
	case interaction.Member != nil && interaction.Member.User != nil:
		return interaction.Member.User.ID
	case interaction.User != nil:
		return interaction.User.ID
	default:
		return ""
	}
}
