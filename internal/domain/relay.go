package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/promptrelay/internal/observability"
)

// ApologyMessage replaces the completion when the upstream call fails.
const ApologyMessage = "❌ Sorry, I ran into an error while processing your request. Please try again later!"

// State is a step of the per-interaction handler.
type State int

const (
	// StateIdle is the entry state; the prompt is built here.
	StateIdle State = iota
	// StateAwaitingCompletion is entered once the transport has been acknowledged.
	StateAwaitingCompletion
	// StateDelivering is entered with the chunked completion in hand.
	StateDelivering
	// StateDone means every segment was accepted by the transport.
	StateDone
	// StateFailed is terminal; the user got an error message or delivery broke.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingCompletion:
		return "awaiting_completion"
	case StateDelivering:
		return "delivering"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Relay handles one command end to end:
// build prompt, acknowledge, complete, chunk, deliver.
type Relay struct {
	builder   *PromptBuilder
	client    CompletionClient
	chunker   *Chunker
	sequencer *Sequencer
	events    EventPublisher
}

// NewRelay creates a new relay (DI constructor).
func NewRelay(
	builder *PromptBuilder,
	client CompletionClient,
	sequencer *Sequencer,
	events EventPublisher,
	cfg *RelayConfig,
) (*Relay, error) {
	unit, err := ParseUnit(cfg.ChunkUnit)
	if err != nil {
		return nil, err
	}

	limit := cfg.MessageLimit
	if limit == 0 {
		limit = DefaultMessageLimit
	}

	chunker, err := NewChunker(limit, unit)
	if err != nil {
		return nil, err
	}

	return &Relay{
		builder:   builder,
		client:    client,
		chunker:   chunker,
		sequencer: sequencer,
		events:    events,
	}, nil
}

// run tracks the current state of one Handle call.
type run struct {
	relay *Relay
	ctx   context.Context
	state State
}

func (r *run) enter(next State, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{}, 2)
	}
	data["from"] = r.state.String()
	data["to"] = next.String()

	r.state = next

	if r.relay.events != nil {
		r.relay.events.Publish(r.ctx, "relay.transition", data)
	}
}

// Handle runs the state machine for req and returns the terminal state.
// The returned error is nil only for StateDone.
func (r *Relay) Handle(ctx context.Context, req CommandRequest, channel ReplyChannel) (State, error) {
	ctx = observability.WithCommand(ctx, req.Name)
	logger := observability.FromContext(ctx)
	current := &run{relay: r, ctx: ctx, state: StateIdle}

	prompt, err := r.builder.Build(req)
	if err != nil {
		logger.Warn("invalid command request", observability.Error(err))
		current.enter(StateFailed, map[string]interface{}{"reason": "validation"})
		return StateFailed, r.replyFailure(ctx, channel, err, UserMessage(err))
	}

	// The completion call can outlive the transport's response window, so the
	// acknowledgment is the entry action of AwaitingCompletion.
	if ackErr := channel.Acknowledge(ctx); ackErr != nil {
		logger.Error("failed to acknowledge interaction", observability.Error(ackErr))
		current.enter(StateFailed, map[string]interface{}{"reason": "acknowledge"})
		return StateFailed, fmt.Errorf("%w: acknowledge: %w", ErrDelivery, ackErr)
	}
	current.enter(StateAwaitingCompletion, nil)

	text, err := r.client.Complete(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrUpstream) {
			err = fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		logger.Error("completion failed", observability.Error(err))
		current.enter(StateFailed, map[string]interface{}{"reason": "upstream"})
		return StateFailed, r.replyFailure(ctx, channel, err, ApologyMessage)
	}

	segments := r.chunker.Split(text)
	current.enter(StateDelivering, map[string]interface{}{
		"segments": len(segments),
		"length":   Length(text, r.chunker.Unit()),
	})

	if err := r.sequencer.Deliver(ctx, channel, segments); err != nil {
		logger.Error("delivery failed", observability.Error(err))
		current.enter(StateFailed, map[string]interface{}{"reason": "delivery"})
		return StateFailed, err
	}

	current.enter(StateDone, nil)
	logger.Info("command handled", observability.Int("segments", len(segments)))

	return StateDone, nil
}

// replyFailure sends the single user-visible error message and returns cause,
// joined with the delivery error when that message could not be sent either.
func (r *Relay) replyFailure(ctx context.Context, channel ReplyChannel, cause error, message string) error {
	if err := channel.InitialReply(ctx, message); err != nil {
		observability.FromContext(ctx).Error("failed to send error reply", observability.Error(err))
		return errors.Join(cause, fmt.Errorf("%w: error reply: %w", ErrDelivery, err))
	}
	return cause
}

// UserMessage renders a validation error for the end user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return "❌ That command is not supported: " + err.Error()
	case errors.Is(err, ErrUnknownSubAction):
		return "❌ That option is not supported: " + err.Error()
	case errors.Is(err, ErrMissingParameter):
		return "❌ A required option is missing: " + err.Error()
	default:
		return ApologyMessage
	}
}
