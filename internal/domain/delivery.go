package domain

import (
	"context"
	"fmt"

	"github.com/davidbz/promptrelay/internal/observability"
)

// Sequencer delivers segments over a ReplyChannel strictly in order.
type Sequencer struct{}

// NewSequencer creates a new delivery sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Deliver sends segments[0] as the initial reply and every later segment as a follow-up.
// Each send is awaited before the next is issued; the first failure stops delivery and is
// returned wrapped in ErrDelivery. Remaining segments are dropped, not retried.
func (s *Sequencer) Deliver(ctx context.Context, channel ReplyChannel, segments []string) error {
	if channel == nil {
		return fmt.Errorf("%w: reply channel cannot be nil", ErrDelivery)
	}

	if len(segments) == 0 {
		return fmt.Errorf("%w: no segments to deliver", ErrDelivery)
	}

	logger := observability.FromContext(ctx)

	if err := channel.InitialReply(ctx, segments[0]); err != nil {
		return &DeliveryError{Index: 0, Total: len(segments), Err: err}
	}

	for i := 1; i < len(segments); i++ {
		if err := channel.FollowUp(ctx, segments[i]); err != nil {
			return &DeliveryError{Index: i, Total: len(segments), Err: err}
		}
	}

	logger.Debug("segments delivered", observability.Int("segments", len(segments)))

	return nil
}

// DeliveryError records which segment failed to send.
type DeliveryError struct {
	Index int
	Total int
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: segment %d of %d: %v", ErrDelivery, e.Index+1, e.Total, e.Err)
}

// Unwrap exposes both ErrDelivery and the transport cause to errors.Is.
func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDelivery, e.Err}
}
