// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/davidbz/promptrelay/internal/domain"
)

// ReplyChannel is a mock domain.ReplyChannel that also records call order.
type ReplyChannel struct {
	mock.Mock

	Calls []string
}

// NewReplyChannel creates a mock reply channel and asserts expectations on cleanup.
func NewReplyChannel(t interface {
	mock.TestingT
	Cleanup(func())
},
) *ReplyChannel {
	m := &ReplyChannel{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Acknowledge records a deferred acknowledgment.
func (m *ReplyChannel) Acknowledge(ctx context.Context) error {
	m.Calls = append(m.Calls, "ack")
	args := m.Called(ctx)
	return args.Error(0)
}

// InitialReply records the first reply.
func (m *ReplyChannel) InitialReply(ctx context.Context, text string) error {
	m.Calls = append(m.Calls, "reply:"+text)
	args := m.Called(ctx, text)
	return args.Error(0)
}

// FollowUp records a follow-up message.
func (m *ReplyChannel) FollowUp(ctx context.Context, text string) error {
	m.Calls = append(m.Calls, "followup:"+text)
	args := m.Called(ctx, text)
	return args.Error(0)
}

// CompletionClient is a mock domain.CompletionClient.
type CompletionClient struct {
	mock.Mock
}

// NewCompletionClient creates a mock completion client and asserts expectations on cleanup.
func NewCompletionClient(t interface {
	mock.TestingT
	Cleanup(func())
},
) *CompletionClient {
	m := &CompletionClient{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Complete returns the configured text or error.
func (m *CompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// Provider is a mock domain.Provider.
type Provider struct {
	mock.Mock
}

// NewProvider creates a mock provider and asserts expectations on cleanup.
func NewProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *Provider {
	m := &Provider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Complete returns the configured response or error.
func (m *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.CompletionResponse)
	return resp, args.Error(1)
}

// Name returns the configured provider name.
func (m *Provider) Name() string {
	args := m.Called()
	return args.String(0)
}

// IsModelSupported returns the configured answer.
func (m *Provider) IsModelSupported(ctx context.Context, model string) bool {
	args := m.Called(ctx, model)
	return args.Bool(0)
}

// SupportedModels returns the configured model list.
func (m *Provider) SupportedModels(ctx context.Context) []string {
	args := m.Called(ctx)
	models, _ := args.Get(0).([]string)
	return models
}

// EventPublisher is a mock domain.EventPublisher that keeps every published event.
type EventPublisher struct {
	Events []Event
}

// Event is one published event.
type Event struct {
	Type string
	Data map[string]interface{}
}

// Publish records the event.
func (m *EventPublisher) Publish(_ context.Context, eventType string, data map[string]interface{}) {
	m.Events = append(m.Events, Event{Type: eventType, Data: data})
}

// Transitions returns the "to" state of every relay.transition event in order.
func (m *EventPublisher) Transitions() []string {
	out := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		if to, ok := e.Data["to"].(string); ok {
			out = append(out, to)
		}
	}
	return out
}
