package observability

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// EventBus implements the EventPublisher interface by writing events to the logger.
type EventBus struct {
	logger *zap.Logger
}

// NewEventBus creates a new event bus.
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		logger: logger,
	}
}

// Publish publishes an event with the given type and data.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if e.logger == nil {
		return
	}

	// Stable field order keeps log lines diffable.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(data)+1)
	fields = append(fields, zap.String("event", eventType))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, data[k]))
	}

	e.logger.With(contextFields(ctx)...).Info("event", fields...)
}

func contextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if command := GetCommand(ctx); command != "" {
		fields = append(fields, zap.String("command", command))
	}
	return fields
}
