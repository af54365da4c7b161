package observability

import (
	"context"
)

type contextKey string

const (
	// TraceIDKey holds the OpenTelemetry trace ID.
	TraceIDKey contextKey = "trace_id"

	// SpanIDKey holds the OpenTelemetry span ID.
	SpanIDKey contextKey = "span_id"

	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// InteractionIDKey holds the transport interaction identifier.
	InteractionIDKey contextKey = "interaction_id"

	// CommandKey holds the slash command name for this request.
	CommandKey contextKey = "command"

	// ProviderKey holds the provider name for this request.
	ProviderKey contextKey = "provider"

	// ModelKey holds the model name for this request.
	ModelKey contextKey = "model"
)

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithInteractionID injects the transport interaction ID into context.
func WithInteractionID(ctx context.Context, interactionID string) context.Context {
	return context.WithValue(ctx, InteractionIDKey, interactionID)
}

// WithCommand injects command name into context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// WithProvider injects provider name into context.
func WithProvider(ctx context.Context, provider string) context.Context {
	return context.WithValue(ctx, ProviderKey, provider)
}

// WithModel injects model name into context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

func stringValue(ctx context.Context, key contextKey) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string { return stringValue(ctx, TraceIDKey) }

// GetSpanID extracts span ID from context.
func GetSpanID(ctx context.Context) string { return stringValue(ctx, SpanIDKey) }

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string { return stringValue(ctx, RequestIDKey) }

// GetInteractionID extracts the interaction ID from context.
func GetInteractionID(ctx context.Context) string { return stringValue(ctx, InteractionIDKey) }

// GetCommand extracts command name from context.
func GetCommand(ctx context.Context) string { return stringValue(ctx, CommandKey) }

// GetProvider extracts provider name from context.
func GetProvider(ctx context.Context) string { return stringValue(ctx, ProviderKey) }

// GetModel extracts model name from context.
func GetModel(ctx context.Context) string { return stringValue(ctx, ModelKey) }
