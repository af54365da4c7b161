package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/promptrelay/internal/observability"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	return logs
}

func TestInitLogger(t *testing.T) {
	t.Run("should accept a known level", func(t *testing.T) {
		logger, err := observability.InitLogger("debug")
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("should default to info", func(t *testing.T) {
		logger, err := observability.InitLogger("")
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("should reject an unknown level", func(t *testing.T) {
		_, err := observability.InitLogger("verbose")
		require.ErrorContains(t, err, "invalid log level")
	})

	observability.SetLogger(zap.NewNop())
}

func TestFromContext(t *testing.T) {
	logs := observe(t)

	ctx := observability.StartTrace(context.Background())
	ctx = observability.WithInteractionID(ctx, "interaction-1")
	ctx = observability.WithCommand(ctx, "ask")
	ctx = observability.WithModel(ctx, "gemini-2.0-flash")

	observability.FromContext(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, observability.GetTraceID(ctx), fields["trace_id"])
	require.Equal(t, observability.GetRequestID(ctx), fields["request_id"])
	require.Equal(t, "interaction-1", fields["interaction_id"])
	require.Equal(t, "ask", fields["command"])
	require.Equal(t, "gemini-2.0-flash", fields["model"])
	require.NotContains(t, fields, "provider")
}

func TestStartTrace(t *testing.T) {
	first := observability.StartTrace(context.Background())
	second := observability.StartTrace(context.Background())

	require.Len(t, observability.GetTraceID(first), 32)
	require.Len(t, observability.GetSpanID(first), 16)
	require.NotEmpty(t, observability.GetRequestID(first))
	require.NotEqual(t, observability.GetTraceID(first), observability.GetTraceID(second))
	require.NotEqual(t, observability.GetRequestID(first), observability.GetRequestID(second))
}
