package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/davidbz/promptrelay/internal/discord"
	httpserver "github.com/davidbz/promptrelay/internal/http"
	"github.com/davidbz/promptrelay/internal/observability"
)

const shutdownTimeout = 10 * time.Second

type registrar interface {
	Register(ctx context.Context) error
}

type gatewayBot interface {
	Start(ctx context.Context) error
	Close(ctx context.Context) error
}

type healthServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// runServe registers the commands, logs in and serves the health endpoint until a signal arrives.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(
		logger *zap.Logger,
		reg *discord.Registrar,
		bot *discord.Bot,
		server *httpserver.Server,
	) error {
		defer func() { _ = logger.Sync() }()
		return serve(ctx, logger, reg, bot, server)
	})
}

// serve runs until ctx is done or the health server fails. Registration and
// gateway login failures are logged; the health endpoint keeps serving either way.
func serve(ctx context.Context, logger *zap.Logger, reg registrar, bot gatewayBot, server healthServer) error {
	if err := reg.Register(ctx); err != nil {
		logger.Error("failed to register slash commands", observability.Error(err))
	}

	botStarted := true
	if err := bot.Start(ctx); err != nil {
		botStarted = false
		logger.Error("failed to start bot", observability.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if botStarted {
			err = errors.Join(err, bot.Close(shutdownCtx))
		}
		return err
	})

	return g.Wait()
}

// runRegister publishes the command catalog and exits; unlike serve, a failure is fatal.
func runRegister(cmd *cobra.Command, _ []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(logger *zap.Logger, reg *discord.Registrar) error {
		defer func() { _ = logger.Sync() }()
		return reg.Register(cmd.Context())
	})
}
