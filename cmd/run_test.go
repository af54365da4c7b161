package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errUnavailable = errors.New("discord unavailable")

type fakeRegistrar struct{ err error }

func (f *fakeRegistrar) Register(context.Context) error { return f.err }

type fakeBot struct {
	startErr error
	closed   bool
}

func (f *fakeBot) Start(context.Context) error { return f.startErr }

func (f *fakeBot) Close(context.Context) error {
	f.closed = true
	return nil
}

type fakeServer struct {
	started  chan struct{}
	stop     chan struct{}
	once     sync.Once
	startErr error
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}), stop: make(chan struct{})}
}

func (f *fakeServer) Start() error {
	close(f.started)
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stop
	return nil
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.once.Do(func() { close(f.stop) })
	return nil
}

func TestServe(t *testing.T) {
	t.Run("should keep serving health when registration and login fail", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		bot := &fakeBot{startErr: errUnavailable}
		server := newFakeServer()

		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, zap.NewNop(), &fakeRegistrar{err: errUnavailable}, bot, server)
		}()

		<-server.started
		cancel()

		require.NoError(t, <-done)
		require.False(t, bot.closed)
	})

	t.Run("should close the bot on shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		bot := &fakeBot{}
		server := newFakeServer()

		done := make(chan error, 1)
		go func() { done <- serve(ctx, zap.NewNop(), &fakeRegistrar{}, bot, server) }()

		<-server.started
		cancel()

		require.NoError(t, <-done)
		require.True(t, bot.closed)
	})

	t.Run("should return the health server error", func(t *testing.T) {
		bot := &fakeBot{}
		server := newFakeServer()
		server.startErr = errors.New("failed to listen on :3000")

		err := serve(context.Background(), zap.NewNop(), &fakeRegistrar{}, bot, server)

		require.ErrorContains(t, err, "failed to listen")
		require.True(t, bot.closed)
	})
}
