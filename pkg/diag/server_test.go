package diag_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enginekit/pkg/diag"
)

const loopback = "127.0.0.1:0"

// start runs srv in the background and returns the bound address and the
// channel Run's result is sent on.
func start(t *testing.T, srv *diag.Server, h http.Handler) (string, <-chan error) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), h) }()

	require.Eventually(t, func() bool { return srv.Addr() != loopback }, time.Second, 10*time.Millisecond)
	return srv.Addr(), done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunServesHandler(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bound := make(chan string, 1)
	srv := diag.New(
		diag.WithAddr(loopback),
		diag.WithShutdownTimeout(100*time.Millisecond),
		diag.OnStart(func(addr string) { bound <- addr }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, diag.NewHandler(&fakeSource{ready: true})) }()
	addr := <-bound

	resp, err := http.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	waitDone(t, done)
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown after run")
}

func TestStartError(t *testing.T) {
	t.Parallel()

	srv := diag.New(diag.WithAddr(":invalid"))
	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.ErrStart)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	srv := diag.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, ":9090", srv.Addr())
}

func TestSecondRunAndDoubleShutdown(t *testing.T) {
	t.Parallel()

	var stopped atomic.Bool
	srv := diag.New(
		diag.WithAddr(loopback),
		diag.WithShutdownTimeout(50*time.Millisecond),
		diag.OnStop(func() { stopped.Store(true) }),
	)
	_, done := start(t, srv, nil)

	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, diag.ErrStart)
	assert.ErrorIs(t, err, diag.ErrAlreadyRunning)

	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
	waitDone(t, done)
	assert.True(t, stopped.Load(), "stop hook not executed")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	hs := &http.Server{}
	srv := diag.NewFromConfig(
		diag.Config{
			Addr:            loopback,
			ReadTimeout:     time.Second,
			WriteTimeout:    2 * time.Second,
			ShutdownTimeout: 50 * time.Millisecond,
		},
		diag.WithServer(hs),
	)
	_, done := start(t, srv, nil)

	assert.Equal(t, loopback, hs.Addr)
	assert.Equal(t, time.Second, hs.ReadTimeout)
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.NotNil(t, hs.Handler)

	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestConfigEnabled(t *testing.T) {
	t.Parallel()
	assert.False(t, diag.Config{}.Enabled())
	assert.True(t, diag.Config{Addr: ":9090"}.Enabled())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { diag.WithAddr("") }},
		{"read", func() { diag.WithReadTimeout(-time.Second) }},
		{"write", func() { diag.WithWriteTimeout(0) }},
		{"shutdown", func() { diag.WithShutdownTimeout(-time.Second) }},
		{"server", func() { diag.WithServer(nil) }},
		{"start hook", func() { diag.OnStart(nil) }},
		{"stop hook", func() { diag.OnStop(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	t.Run("nil logger allowed", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { diag.New(diag.WithLogger(nil)) })
	})
}
