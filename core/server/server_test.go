package server_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/crumbs/core/server"
)

func waitForAddr(t *testing.T, srv *server.Server) string {
	t.Helper()
	var addr string
	require.Eventually(t, func() bool {
		addr = srv.Addr()
		return addr != "127.0.0.1:0"
	}, 2*time.Second, 10*time.Millisecond)
	return addr
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "mc_ping", Value: "pong"})
		_, _ = io.WriteString(w, "ok")
	})

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(gctx, handler))

	addr := waitForAddr(t, srv)

	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get("http://" + addr + "/")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "ok", string(body))
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, "pong", resp.Cookies()[0].Value)

	cancel()
	assert.NoError(t, g.Wait())
}

func TestServerStartTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, http.NotFoundHandler()) }()

	waitForAddr(t, srv)
	assert.ErrorIs(t, srv.Start(ctx, http.NotFoundHandler()), server.ErrServerAlreadyRunning)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.NoError(t, srv.Stop())
}

func TestServerStopWhenIdle(t *testing.T) {
	t.Parallel()
	assert.NoError(t, server.New(":0").Stop())
}
