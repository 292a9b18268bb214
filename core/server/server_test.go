package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcompose/core/server"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

// waitForAddr polls until the server has bound its listener.
func waitForAddr(t *testing.T, srv *server.Server, configured string) string {
	t.Helper()
	var addr string
	require.Eventually(t, func() bool {
		addr = srv.Addr()
		return addr != configured
	}, 2*time.Second, 10*time.Millisecond)
	return addr
}

func TestServer_Run(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, okHandler())()
	}()

	addr := waitForAddr(t, srv, "127.0.0.1:0")

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = net.DialTimeout("tcp", addr, 200*time.Millisecond)
	assert.Error(t, err, "listener should be closed after shutdown")
}

func TestServer_StartTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = srv.Start(ctx, okHandler()) }()
	waitForAddr(t, srv, "127.0.0.1:0")

	err := srv.Start(ctx, okHandler())
	require.ErrorIs(t, err, server.ErrServerAlreadyRunning)
	require.NoError(t, srv.Stop())
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	srv := server.New(ln.Addr().String())
	err = srv.Run(context.Background(), okHandler())()
	require.ErrorIs(t, err, server.ErrListen)
}

func TestServer_StopWhenNotRunning(t *testing.T) {
	t.Parallel()

	assert.NoError(t, server.New(":0").Stop())
}
