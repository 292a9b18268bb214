package app_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcompose/app"
	"github.com/dmitrymomot/qrcompose/core/config"
	"github.com/dmitrymomot/qrcompose/core/logger"
)

func testConfig() app.Config {
	cfg := app.DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = time.Second
	return cfg
}

func TestNewApp(t *testing.T) {
	t.Parallel()

	a, err := app.NewApp(app.WithConfig(testConfig()), app.WithLogger(logger.Discard()))
	require.NoError(t, err)
	require.NotNil(t, a.Generator())

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestNewApp_InvalidDefaults(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.QRCode.DefaultSize = 0

	_, err := app.NewApp(app.WithConfig(cfg), app.WithLogger(logger.Discard()))
	require.Error(t, err)
}

func TestNewApp_NilOptions(t *testing.T) {
	t.Parallel()

	_, err := app.NewApp(app.WithLogger(nil))
	require.Error(t, err)

	_, err = app.NewApp(app.WithGenerator(nil))
	require.Error(t, err)

	_, err = app.NewApp(app.WithServer(nil))
	require.Error(t, err)
}

func TestNewApp_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("APP_NAME", "qr-test")
	t.Setenv("QRCODE_DEFAULT_SIZE", "512")
	t.Setenv("SERVER_ADDR", "127.0.0.1:0")

	a, err := app.NewApp(app.WithLogger(logger.Discard()))
	require.NoError(t, err)

	assert.Equal(t, "qr-test", a.Config().AppName)
	assert.Equal(t, 512, a.Config().QRCode.DefaultSize)

	o, err := a.Generator().Resolve()
	require.NoError(t, err)
	assert.Equal(t, 512, o.Size)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	a, err := app.NewApp(app.WithConfig(testConfig()), app.WithLogger(logger.Discard()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_LoggerOptions(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Env = "production"
	cfg.LogLevel = "warn"
	cfg.Version = "1.2.3"
	cfg.LogSource = true

	a, err := app.NewApp(app.WithConfig(cfg))
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, a.Logger().Enabled(ctx, slog.LevelInfo))
	assert.True(t, a.Logger().Enabled(ctx, slog.LevelWarn))
}

func TestConfig_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := app.Config{LogLevel: tt.in}.Level()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
