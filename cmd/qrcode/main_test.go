package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcompose/core/config"
	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hello.png")

		out, err := execute(t, "generate", "Hello World", "--path", path, "--size", "200")
		require.NoError(t, err)
		assert.Contains(t, out, "QR code generated and saved to "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	})

	t.Run("base64 output", func(t *testing.T) {
		out, err := execute(t, "generate", "Hello World", "--base64", "--fg", "#102030")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(out), qrcode.DataURIPrefix))
	})

	t.Run("logo with offsets", func(t *testing.T) {
		dir := t.TempDir()
		logo := filepath.Join(dir, "logo.png")
		raw, err := qrcode.Generate("logo", 64)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(logo, raw, 0o600))

		path := filepath.Join(dir, "out.png")
		_, err = execute(t, "generate", "Hello World", "--path", path,
			"--logo", logo, "--logo-align", "left", "--logo-offset-x", "5", "--logo-size", "80")
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.png")
		_, err := execute(t, "generate", "Hello World", "--path", path)
		require.ErrorIs(t, err, qrcode.ErrInvalidOutputMode)
	})

	t.Run("invalid color fails", func(t *testing.T) {
		_, err := execute(t, "generate", "x", "--base64", "--bg", "purple")
		require.ErrorIs(t, err, qrcode.ErrInvalidOption)
	})

	t.Run("oversized image fails", func(t *testing.T) {
		_, err := execute(t, "generate", "x", "--base64", "--size", "60000")
		require.ErrorIs(t, err, qrcode.ErrInvalidOption)
	})

	t.Run("verbose installs default logger", func(t *testing.T) {
		prev := slog.Default()
		t.Cleanup(func() { slog.SetDefault(prev) })

		_, err := execute(t, "generate", "x", "--base64", "--verbose")
		require.NoError(t, err)
		assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("invalid size fails", func(t *testing.T) {
		_, err := execute(t, "generate", "x", "--base64", "--size", "0")
		require.ErrorIs(t, err, qrcode.ErrInvalidOption)
	})

	t.Run("requires data", func(t *testing.T) {
		_, err := execute(t, "generate")
		require.Error(t, err)
	})
}

func TestServeCmd(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("SERVER_ADDR", "127.0.0.1:0")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}
