package qrcode_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

func TestResolveMap(t *testing.T) {
	t.Parallel()

	g := newGenerator(t)

	t.Run("empty map equals defaults", func(t *testing.T) {
		fromMap, err := g.ResolveMap(nil)
		require.NoError(t, err)
		typed, err := g.Resolve()
		require.NoError(t, err)
		assert.Equal(t, typed, fromMap)
	})

	t.Run("subset matches typed options", func(t *testing.T) {
		fromMap, err := g.ResolveMap(map[string]any{
			"margin":     3,
			"logo":       "logo.png",
			"logo_align": "right",
		})
		require.NoError(t, err)

		typed, err := g.Resolve(
			qrcode.WithMargin(3),
			qrcode.WithLogo("logo.png"),
			qrcode.WithLogoAlign(qrcode.AlignRight),
		)
		require.NoError(t, err)
		assert.Equal(t, typed, fromMap)
	})

	t.Run("all keys", func(t *testing.T) {
		o, err := g.ResolveMap(map[string]any{
			"size":                   400,
			"margin":                 0,
			"format":                 "PNG",
			"logo":                   "https://example.com/logo.png",
			"logo_size":              80,
			"logo_align":             "left",
			"logo_offset":            []any{5, -3},
			"foreground_color":       []int{10, 20, 30},
			"background_color":       [3]int{250, 250, 250},
			"error_correction_level": "q",
			"output":                 "file",
			"output_path":            "/tmp/out.png",
		})
		require.NoError(t, err)
		assert.Equal(t, qrcode.Options{
			Size:            400,
			Margin:          0,
			Format:          qrcode.FormatPNG,
			LogoPath:        "https://example.com/logo.png",
			LogoSize:        80,
			LogoAlign:       qrcode.AlignLeft,
			LogoOffset:      qrcode.Offset{DX: 5, DY: -3},
			ForegroundColor: qrcode.Color{R: 10, G: 20, B: 30},
			BackgroundColor: qrcode.Color{R: 250, G: 250, B: 250},
			ErrorCorrection: qrcode.LevelQuartile,
			Output:          qrcode.OutputFile,
			OutputPath:      "/tmp/out.png",
		}, o)
	})

	t.Run("decoded json numbers", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{"size": 250, "foreground_color": [0, 128, 255]}`), &raw))

		o, err := g.ResolveMap(raw)
		require.NoError(t, err)
		assert.Equal(t, 250, o.Size)
		assert.Equal(t, qrcode.Color{R: 0, G: 128, B: 255}, o.ForegroundColor)
	})

	t.Run("null logo is absent", func(t *testing.T) {
		o, err := g.ResolveMap(map[string]any{"logo": nil})
		require.NoError(t, err)
		assert.False(t, o.HasLogo())
		assert.Equal(t, qrcode.LevelMedium, o.ErrorCorrection)
	})
}

func TestResolveMap_Invalid(t *testing.T) {
	t.Parallel()

	g := newGenerator(t)

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"size zero", map[string]any{"size": 0}},
		{"size negative", map[string]any{"size": -5}},
		{"size fractional", map[string]any{"size": 300.5}},
		{"size string", map[string]any{"size": "300"}},
		{"size nil", map[string]any{"size": nil}},
		{"size above limit", map[string]any{"size": 2e9}},
		{"logo size above limit", map[string]any{"logo_size": 60000}},
		{"margin negative", map[string]any{"margin": -1}},
		{"margin fractional", map[string]any{"margin": 1.5}},
		{"margin bool", map[string]any{"margin": true}},
		{"logo not a string", map[string]any{"logo": 42}},
		{"logo size zero", map[string]any{"logo_size": 0}},
		{"logo offset too short", map[string]any{"logo_offset": []any{1}}},
		{"logo offset not numbers", map[string]any{"logo_offset": []any{"a", "b"}}},
		{"foreground two channels", map[string]any{"foreground_color": []any{0, 0}}},
		{"foreground four channels", map[string]any{"foreground_color": []any{0, 0, 0, 0}}},
		{"foreground out of range", map[string]any{"foreground_color": []any{0, 0, 256}}},
		{"foreground not numbers", map[string]any{"foreground_color": []any{0, "0", 0}}},
		{"background not an array", map[string]any{"background_color": "white"}},
		{"background negative", map[string]any{"background_color": []int{-1, 0, 0}}},
		{"error correction invalid", map[string]any{"error_correction_level": "Z"}},
		{"error correction not a string", map[string]any{"error_correction_level": 1}},
		{"output unknown", map[string]any{"output": "s3"}},
		{"file without path", map[string]any{"output": "file"}},
		{"file with non-string path", map[string]any{"output": "file", "output_path": 7}},
		{"format unsupported", map[string]any{"format": "jpeg"}},
		{"unknown key", map[string]any{"colour": []any{0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ResolveMap(tt.raw)
			assert.ErrorIs(t, err, qrcode.ErrInvalidOption)
		})
	}
}
