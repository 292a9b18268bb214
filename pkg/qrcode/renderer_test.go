package qrcode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

func TestPNGRenderer_Render(t *testing.T) {
	t.Parallel()

	// 2x2 diagonal matrix, 1 module margin: 4 modules across, 10px each.
	m := qrcode.Matrix{
		{true, false},
		{false, true},
	}

	t.Run("exact size and module placement", func(t *testing.T) {
		data, err := qrcode.PNGRenderer{}.Render(m, qrcode.Style{
			Size:       40,
			Margin:     1,
			Foreground: qrcode.Black,
			Background: qrcode.White,
		})
		require.NoError(t, err)

		img := decodePNG(t, data)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Equal(t, 40, img.Bounds().Dy())

		assertRGB(t, [3]int{255, 255, 255}, img, 0, 0)   // quiet zone
		assertRGB(t, [3]int{255, 255, 255}, img, 9, 9)   // quiet zone edge
		assertRGB(t, [3]int{0, 0, 0}, img, 10, 10)       // module (0,0)
		assertRGB(t, [3]int{0, 0, 0}, img, 19, 19)       // module (0,0)
		assertRGB(t, [3]int{255, 255, 255}, img, 20, 10) // module (1,0)
		assertRGB(t, [3]int{0, 0, 0}, img, 25, 25)       // module (1,1)
		assertRGB(t, [3]int{255, 255, 255}, img, 35, 35) // quiet zone
	})

	t.Run("leftover pixels center the symbol", func(t *testing.T) {
		// 45 / 4 = 11px modules, (45 - 22) / 2 = 11px offset.
		data, err := qrcode.PNGRenderer{}.Render(m, qrcode.Style{Size: 45, Margin: 1, Foreground: qrcode.Black, Background: qrcode.White})
		require.NoError(t, err)

		img := decodePNG(t, data)
		assert.Equal(t, 45, img.Bounds().Dx())
		assertRGB(t, [3]int{255, 255, 255}, img, 10, 10)
		assertRGB(t, [3]int{0, 0, 0}, img, 11, 11)
		assertRGB(t, [3]int{0, 0, 0}, img, 32, 32)
		assertRGB(t, [3]int{255, 255, 255}, img, 33, 33)
	})

	t.Run("colors are applied", func(t *testing.T) {
		data, err := qrcode.PNGRenderer{}.Render(m, qrcode.Style{
			Size:       40,
			Margin:     1,
			Foreground: qrcode.Color{R: 200, G: 10, B: 10},
			Background: qrcode.Color{R: 240, G: 240, B: 100},
		})
		require.NoError(t, err)

		img := decodePNG(t, data)
		assertRGB(t, [3]int{240, 240, 100}, img, 0, 0)
		assertRGB(t, [3]int{200, 10, 10}, img, 15, 15)
	})

	t.Run("zero margin", func(t *testing.T) {
		data, err := qrcode.PNGRenderer{}.Render(m, qrcode.Style{Size: 20, Margin: 0, Foreground: qrcode.Black, Background: qrcode.White})
		require.NoError(t, err)

		img := decodePNG(t, data)
		assertRGB(t, [3]int{0, 0, 0}, img, 0, 0)
		assertRGB(t, [3]int{255, 255, 255}, img, 10, 0)
	})

	t.Run("size too small", func(t *testing.T) {
		_, err := qrcode.PNGRenderer{}.Render(m, qrcode.Style{Size: 3, Margin: 1})
		assert.ErrorIs(t, err, qrcode.ErrEncodingFailure)
	})

	t.Run("empty matrix", func(t *testing.T) {
		_, err := qrcode.PNGRenderer{}.Render(nil, qrcode.Style{Size: 100})
		assert.ErrorIs(t, err, qrcode.ErrEncodingFailure)
	})

	t.Run("non-square matrix", func(t *testing.T) {
		_, err := qrcode.PNGRenderer{}.Render(qrcode.Matrix{{true}, {true, false}}, qrcode.Style{Size: 100})
		assert.ErrorIs(t, err, qrcode.ErrEncodingFailure)
	})
}

func TestSkipEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("square matrix with finder pattern", func(t *testing.T) {
		m, err := qrcode.SkipEncoder{}.Encode("Hello World", qrcode.LevelMedium)
		require.NoError(t, err)

		n := m.Size()
		require.GreaterOrEqual(t, n, 21)
		assert.Equal(t, 0, (n-21)%4, "version sizes are 21 + 4k modules")
		for _, row := range m {
			require.Len(t, row, n)
		}
		// Finder patterns start with a dark module in three corners.
		assert.True(t, m[0][0])
		assert.True(t, m[0][n-1])
		assert.True(t, m[n-1][0])
	})

	t.Run("higher level needs more modules", func(t *testing.T) {
		data := "https://example.com/a/fairly/long/path?with=query&and=more"
		low, err := qrcode.SkipEncoder{}.Encode(data, qrcode.LevelLow)
		require.NoError(t, err)
		high, err := qrcode.SkipEncoder{}.Encode(data, qrcode.LevelHigh)
		require.NoError(t, err)
		assert.Greater(t, high.Size(), low.Size())
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := qrcode.SkipEncoder{}.Encode("Hello World", qrcode.LevelHigh)
		require.NoError(t, err)
		b, err := qrcode.SkipEncoder{}.Encode("Hello World", qrcode.LevelHigh)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := qrcode.SkipEncoder{}.Encode("Hello World", "Z")
		assert.ErrorIs(t, err, qrcode.ErrInvalidOption)
	})

	t.Run("data too long", func(t *testing.T) {
		long := make([]byte, 4000)
		for i := range long {
			long[i] = byte('a' + i%26)
		}
		_, err := qrcode.SkipEncoder{}.Encode(string(long), qrcode.LevelHigh)
		assert.True(t, errors.Is(err, qrcode.ErrEncodingFailure))
	})
}
