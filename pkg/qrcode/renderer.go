package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Style holds the rendering parameters.
type Style struct {
	Size       int // output edge length in pixels
	Margin     int // quiet zone in modules
	Foreground Color
	Background Color
}

// Renderer turns a module matrix into an encoded raster.
type Renderer interface {
	Render(m Matrix, s Style) ([]byte, error)
}

// PNGRenderer renders square PNG images of exactly Style.Size pixels.
// Modules are drawn with an integer pixel size and centered; leftover pixels
// widen the quiet zone evenly.
type PNGRenderer struct{}

// Compile-time check that PNGRenderer implements Renderer.
var _ Renderer = PNGRenderer{}

// Render draws m and encodes the result as PNG.
func (PNGRenderer) Render(m Matrix, s Style) ([]byte, error) {
	img, err := rasterize(m, s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}

func rasterize(m Matrix, s Style) (*image.NRGBA, error) {
	n := m.Size()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty module matrix", ErrEncodingFailure)
	}
	if s.Size <= 0 || s.Margin < 0 {
		return nil, fmt.Errorf("%w: invalid style size=%d margin=%d", ErrEncodingFailure, s.Size, s.Margin)
	}

	total := n + 2*s.Margin
	px := s.Size / total
	if px < 1 {
		return nil, fmt.Errorf("%w: size %dpx is too small for %d modules with margin %d",
			ErrEncodingFailure, s.Size, n, s.Margin)
	}
	offset := (s.Size - n*px) / 2

	img := imaging.New(s.Size, s.Size, s.Background.NRGBA())
	fg := image.NewUniform(s.Foreground.NRGBA())

	for y, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: module matrix is not square", ErrEncodingFailure)
		}
		for x, dark := range row {
			if !dark {
				continue
			}
			x0, y0 := offset+x*px, offset+y*px
			draw.Draw(img, image.Rect(x0, y0, x0+px, y0+px), fg, image.Point{}, draw.Src)
		}
	}

	return img, nil
}
