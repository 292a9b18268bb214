package qrcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"

	// Extra logo formats beyond imaging's defaults.
	_ "golang.org/x/image/webp"
)

// LogoBorder is the white border kept around the logo inside its canvas.
const LogoBorder = 10

// DefaultMaxLogoPixels bounds the decoded logo area (4096×4096).
const DefaultMaxLogoPixels = 4096 * 4096

// loadLogo returns the raw logo bytes from a URL, a file URL or a local path.
func loadLogo(ctx context.Context, fetcher Fetcher, source string) ([]byte, error) {
	if isURL(source) {
		data, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLogoFetch, source, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: %s: empty response", ErrLogoFetch, source)
		}
		return data, nil
	}

	data, err := os.ReadFile(localPath(source))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogoNotFound, source)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrLogoFetch, source, err)
	}
	return data, nil
}

// decodeLogo decodes PNG, JPEG, GIF, BMP, TIFF and WebP logos. The header is
// read first so images declaring more than maxPixels are never allocated.
func decodeLogo(data []byte, maxPixels int64) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrLogoDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrLogoDecode, cfg.Width, cfg.Height, maxPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}
	return img, nil
}

// LogoCanvas returns a size×size opaque white canvas with logo stretched into
// the inner (size-20)×(size-20) region. Transparent logo pixels blend into white.
func LogoCanvas(logo image.Image, size int) *image.NRGBA {
	canvas := imaging.New(size, size, White.NRGBA())

	inner := size - 2*LogoBorder
	if inner <= 0 || logo == nil || logo.Bounds().Empty() {
		return canvas
	}

	resized := imaging.Resize(logo, inner, inner, imaging.Lanczos)
	return imaging.Overlay(canvas, resized, image.Pt(LogoBorder, LogoBorder), 1.0)
}

// LogoPosition returns the top-left corner, relative to the base origin, of a
// logo of logoSize pixels. Vertical placement is always centered plus DY.
func LogoPosition(base image.Rectangle, logoSize int, align Align, offset Offset) image.Point {
	w, h := base.Dx(), base.Dy()

	y := (h-logoSize)/2 + offset.DY

	var x int
	switch align {
	case AlignLeft:
		x = offset.DX
	case AlignRight:
		x = w - logoSize - offset.DX
	default:
		x = (w - logoSize) / 2
	}

	return image.Pt(x, y)
}

// ComposeLogo pastes the logo canvas onto base, overwriting the covered pixels.
// There is no alpha blending: the QR modules underneath are replaced and the
// error-correction capacity is what keeps the symbol readable.
func ComposeLogo(base, logo image.Image, size int, align Align, offset Offset) *image.NRGBA {
	canvas := LogoCanvas(logo, size)
	pos := LogoPosition(base.Bounds(), size, align, offset)
	return imaging.Paste(base, canvas, pos)
}

// compositeLogo runs the full logo step on an encoded raster.
func compositeLogo(ctx context.Context, fetcher Fetcher, maxPixels int64, raster []byte, o Options) ([]byte, error) {
	data, err := loadLogo(ctx, fetcher, o.LogoPath)
	if err != nil {
		return nil, err
	}

	logo, err := decodeLogo(data, maxPixels)
	if err != nil {
		return nil, err
	}

	base, err := imaging.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("%w: decode rendered raster: %v", ErrEncodingFailure, err)
	}

	out := ComposeLogo(base, logo, o.LogoSize, o.LogoAlign, o.LogoOffset)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}
