package qrcode

import (
	"context"
)

// DefaultSize is used by Generate and GenerateBase64Image for non-positive sizes.
const DefaultSize = 256

// Generate returns PNG bytes for content using medium error correction.
func Generate(content string, size int) ([]byte, error) {
	g, o, err := quick(size)
	if err != nil {
		return nil, err
	}
	return g.Render(context.Background(), content, o)
}

// GenerateBase64Image returns content as a PNG data URI for HTML embedding.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return Emit(png, Options{Output: OutputBase64})
}

func quick(size int) (*Generator, Options, error) {
	if size <= 0 {
		size = DefaultSize
	}
	g, err := New(DefaultConfig())
	if err != nil {
		return nil, Options{}, err
	}
	o, err := g.Resolve(WithSize(size), WithErrorCorrection(LevelMedium))
	if err != nil {
		return nil, Options{}, err
	}
	return g, o, nil
}
