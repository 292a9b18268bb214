package qrcode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Matrix is a square module grid without quiet zone. True marks a dark module.
type Matrix [][]bool

// Size returns the number of modules per side.
func (m Matrix) Size() int {
	return len(m)
}

// Encoder turns data into a module matrix.
type Encoder interface {
	Encode(data string, level Level) (Matrix, error)
}

// SkipEncoder encodes symbols with github.com/skip2/go-qrcode.
type SkipEncoder struct{}

// Compile-time check that SkipEncoder implements Encoder.
var _ Encoder = SkipEncoder{}

// Encode builds the symbol with the given error-correction level.
func (SkipEncoder) Encode(data string, level Level) (Matrix, error) {
	rl, err := recoveryLevel(level)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(data, rl)
	if err != nil {
		return nil, fmt.Errorf("%w: encode symbol: %v", ErrEncodingFailure, err)
	}
	// The renderer owns the quiet zone.
	q.DisableBorder = true

	return Matrix(q.Bitmap()), nil
}

func recoveryLevel(l Level) (qrcode.RecoveryLevel, error) {
	switch l {
	case LevelLow:
		return qrcode.Low, nil
	case LevelMedium:
		return qrcode.Medium, nil
	case LevelQuartile:
		return qrcode.High, nil
	case LevelHigh:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("%w: error_correction_level must be one of L, M, Q, H, got %q", ErrInvalidOption, l)
}
