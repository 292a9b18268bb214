package qrcode

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Format is the encoded image format.
type Format string

// FormatPNG is the only supported format.
const FormatPNG Format = "png"

// Align is the horizontal logo alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Level is the QR error-correction level.
type Level string

const (
	LevelLow      Level = "L" // ~7% recovery
	LevelMedium   Level = "M" // ~15% recovery
	LevelQuartile Level = "Q" // ~25% recovery
	LevelHigh     Level = "H" // ~30% recovery
)

// OutputMode selects how the final image is returned.
type OutputMode string

const (
	OutputBase64 OutputMode = "base64"
	OutputFile   OutputMode = "file"
)

// Offset nudges the logo position in pixels.
type Offset struct {
	DX int
	DY int
}

// Color is an RGB triple. Channels must be within [0,255].
type Color struct {
	R int
	G int
	B int
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NRGBA converts c to an opaque color.NRGBA. Out-of-range channels are clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func (c Color) valid() bool {
	for _, v := range [3]int{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// ParseColor accepts "#rrggbb", "rrggbb" or "r,g,b".
// Errors wrap ErrInvalidOption.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return Color{}, fmt.Errorf("%w: color %q must have three components", ErrInvalidOption, s)
		}
		var rgb [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return Color{}, fmt.Errorf("%w: color component %q must be an integer between 0 and 255", ErrInvalidOption, p)
			}
			rgb[i] = n
		}
		return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(b) != 3 {
		return Color{}, fmt.Errorf("%w: color %q must be #rrggbb or r,g,b", ErrInvalidOption, s)
	}
	return Color{R: int(b[0]), G: int(b[1]), B: int(b[2])}, nil
}

// DefaultMaxSize bounds Size and LogoSize unless a Generator is configured
// with another limit. A 4096px image is 64MB of RGBA pixels.
const DefaultMaxSize = 4096

// Options is a fully resolved generation configuration.
// Values produced by Generator.Resolve or Generator.ResolveMap are always valid.
type Options struct {
	Size            int
	Margin          int
	Format          Format
	LogoPath        string
	LogoSize        int
	LogoAlign       Align
	LogoOffset      Offset
	ForegroundColor Color
	BackgroundColor Color
	ErrorCorrection Level
	Output          OutputMode
	OutputPath      string
}

// HasLogo reports whether a logo was requested.
func (o Options) HasLogo() bool {
	return o.LogoPath != ""
}

// Style returns the renderer parameters derived from o.
func (o Options) Style() Style {
	return Style{
		Size:       o.Size,
		Margin:     o.Margin,
		Foreground: o.ForegroundColor,
		Background: o.BackgroundColor,
	}
}

// Validate checks every field against DefaultMaxSize. It does not fill in defaults.
func (o Options) Validate() error {
	return o.ValidateMax(DefaultMaxSize)
}

// ValidateMax is Validate with an explicit upper bound for Size and LogoSize.
// Non-positive bounds fall back to DefaultMaxSize.
func (o Options) ValidateMax(maxSize int) error {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if o.Size <= 0 {
		return fmt.Errorf("%w: size must be a positive integer, got %d", ErrInvalidOption, o.Size)
	}
	if o.Size > maxSize {
		return fmt.Errorf("%w: size must not exceed %d, got %d", ErrInvalidOption, maxSize, o.Size)
	}
	if o.Margin < 0 {
		return fmt.Errorf("%w: margin must be a non-negative integer, got %d", ErrInvalidOption, o.Margin)
	}
	if o.Format != FormatPNG {
		return fmt.Errorf("%w: format must be %q, got %q", ErrInvalidOption, FormatPNG, o.Format)
	}
	if o.LogoSize <= 0 {
		return fmt.Errorf("%w: logo_size must be a positive integer, got %d", ErrInvalidOption, o.LogoSize)
	}
	if o.LogoSize > maxSize {
		return fmt.Errorf("%w: logo_size must not exceed %d, got %d", ErrInvalidOption, maxSize, o.LogoSize)
	}
	switch o.LogoAlign {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("%w: logo_align must be left, center or right, got %q", ErrInvalidOption, o.LogoAlign)
	}
	if !o.ForegroundColor.valid() {
		return fmt.Errorf("%w: each value in foreground_color must be an integer between 0 and 255", ErrInvalidOption)
	}
	if !o.BackgroundColor.valid() {
		return fmt.Errorf("%w: each value in background_color must be an integer between 0 and 255", ErrInvalidOption)
	}
	switch o.ErrorCorrection {
	case LevelLow, LevelMedium, LevelQuartile, LevelHigh:
	default:
		return fmt.Errorf("%w: error_correction_level must be one of L, M, Q, H, got %q", ErrInvalidOption, o.ErrorCorrection)
	}
	switch o.Output {
	case OutputBase64:
	case OutputFile:
		if strings.TrimSpace(o.OutputPath) == "" {
			return fmt.Errorf("%w: output_path is required when output is %q", ErrInvalidOption, OutputFile)
		}
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidOption, OutputBase64, OutputFile, o.Output)
	}
	return nil
}

// Option overrides a single field of the generator defaults.
type Option func(*Options)

// WithSize sets the image edge length in pixels.
func WithSize(px int) Option {
	return func(o *Options) {
		o.Size = px
	}
}

// WithMargin sets the quiet zone width in modules.
func WithMargin(modules int) Option {
	return func(o *Options) {
		o.Margin = modules
	}
}

// WithFormat sets the image format.
func WithFormat(f Format) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// WithLogo sets the logo source: a local path or an http(s) URL.
func WithLogo(source string) Option {
	return func(o *Options) {
		o.LogoPath = source
	}
}

// WithLogoSize sets the logo canvas edge length in pixels, border included.
func WithLogoSize(px int) Option {
	return func(o *Options) {
		o.LogoSize = px
	}
}

// WithLogoAlign sets the horizontal logo alignment.
func WithLogoAlign(a Align) Option {
	return func(o *Options) {
		o.LogoAlign = a
	}
}

// WithLogoOffset sets the logo offset.
// DX is ignored for centered logos.
func WithLogoOffset(dx, dy int) Option {
	return func(o *Options) {
		o.LogoOffset = Offset{DX: dx, DY: dy}
	}
}

// WithForegroundColor sets the module color.
func WithForegroundColor(c Color) Option {
	return func(o *Options) {
		o.ForegroundColor = c
	}
}

// WithBackgroundColor sets the background and quiet zone color.
func WithBackgroundColor(c Color) Option {
	return func(o *Options) {
		o.BackgroundColor = c
	}
}

// WithErrorCorrection sets the error-correction level explicitly.
// Without it, H is used when a logo is requested and M otherwise.
func WithErrorCorrection(l Level) Option {
	return func(o *Options) {
		o.ErrorCorrection = l
	}
}

// WithBase64Output returns the image as a data URI.
func WithBase64Output() Option {
	return func(o *Options) {
		o.Output = OutputBase64
		o.OutputPath = ""
	}
}

// WithFileOutput writes the image to path and returns the path.
func WithFileOutput(path string) Option {
	return func(o *Options) {
		o.Output = OutputFile
		o.OutputPath = path
	}
}
