package qrcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/qrcompose/core/logger"
)

// Config holds the generator defaults, loadable from the environment.
type Config struct {
	DefaultSize     int           `env:"QRCODE_DEFAULT_SIZE" envDefault:"300"`
	DefaultMargin   int           `env:"QRCODE_DEFAULT_MARGIN" envDefault:"1"`
	DefaultFormat   string        `env:"QRCODE_DEFAULT_FORMAT" envDefault:"png"`
	DefaultLogoSize int           `env:"QRCODE_DEFAULT_LOGO_SIZE" envDefault:"100"`
	FetchTimeout    time.Duration `env:"QRCODE_LOGO_FETCH_TIMEOUT" envDefault:"5s"`
	MaxLogoBytes    int64         `env:"QRCODE_LOGO_MAX_BYTES" envDefault:"10485760"`
	MaxSize         int           `env:"QRCODE_MAX_SIZE" envDefault:"4096"`
	MaxLogoPixels   int64         `env:"QRCODE_LOGO_MAX_PIXELS" envDefault:"16777216"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultSize:     300,
		DefaultMargin:   1,
		DefaultFormat:   string(FormatPNG),
		DefaultLogoSize: 100,
		FetchTimeout:    DefaultFetchTimeout,
		MaxLogoBytes:    DefaultMaxLogoBytes,
		MaxSize:         DefaultMaxSize,
		MaxLogoPixels:   DefaultMaxLogoPixels,
	}
}

// Defaults returns the option values every call starts from.
// The error-correction level is left empty and resolved per call.
func (c Config) Defaults() Options {
	return Options{
		Size:            c.DefaultSize,
		Margin:          c.DefaultMargin,
		Format:          Format(strings.ToLower(c.DefaultFormat)),
		LogoSize:        c.DefaultLogoSize,
		LogoAlign:       AlignCenter,
		ForegroundColor: Black,
		BackgroundColor: White,
		Output:          OutputBase64,
	}
}

// Generator runs the generation pipeline. It keeps only immutable defaults
// and stateless collaborators, so it is safe for concurrent use.
type Generator struct {
	defaults      Options
	maxSize       int
	maxLogoPixels int64
	encoder       Encoder
	renderer      Renderer
	fetcher       Fetcher
	logger        *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithEncoder replaces the symbol encoder.
func WithEncoder(e Encoder) GeneratorOption {
	return func(g *Generator) {
		if e != nil {
			g.encoder = e
		}
	}
}

// WithRenderer replaces the raster renderer.
func WithRenderer(r Renderer) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithFetcher replaces the remote logo fetcher.
func WithFetcher(f Fetcher) GeneratorOption {
	return func(g *Generator) {
		if f != nil {
			g.fetcher = f
		}
	}
}

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator with defaults taken from cfg.
// It fails with ErrInvalidOption when the defaults themselves are invalid.
func New(cfg Config, opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		defaults:      cfg.Defaults(),
		maxSize:       cfg.MaxSize,
		maxLogoPixels: cfg.MaxLogoPixels,
		encoder:       SkipEncoder{},
		renderer:      PNGRenderer{},
		fetcher: NewHTTPFetcher(
			WithFetchTimeout(cfg.FetchTimeout),
			WithMaxLogoBytes(cfg.MaxLogoBytes),
		),
		logger: logger.Discard(),
	}
	if g.maxSize <= 0 {
		g.maxSize = DefaultMaxSize
	}
	if g.maxLogoPixels <= 0 {
		g.maxLogoPixels = DefaultMaxLogoPixels
	}
	for _, opt := range opts {
		opt(g)
	}

	if _, err := resolve(g.defaults, g.maxSize, applyOptions(nil)); err != nil {
		return nil, fmt.Errorf("invalid defaults: %w", err)
	}

	return g, nil
}

// Resolve merges opts into the generator defaults and validates the result.
func (g *Generator) Resolve(opts ...Option) (Options, error) {
	return resolve(g.defaults, g.maxSize, applyOptions(opts))
}

// ResolveMap is like Resolve for untyped input such as decoded JSON.
// Keys are listed in resolve.go; unknown keys are rejected.
func (g *Generator) ResolveMap(raw map[string]any) (Options, error) {
	return resolve(g.defaults, g.maxSize, applyMap(raw))
}

// Generate encodes data and returns a data URI or the written file path.
func (g *Generator) Generate(ctx context.Context, data string, opts ...Option) (string, error) {
	o, err := g.Resolve(opts...)
	if err != nil {
		return "", g.fail(ctx, "resolve", err)
	}
	return g.run(ctx, data, o)
}

// GenerateMap is Generate for untyped input. A non-string data value fails
// with ErrInvalidData.
func (g *Generator) GenerateMap(ctx context.Context, data any, raw map[string]any) (string, error) {
	s, ok := data.(string)
	if !ok {
		return "", g.fail(ctx, "validate", fmt.Errorf("%w: data must be a string, got %T", ErrInvalidData, data))
	}
	o, err := g.ResolveMap(raw)
	if err != nil {
		return "", g.fail(ctx, "resolve", err)
	}
	return g.run(ctx, s, o)
}

// Render runs the pipeline up to the final raster and returns PNG bytes,
// ignoring the output settings of o. o is validated again.
func (g *Generator) Render(ctx context.Context, data string, o Options) ([]byte, error) {
	if err := o.ValidateMax(g.maxSize); err != nil {
		return nil, g.fail(ctx, "resolve", err)
	}
	return g.raster(ctx, data, o)
}

func (g *Generator) run(ctx context.Context, data string, o Options) (string, error) {
	start := time.Now()

	raster, err := g.raster(ctx, data, o)
	if err != nil {
		return "", err
	}

	out, err := Emit(raster, o)
	if err != nil {
		return "", g.fail(ctx, "output", err)
	}

	g.logger.DebugContext(ctx, "qr code generated",
		logger.Component("qrcode"),
		logger.Size(o.Size),
		logger.Output(string(o.Output)),
		logger.Logo(o.LogoPath),
		logger.Duration(time.Since(start)),
	)
	return out, nil
}

// raster encodes, renders and optionally composites the logo.
func (g *Generator) raster(ctx context.Context, data string, o Options) ([]byte, error) {
	if data == "" {
		return nil, g.fail(ctx, "validate", fmt.Errorf("%w: data must not be empty", ErrInvalidData))
	}

	m, err := g.encoder.Encode(data, o.ErrorCorrection)
	if err != nil {
		return nil, g.fail(ctx, "encode", encodingFailure(err))
	}

	raster, err := g.renderer.Render(m, o.Style())
	if err != nil {
		return nil, g.fail(ctx, "render", encodingFailure(err))
	}

	if !o.HasLogo() {
		return raster, nil
	}

	raster, err = compositeLogo(ctx, g.fetcher, g.maxLogoPixels, raster, o)
	if err != nil {
		return nil, g.fail(ctx, "logo", err)
	}
	return raster, nil
}

// encodingFailure wraps collaborator errors that carry no package error kind.
func encodingFailure(err error) error {
	for _, known := range []error{ErrEncodingFailure, ErrInvalidOption, ErrInvalidData} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrEncodingFailure, err)
}

func (g *Generator) fail(ctx context.Context, stage string, err error) error {
	g.logger.WarnContext(ctx, "qr code generation failed",
		logger.Component("qrcode"),
		logger.Stage(stage),
		logger.Error(err),
	)
	return err
}
