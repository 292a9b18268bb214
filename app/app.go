package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrcompose/core/logger"
	"github.com/dmitrymomot/qrcompose/core/server"
	"github.com/dmitrymomot/qrcompose/handler"
	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

// App wires configuration, logging, the generator and the HTTP server.
type App struct {
	config    Config
	hasConfig bool
	logger    *slog.Logger
	generator *qrcode.Generator
	server    *server.Server
}

type AppOption func(*App) error

// NewApp builds an App. Configuration is read from the environment (and a
// .env file) unless WithConfig is given.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.hasConfig {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		app.config = cfg
	}

	if app.logger == nil {
		l, err := newLogger(app.config)
		if err != nil {
			return nil, err
		}
		app.logger = l
	}

	if app.generator == nil {
		gen, err := qrcode.New(app.config.QRCode, qrcode.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.generator = gen
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// WithConfig uses cfg instead of loading the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.hasConfig = true
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithGenerator(gen *qrcode.Generator) AppOption {
	return func(app *App) error {
		if gen == nil {
			return errors.New("generator cannot be nil")
		}
		app.generator = gen
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func (a *App) Config() Config {
	return a.config
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) Generator() *qrcode.Generator {
	return a.generator
}

// Handler returns the HTTP API routes.
func (a *App) Handler() http.Handler {
	return handler.New(a.generator,
		handler.WithLogger(a.logger),
		handler.WithMaxBodySize(a.config.MaxBodySize),
	).Routes()
}

// Run serves the HTTP API until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.Handler()))
	return g.Wait()
}

// newLogger writes to stderr so stdout stays free for command output.
func newLogger(cfg Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{logger.WithOutput(os.Stderr)}
	switch cfg.Env {
	case "production":
		opts = append(opts, logger.WithProduction(cfg.AppName))
	case "staging":
		opts = append(opts, logger.WithStaging(cfg.AppName))
	default:
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}
	// An explicit level overrides the environment preset.
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.Version != "" {
		opts = append(opts, logger.WithAttr(slog.String("version", cfg.Version)))
	}
	if cfg.LogSource {
		opts = append(opts, logger.WithHandlerOptions(&slog.HandlerOptions{AddSource: true}))
	}

	return logger.New(opts...), nil
}
