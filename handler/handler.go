package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrcompose/core/logger"
	"github.com/dmitrymomot/qrcompose/middleware"
	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
	"github.com/dmitrymomot/qrcompose/response"
)

// DefaultMaxBodySize limits POST /qrcode request bodies.
const DefaultMaxBodySize = 64 * middleware.KB

// Handler serves the QR code HTTP API.
type Handler struct {
	gen         *qrcode.Generator
	logger      *slog.Logger
	maxBodySize int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for request and error logging.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// New creates a Handler backed by gen.
func New(gen *qrcode.Generator, opts ...Option) *Handler {
	h := &Handler{
		gen:         gen,
		logger:      logger.Discard(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimw.Recoverer)
	r.Use(middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger: h.logger,
		Skip: func(r *http.Request) bool {
			return r.URL.Path == "/health/live"
		},
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, response.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, response.ErrMethodNotAllowed)
	})

	r.Get("/health/live", h.handleLive)

	r.Get("/qrcode", h.handleImage)
	r.With(middleware.BodyLimit(h.maxBodySize)).Post("/qrcode", h.handleGenerate)

	return r
}

// handleLive indicates the process is running. No dependency checks.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	_ = response.String(w, http.StatusOK, "ALIVE")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := toHTTPError(err)
	if e.StatusCode() >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "qr code request failed",
			logger.Component("handler"),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
	}
	response.WriteError(w, e)
}
