package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/qrcompose/core/config"
	"github.com/dmitrymomot/qrcompose/core/server"
	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

// Config is the application configuration loaded from the environment.
type Config struct {
	QRCode qrcode.Config
	Server server.Config

	AppName     string `env:"APP_NAME" envDefault:"qrcompose"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	Version     string `env:"APP_VERSION"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogSource   bool   `env:"LOG_ADD_SOURCE"`
	MaxBodySize int64  `env:"HTTP_MAX_BODY_SIZE" envDefault:"65536"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		QRCode:      qrcode.DefaultConfig(),
		Server:      server.DefaultConfig(),
		AppName:     "qrcompose",
		Env:         "development",
		MaxBodySize: 64 << 10,
	}
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. Empty means info; the environment preset then decides.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return l, nil
}
