// Package qrcompose generates styled PNG QR codes with optional logo overlays
// and serves them from a library, a CLI and an HTTP API.
//
// # Package Organization
//
//   - Core: configuration, logging and the HTTP server lifecycle
//   - Generator: the QR code pipeline itself
//   - HTTP: middleware, responses and handlers for the API
//   - Application: wiring and the qrcode command
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/qrcompose/pkg/qrcode
//	go doc -all github.com/dmitrymomot/qrcompose/handler
//
// # Core Packages
//
//	github.com/dmitrymomot/qrcompose/core/config     - Type-safe environment variable loading with .env support
//	github.com/dmitrymomot/qrcompose/core/logger     - Structured logging built on slog
//	github.com/dmitrymomot/qrcompose/core/server     - HTTP server with graceful shutdown
//
// # Generator
//
//	github.com/dmitrymomot/qrcompose/pkg/qrcode      - Option resolution, symbol encoding, rendering, logo compositing and output
//
// # HTTP Packages
//
//	github.com/dmitrymomot/qrcompose/middleware      - Request IDs, request logging and body limits
//	github.com/dmitrymomot/qrcompose/response        - JSON, text and PNG responses with structured errors
//	github.com/dmitrymomot/qrcompose/handler         - GET/POST /qrcode and liveness routes on a chi router
//
// # Application
//
//	github.com/dmitrymomot/qrcompose/app             - Configuration, logger, generator and server wiring
//	github.com/dmitrymomot/qrcompose/cmd/qrcode      - The qrcode command: generate and serve
//
// # Quick Start
//
//	uri, err := qrcode.GenerateBase64Image("https://example.com", 256)
//	if err != nil {
//		return err
//	}
//	fmt.Printf(`<img src="%s" alt="QR Code">`, uri)
//
// From the command line:
//
//	qrcode generate "https://example.com" --path storage/qrcodes/site.png --logo logo.png
package qrcompose
