// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/qrcompose/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("qrcode"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(
//		logger.WithProduction("qrcode"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("qr code generated",
//		logger.Component("generator"),
//		logger.Size(300),
//		logger.Duration(time.Since(start)),
//	)
//
// # Context Values
//
// Extractors inject attributes from the context on every *Context call:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "handling request")
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Warn("generation failed", logger.Error(err), logger.Stage("logo"))
//
// # Testing
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("test", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
