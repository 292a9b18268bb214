// Package middleware provides net/http middleware for the QR code HTTP surface:
// request IDs, structured request logging and request body limits.
//
// Every constructor returns func(http.Handler) http.Handler, so the middleware
// plugs straight into a chi router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID())
//	r.Use(middleware.Logging(log))
//	r.Use(middleware.BodyLimit(64 * middleware.KB))
//
// # Request ID
//
// RequestID assigns a UUID v4 to each request, stores it in the request
// context and echoes it in the X-Request-ID response header. With
// UseExisting an incoming header value is kept.
//
//	id, ok := middleware.GetRequestID(r.Context())
//
// # Logging
//
// Logging writes one record per request using the core/logger attribute
// helpers. 5xx responses are logged at error level; 4xx and requests slower
// than SlowRequestThreshold at warning level.
//
// # Body Limit
//
// BodyLimit answers 413 with a JSON error body when Content-Length exceeds the
// limit and wraps the body in http.MaxBytesReader otherwise.
package middleware
