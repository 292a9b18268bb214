package middleware

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/qrcompose/response"
)

// Common size constants for convenience
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimit rejects requests whose declared Content-Length exceeds maxSize with
// 413 and caps the body reader at maxSize for the rest.
// Non-positive sizes default to 1MB.
func BodyLimit(maxSize int64) func(http.Handler) http.Handler {
	if maxSize <= 0 {
		maxSize = MB
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxSize {
				response.WriteError(w, response.ErrRequestEntityTooLarge.
					WithMessage(fmt.Sprintf("Request body too large. Size: %s, Maximum allowed: %s",
						formatBytes(r.ContentLength), formatBytes(maxSize))).
					WithDetails(map[string]any{"limit": maxSize, "size": r.ContentLength}))
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// formatBytes formats bytes into a human-readable string
func formatBytes(bytes int64) string {
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
