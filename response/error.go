package response

import (
	"errors"
	"net/http"
)

// Error represents a structured error response that implements the error interface.
type Error struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Optional context
}

// NewError creates a new Error with a custom message and default internal server error status.
func NewError(message string) Error {
	return Error{
		Status:  http.StatusInternalServerError,
		Code:    "internal_server_error",
		Message: message,
	}
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e Error) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e Error) WithDetails(details map[string]any) Error {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause.
func (e Error) WithError(err error) Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest            = Error{Status: http.StatusBadRequest, Code: "bad_request", Message: http.StatusText(http.StatusBadRequest)}
	ErrNotFound              = Error{Status: http.StatusNotFound, Code: "not_found", Message: http.StatusText(http.StatusNotFound)}
	ErrMethodNotAllowed      = Error{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: http.StatusText(http.StatusMethodNotAllowed)}
	ErrRequestEntityTooLarge = Error{Status: http.StatusRequestEntityTooLarge, Code: "request_entity_too_large", Message: http.StatusText(http.StatusRequestEntityTooLarge)}
	ErrUnsupportedMediaType  = Error{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type", Message: http.StatusText(http.StatusUnsupportedMediaType)}
	ErrUnprocessableEntity   = Error{Status: http.StatusUnprocessableEntity, Code: "unprocessable_entity", Message: http.StatusText(http.StatusUnprocessableEntity)}
	ErrInternalServerError   = Error{Status: http.StatusInternalServerError, Code: "internal_server_error", Message: http.StatusText(http.StatusInternalServerError)}
	ErrBadGateway            = Error{Status: http.StatusBadGateway, Code: "bad_gateway", Message: http.StatusText(http.StatusBadGateway)}
	ErrServiceUnavailable    = Error{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: http.StatusText(http.StatusServiceUnavailable)}
)

// WriteError renders err as a JSON error body. Errors that are not an Error
// become a generic 500 so internal details never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	var e Error
	if !errors.As(err, &e) {
		e = ErrInternalServerError
	}
	_ = JSON(w, e.StatusCode(), e)
}
