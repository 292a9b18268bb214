package qrcode

import "errors"

// Every error returned by this package wraps exactly one of these values.
var (
	// ErrInvalidOption indicates a bad or missing configuration value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidData indicates a payload that cannot be encoded.
	ErrInvalidData = errors.New("invalid data")

	// ErrLogoNotFound indicates a local logo path that does not exist.
	ErrLogoNotFound = errors.New("logo not found")

	// ErrLogoFetch indicates the logo bytes could not be retrieved.
	ErrLogoFetch = errors.New("failed to fetch logo")

	// ErrLogoDecode indicates logo bytes that are not a supported image.
	ErrLogoDecode = errors.New("failed to decode logo")

	// ErrInvalidOutputMode indicates unsupported or misconfigured output routing.
	ErrInvalidOutputMode = errors.New("invalid output mode")

	// ErrEncodingFailure indicates a symbol or raster encoding failure.
	ErrEncodingFailure = errors.New("encoding failure")
)
