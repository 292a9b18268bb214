package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
	"github.com/dmitrymomot/qrcompose/response"
)

// Handler-level request errors.
var (
	ErrFileOutputNotAllowed = errors.New("file output is not available over HTTP")
	ErrLocalLogoNotAllowed  = errors.New("logo must be an http(s) URL")
	ErrMalformedBody        = errors.New("request body must be a JSON object")
)

// errorKinds maps generator error kinds to HTTP errors, checked in order.
var errorKinds = []struct {
	kind error
	resp response.Error
}{
	{ErrFileOutputNotAllowed, response.Error{Status: http.StatusBadRequest, Code: "invalid_option"}},
	{ErrLocalLogoNotAllowed, response.Error{Status: http.StatusBadRequest, Code: "invalid_option"}},
	{ErrMalformedBody, response.Error{Status: http.StatusBadRequest, Code: "bad_request"}},
	{qrcode.ErrInvalidOption, response.Error{Status: http.StatusBadRequest, Code: "invalid_option"}},
	{qrcode.ErrInvalidData, response.Error{Status: http.StatusBadRequest, Code: "invalid_data"}},
	{qrcode.ErrInvalidOutputMode, response.Error{Status: http.StatusBadRequest, Code: "invalid_output_mode"}},
	{qrcode.ErrLogoNotFound, response.Error{Status: http.StatusBadRequest, Code: "logo_not_found"}},
	{qrcode.ErrLogoFetch, response.Error{Status: http.StatusBadGateway, Code: "logo_fetch_failed"}},
	{qrcode.ErrLogoDecode, response.Error{Status: http.StatusUnprocessableEntity, Code: "logo_decode_failed"}},
	{qrcode.ErrEncodingFailure, response.Error{Status: http.StatusUnprocessableEntity, Code: "encoding_failure"}},
}

// toHTTPError converts err into a structured response error. Unknown errors
// become a generic 500.
func toHTTPError(err error) response.Error {
	var e response.Error
	if errors.As(err, &e) {
		return e
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return response.ErrRequestEntityTooLarge
	}

	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			return k.resp.WithMessage(err.Error())
		}
	}
	return response.ErrInternalServerError
}
