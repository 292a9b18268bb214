package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/qrcompose/response"
)

// GenerateRequest is the POST /qrcode body. Data is kept untyped so that
// non-string values are reported as invalid data rather than a decode error.
type GenerateRequest struct {
	Data    any            `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// GenerateResponse is the POST /qrcode success body.
type GenerateResponse struct {
	Result string `json:"result"`
}

// handleImage renders GET /qrcode?data=... straight to an image/png body.
func (h *Handler) handleImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw, err := queryOptions(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := checkRemoteOnly(raw); err != nil {
		h.writeError(w, r, err)
		return
	}

	o, err := h.gen.ResolveMap(raw)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	png, err := h.gen.Render(r.Context(), q.Get("data"), o)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = response.PNG(w, png)
}

// handleGenerate answers POST /qrcode with a base64 data URI.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req GenerateRequest
	if err := dec.Decode(&req); err != nil {
		if tooLarge := toHTTPError(err); tooLarge.Status == http.StatusRequestEntityTooLarge {
			h.writeError(w, r, tooLarge)
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %v", ErrMalformedBody, err))
		return
	}

	if err := checkRemoteOnly(req.Options); err != nil {
		h.writeError(w, r, err)
		return
	}

	uri, err := h.gen.GenerateMap(r.Context(), req.Data, req.Options)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = response.JSON(w, http.StatusOK, GenerateResponse{Result: uri})
}
