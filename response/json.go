package response

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// JSON writes v as an application/json response with the given status.
// Encoding goes straight to the writer.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

// String writes a text/plain response.
func String(w http.ResponseWriter, status int, s string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(s))
	return err
}

// PNG writes an image/png body with 200 OK.
func PNG(w http.ResponseWriter, data []byte) error {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(data)
	return err
}
