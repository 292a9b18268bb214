// Package handler exposes the QR code generator over HTTP using a chi router.
//
// Routes:
//
//	GET  /qrcode?data=...&size=&margin=&ecc=&fg=&bg=&logo=&logo_size=&logo_align=&logo_offset_x=&logo_offset_y=
//	     image/png body
//	POST /qrcode {"data": "...", "options": {...}}
//	     {"result": "data:image/png;base64,..."}
//	GET  /health/live
//	     ALIVE
//
// Options in the POST body use the same keys as qrcode.Generator.ResolveMap.
// File output and local logo paths are rejected; logos must be http(s) URLs.
//
// Errors are JSON {"code": ..., "message": ...}. Invalid options and data are
// 400, logo download failures 502, undecodable logos and unencodable content
// 422, anything else 500.
//
//	gen, _ := qrcode.New(qrcode.DefaultConfig(), qrcode.WithLogger(log))
//	h := handler.New(gen, handler.WithLogger(log))
//	http.ListenAndServe(":8080", h.Routes())
package handler
