// Package qrcode generates styled PNG QR codes with an optional logo overlay
// and returns them as base64 data URIs or writes them to disk.
//
// The pipeline is linear: resolve options, encode the symbol, render the
// raster, composite the logo (when requested) and emit the output. Any failure
// aborts the call and no output is produced.
//
// # Features
//
//   - PNG output of an exact pixel size with a configurable quiet zone
//   - Foreground and background colors
//   - Selectable error correction (L, M, Q, H); H by default when a logo is used
//   - Logos from local files or http(s) URLs, framed by a white border
//   - Left, center or right logo alignment with pixel offsets
//   - Base64 data URI or atomic file output
//   - Typed functional options or untyped option maps (decoded JSON)
//
// # Usage
//
// Quick helpers with medium error correction:
//
//	pngBytes, err := qrcode.Generate("https://example.com", 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dataURI, err := qrcode.GenerateBase64Image("https://example.com", 256)
//	fmt.Printf(`<img src="%s" alt="QR Code">`, dataURI)
//
// Full control through a Generator. Defaults are fixed when it is created:
//
//	gen, err := qrcode.New(qrcode.DefaultConfig(), qrcode.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	uri, err := gen.Generate(ctx, "Hello World",
//		qrcode.WithSize(400),
//		qrcode.WithMargin(2),
//		qrcode.WithForegroundColor(qrcode.Color{R: 20, G: 40, B: 120}),
//		qrcode.WithLogo("https://example.com/logo.png"),
//		qrcode.WithLogoAlign(qrcode.AlignRight),
//		qrcode.WithLogoOffset(12, 0),
//	)
//
//	path, err := gen.Generate(ctx, "Hello World",
//		qrcode.WithFileOutput("storage/qrcodes/hello.png"),
//	)
//
// Untyped options, for example from a JSON request body:
//
//	uri, err := gen.GenerateMap(ctx, body["data"], map[string]any{
//		"size":             300,
//		"logo":             "https://example.com/logo.png",
//		"logo_align":       "left",
//		"logo_offset":      []any{5, 0},
//		"foreground_color": []any{0, 0, 0},
//	})
//
// # Logo Placement
//
// The logo is stretched to (logo_size-20)² and drawn on a logo_size² white
// canvas, leaving a 10px border. The canvas replaces the pixels underneath it
// without blending. Vertically it is always centered, shifted by the Y offset.
// Horizontally:
//
//   - center: (width - logo_size) / 2, X offset ignored
//   - left:   X offset from the left edge
//   - right:  X offset from the right edge
//
// # Limits
//
// Size and logo_size are capped by Config.MaxSize (4096 by default). Logo
// headers are checked before decoding and images larger than
// Config.MaxLogoPixels are rejected with ErrLogoDecode. Remote logos are also
// limited to Config.MaxLogoBytes.
//
// # Errors
//
// Every error wraps one of ErrInvalidOption, ErrInvalidData, ErrLogoNotFound,
// ErrLogoFetch, ErrLogoDecode, ErrInvalidOutputMode or ErrEncodingFailure:
//
//	if errors.Is(err, qrcode.ErrLogoNotFound) {
//		// fix the logo path
//	}
//
// # Size Recommendations
//
//   - 128px: small web icons, minimal data
//   - 256px: standard web use, good mobile scanning
//   - 512px: printing, logos, complex data
//   - 1024px: large displays, maximum scan distance
//
// Each module gets a whole number of pixels, so very small sizes combined with
// long content fail with ErrEncodingFailure.
package qrcode
