// Command qrcode generates QR code images from the command line and serves
// the HTTP API.
//
//	qrcode generate "https://example.com" --path storage/qrcodes/site.png
//	qrcode generate "Hello World" --logo logo.png --logo-align right --logo-offset-x 12 --base64
//	qrcode serve
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
