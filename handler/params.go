package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

// Query parameters accepted by GET /qrcode, mapped to option keys.
var (
	intParams = map[string]string{
		"size":          qrcode.KeySize,
		"margin":        qrcode.KeyMargin,
		"logo_size":     qrcode.KeyLogoSize,
		"logo_offset_x": "",
		"logo_offset_y": "",
	}
	stringParams = map[string]string{
		"format":     qrcode.KeyFormat,
		"logo":       qrcode.KeyLogo,
		"logo_align": qrcode.KeyLogoAlign,
		"ecc":        qrcode.KeyErrorCorrection,
	}
	colorParams = map[string]string{
		"fg": qrcode.KeyForegroundColor,
		"bg": qrcode.KeyBackgroundColor,
	}
)

// queryOptions converts query parameters into a raw option map.
// Unknown parameters other than data are ignored.
func queryOptions(q url.Values) (map[string]any, error) {
	raw := make(map[string]any)
	var offset [2]int
	hasOffset := false

	for param, key := range intParams {
		v := q.Get(param)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q must be an integer", qrcode.ErrInvalidOption, param)
		}
		switch param {
		case "logo_offset_x":
			offset[0], hasOffset = n, true
		case "logo_offset_y":
			offset[1], hasOffset = n, true
		default:
			raw[key] = n
		}
	}
	if hasOffset {
		raw[qrcode.KeyLogoOffset] = []int{offset[0], offset[1]}
	}

	for param, key := range stringParams {
		if v := q.Get(param); v != "" {
			raw[key] = v
		}
	}

	for param, key := range colorParams {
		v := q.Get(param)
		if v == "" {
			continue
		}
		c, err := qrcode.ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", param, err)
		}
		raw[key] = c
	}

	return raw, nil
}

// checkRemoteOnly rejects options that would touch the server filesystem.
func checkRemoteOnly(raw map[string]any) error {
	if _, ok := raw[qrcode.KeyOutputPath]; ok {
		return ErrFileOutputNotAllowed
	}
	if out, ok := raw[qrcode.KeyOutput].(string); ok && !strings.EqualFold(out, string(qrcode.OutputBase64)) {
		return ErrFileOutputNotAllowed
	}

	logo, ok := raw[qrcode.KeyLogo].(string)
	if !ok || logo == "" {
		return nil
	}
	u, err := url.Parse(logo)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrLocalLogoNotAllowed
	}
	return nil
}
