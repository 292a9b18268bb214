package qrcode

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Option map keys accepted by ResolveMap.
const (
	KeySize            = "size"
	KeyMargin          = "margin"
	KeyFormat          = "format"
	KeyLogo            = "logo"
	KeyLogoSize        = "logo_size"
	KeyLogoAlign       = "logo_align"
	KeyLogoOffset      = "logo_offset"
	KeyForegroundColor = "foreground_color"
	KeyBackgroundColor = "background_color"
	KeyErrorCorrection = "error_correction_level"
	KeyOutput          = "output"
	KeyOutputPath      = "output_path"
)

// resolve merges overrides into defaults, fills the error-correction level
// and validates the result against maxSize.
func resolve(defaults Options, maxSize int, apply func(*Options) error) (Options, error) {
	o := defaults
	if err := apply(&o); err != nil {
		return Options{}, err
	}

	if o.ErrorCorrection == "" {
		o.ErrorCorrection = LevelMedium
		if o.HasLogo() {
			// The logo overwrites modules; rely on the highest recovery capacity.
			o.ErrorCorrection = LevelHigh
		}
	}

	if err := o.ValidateMax(maxSize); err != nil {
		return Options{}, err
	}
	return o, nil
}

func applyOptions(opts []Option) func(*Options) error {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt != nil {
				opt(o)
			}
		}
		return nil
	}
}

// applyMap copies raw option values into o, checking value types.
// Keys are processed in sorted order so the first reported error is stable.
func applyMap(raw map[string]any) func(*Options) error {
	return func(o *Options) error {
		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, key := range keys {
			if err := applyKey(o, key, raw[key]); err != nil {
				return err
			}
		}
		return nil
	}
}

func applyKey(o *Options, key string, v any) error {
	switch key {
	case KeySize:
		n, ok := toInt(v)
		if !ok || n <= 0 {
			return fmt.Errorf("%w: %q must be a positive integer", ErrInvalidOption, key)
		}
		o.Size = n
	case KeyMargin:
		n, ok := toInt(v)
		if !ok || n < 0 {
			return fmt.Errorf("%w: %q must be a non-negative integer", ErrInvalidOption, key)
		}
		o.Margin = n
	case KeyFormat:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be a string", ErrInvalidOption, key)
		}
		o.Format = Format(strings.ToLower(s))
	case KeyLogo:
		if v == nil {
			o.LogoPath = ""
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be a string representing a file path or URL", ErrInvalidOption, key)
		}
		o.LogoPath = s
	case KeyLogoSize:
		n, ok := toInt(v)
		if !ok || n <= 0 {
			return fmt.Errorf("%w: %q must be a positive integer", ErrInvalidOption, key)
		}
		o.LogoSize = n
	case KeyLogoAlign:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be a string", ErrInvalidOption, key)
		}
		o.LogoAlign = Align(strings.ToLower(s))
	case KeyLogoOffset:
		vals, ok := toInts(v, 2)
		if !ok {
			return fmt.Errorf("%w: %q must be an array of two integers", ErrInvalidOption, key)
		}
		o.LogoOffset = Offset{DX: vals[0], DY: vals[1]}
	case KeyForegroundColor, KeyBackgroundColor:
		c, err := toColor(key, v)
		if err != nil {
			return err
		}
		if key == KeyForegroundColor {
			o.ForegroundColor = c
		} else {
			o.BackgroundColor = c
		}
	case KeyErrorCorrection:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be one of L, M, Q, H", ErrInvalidOption, key)
		}
		o.ErrorCorrection = Level(strings.ToUpper(s))
	case KeyOutput:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be a string", ErrInvalidOption, key)
		}
		o.Output = OutputMode(strings.ToLower(s))
	case KeyOutputPath:
		if v == nil {
			o.OutputPath = ""
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be a string representing a valid file path", ErrInvalidOption, key)
		}
		o.OutputPath = s
	default:
		return fmt.Errorf("%w: unknown option %q", ErrInvalidOption, key)
	}
	return nil
}

func toColor(key string, v any) (Color, error) {
	if c, ok := v.(Color); ok {
		if !c.valid() {
			return Color{}, fmt.Errorf("%w: each value in %q must be an integer between 0 and 255", ErrInvalidOption, key)
		}
		return c, nil
	}

	n, ok := length(v)
	if !ok || n != 3 {
		return Color{}, fmt.Errorf("%w: %q must be an array of three integers (RGB)", ErrInvalidOption, key)
	}
	vals, ok := toInts(v, 3)
	if !ok {
		return Color{}, fmt.Errorf("%w: each value in %q must be an integer between 0 and 255", ErrInvalidOption, key)
	}
	c := Color{R: vals[0], G: vals[1], B: vals[2]}
	if !c.valid() {
		return Color{}, fmt.Errorf("%w: each value in %q must be an integer between 0 and 255", ErrInvalidOption, key)
	}
	return c, nil
}

func length(v any) (int, bool) {
	switch s := v.(type) {
	case []any:
		return len(s), true
	case []int:
		return len(s), true
	case []float64:
		return len(s), true
	case [3]int:
		return 3, true
	case [2]int:
		return 2, true
	}
	return 0, false
}

// toInts converts a slice of exactly n integral values.
func toInts(v any, n int) ([]int, bool) {
	var items []any
	switch s := v.(type) {
	case []any:
		items = s
	case []int:
		for _, x := range s {
			items = append(items, x)
		}
	case []float64:
		for _, x := range s {
			items = append(items, x)
		}
	case [3]int:
		items = []any{s[0], s[1], s[2]}
	case [2]int:
		items = []any{s[0], s[1]}
	default:
		return nil, false
	}
	if len(items) != n {
		return nil, false
	}

	out := make([]int, n)
	for i, item := range items {
		x, ok := toInt(item)
		if !ok {
			return nil, false
		}
		out[i] = x
	}
	return out, true
}

// toInt accepts Go integer kinds and integral floats (JSON numbers).
// Strings and booleans are rejected.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
