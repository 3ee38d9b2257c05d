package chartjs

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

type colorNotation uint8

const (
	notationHex colorNotation = iota
	notationRGB
	notationRGBA
)

// Color is an immutable CSS color in hex, rgb() or rgba() notation. The zero
// value is not a valid color and is left out of emitted documents.
type Color struct {
	repr     string
	notation colorNotation
	r, g, b  uint8
	a        float64
}

var (
	Transparent = MustColor("rgba(0,0,0,0)")
	Black       = MustColor("#000000")
	White       = MustColor("#ffffff")
	Red         = MustColor("#f44336")
	Yellow      = MustColor("#ffc107")
	Green       = MustColor("#4caf50")
	Blue        = MustColor("#2196f3")
	Grey        = MustColor("#9e9e9e")
)

var (
	hexRe  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbRe  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaRe = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([0-9]*\.?[0-9]+)\s*\)$`)
)

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)" and
// "rgba(r,g,b,a)". Hex input stays hex, lower cased.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if m := hexRe.FindStringSubmatch(s); m != nil {
		return parseHex(strings.ToLower(m[1]))
	}

	if m := rgbRe.FindStringSubmatch(s); m != nil {
		r, g, b, err := parseChannels(s, m[1:4])
		if err != nil {
			return Color{}, err
		}
		return RGB(r, g, b), nil
	}

	if m := rgbaRe.FindStringSubmatch(s); m != nil {
		r, g, b, err := parseChannels(s, m[1:4])
		if err != nil {
			return Color{}, err
		}
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
		}
		return RGBA(r, g, b, a)
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
}

// MustColor is ParseColor for package level literals; it panics on bad input.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func RGB(r, g, b uint8) Color {
	return Color{
		repr:     fmt.Sprintf("rgb(%d,%d,%d)", r, g, b),
		notation: notationRGB,
		r:        r, g: g, b: b,
		a: 1,
	}
}

// RGBA fails with ErrInvalidColorFormat when alpha is outside [0,1].
func RGBA(r, g, b uint8, a float64) (Color, error) {
	if !(a >= 0 && a <= 1) {
		return Color{}, fmt.Errorf("%w: alpha %v outside [0,1]", ErrInvalidColorFormat, a)
	}
	return Color{
		repr:     fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatAlpha(a)),
		notation: notationRGBA,
		r:        r, g: g, b: b,
		a: a,
	}, nil
}

// RandomColor draws every channel, alpha included, uniformly from its range.
func RandomColor() Color {
	c, _ := RGBA(
		uint8(rand.IntN(256)),
		uint8(rand.IntN(256)),
		uint8(rand.IntN(256)),
		Fixed(rand.Float64(), 3))
	return c
}

func (c Color) String() string {
	return c.repr
}

func (c Color) IsZero() bool {
	return c.repr == ""
}

// RGBA returns the channels; alpha is 1 for colors without an alpha part.
func (c Color) RGBA() (r, g, b uint8, a float64) {
	return c.r, c.g, c.b, c.a
}

// WithAlpha returns the same channels in rgba() notation.
func (c Color) WithAlpha(a float64) (Color, error) {
	return RGBA(c.r, c.g, c.b, a)
}

func (c Color) Equal(other Color) bool {
	return c.repr == other.repr
}

// MarshalText lets a Color travel through encoding/json, e.g. inside a
// config struct or a plugin map decoded elsewhere.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.repr), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func parseHex(digits string) (Color, error) {
	expanded := digits
	if len(digits) == 3 || len(digits) == 4 {
		var sb strings.Builder
		for _, d := range digits {
			sb.WriteRune(d)
			sb.WriteRune(d)
		}
		expanded = sb.String()
	}

	v, err := strconv.ParseUint(expanded, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: #%s: %v", ErrInvalidColorFormat, digits, err)
	}

	c := Color{repr: "#" + digits, notation: notationHex, a: 1}
	if len(expanded) == 8 {
		c.a = Fixed(float64(v&0xff)/255, 3)
		v >>= 8
	}
	c.r, c.g, c.b = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}

func parseChannels(s string, parts []string) (r, g, b uint8, err error) {
	var ch [3]uint8
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n > 255 {
			return 0, 0, 0, fmt.Errorf("%w: %q: channel %q outside [0,255]", ErrInvalidColorFormat, s, p)
		}
		ch[i] = uint8(n)
	}
	return ch[0], ch[1], ch[2], nil
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
