package pngicon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Color is a single 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// Tray icon colors used by the clipboard manager.
var (
	WindowsBlue = Color{R: 0x00, G: 0x78, B: 0xD7}
	Red         = Color{R: 0xFF, G: 0x00, B: 0x00}
)

// NewColor builds a Color from integer components, rejecting any component
// outside [0, 255].
func NewColor(r, g, b int) (Color, error) {
	for _, c := range []struct {
		channel string
		value   int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if c.value < 0 || c.value > 0xff {
			return Color{}, &ColorComponentError{Channel: c.channel, Value: c.value}
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHexColor parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, errors.NotValidf("color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.NotValidf("color %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
