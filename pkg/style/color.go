package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit RGBA color.
type Color uint32

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA builds a color from components.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" hex notation.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed color %q", s)
	}
	return Color(v), nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
