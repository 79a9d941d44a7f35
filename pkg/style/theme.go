package style

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/GatoImorrivel/vizia/pkg/errors"
)

// Default fallback values used when a theme omits or malforms a
// property.
const (
	defaultFontSize = 14.0
)

var (
	defaultBackground = RGB(0x22, 0x22, 0x22)
	defaultForeground = RGB(0xEE, 0xEE, 0xEE)
)

// Theme supplies the property defaults at the bottom of the cascade.
type Theme struct {
	Colors ThemeColors `yaml:"colors"`
	Font   ThemeFont   `yaml:"font"`

	digest uint64
}

// ThemeColors holds hex color strings as loaded from YAML.
type ThemeColors struct {
	Background string `yaml:"background,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// ThemeFont holds font defaults.
type ThemeFont struct {
	Size float64 `yaml:"size,omitempty"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: ThemeColors{
			Background: defaultBackground.String(),
			Foreground: defaultForeground.String(),
		},
		Font: ThemeFont{Size: defaultFontSize},
	}
}

// LoadTheme reads a theme file if present; a missing file yields the
// default theme, matching optional-config loading elsewhere.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return DefaultTheme(), nil
		}
		return Theme{}, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme parses YAML theme data. The digest of the raw bytes is
// kept so re-applying an unchanged theme is a no-op.
func ParseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	t.digest = xxhash.Sum64(data)
	return t, nil
}

// Digest identifies the theme contents.
func (t Theme) Digest() uint64 {
	if t.digest != 0 {
		return t.digest
	}
	return xxhash.Sum64String(fmt.Sprintf("%s|%s|%g", t.Colors.Background, t.Colors.Foreground, t.Font.Size))
}

// BackgroundColor resolves the background default. A malformed value
// falls back to the built-in default and is reported.
func (t Theme) BackgroundColor() Color {
	return t.parseColor("theme.background", t.Colors.Background, defaultBackground)
}

// ForegroundColor resolves the foreground default.
func (t Theme) ForegroundColor() Color {
	return t.parseColor("theme.foreground", t.Colors.Foreground, defaultForeground)
}

// FontSize resolves the default font size; non-positive values fall
// back.
func (t Theme) FontSize() float64 {
	if t.Font.Size > 0 {
		return t.Font.Size
	}
	return defaultFontSize
}

func (t Theme) parseColor(op, s string, fallback Color) Color {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		errors.Report(&errors.Error{Op: op, Kind: errors.KindStyle, Err: err})
		return fallback
	}
	return c
}
