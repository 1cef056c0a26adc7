// Package theme holds the metric defaults widgets fall back to when their
// box model leaves a dimension unspecified: font sizing, the spacing scale,
// and per-control minimum sizes. A theme is plain data loaded from a
// theme.toml file, overlaid on the built-in defaults.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Spacing is the spacing scale used for default padding, margins, and gaps.
type Spacing struct {
	None float32 `toml:"none"`
	XS   float32 `toml:"xs"`
	SM   float32 `toml:"sm"`
	MD   float32 `toml:"md"`
	LG   float32 `toml:"lg"`
	XL   float32 `toml:"xl"`
}

// Controls carries per-control sizing defaults in pixels.
type Controls struct {
	CheckboxSize    float32 `toml:"checkbox_size"`
	CheckboxGap     float32 `toml:"checkbox_gap"`
	ButtonMinWidth  float32 `toml:"button_min_width"`
	ButtonMinHeight float32 `toml:"button_min_height"`
	FieldHeight     float32 `toml:"field_height"`
	FieldMinWidth   float32 `toml:"field_min_width"`
	AreaHeight      float32 `toml:"area_height"`
	SelectHeight    float32 `toml:"select_height"`
	SelectMinWidth  float32 `toml:"select_min_width"`
	SelectArrow     float32 `toml:"select_arrow"`
}

// Theme is the full metric configuration.
type Theme struct {
	FontSize   float32  `toml:"font_size"`
	LineHeight float32  `toml:"line_height"` // multiplier on font size
	Space      Spacing  `toml:"space"`
	Controls   Controls `toml:"controls"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		FontSize:   14,
		LineHeight: 1.4,
		Space:      Spacing{None: 0, XS: 2, SM: 4, MD: 8, LG: 12, XL: 16},
		Controls: Controls{
			CheckboxSize:    18,
			CheckboxGap:     8,
			ButtonMinWidth:  60,
			ButtonMinHeight: 32,
			FieldHeight:     36,
			FieldMinWidth:   120,
			AreaHeight:      100,
			SelectHeight:    36,
			SelectMinWidth:  120,
			SelectArrow:     20,
		},
	}
}

// LineBox returns the height of one text line at the theme's metrics.
func (t Theme) LineBox() float32 {
	lh := t.LineHeight
	if lh == 0 {
		lh = 1.4
	}
	return t.FontSize * lh
}

// Load reads a theme.toml file and overlays it on the defaults, so a partial
// file only overrides what it names.
func Load(path string) (Theme, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("theme: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	return t, nil
}
