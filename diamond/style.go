package diamond

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/fsartoris/football-viz/internal/series"
)

// Footer is the default attribution line.
const Footer = "Created using Football Viz (https://github.com/fsartoris/football_viz)"

// Style holds every visual setting of a figure. It is passed to Create
// explicitly and never changes package-level state, so figures with
// different styles can be built concurrently.
type Style struct {
	// Width and Height are the figure size Render uses.
	Width, Height vg.Length

	Background color.Color
	Foreground color.Color

	// LabelColor is the color of entity labels.
	LabelColor color.Color

	MarkerEdge      color.Color
	MarkerEdgeWidth vg.Length
	MarkerRadius    vg.Length

	// Colormap names a ColorBrewer sequential scheme.
	Colormap string

	GridAlpha float64

	// NotableQuantile is the quantile above which an entity gets a label.
	NotableQuantile float64

	Footer string

	// Font is the typeface and variant of every text element. Sizes and
	// weights are set per element.
	Font font.Font
}

// DefaultStyle returns the dark 8.5x9 inch style with a YlGnBu color map.
func DefaultStyle() Style {
	return Style{
		Width:           8.5 * vg.Inch,
		Height:          9 * vg.Inch,
		Background:      color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff},
		Foreground:      color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		LabelColor:      color.White,
		MarkerEdge:      color.White,
		MarkerEdgeWidth: vg.Points(0.3),
		MarkerRadius:    vg.Points(3.5),
		Colormap:        "YlGnBu",
		GridAlpha:       0.2,
		NotableQuantile: series.NotableQuantile,
		Footer:          Footer,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
		},
	}
}

// LoadStyle reads a style from v. Keys that are not set keep their
// DefaultStyle value. A nil v returns DefaultStyle.
//
// Colors are "#rrggbb", "#rrggbbaa", "#rgb" or SVG color names.
// Width and height are in inches, marker-radius in points.
func LoadStyle(v *viper.Viper) (Style, error) {
	sty := DefaultStyle()
	if v == nil {
		return sty, nil
	}

	for _, c := range []struct {
		key string
		dst *color.Color
	}{
		{"background", &sty.Background},
		{"foreground", &sty.Foreground},
		{"label-color", &sty.LabelColor},
		{"marker-edge", &sty.MarkerEdge},
	} {
		if !v.IsSet(c.key) {
			continue
		}
		col, err := ParseColor(v.GetString(c.key))
		if err != nil {
			return Style{}, fmt.Errorf("diamond: style %s: %w", c.key, err)
		}
		*c.dst = col
	}

	if v.IsSet("width") {
		sty.Width = vg.Length(v.GetFloat64("width")) * vg.Inch
	}
	if v.IsSet("height") {
		sty.Height = vg.Length(v.GetFloat64("height")) * vg.Inch
	}
	if sty.Width <= 0 || sty.Height <= 0 {
		return Style{}, fmt.Errorf("diamond: style size %vx%v must be positive", sty.Width, sty.Height)
	}

	if v.IsSet("marker-radius") {
		sty.MarkerRadius = vg.Points(v.GetFloat64("marker-radius"))
	}
	if v.IsSet("colormap") {
		sty.Colormap = v.GetString("colormap")
	}
	if v.IsSet("grid-alpha") {
		sty.GridAlpha = v.GetFloat64("grid-alpha")
	}
	if v.IsSet("notable-quantile") {
		sty.NotableQuantile = v.GetFloat64("notable-quantile")
	}
	if sty.NotableQuantile < 0 || sty.NotableQuantile > 1 {
		return Style{}, fmt.Errorf("diamond: style notable-quantile %g outside [0, 1]", sty.NotableQuantile)
	}
	if v.IsSet("footer") {
		sty.Footer = v.GetString("footer")
	}
	if v.IsSet("font.typeface") {
		sty.Font.Typeface = font.Typeface(v.GetString("font.typeface"))
	}
	if v.IsSet("font.variant") {
		sty.Font.Variant = font.Variant(v.GetString("font.variant"))
	}

	return sty, nil
}

// ParseColor parses a hex color or an SVG color name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return nil, fmt.Errorf("unknown color %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// textStyle returns the style of one text element.
func (s Style) textStyle(size vg.Length, bold bool, c color.Color) text.Style {
	fnt := s.Font
	fnt.Size = size
	if bold {
		fnt.Weight = headingWeight
	}
	return text.Style{
		Color:   c,
		Font:    fnt,
		Handler: textHandler(),
	}
}
