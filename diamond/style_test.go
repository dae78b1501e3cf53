package diamond

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.Color
		err  bool
	}{
		{in: "#282828", want: color.NRGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff}},
		{in: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#e0e0e080", want: color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0x80}},
		{in: " Gold ", want: colornames.Gold},
		{in: "#12345", err: true},
		{in: "#zzzzzz", err: true},
		{in: "blurple", err: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadStyle(t *testing.T) {
	sty, err := LoadStyle(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), sty)

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
background: "#000000"
label-color: gold
width: 4
height: 5
colormap: Greens
notable-quantile: 0.75
footer: ""
font:
  variant: Mono
`)))

	sty, err = LoadStyle(v)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 0xff}, sty.Background)
	assert.Equal(t, colornames.Gold, sty.LabelColor)
	assert.Equal(t, 4*vg.Inch, sty.Width)
	assert.Equal(t, 5*vg.Inch, sty.Height)
	assert.Equal(t, "Greens", sty.Colormap)
	assert.Equal(t, 0.75, sty.NotableQuantile)
	assert.Equal(t, "", sty.Footer)
	assert.Equal(t, font.Variant("Mono"), sty.Font.Variant)
	assert.Equal(t, DefaultStyle().Foreground, sty.Foreground)
	assert.Equal(t, DefaultStyle().MarkerRadius, sty.MarkerRadius)
}

func TestLoadStyleErrors(t *testing.T) {
	for _, tc := range []struct {
		key string
		val any
	}{
		{"foreground", "notacolor"},
		{"notable-quantile", 1.5},
		{"width", -1},
	} {
		t.Run(tc.key, func(t *testing.T) {
			v := viper.New()
			v.Set(tc.key, tc.val)
			_, err := LoadStyle(v)
			assert.Error(t, err)
		})
	}
}

func TestWithStyle(t *testing.T) {
	sty := DefaultStyle()
	sty.NotableQuantile = 0.5
	sty.Footer = ""

	f := testFigure(t, WithStyle(sty))
	assert.Len(t, f.Notable(), 2)
	assert.Equal(t, "", f.Style.Footer)

	// Other figures keep the default.
	assert.Len(t, testFigure(t).Notable(), 1)
}

func TestColormap(t *testing.T) {
	cm, err := colormap("YlGnBu", 0.5, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cm.Min())
	assert.Equal(t, 1.5, cm.Max())

	lo, err := colorAt(cm, 0.5)
	require.NoError(t, err)
	hi, err := colorAt(cm, 1.5)
	require.NoError(t, err)
	mid, err := colorAt(cm, 1)
	require.NoError(t, err)
	assert.Greater(t, luma(lo), luma(mid))
	assert.Greater(t, luma(mid), luma(hi))

	below, err := colorAt(cm, -10)
	require.NoError(t, err)
	assert.Equal(t, lo, below)

	cm, err = colormap("YlGnBu", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cm.Max())

	_, err = colormap("NoSuchScheme", 0, 1)
	assert.Error(t, err)
}

func TestEdgedCircle(t *testing.T) {
	var rec recorder.Canvas
	c := draw.NewCanvas(&rec, 100, 100)
	sty := draw.GlyphStyle{
		Color:  color.Black,
		Radius: 4,
		Shape:  edgedCircle{Edge: draw.LineStyle{Color: color.White, Width: 0.3}},
	}
	c.DrawGlyph(sty, vg.Point{X: 50, Y: 50})

	var fills, strokes int
	for _, a := range rec.Actions {
		switch a.(type) {
		case *recorder.Fill:
			fills++
		case *recorder.Stroke:
			strokes++
		}
	}
	assert.Equal(t, 1, fills)
	assert.Equal(t, 1, strokes)
}

func TestBoldTextStyle(t *testing.T) {
	sty := DefaultStyle().textStyle(10, true, color.Black)

	var bold font.Face
	for _, f := range liberation.Collection() {
		if f.Font.Variant == "Sans" && f.Font.Weight == xfont.WeightBold && f.Font.Style == xfont.StyleNormal {
			bold = f
		}
	}
	require.NotNil(t, bold.Face)

	face := sty.Handler.Cache().Lookup(sty.Font, sty.Font.Size)
	assert.Same(t, bold.Face, face.Face, "bold text should use the bold face")

	for _, format := range []string{"pdf", "svg", "eps", "png"} {
		t.Run(format, func(t *testing.T) {
			c, err := draw.NewFormattedCanvas(2*vg.Inch, vg.Inch, format)
			require.NoError(t, err)
			dc := draw.New(c)
			dc.FillText(sty, vg.Point{X: 10, Y: 10}, "Messi")

			var buf bytes.Buffer
			_, err = c.WriteTo(&buf)
			require.NoError(t, err)
			assert.NotZero(t, buf.Len())
		})
	}
}
