package diamond

import (
	"image"
	"strings"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fsartoris/football-viz/internal/frame"
)

// rect is a rectangle in figure fractions: left, bottom, width, height.
type rect [4]float64

var (
	chartRect      = rect{0.075, 0.07, 0.85, 0.8}
	leftPanelRect  = rect{0.005, 0.02, 0.3, 0.2}
	rightPanelRect = rect{0.70, 0.02, 0.3, 0.2}
	logoRect       = rect{0.015, 0.877, 0.1, 0.1}
)

// region returns the part of c at r.
func region(c draw.Canvas, r rect) draw.Canvas {
	min := at(c, r[0], r[1])
	max := at(c, r[0]+r[2], r[1]+r[3])
	return draw.Canvas{
		Canvas:    c.Canvas,
		Rectangle: vg.Rectangle{Min: min, Max: max},
	}
}

// at returns the point at fractions (x, y) of c.
func at(c draw.Canvas, x, y float64) vg.Point {
	size := c.Size()
	return vg.Point{
		X: c.Min.X + vg.Length(x)*size.X,
		Y: c.Min.Y + vg.Length(y)*size.Y,
	}
}

// drawPanel writes the metric name and its wrapped description.
func (f *Figure) drawPanel(c draw.Canvas, m Metric) {
	name := f.Style.textStyle(10, true, f.Style.Foreground)
	c.FillText(name, at(c, 0.1, 0.95), m.Name())

	desc := f.Style.textStyle(8, false, frame.WithAlpha(f.Style.Foreground, 0.8))
	desc.YAlign = draw.YTop
	width := c.Size().X * 0.9
	c.FillText(desc, at(c, 0.1, 0.90), wrap(desc, m.Desc(), width))
}

func (f *Figure) drawTitle(c draw.Canvas) {
	title := f.Style.textStyle(16, true, f.Style.Foreground)
	c.FillText(title, at(c, 0.13, 0.935), f.Title)

	sub := f.Style.textStyle(13, false, f.Style.Foreground)
	c.FillText(sub, at(c, 0.13, 0.905), f.Subtitle)
}

// drawLogo draws the logo centered in c, keeping its aspect ratio.
func (f *Figure) drawLogo(c draw.Canvas) {
	if f.Logo == nil {
		return
	}
	r := fit(c.Rectangle, f.Logo.Bounds())
	if r.Size().X <= 0 || r.Size().Y <= 0 {
		return
	}
	c.DrawImage(r, f.Logo)
}

func (f *Figure) drawFooter(c draw.Canvas) {
	if f.Style.Footer == "" {
		return
	}
	sty := f.Style.textStyle(9, false, f.Style.Foreground)
	sty.XAlign = draw.XRight
	c.FillText(sty, at(c, 1, 0), f.Style.Footer)
}

// fit returns the largest rectangle with the aspect ratio of b centered in r.
func fit(r vg.Rectangle, b image.Rectangle) vg.Rectangle {
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return vg.Rectangle{}
	}
	size := r.Size()
	w, h := size.X, size.Y
	aspect := vg.Length(b.Dx()) / vg.Length(b.Dy())
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	min := vg.Point{
		X: r.Min.X + (size.X-w)/2,
		Y: r.Min.Y + (size.Y-h)/2,
	}
	return vg.Rectangle{Min: min, Max: min.Add(vg.Point{X: w, Y: h})}
}

// wrap breaks s into lines no wider than width. Words longer than width
// get a line of their own.
func wrap(sty text.Style, s string, width vg.Length) string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(s) {
		if line == "" {
			line = word
			continue
		}
		if sty.Width(line+" "+word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
