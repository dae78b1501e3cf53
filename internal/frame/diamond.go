// Package frame draws a dual-axis coordinate frame rotated by 45 degrees.
//
// Data lives in an auxiliary, un-rotated surface: plotters added with AddAux
// see the usual axis-aligned plot with both ranges [0, Extent], and the frame
// rotates the drawing context before handing them a canvas. Layers are drawn
// afterwards in display space with the frame's Affine, for content that must
// stay upright such as text.
package frame

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Rotation is the default frame rotation in degrees.
const Rotation = 45

// Axis describes one leg of the diamond.
type Axis struct {
	// Extent is the normalized length of the leg.
	Extent float64

	// Ticks holds the tick positions and labels, in normalized units.
	Ticks []plot.Tick
}

// Layer is drawn in display space after the auxiliary surface.
type Layer interface {
	DrawFrame(c draw.Canvas, tr Affine)
}

// Diamond is a plot.Plotter drawing the rotated frame and its contents.
type Diamond struct {
	// Right is the first frame axis. It runs from the origin towards the
	// upper right and carries the right metric.
	Right Axis

	// Left is the second frame axis. It runs from the origin towards the
	// upper left and carries the left metric.
	Left Axis

	// Rotation is the frame angle in degrees.
	Rotation float64

	LineStyle  draw.LineStyle
	GridStyle  draw.LineStyle
	TickStyle  draw.LineStyle
	TickLength vg.Length

	// TickLabel is the style of tick labels. Alignment is computed per axis.
	TickLabel text.Style

	// Padding separates tick labels from tick marks.
	Padding vg.Length

	aux      *plot.Plot
	plotters []plot.Plotter
	layers   []Layer
}

// NewDiamond returns a frame with the given axes drawn in color fg.
func NewDiamond(right, left Axis, fg color.Color) *Diamond {
	aux := plot.New()
	aux.HideAxes()
	aux.BackgroundColor = nil
	aux.X.Min, aux.X.Max = 0, right.Extent
	aux.Y.Min, aux.Y.Max = 0, left.Extent

	grid := WithAlpha(fg, 0.2)

	return &Diamond{
		Right:    right,
		Left:     left,
		Rotation: Rotation,
		LineStyle: draw.LineStyle{
			Color: fg,
			Width: vg.Points(1),
		},
		GridStyle: draw.LineStyle{
			Color: grid,
			Width: vg.Points(0.8),
		},
		TickStyle: draw.LineStyle{
			Color: fg,
			Width: vg.Points(0.8),
		},
		TickLength: vg.Points(4),
		TickLabel: text.Style{
			Color:   fg,
			Font:    font.From(plot.DefaultFont, 9),
			Handler: plot.DefaultTextHandler,
		},
		Padding: vg.Points(2),
		aux:     aux,
	}
}

// AddAux adds plotters to the auxiliary surface. They are drawn in
// normalized, un-rotated coordinates.
func (d *Diamond) AddAux(ps ...plot.Plotter) {
	d.plotters = append(d.plotters, ps...)
}

// AuxPlotters returns the plotters of the auxiliary surface.
func (d *Diamond) AuxPlotters() []plot.Plotter {
	return d.plotters
}

// AddLayer adds layers drawn in display space on top of the frame.
func (d *Diamond) AddLayer(ls ...Layer) {
	d.layers = append(d.layers, ls...)
}

// Layers returns the display-space layers.
func (d *Diamond) Layers() []Layer {
	return d.layers
}

// margin is the room kept around the frame for ticks and tick labels.
func (d *Diamond) margin() vg.Length {
	var w vg.Length
	for _, ax := range []Axis{d.Right, d.Left} {
		for _, t := range ax.Ticks {
			if t.Label == "" {
				continue
			}
			r := d.TickLabel.Rectangle(t.Label).Size()
			w = vg.Length(math.Max(float64(w), math.Max(float64(r.X), float64(r.Y))))
		}
	}
	return d.TickLength + d.Padding + w
}

// Transform returns the mapping from normalized data coordinates to the
// canvas, fitting the rotated frame inside c.
func (d *Diamond) Transform(c draw.Canvas) Affine {
	rot := Identity().Rotate(d.Rotation)

	corners := [][2]float64{
		{0, 0},
		{d.Right.Extent, 0},
		{d.Right.Extent, d.Left.Extent},
		{0, d.Left.Extent},
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y := rot.Apply(p[0], p[1])
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}

	m := float64(d.margin())
	w := float64(c.Max.X-c.Min.X) - 2*m
	h := float64(c.Max.Y-c.Min.Y) - 2*m
	if w <= 0 || h <= 0 {
		m = 0
		w = float64(c.Max.X - c.Min.X)
		h = float64(c.Max.Y - c.Min.Y)
	}

	u := math.Min(w/(xmax-xmin), h/(ymax-ymin))
	ox := float64(c.Min.X) + m + (w-u*(xmax-xmin))/2 - u*xmin
	oy := float64(c.Min.Y) + m + (h-u*(ymax-ymin))/2 - u*ymin

	return rot.Scale(u, u).Translate(ox, oy)
}

// Plot implements the plot.Plotter interface.
func (d *Diamond) Plot(c draw.Canvas, _ *plot.Plot) {
	tr := d.Transform(c)

	d.drawGrid(c, tr)

	// Only the two legs meeting at the origin are drawn.
	o := tr.Point(0, 0)
	r := tr.Point(d.Right.Extent, 0)
	l := tr.Point(0, d.Left.Extent)
	c.StrokeLine2(d.LineStyle, o.X, o.Y, r.X, r.Y)
	c.StrokeLine2(d.LineStyle, o.X, o.Y, l.X, l.Y)

	d.drawTicks(c, tr, d.Right.Ticks, func(v float64) (float64, float64) { return v, 0 }, tr.Direction(0, -1))
	d.drawTicks(c, tr, d.Left.Ticks, func(v float64) (float64, float64) { return 0, v }, tr.Direction(-1, 0))

	d.drawAux(c, tr)

	for _, l := range d.layers {
		l.DrawFrame(c, tr)
	}
}

func (d *Diamond) drawGrid(c draw.Canvas, tr Affine) {
	for _, t := range d.Right.Ticks {
		if t.Value <= 0 {
			continue
		}
		a := tr.Point(t.Value, 0)
		b := tr.Point(t.Value, d.Left.Extent)
		c.StrokeLine2(d.GridStyle, a.X, a.Y, b.X, b.Y)
	}
	for _, t := range d.Left.Ticks {
		if t.Value <= 0 {
			continue
		}
		a := tr.Point(0, t.Value)
		b := tr.Point(d.Right.Extent, t.Value)
		c.StrokeLine2(d.GridStyle, a.X, a.Y, b.X, b.Y)
	}
}

func (d *Diamond) drawTicks(
	c draw.Canvas, tr Affine,
	ticks []plot.Tick,
	at func(float64) (float64, float64),
	out vg.Point,
) {

	sty := d.TickLabel
	sty.XAlign = text.XAlignment(-0.5 + 0.5*float64(out.X))
	sty.YAlign = text.YAlignment(-0.5 + 0.5*float64(out.Y))

	for _, t := range ticks {
		p := tr.Point(at(t.Value))
		end := p.Add(out.Scale(d.TickLength))
		c.StrokeLine2(d.TickStyle, p.X, p.Y, end.X, end.Y)
		if t.Label == "" {
			continue
		}
		c.FillText(sty, end.Add(out.Scale(d.Padding)), t.Label)
	}
}

// drawAux draws the auxiliary plotters in a context rotated around the
// frame origin, so they only ever see normalized, axis-aligned data.
func (d *Diamond) drawAux(c draw.Canvas, tr Affine) {
	if len(d.plotters) == 0 {
		return
	}

	o := tr.Point(0, 0)
	u := math.Hypot(tr.A, tr.D)

	c.Push()
	defer c.Pop()
	c.Translate(o)
	c.Rotate(tr.Angle())

	sub := draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Max: vg.Point{
				X: vg.Length(u * d.Right.Extent),
				Y: vg.Length(u * d.Left.Extent),
			},
		},
	}
	for _, p := range d.plotters {
		p.Plot(sub, d.aux)
	}
}

// WithAlpha returns c with its opacity scaled by alpha.
func WithAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	f := alpha * float64(a) / 0xffff
	return color.NRGBA64{
		R: uint16(unpremul(r, a)),
		G: uint16(unpremul(g, a)),
		B: uint16(unpremul(b, a)),
		A: uint16(f * 0xffff),
	}
}

func unpremul(v, a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return v * 0xffff / a
}
