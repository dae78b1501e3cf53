package frame

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fsartoris/football-viz/declutter"
)

// Labels is a Layer writing upright text next to points of the auxiliary
// surface. Label boxes are measured on the target canvas and passed through
// a Declutterer before drawing.
type Labels struct {
	XYs  plotter.XYs
	Text []string

	TextStyle text.Style

	// Declutterer moves overlapping labels apart. Nil leaves them at
	// their anchors.
	Declutterer declutter.Declutterer
}

// NewLabels returns a label layer for the given points and texts.
func NewLabels(xys plotter.XYs, txt []string, sty text.Style, d declutter.Declutterer) *Labels {
	return &Labels{
		XYs:         xys,
		Text:        txt,
		TextStyle:   sty,
		Declutterer: d,
	}
}

// Boxes returns the labels as they would be drawn with transform tr, before
// decluttering.
func (l *Labels) Boxes(tr Affine) []declutter.Label {
	n := len(l.XYs)
	if len(l.Text) < n {
		n = len(l.Text)
	}

	labels := make([]declutter.Label, n)
	for i := 0; i < n; i++ {
		r := l.TextStyle.Rectangle(l.Text[i]).Size()
		labels[i] = declutter.Label{
			Text:   l.Text[i],
			Anchor: tr.Point(l.XYs[i].X, l.XYs[i].Y),
			Width:  r.X,
			Height: r.Y,
		}
	}
	return labels
}

// Layout returns the lower-left corner of every label box.
func (l *Labels) Layout(tr Affine) ([]declutter.Label, []vg.Point) {
	labels := l.Boxes(tr)
	if l.Declutterer == nil {
		return labels, declutter.Anchors(labels)
	}
	pos := l.Declutterer.Declutter(labels)
	if len(pos) != len(labels) {
		return labels, declutter.Anchors(labels)
	}
	return labels, pos
}

// DrawFrame implements the Layer interface.
func (l *Labels) DrawFrame(c draw.Canvas, tr Affine) {
	labels, pos := l.Layout(tr)

	sty := l.TextStyle
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YBottom
	sty.Rotation = 0
	for i, lb := range labels {
		c.FillText(sty, pos[i], lb.Text)
	}
}
