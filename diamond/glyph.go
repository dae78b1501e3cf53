package diamond

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// edgedCircle is a filled circle with an outline.
type edgedCircle struct {
	Edge draw.LineStyle
}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (g edgedCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CircleGlyph{}.DrawGlyph(c, sty, pt)
	if g.Edge.Width <= 0 || g.Edge.Color == nil {
		return
	}

	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()

	c.SetLineStyle(g.Edge)
	c.Stroke(p)
}
