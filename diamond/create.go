// Package diamond draws a 45 degree rotated dual-axis scatter chart that
// compares two metrics across named entities, such as football players.
//
// Each entity is a point whose distance along the right leg of the diamond
// is its normalized right metric and along the left leg its normalized left
// metric. Entities standing out on either metric are labelled. The figure
// also carries a title block, an optional logo, a description panel per
// metric and a footer.
package diamond

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fsartoris/football-viz/internal/frame"
	"github.com/fsartoris/football-viz/internal/series"
)

// ErrLengthMismatch is returned by Create when names and metrics differ in
// length.
var ErrLengthMismatch = errors.New("diamond: names and metrics differ in length")

// Create builds a diamond figure for the given entities. names, left and
// right are aligned by position. logo may be nil.
//
// Create does no I/O; the returned figure is drawn or encoded by the caller.
func Create(
	title, subtitle string,
	logo image.Image,
	names []string,
	left, right Metric,
	opts ...Option,
) (
	*Figure,
	error,
) {

	if left.Len() == 0 || right.Len() == 0 {
		return nil, ErrEmptyMetric
	}
	if len(names) != left.Len() || right.Len() != left.Len() {
		return nil, fmt.Errorf("%w: %d names, %d %q values, %d %q values",
			ErrLengthMismatch, len(names), left.Len(), left.Name(), right.Len(), right.Name())
	}

	cfg := newConfig(opts)
	sty := cfg.style

	leftRaw := series.Clean(left.Data())
	rightRaw := series.Clean(right.Data())

	leftNorm, err := series.Normalize(leftRaw, series.DefaultFactor)
	if err != nil {
		return nil, fmt.Errorf("diamond: metric %q: %w", left.Name(), err)
	}
	rightNorm, err := series.Normalize(rightRaw, series.DefaultFactor)
	if err != nil {
		return nil, fmt.Errorf("diamond: metric %q: %w", right.Name(), err)
	}

	leftCut := series.Quantile(leftNorm, sty.NotableQuantile)
	rightCut := series.Quantile(rightNorm, sty.NotableQuantile)
	notable := series.Notable(leftNorm, rightNorm, leftCut, rightCut)

	sum := series.Sum(leftNorm, rightNorm)
	lo, hi := series.Bounds(sum)
	cm, err := colormap(sty.Colormap, lo, hi)
	if err != nil {
		return nil, err
	}

	entities := make([]Entity, len(names))
	for i, name := range names {
		entities[i] = Entity{
			Name:      name,
			Left:      leftRaw[i],
			Right:     rightRaw[i],
			LeftNorm:  leftNorm[i],
			RightNorm: rightNorm[i],
			Sum:       sum[i],
		}
	}
	for _, i := range notable {
		entities[i].Notable = true
	}

	sc, err := newScatter(sty, rightNorm, leftNorm, sum, cm)
	if err != nil {
		return nil, err
	}

	fr := frame.NewDiamond(
		frame.Axis{
			Extent: frame.Extent,
			Ticks:  frame.Formatter(floats.Max(rightRaw), series.DefaultFactor, frame.Extent),
		},
		frame.Axis{
			Extent: frame.Extent,
			Ticks:  frame.Formatter(floats.Max(leftRaw), series.DefaultFactor, frame.Extent),
		},
		sty.Foreground,
	)
	fr.GridStyle.Color = frame.WithAlpha(sty.Foreground, sty.GridAlpha)
	fr.TickLabel = sty.textStyle(9, false, sty.Foreground)
	fr.AddAux(sc)

	xys := make(plotter.XYs, len(notable))
	txt := make([]string, len(notable))
	for k, i := range notable {
		xys[k].X, xys[k].Y = rightNorm[i], leftNorm[i]
		txt[k] = names[i]
	}
	labels := frame.NewLabels(xys, txt, sty.textStyle(10, false, sty.LabelColor), cfg.declutterer)
	fr.AddLayer(labels)

	chart := plot.New()
	chart.HideAxes()
	chart.BackgroundColor = nil
	chart.Add(fr)

	cfg.logger.Printf("diamond: %q: %d entities, q%g cutoffs %s=%.3f %s=%.3f, %d notable",
		title, len(names), 100*sty.NotableQuantile, left.Name(), leftCut, right.Name(), rightCut, len(notable))

	return &Figure{
		Title:    title,
		Subtitle: subtitle,
		Logo:     logo,
		Left:     left,
		Right:    right,
		Style:    sty,
		chart:    chart,
		frame:    fr,
		scatter:  sc,
		labels:   labels,
		colors:   cm,
		entities: entities,
	}, nil
}

// newScatter returns the scatter layer, at (right, left) in normalized
// units, colored by the combined sum.
func newScatter(
	sty Style,
	right, left, sum []float64,
	cm palette.ColorMap,
) (
	*plotter.Scatter,
	error,
) {

	xys := make(plotter.XYs, len(right))
	cols := make([]color.Color, len(right))
	for i := range xys {
		xys[i].X, xys[i].Y = right[i], left[i]

		c, err := colorAt(cm, sum[i])
		if err != nil {
			return nil, fmt.Errorf("diamond: color of point %d: %w", i, err)
		}
		cols[i] = c
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("diamond: scatter: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  cols[0],
		Radius: sty.MarkerRadius,
		Shape: edgedCircle{Edge: draw.LineStyle{
			Color: sty.MarkerEdge,
			Width: sty.MarkerEdgeWidth,
		}},
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		g := sc.GlyphStyle
		g.Color = cols[i]
		return g
	}
	return sc, nil
}
