// Package preview shows a diamond figure in a gnuplot window.
//
// It lives apart from package diamond because glot looks gnuplot up when it
// is loaded and panics if the binary is missing.
package preview

import (
	"fmt"
	"io"
	"log"

	"github.com/Arafatk/glot"

	"github.com/fsartoris/football-viz/diamond"
	"github.com/fsartoris/football-viz/internal/frame"
)

// Scale maps normalized units to the gnuplot axes.
const Scale = 100

// Show opens a gnuplot window with the entities of f, rotated the way the
// figure draws them. l may be nil.
func Show(f *diamond.Figure, l *log.Logger) error {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}

	plot, err := glot.NewPlot(2, true, false)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	groups := Groups(f)
	for _, g := range groups {
		if err := plot.AddPointGroup(g.Name, "points", g.XY); err != nil {
			return fmt.Errorf("preview: %s: %w", g.Name, err)
		}
	}

	plot.SetTitle(f.Title)
	plot.SetXLabel(fmt.Sprintf("%s (left) / %s (right)", f.Left.Name(), f.Right.Name()))
	plot.SetYLabel("combined")
	plot.SetXrange(-75, 75)
	plot.SetYrange(0, 150)

	l.Printf("preview: %q: sent %d groups to gnuplot", f.Title, len(groups))
	return nil
}

// Group is one gnuplot point group: XY[0] holds the x values, XY[1] the y
// values.
type Group struct {
	Name string
	XY   [][]float64
}

// Groups returns the entities of f rotated into display orientation and
// split into other and notable entities. Empty groups are left out.
func Groups(f *diamond.Figure) []Group {
	tr := frame.Identity().Rotate(frame.Rotation).Scale(Scale, Scale)

	other := Group{Name: "entities", XY: [][]float64{{}, {}}}
	notable := Group{Name: "notable", XY: [][]float64{{}, {}}}
	for _, e := range f.Entities() {
		x, y := tr.Apply(e.RightNorm, e.LeftNorm)
		g := &other
		if e.Notable {
			g = &notable
		}
		g.XY[0] = append(g.XY[0], x)
		g.XY[1] = append(g.XY[1], y)
	}

	var groups []Group
	for _, g := range []Group{other, notable} {
		if len(g.XY[0]) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
