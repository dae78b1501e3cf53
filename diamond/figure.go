package diamond

import (
	"image"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/fsartoris/football-viz/internal/frame"
)

// Entity is one row of a figure.
type Entity struct {
	Name string

	// Left and Right are the metric values, with NaN replaced by zero.
	Left, Right float64

	// LeftNorm and RightNorm are the values scaled into [0, 0.99].
	LeftNorm, RightNorm float64

	// Sum is LeftNorm+RightNorm. It sets the point color.
	Sum float64

	// Notable is set for entities above the notable quantile of either
	// metric. Only notable entities are labelled.
	Notable bool
}

// Figure is a composed diamond chart. It is created by Create and owned by
// the caller.
type Figure struct {
	Title    string
	Subtitle string
	Logo     image.Image
	Left     Metric
	Right    Metric
	Style    Style

	chart    *plot.Plot
	frame    *frame.Diamond
	scatter  *plotter.Scatter
	labels   *frame.Labels
	colors   palette.ColorMap
	entities []Entity
}

// Chart returns the plot holding the rotated frame.
func (f *Figure) Chart() *plot.Plot { return f.chart }

// Scatter returns the scatter layer, in normalized un-rotated coordinates.
func (f *Figure) Scatter() *plotter.Scatter { return f.scatter }

// ColorMap returns the map from combined sum to point color.
func (f *Figure) ColorMap() palette.ColorMap { return f.colors }

// Entities returns every entity in input order.
func (f *Figure) Entities() []Entity {
	return append([]Entity(nil), f.entities...)
}

// Notable returns the labelled entities in input order.
func (f *Figure) Notable() []Entity {
	var out []Entity
	for _, e := range f.entities {
		if e.Notable {
			out = append(out, e)
		}
	}
	return out
}

// Draw draws the figure on c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Style.Background != nil {
		c.SetColor(f.Style.Background)
		c.Fill(c.Rectangle.Path())
	}

	f.chart.Draw(region(c, chartRect))

	f.drawPanel(region(c, leftPanelRect), f.Left)
	f.drawPanel(region(c, rightPanelRect), f.Right)
	f.drawTitle(c)
	f.drawLogo(region(c, logoRect))
	f.drawFooter(c)
}

// WriterTo returns an io.WriterTo that writes the figure at size w x h in
// the given format: png, jpg, jpeg, tif, tiff, svg, pdf or eps.
func (f *Figure) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Render is WriterTo at the figure's Style.Width x Style.Height.
func (f *Figure) Render(format string) (io.WriterTo, error) {
	return f.WriterTo(f.Style.Width, f.Style.Height, format)
}
