package frame

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
)

const (
	// Extent is the length of each diamond leg in normalized units.
	Extent = 1.001

	// TickStep is the spacing of tick marks in normalized units.
	TickStep = 0.1
)

// Ticks returns evenly spaced tick positions from 0 up to extent, one every
// TickStep (nbins = 1 + extent/TickStep).
func Ticks(extent float64) []float64 {
	n := int(math.Floor(extent/TickStep + 1e-9))
	if n < 1 {
		return []float64{0}
	}
	return vec.Linspace(0, float64(n)*TickStep, n+1)
}

// TickValue maps a normalized position back to the metric's own scale,
// rounded to two decimals.
func TickValue(t, max, factor float64) float64 {
	return math.Round(t*max/factor*100) / 100
}

// TickLabel formats the metric value shown at normalized position t. The
// origin is shared by both axes and stays unlabeled.
func TickLabel(t, max, factor float64) string {
	if t == 0 {
		return ""
	}
	return strconv.FormatFloat(TickValue(t, max, factor), 'f', -1, 64)
}

// Formatter returns the tick table of an axis whose raw maximum is max.
func Formatter(
	max, factor, extent float64,
) (
	[]plot.Tick,
) {

	ticks := []plot.Tick{}
	for _, t := range Ticks(extent) {
		ticks = append(ticks, plot.Tick{Value: t, Label: TickLabel(t, max, factor)})
	}
	return ticks
}
