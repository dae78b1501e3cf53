package diamond

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// colormap returns the named ColorBrewer sequential scheme as a continuous
// color map over [min, max], light at min and dark at max.
func colormap(
	name string,
	min, max float64,
) (
	palette.ColorMap,
	error,
) {

	p, err := brewer.GetPalette(brewer.TypeSequential, name, 9)
	if err != nil {
		return nil, fmt.Errorf("diamond: colormap: %w", err)
	}

	// Sequential schemes get darker with the data. The luminance map wants
	// increasing lightness, so it is built backwards and reversed.
	cols := p.Colors()
	dark := make([]color.Color, len(cols))
	for i, c := range cols {
		dark[len(cols)-1-i] = c
	}
	cm, err := moreland.NewLuminance(dark)
	if err != nil {
		return nil, fmt.Errorf("diamond: colormap %s: %w", name, err)
	}

	if max <= min {
		max = min + 1
	}
	cm = palette.Reverse(cm)
	cm.SetMin(min)
	cm.SetMax(max)
	return cm, nil
}

// colorAt returns the color of v, clamped to the map range.
func colorAt(cm palette.ColorMap, v float64) (color.Color, error) {
	lo, hi := cm.Min(), cm.Max()
	v = math.Max(lo, math.Min(hi, v))

	c, err := cm.At(v)
	if errors.Is(err, palette.ErrUnderflow) || errors.Is(err, palette.ErrOverflow) {
		// The reversed map can round just past either end.
		eps := (hi - lo) * 1e-9
		if v-lo < hi-v {
			v += eps
		} else {
			v -= eps
		}
		c, err = cm.At(v)
	}
	return c, err
}
