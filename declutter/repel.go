package declutter

import (
	"gonum.org/v1/plot/vg"
)

const (
	defaultIterations = 500
	defaultPad        = 2
	defaultSlack      = 0.5

	eps = 1e-9
)

// Repel pushes overlapping labels apart, one pair at a time, along the axis
// where the overlap is smallest. It stops as soon as a full pass moves
// nothing, or after Iterations passes.
//
// The zero value is ready to use.
type Repel struct {
	// Iterations caps the number of passes. Zero means 500.
	Iterations int

	// Pad is the minimum gap kept between two label boxes. Zero means 2pt.
	Pad vg.Length

	// Slack is added to every push so that pairs end up clearly apart
	// rather than exactly touching. Zero means 0.5pt.
	Slack vg.Length

	// AvoidAnchors also pushes labels off the anchor points of other labels.
	// That pass only runs once a pairwise pass has moved nothing, and only
	// during the first half of the iterations, so the pairwise separation
	// always has the last word.
	AvoidAnchors bool
}

func (r Repel) settings() (int, float64, float64) {
	iters, pad, slack := r.Iterations, float64(r.Pad), float64(r.Slack)
	if iters <= 0 {
		iters = defaultIterations
	}
	if pad <= 0 {
		pad = defaultPad
	}
	if slack <= 0 {
		slack = defaultSlack
	}
	return iters, pad, slack
}

// Declutter implements the Declutterer interface.
func (r Repel) Declutter(labels []Label) []vg.Point {
	iters, pad, slack := r.settings()

	n := len(labels)
	x := make([]float64, n)
	y := make([]float64, n)
	w := make([]float64, n)
	h := make([]float64, n)
	for i, l := range labels {
		x[i], y[i] = float64(l.Anchor.X), float64(l.Anchor.Y)
		w[i], h[i] = float64(l.Width), float64(l.Height)
	}

	for it := 0; it < iters; it++ {
		moved := false

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ox := min(x[i]+w[i], x[j]+w[j]) - max(x[i], x[j]) + pad
				oy := min(y[i]+h[i], y[j]+h[j]) - max(y[i], y[j]) + pad
				if ox <= eps || oy <= eps {
					continue
				}
				moved = true

				if oy <= ox {
					s := direction((y[j] + h[j]/2) - (y[i] + h[i]/2))
					d := oy/2 + slack
					y[i] -= s * d
					y[j] += s * d
				} else {
					s := direction((x[j] + w[j]/2) - (x[i] + w[i]/2))
					d := ox/2 + slack
					x[i] -= s * d
					x[j] += s * d
				}
			}
		}

		if r.AvoidAnchors && !moved && it < iters/2 {
			for i := 0; i < n; i++ {
				for k := 0; k < n; k++ {
					if k == i {
						continue
					}
					if pushOff(&x[i], &y[i], w[i], h[i], float64(labels[k].Anchor.X), float64(labels[k].Anchor.Y)) {
						moved = true
					}
				}
			}
		}

		if !moved {
			break
		}
	}

	pos := make([]vg.Point, n)
	for i := range pos {
		pos[i] = vg.Point{X: vg.Length(x[i]), Y: vg.Length(y[i])}
	}
	return pos
}

// direction breaks ties towards positive so that labels stacked on the same
// anchor still separate deterministically.
func direction(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// pushOff moves the box at (x, y) the shortest way so that (px, py) is no
// longer strictly inside it.
func pushOff(x, y *float64, w, h, px, py float64) bool {
	x0, x1 := *x, *x+w
	y0, y1 := *y, *y+h
	if !(px > x0+eps && px < x1-eps && py > y0+eps && py < y1-eps) {
		return false
	}

	left, right := px-x0, x1-px
	down, up := py-y0, y1-py
	switch m := min(left, right, down, up); m {
	case left:
		*x += m
	case right:
		*x -= m
	case down:
		*y += m
	default:
		*y -= m
	}
	return true
}
