package declutter

import (
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/plot/vg"
)

// LeastSquares lays labels out by solving a non-linear least squares problem
// with Levenberg-Marquardt. The parameters are the 2n label offsets from
// their anchors; the residuals are one spring per offset component, pulling
// labels home, and one term per label pair measuring how deep the two boxes
// overlap.
type LeastSquares struct {
	// Spring weighs the pull towards the anchor. Zero means 0.05.
	Spring float64

	// Pad is the minimum gap wanted between two label boxes. Zero means 2pt.
	Pad vg.Length

	// Iterations caps the solver. Zero means 100.
	Iterations int

	// Finish, if set, is run on the solved layout, with anchors moved to
	// the solved positions.
	Finish Declutterer
}

// Declutter implements the Declutterer interface.
func (ls LeastSquares) Declutter(labels []Label) []vg.Point {
	n := len(labels)
	if n < 2 {
		return Anchors(labels)
	}

	spring := ls.Spring
	if spring <= 0 {
		spring = 0.05
	}
	pad := float64(ls.Pad)
	if pad <= 0 {
		pad = defaultPad
	}
	iters := ls.Iterations
	if iters <= 0 {
		iters = 100
	}

	f := func(dst, off []float64) {
		for i := 0; i < n; i++ {
			dst[2*i] = spring * off[2*i]
			dst[2*i+1] = spring * off[2*i+1]
		}
		k := 2 * n
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dst[k] = overlapDepth(labels[i], labels[j], off[2*i:2*i+2], off[2*j:2*j+2], pad)
				k++
			}
		}
	}

	jac := lm.NumJac{Func: f}
	problem := lm.LMProblem{
		Dim:        2 * n,
		Size:       2*n + n*(n-1)/2,
		Func:       f,
		Jac:        jac.Jac,
		InitParams: spread(labels),
		Tau:        1e-3,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	pos := Anchors(labels)
	result, err := lm.LM(problem, &lm.Settings{Iterations: iters, ObjectiveTol: 1e-16})
	if err == nil && result != nil && len(result.X) == 2*n {
		for i := range pos {
			dx, dy := result.X[2*i], result.X[2*i+1]
			if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
				continue
			}
			pos[i].X += vg.Length(dx)
			pos[i].Y += vg.Length(dy)
		}
	}

	if ls.Finish == nil {
		return pos
	}

	moved := make([]Label, n)
	copy(moved, labels)
	for i := range moved {
		moved[i].Anchor = pos[i]
	}
	return ls.Finish.Declutter(moved)
}

// overlapDepth is the smaller of the horizontal and vertical intersections
// of two padded boxes, or zero when they are apart.
func overlapDepth(a, b Label, offA, offB []float64, pad float64) float64 {
	ax := float64(a.Anchor.X) + offA[0]
	ay := float64(a.Anchor.Y) + offA[1]
	bx := float64(b.Anchor.X) + offB[0]
	by := float64(b.Anchor.Y) + offB[1]

	ox := min(ax+float64(a.Width), bx+float64(b.Width)) - max(ax, bx) + pad
	oy := min(ay+float64(a.Height), by+float64(b.Height)) - max(ay, by) + pad
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return min(ox, oy)
}

// spread returns small, distinct starting offsets so that labels sharing an
// anchor do not start with a flat objective.
func spread(labels []Label) []float64 {
	off := make([]float64, 2*len(labels))
	mid := float64(len(labels)-1) / 2
	for i := range labels {
		off[2*i+1] = (float64(i) - mid) * 0.5
	}
	return off
}
