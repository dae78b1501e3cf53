package frame

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Affine is a 2-D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// then returns the transform that applies t first and u second.
func (t Affine) then(u Affine) Affine {
	return Affine{
		A: u.A*t.A + u.B*t.D,
		B: u.A*t.B + u.B*t.E,
		C: u.A*t.C + u.B*t.F + u.C,
		D: u.D*t.A + u.E*t.D,
		E: u.D*t.B + u.E*t.E,
		F: u.D*t.C + u.E*t.F + u.F,
	}
}

// Rotate appends a counter-clockwise rotation by deg degrees.
func (t Affine) Rotate(deg float64) Affine {
	s, c := math.Sincos(deg * math.Pi / 180)
	return t.then(Affine{A: c, B: -s, D: s, E: c})
}

// Scale appends a scaling by sx, sy.
func (t Affine) Scale(sx, sy float64) Affine {
	return t.then(Affine{A: sx, E: sy})
}

// Translate appends a translation by dx, dy.
func (t Affine) Translate(dx, dy float64) Affine {
	return t.then(Affine{A: 1, C: dx, E: 1, F: dy})
}

// Apply maps (x, y) through the transform.
func (t Affine) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// Point maps (x, y) to a canvas point.
func (t Affine) Point(x, y float64) vg.Point {
	px, py := t.Apply(x, y)
	return vg.Point{X: vg.Length(px), Y: vg.Length(py)}
}

// Angle returns the rotation carried by the transform, in radians.
func (t Affine) Angle() float64 {
	return math.Atan2(t.D, t.A)
}

// Direction returns the unit vector the data-space vector (dx, dy) points
// to once transformed.
func (t Affine) Direction(dx, dy float64) vg.Point {
	x := t.A*dx + t.B*dy
	y := t.D*dx + t.E*dy
	n := math.Hypot(x, y)
	if n == 0 {
		return vg.Point{}
	}
	return vg.Point{X: vg.Length(x / n), Y: vg.Length(y / n)}
}
