// Package declutter moves text labels apart so they do not overlap while
// staying close to the points they annotate.
//
// All geometry is in display space (vg lengths). A label position is the
// lower-left corner of its box.
package declutter

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Label is a text label anchored at a point.
type Label struct {
	Text   string
	Anchor vg.Point
	Width  vg.Length
	Height vg.Length
}

// Box returns the label box when its lower-left corner sits at pos.
func (l Label) Box(pos vg.Point) vg.Rectangle {
	return vg.Rectangle{
		Min: pos,
		Max: vg.Point{X: pos.X + l.Width, Y: pos.Y + l.Height},
	}
}

// Declutterer computes label positions.
//
// Declutter returns one position per label, in the same order. Results are
// a best effort: implementations do not guarantee overlap-free layouts.
type Declutterer interface {
	Declutter(labels []Label) []vg.Point
}

// Func adapts a function to the Declutterer interface.
type Func func(labels []Label) []vg.Point

// Declutter implements the Declutterer interface.
func (f Func) Declutter(labels []Label) []vg.Point {
	return f(labels)
}

// None leaves every label at its anchor.
type None struct{}

// Declutter implements the Declutterer interface.
func (None) Declutter(labels []Label) []vg.Point {
	return Anchors(labels)
}

// Anchors returns the anchor of every label.
func Anchors(labels []Label) []vg.Point {
	pos := make([]vg.Point, len(labels))
	for i, l := range labels {
		pos[i] = l.Anchor
	}
	return pos
}

// Overlap returns the width and height of the intersection of a and b.
// Either is zero or negative when the boxes do not intersect.
func Overlap(a, b vg.Rectangle) (dx, dy vg.Length) {
	dx = vg.Length(math.Min(float64(a.Max.X), float64(b.Max.X)) - math.Max(float64(a.Min.X), float64(b.Min.X)))
	dy = vg.Length(math.Min(float64(a.Max.Y), float64(b.Max.Y)) - math.Max(float64(a.Min.Y), float64(b.Min.Y)))
	return dx, dy
}

// Overlapping returns the index pairs of labels whose boxes intersect by
// more than tol in both directions.
func Overlapping(labels []Label, pos []vg.Point, tol vg.Length) [][2]int {
	var pairs [][2]int
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			dx, dy := Overlap(labels[i].Box(pos[i]), labels[j].Box(pos[j]))
			if dx > tol && dy > tol {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// OverlapArea returns the summed intersection area over all label pairs.
func OverlapArea(labels []Label, pos []vg.Point) float64 {
	var area float64
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			dx, dy := Overlap(labels[i].Box(pos[i]), labels[j].Box(pos[j]))
			if dx > 0 && dy > 0 {
				area += float64(dx) * float64(dy)
			}
		}
	}
	return area
}
