package declutter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func stacked(n int, at vg.Point) []Label {
	labels := make([]Label, n)
	for i := range labels {
		labels[i] = Label{Text: "player", Anchor: at, Width: 40, Height: 10}
	}
	return labels
}

func staircase() []Label {
	return []Label{
		{Text: "a", Anchor: vg.Point{X: 0, Y: 0}, Width: 50, Height: 12},
		{Text: "b", Anchor: vg.Point{X: 5, Y: 2}, Width: 50, Height: 12},
		{Text: "c", Anchor: vg.Point{X: 10, Y: 4}, Width: 50, Height: 12},
		{Text: "d", Anchor: vg.Point{X: 15, Y: 6}, Width: 50, Height: 12},
	}
}

// grid lays out k*k labels on a square lattice of anchors much tighter than
// the labels themselves, so labels keep landing on neighbouring anchors.
func grid(k int, step vg.Length) []Label {
	var labels []Label
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			at := vg.Point{X: vg.Length(i) * step, Y: vg.Length(j) * step}
			labels = append(labels, Label{Text: "player", Anchor: at, Width: 40, Height: 10})
		}
	}
	return labels
}

func maxShift(labels []Label, pos []vg.Point) float64 {
	var m float64
	for i := range labels {
		d := pos[i].Sub(labels[i].Anchor)
		m = math.Max(m, math.Hypot(float64(d.X), float64(d.Y)))
	}
	return m
}

func TestNone(t *testing.T) {
	labels := staircase()
	pos := None{}.Declutter(labels)
	require.Len(t, pos, len(labels))
	for i := range labels {
		assert.Equal(t, labels[i].Anchor, pos[i])
	}
}

func TestFunc(t *testing.T) {
	called := 0
	d := Func(func(labels []Label) []vg.Point {
		called++
		return Anchors(labels)
	})
	pos := d.Declutter(staircase())
	assert.Equal(t, 1, called)
	assert.Len(t, pos, 4)
}

func TestOverlap(t *testing.T) {
	a := vg.Rectangle{Max: vg.Point{X: 10, Y: 10}}
	b := vg.Rectangle{Min: vg.Point{X: 5, Y: 8}, Max: vg.Point{X: 20, Y: 30}}
	dx, dy := Overlap(a, b)
	assert.Equal(t, vg.Length(5), dx)
	assert.Equal(t, vg.Length(2), dy)

	c := vg.Rectangle{Min: vg.Point{X: 11, Y: 0}, Max: vg.Point{X: 12, Y: 1}}
	dx, _ = Overlap(a, c)
	assert.LessOrEqual(t, dx, vg.Length(0))
}

func TestRepel(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		repel  Repel
	}{
		{name: "stacked", labels: stacked(5, vg.Point{X: 100, Y: 100})},
		{name: "staircase", labels: staircase()},
		{name: "stacked avoiding anchors", labels: stacked(5, vg.Point{X: 100, Y: 100}), repel: Repel{AvoidAnchors: true}},
		{name: "staircase avoiding anchors", labels: staircase(), repel: Repel{AvoidAnchors: true}},
		{name: "grid", labels: grid(4, 15)},
		{name: "grid avoiding anchors", labels: grid(4, 15), repel: Repel{AvoidAnchors: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Anchors(tt.labels)
			require.NotEmpty(t, Overlapping(tt.labels, before, 1e-6), "fixture should start overlapping")

			pos := tt.repel.Declutter(tt.labels)
			require.Len(t, pos, len(tt.labels))

			assert.Empty(t, Overlapping(tt.labels, pos, 1e-6))
			assert.Zero(t, OverlapArea(tt.labels, pos))
			assert.Less(t, maxShift(tt.labels, pos), 100.0, "labels should stay near their anchors")
		})
	}
}

func TestRepelDeterministic(t *testing.T) {
	labels := stacked(4, vg.Point{X: 10, Y: 10})
	assert.Equal(t, Repel{}.Declutter(labels), Repel{}.Declutter(labels))
}

func TestRepelLeavesSeparatedLabels(t *testing.T) {
	labels := []Label{
		{Text: "a", Anchor: vg.Point{X: 0, Y: 0}, Width: 10, Height: 5},
		{Text: "b", Anchor: vg.Point{X: 100, Y: 100}, Width: 10, Height: 5},
	}
	assert.Equal(t, Anchors(labels), Repel{}.Declutter(labels))
}

func TestRepelEmpty(t *testing.T) {
	assert.Empty(t, Repel{}.Declutter(nil))
}

func TestLeastSquares(t *testing.T) {
	t.Run("pair", func(t *testing.T) {
		labels := stacked(2, vg.Point{X: 100, Y: 100})
		before := OverlapArea(labels, Anchors(labels))

		pos := LeastSquares{}.Declutter(labels)
		require.Len(t, pos, 2)
		assert.Less(t, OverlapArea(labels, pos), before/2)
	})

	t.Run("staircase", func(t *testing.T) {
		labels := staircase()
		before := OverlapArea(labels, Anchors(labels))

		pos := LeastSquares{}.Declutter(labels)
		require.Len(t, pos, 4)
		assert.Less(t, OverlapArea(labels, pos), before/2)
		for _, p := range pos {
			assert.False(t, math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y)))
		}
	})

	t.Run("finished by repel", func(t *testing.T) {
		labels := stacked(3, vg.Point{X: 50, Y: 50})
		pos := LeastSquares{Finish: Repel{}}.Declutter(labels)
		require.Len(t, pos, 3)
		assert.Empty(t, Overlapping(labels, pos, 1e-6))
	})

	t.Run("single label", func(t *testing.T) {
		labels := stacked(1, vg.Point{X: 1, Y: 2})
		assert.Equal(t, Anchors(labels), LeastSquares{}.Declutter(labels))
	})
}
