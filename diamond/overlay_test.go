package diamond

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestWrap(t *testing.T) {
	sty := DefaultStyle().textStyle(8, false, DefaultStyle().Foreground)
	s := "Passes that move the ball towards the opponent goal by at least ten yards"

	out := wrap(sty, s, 100)
	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		if strings.Contains(l, " ") {
			assert.LessOrEqual(t, float64(sty.Width(l)), 100.0)
		}
	}
	assert.Equal(t, strings.Fields(s), strings.Fields(out))

	assert.Equal(t, s, wrap(sty, s, 10000))
	assert.Equal(t, "", wrap(sty, "   ", 100))
	assert.Equal(t, "supercalifragilistic\nx", wrap(sty, "supercalifragilistic x", 1))
}

func TestFit(t *testing.T) {
	r := vg.Rectangle{Max: vg.Point{X: 100, Y: 50}}

	got := fit(r, image.Rect(0, 0, 10, 10))
	assert.Equal(t, vg.Rectangle{Min: vg.Point{X: 25}, Max: vg.Point{X: 75, Y: 50}}, got)

	got = fit(r, image.Rect(0, 0, 40, 10))
	assert.Equal(t, vg.Rectangle{Min: vg.Point{Y: 12.5}, Max: vg.Point{X: 100, Y: 37.5}}, got)

	assert.Equal(t, vg.Rectangle{}, fit(r, image.Rectangle{}))
}

func TestRegion(t *testing.T) {
	c := draw.NewCanvas(&recorder.Canvas{}, 200, 100)
	got := region(c, rect{0.5, 0.25, 0.25, 0.5})
	assert.Equal(t, vg.Rectangle{Min: vg.Point{X: 100, Y: 25}, Max: vg.Point{X: 150, Y: 75}}, got.Rectangle)
	assert.Equal(t, vg.Point{X: 200, Y: 0}, at(c, 1, 0))
}
