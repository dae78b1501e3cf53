package diamond

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"sort"
	"sync"

	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoFrames is returned by Animate without figures.
var ErrNoFrames = errors.New("diamond: no frames to animate")

type frameResult struct {
	Index    int
	Paletted *image.Paletted
}

// Animate writes the figures to w as an animated GIF, one frame per figure
// at size width x height, each shown for delay hundredths of a second.
// Frames are rendered concurrently.
func Animate(
	w io.Writer,
	figs []*Figure,
	width, height vg.Length,
	delay int,
) error {

	if len(figs) == 0 {
		return ErrNoFrames
	}

	resultCh := make(chan frameResult, len(figs))
	var wg sync.WaitGroup

	for index, f := range figs {
		wg.Add(1)
		go func(index int, f *Figure) {
			defer wg.Done()
			resultCh <- frameResult{
				Index:    index,
				Paletted: toPaletted(render(f, width, height)),
			}
		}(index, f)
	}

	wg.Wait()
	close(resultCh)

	var frameResults []frameResult
	for result := range resultCh {
		frameResults = append(frameResults, result)
	}
	sort.Slice(frameResults, func(i, j int) bool {
		return frameResults[i].Index < frameResults[j].Index
	})

	anim := &gif.GIF{}
	for _, result := range frameResults {
		anim.Image = append(anim.Image, result.Paletted)
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("diamond: animate: %w", err)
	}
	return nil
}

func render(f *Figure, width, height vg.Length) image.Image {
	c := vgimg.New(width, height)
	f.Draw(vgdraw.New(c))
	return c.Image()
}

// toPaletted quantizes img to the Plan9 palette with Floyd-Steinberg
// dithering.
func toPaletted(img image.Image) *image.Paletted {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
	return paletted
}
