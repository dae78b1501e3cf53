package logo

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales img down so that its longest side is at most max pixels,
// keeping the aspect ratio. Images already small enough are returned as is.
func Thumbnail(img image.Image, max int) image.Image {
	if img == nil || max <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
