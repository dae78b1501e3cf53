// Package logo loads the image shown in the top-left corner of a figure.
//
// Rendering never does I/O: callers fetch or decode the logo up front and
// hand the resulting image.Image to the chart.
package logo

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrStatus is returned by Fetch for non-2xx responses.
var ErrStatus = errors.New("logo: unexpected status")

// Fetch downloads and decodes the image at url.
func Fetch(
	ctx context.Context,
	client *http.Client,
	url string,
) (
	image.Image,
	error,
) {

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("logo: fetch %q: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("logo: fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s from %q", ErrStatus, resp.Status, url)
	}

	img, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("logo: fetch %q: %w", url, err)
	}
	return img, nil
}

// Decode reads a png, jpeg, gif, bmp or webp image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("logo: decode: %w", err)
	}
	return img, nil
}
