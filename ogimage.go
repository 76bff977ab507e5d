package website

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/image/draw"
)

// Social-card size advertised in the page metadata.
const (
	ogImageWidth  = 1200
	ogImageHeight = 630
)

var ogBackground = color.RGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff} // zinc-900

// OGImage renders the Open Graph card once and serves the cached PNG.
type OGImage struct {
	source string

	once sync.Once
	data []byte
	err  error
}

// NewOGImage returns an OGImage built from the image at source. An empty
// or missing source yields a plain card in the brand background color.
func NewOGImage(source string) *OGImage {
	return &OGImage{source: source}
}

// PNG returns the encoded card.
func (o *OGImage) PNG() ([]byte, error) {
	o.once.Do(func() {
		o.data, o.err = buildOGImage(o.source)
	})
	return o.data, o.err
}

func buildOGImage(source string) ([]byte, error) {
	dst := image.NewRGBA(image.Rect(0, 0, ogImageWidth, ogImageHeight))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: ogBackground}, image.Point{}, draw.Src)

	if source != "" {
		src, err := decodeImageFile(source)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// keep the plain card
		case err != nil:
			return nil, err
		default:
			draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), ogImageWidth, ogImageHeight), draw.Over, nil)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode og image: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode og image source %s: %w", path, err)
	}
	return img, nil
}

// coverRect returns the largest centered sub-rectangle of b with the
// aspect ratio w:h, so scaling it fills the target without distortion.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw*h > bh*w {
		cw := bh * w / h
		x0 := b.Min.X + (bw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := bw * h / w
	y0 := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
