package website

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOGImageFallbackCard(t *testing.T) {
	data, err := NewOGImage(filepath.Join(t.TempDir(), "missing.png")).PNG()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1200, 630), img.Bounds())
	r, g, b, _ := img.At(600, 315).RGBA()
	assert.Equal(t, [3]uint32{0x18, 0x18, 0x1b}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestOGImageScalesSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			src.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	o := NewOGImage(path)
	data, err := o.PNG()
	require.NoError(t, err)
	again, err := o.PNG()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	r, g, _, _ := img.At(600, 315).RGBA()
	assert.Equal(t, uint32(0xff), r>>8)
	assert.Equal(t, uint32(0), g>>8)
}

func TestOGImageInvalidSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := NewOGImage(path).PNG()
	assert.Error(t, err)
}

func TestCoverRect(t *testing.T) {
	// wide source: crop the sides
	assert.Equal(t, image.Rect(50, 0, 350, 100), coverRect(image.Rect(0, 0, 400, 100), 3, 1))
	// tall source: crop top and bottom
	assert.Equal(t, image.Rect(0, 150, 300, 250), coverRect(image.Rect(0, 0, 300, 400), 3, 1))
	// exact ratio
	assert.Equal(t, image.Rect(0, 0, 1200, 630), coverRect(image.Rect(0, 0, 1200, 630), 1200, 630))
}
