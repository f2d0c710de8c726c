package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())
}

func TestGenerateDrawsFanInCorner(t *testing.T) {
	img := generate(64).(*image.RGBA)

	assert.Equal(t, darkBG, img.RGBAAt(63, 63), "far corner stays background")
	assert.Equal(t, white, img.RGBAAt(10, 10), "plus in the collapsed corner")
	assert.Equal(t, menuBlue, img.RGBAAt(30, 2))
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})

	blendPixel(img, 0, 0, color.RGBA{})
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, img.RGBAAt(0, 0))

	// Half transparent black darkens by half.
	blendPixel(img, 0, 0, color.RGBA{A: 0x80})
	got := img.RGBAAt(0, 0)
	assert.InDelta(t, 0x7F, got.R, 1)
	assert.Equal(t, uint8(0xFF), got.A)
}
