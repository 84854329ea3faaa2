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

func TestGenerateDrawsBubble(t *testing.T) {
	img := generate(64).(*image.RGBA)

	// Corners stay transparent outside the rounded background
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	// Bubble body left of the cards is the brand color
	assert.Equal(t, brand, img.RGBAAt(8, 40))
	// Front card face
	assert.Equal(t, cardFace, img.RGBAAt(32, 32))
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	blendPixel(img, 0, 0, color.NRGBA{A: 0x80})
	got := img.RGBAAt(0, 0)
	assert.InDelta(t, 0x7F, int(got.R), 1)
	assert.Equal(t, uint8(0xFF), got.A)

	blendPixel(img, 0, 0, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, img.RGBAAt(0, 0))
}
