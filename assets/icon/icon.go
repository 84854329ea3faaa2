package icon

import (
	"image"
	"image/color"
	"math"
)

// Palette of the chat widget
var (
	brand      = color.RGBA{R: 0xAE, G: 0x07, B: 0x75, A: 0xFF}
	brandDark  = color.RGBA{R: 0x7A, G: 0x05, B: 0x52, A: 0xFF}
	background = color.RGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF}
	cardFace   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	cardShade  = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
	shadow     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x30}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a chat bubble holding a fanned deck of cards with a page
// indicator underneath.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.2, background)

	// Bubble with a tail at the bottom left
	fillRoundedRect(img, s*0.06, s*0.08, s*0.88, s*0.70, s*0.16, brand)
	fillTriangle(img, s*0.18, s*0.70, s*0.38, s*0.70, s*0.14, s*0.92, brand)

	// Back cards peek out on both sides
	fillRoundedRect(img, s*0.16, s*0.24, s*0.20, s*0.34, s*0.04, brandDark)
	fillRoundedRect(img, s*0.64, s*0.24, s*0.20, s*0.34, s*0.04, brandDark)

	// Front card with an image band
	fillRoundedRect(img, s*0.29, s*0.19, s*0.44, s*0.46, s*0.05, shadow)
	fillRoundedRect(img, s*0.28, s*0.17, s*0.44, s*0.46, s*0.05, cardFace)
	fillRoundedRect(img, s*0.31, s*0.20, s*0.38, s*0.18, s*0.03, cardShade)

	// Indicator: one wide active pill between two dots
	dotR := s * 0.035
	cy := s * 0.70
	fillCircle(img, s*0.36, cy, dotR, cardShade)
	fillRoundedRect(img, s*0.43, cy-dotR, s*0.14, dotR*2, dotR, cardFace)
	fillCircle(img, s*0.64, cy, dotR, cardShade)

	return img
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	rf = math.Min(rf, math.Min(wf, hf)/2)
	bounds := img.Bounds().Intersect(image.Rect(int(xf), int(yf), int(math.Ceil(xf+wf)), int(math.Ceil(yf+hf))))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Distance from the pixel center to the inner rect
			px, py := float64(x)+0.5, float64(y)+0.5
			dx := math.Max(math.Max(xf+rf-px, px-(xf+wf-rf)), 0)
			dy := math.Max(math.Max(yf+rf-py, py-(yf+hf-rf)), 0)
			if dx*dx+dy*dy <= rf*rf {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	fillRoundedRect(img, cx-r, cy-r, r*2, r*2, r, c)
}

// fillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2) by edge tests.
func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	minX, maxX := math.Min(x0, math.Min(x1, x2)), math.Max(x0, math.Max(x1, x2))
	minY, maxY := math.Min(y0, math.Min(y1, y2)), math.Max(y0, math.Max(y1, y2))
	bounds := img.Bounds().Intersect(image.Rect(int(minX), int(minY), int(math.Ceil(maxX)), int(math.Ceil(maxY))))

	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites color c over the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	sr, sg, sb, sa := c.RGBA()
	if sa == 0 {
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - sa
	// c.RGBA is premultiplied, so source over is src + dst*(1-a)
	blend := func(s uint32, d uint8) uint8 {
		return uint8((s + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: blend(sr, dst.R),
		G: blend(sg, dst.G),
		B: blend(sb, dst.B),
		A: blend(sa, dst.A),
	})
}
