package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawFilledRoundRect draws a filled rectangle with rounded corners.
func DrawFilledRoundRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	radius = min(radius, w/2, h/2)
	if radius <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, clr, false)
		return
	}
	vector.DrawFilledRect(dst, x+radius, y, w-2*radius, h, clr, true)
	vector.DrawFilledRect(dst, x, y+radius, radius, h-2*radius, clr, true)
	vector.DrawFilledRect(dst, x+w-radius, y+radius, radius, h-2*radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+w-radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+h-radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+w-radius, y+h-radius, radius, clr, true)
}

// DrawImageCover draws img scaled to fill the rect, cropping the overflow
// around the center.
func DrawImageCover(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || w <= 0 || h <= 0 {
		return
	}
	scale := max(w/iw, h/ih)
	cropW, cropH := w/scale, h/scale
	cx := b.Min.X + int((iw-cropW)/2)
	cy := b.Min.Y + int((ih-cropH)/2)
	src := img.SubImage(image.Rect(cx, cy, cx+int(cropW), cy+int(cropH))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// Clip returns the part of dst inside the given rect. Drawing into it keeps
// dst's coordinates.
func Clip(dst *ebiten.Image, x, y, w, h float64) *ebiten.Image {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(dst.Bounds())
	return dst.SubImage(r).(*ebiten.Image)
}

// WithAlpha returns clr with its alpha scaled by a in [0, 1].
func WithAlpha(clr color.RGBA, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(float64(clr.A)*a + 0.5)}
}

// MixColor blends from a to b by t in [0, 1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 { return uint8(Lerp(float64(x), float64(y), t) + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
