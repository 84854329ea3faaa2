package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawChevronLeft draws a left-pointing chevron centered at (cx, cy).
func drawChevronLeft(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx+r*0.3, cy-r, cx-r*0.4, cy, 2.5, clr, true)
	vector.StrokeLine(dst, cx-r*0.4, cy, cx+r*0.3, cy+r, 2.5, clr, true)
}

// drawChevronRight draws a right-pointing chevron centered at (cx, cy).
func drawChevronRight(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r*0.3, cy-r, cx+r*0.4, cy, 2.5, clr, true)
	vector.StrokeLine(dst, cx+r*0.4, cy, cx-r*0.3, cy+r, 2.5, clr, true)
}

// drawCalendarIcon draws a small calendar glyph at (cx, cy) with given radius.
func drawCalendarIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeRect(dst, cx-r, cy-r*0.8, r*2, r*1.8, 1.2, clr, true)
	vector.StrokeLine(dst, cx-r, cy-r*0.3, cx+r, cy-r*0.3, 1.2, clr, true)
	// Binder rings
	vector.StrokeLine(dst, cx-r*0.5, cy-r*1.1, cx-r*0.5, cy-r*0.6, 1.2, clr, true)
	vector.StrokeLine(dst, cx+r*0.5, cy-r*1.1, cx+r*0.5, cy-r*0.6, 1.2, clr, true)
}

// drawPinIcon draws a map pin at (cx, cy) with given radius.
func drawPinIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy-r*0.3, r*0.65, 1.2, clr, true)
	vector.StrokeLine(dst, cx-r*0.5, cy+r*0.1, cx, cy+r, 1.2, clr, true)
	vector.StrokeLine(dst, cx+r*0.5, cy+r*0.1, cx, cy+r, 1.2, clr, true)
	vector.DrawFilledCircle(dst, cx, cy-r*0.3, r*0.2, clr, true)
}

// drawNavButton draws a round carousel arrow button. dir < 0 points left.
func drawNavButton(dst *ebiten.Image, x, y, size float32, dir int, hovered bool) {
	r := size / 2
	cx, cy := x+r, y+r
	vector.DrawFilledCircle(dst, cx, cy+1.5, r, ColorShadow, true)
	bg := ColorNavButton
	if hovered {
		bg = ColorSurface
	}
	vector.DrawFilledCircle(dst, cx, cy, r, bg, true)
	if dir < 0 {
		drawChevronLeft(dst, cx, cy, r*0.35, ColorNavIcon)
	} else {
		drawChevronRight(dst, cx, cy, r*0.35, ColorNavIcon)
	}
}
