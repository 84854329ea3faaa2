package carousel

import (
	"image/color"
	"math"
)

// Indicator dot ranges.
const (
	DotMinWidth   = 8.0
	DotMaxWidth   = 24.0
	DotHeight     = 8.0
	DotMinOpacity = 0.3
	DotMaxOpacity = 1.0
)

// DotColor selects one of the two indicator colors.
type DotColor int

const (
	DotInactive DotColor = iota
	DotActive
)

var (
	ActiveColor   = color.RGBA{R: 0xAE, G: 0x07, B: 0x75, A: 0xFF}
	InactiveColor = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
)

// RGBA returns the fixed color for c.
func (c DotColor) RGBA() color.RGBA {
	if c == DotActive {
		return ActiveColor
	}
	return InactiveColor
}

// Dot is the visual state of one page indicator.
type Dot struct {
	Width   float64
	Color   DotColor
	Opacity float64
	// Animated is false while a drag is in progress; the renderer should
	// apply the values directly instead of easing toward them.
	Animated bool
}

// RenderDot maps the continuous page coordinate to the look of dot
// dotIndex. With d = exactPage - dotIndex:
//
//	|d| < 0.5       the active dot, shrinking from 24px as the page moves off it
//	0.5 <= |d| < 1  a neighbour, growing toward 24px as the page approaches
//	|d| >= 1        a resting dot, 8px at 0.3 opacity
//
// Width and opacity fall linearly with |d| across both inner segments, so
// the result is continuous at |d| = 0.5 and |d| = 1 and monotonic within
// each segment. Exactly one dot, the one with d in [-0.5, 0.5), takes the
// active color.
func RenderDot(dotIndex int, exactPage float64, dragging bool) Dot {
	d := exactPage - float64(dotIndex)
	dist := math.Abs(d)

	dot := Dot{
		Width:    DotMinWidth,
		Color:    DotInactive,
		Opacity:  DotMinOpacity,
		Animated: !dragging,
	}

	switch {
	case dist < 0.5:
		// Active
		dot.Width = DotMaxWidth - dist*(DotMaxWidth-DotMinWidth)
		dot.Opacity = DotMaxOpacity - dist*(DotMaxOpacity-DotMinOpacity)
	case dist < 1:
		approach := 1 - dist
		dot.Width = DotMinWidth + approach*(DotMaxWidth-DotMinWidth)
		dot.Opacity = DotMinOpacity + approach*(DotMaxOpacity-DotMinOpacity)
	}
	if d >= -0.5 && d < 0.5 {
		dot.Color = DotActive
	}

	dot.Width = clamp(dot.Width, DotMinWidth, DotMaxWidth)
	dot.Opacity = clamp(dot.Opacity, DotMinOpacity, DotMaxOpacity)
	return dot
}

// RenderDots renders every indicator dot for the given page count.
func RenderDots(totalPages int, exactPage float64, dragging bool) []Dot {
	if totalPages <= 0 {
		return nil
	}
	dots := make([]Dot, totalPages)
	for i := range dots {
		dots[i] = RenderDot(i, exactPage, dragging)
	}
	return dots
}
