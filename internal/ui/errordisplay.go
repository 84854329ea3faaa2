package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/chatdeck/internal/carousel"
)

const errorBannerH = 40.0

// ErrorDisplay draws an error banner with a "Dismiss" button.
// Call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	Text string

	dismissRect carousel.Rect
}

// Draw renders the banner across width w. Returns the total height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, x, y, w float64) float64 {
	if ed.Text == "" {
		ed.dismissRect = carousel.Rect{}
		return 0
	}

	const h = errorBannerH
	DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), h, 8, ColorErrorSurface)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), h, 1, ColorError, false)

	btnW := 72.0
	btnH := 26.0
	btnX := x + w - btnW - 8
	btnY := y + (h-btnH)/2
	ed.dismissRect = carousel.Rect{X: btnX, Y: btnY, W: btnW, H: btnH}

	msg := TruncateText(ed.Text, btnX-x-24, FontSizeSmall)
	DrawText(dst, msg, x+12, y+(h-FontSizeSmall)/2-2, FontSizeSmall, ColorError)

	vector.DrawFilledRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), ColorSurface, false)
	vector.StrokeRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), 1, ColorTextMuted, false)
	DrawTextCentered(dst, "Dismiss", btnX+btnW/2, btnY+btnH/2, FontSizeSmall, ColorTextSecondary)

	return ed.Height()
}

// Height is the space Draw uses, zero when there is no error.
func (ed *ErrorDisplay) Height() float64 {
	if ed.Text == "" {
		return 0
	}
	return errorBannerH + 12
}

// HandleClick checks if the dismiss button was clicked. Returns true if the
// click was consumed.
func (ed *ErrorDisplay) HandleClick(x, y float64) bool {
	if ed.Text == "" || ed.dismissRect.Empty() {
		return false
	}
	if ed.dismissRect.Contains(x, y) {
		ed.Text = ""
		return true
	}
	return false
}
