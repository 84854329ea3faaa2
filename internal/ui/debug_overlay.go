package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the carousel state of every section if visible.
func DrawDebugOverlay(screen *ebiten.Image, fs *FeedScreen) {
	if !debugOverlayVisible || fs == nil {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var lines []string
	lines = append(lines, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	for _, s := range fs.Sections() {
		c := s.Carousel
		v := c.View()
		pos := v.Position
		lines = append(lines,
			fmt.Sprintf("--- %s ---", s.Label),
			fmt.Sprintf("items=%d  per page=%d  pages=%d", v.TotalItems, v.ItemsPerPage, v.TotalPages),
			fmt.Sprintf("nearest=%d  exact=%.3f  page=%.3f  progress=%.3f", pos.NearestIndex, pos.ExactIndex, pos.ExactPage, pos.Progress),
			fmt.Sprintf("offset=%.1f  target=%.1f  max=%.1f", s.Viewport.ScrollOffset(), s.Viewport.Target(), s.Viewport.MaxOffset()),
			fmt.Sprintf("animating=%t  dragging=%t  prev=%t  next=%t", s.Viewport.Animating(), v.Dragging, v.CanGoPrev, v.CanGoNext),
		)
	}

	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 460.0
	sw := float64(screen.Bounds().Dx())
	px := sw - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug: Carousel State (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorSurface)
		y += lineH
	}
}
