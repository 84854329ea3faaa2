package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/chatdeck/internal/cache"
	"github.com/depeter/chatdeck/internal/carousel"
	"github.com/depeter/chatdeck/internal/config"
	"github.com/depeter/chatdeck/internal/feed"
	"github.com/depeter/chatdeck/internal/ui"
)

// FeedUpdate is one load result handed to the game loop.
type FeedUpdate struct {
	Output *feed.SecondaryOutput
	Err    error
}

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config *config.Config
	Screen *ui.FeedScreen
	Window *carousel.WindowSize
	Logger *slog.Logger

	Width, Height int

	// Latest feed result, polled each frame
	updates chan FeedUpdate
	quit    atomic.Bool
}

// NewGame creates the Game with all dependencies.
func NewGame(ctx context.Context, cfg *config.Config, imgCache *cache.ImageCache, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	win := carousel.NewWindowSize(float64(cfg.UI.Width))
	g := &Game{
		Config:  cfg,
		Window:  win,
		Logger:  logger,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		updates: make(chan FeedUpdate, 1),
	}
	g.Screen = ui.NewFeedScreen(ctx, win, ui.CarouselViewOptions{
		RowHeight:       cfg.Carousel.CardHeight,
		Breakpoint:      cfg.Carousel.Breakpoint,
		SpringFrequency: cfg.Carousel.SpringFrequency,
		SpringDamping:   cfg.Carousel.SpringDamping,
		Images:          imgCache,
		Logger:          logger,
	})
	g.Screen.OnOpen = g.openCard
	return g
}

// PostFeed hands a load result to the game loop. It never blocks; a result
// not yet picked up is replaced by the newer one. Safe from any goroutine.
func (g *Game) PostFeed(out *feed.SecondaryOutput, err error) {
	u := FeedUpdate{Output: out, Err: err}
	for {
		select {
		case g.updates <- u:
			return
		default:
		}
		select {
		case <-g.updates:
		default:
		}
	}
}

// Quit ends the run loop on the next Update. Safe from any goroutine.
func (g *Game) Quit() {
	g.quit.Store(true)
}

func (g *Game) openCard(card feed.Card) {
	if !g.Config.UI.OpenLinks || card.Link == "" {
		return
	}
	if err := openBrowser(card.Link); err != nil {
		g.Logger.Warn("open link failed", "link", card.Link, "err", err)
	}
}

func (g *Game) Update() error {
	if g.quit.Load() {
		g.Screen.Close()
		return ebiten.Termination
	}
	kb := &g.Config.Keybinds

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	} else if keyJustPressed(kb.Fullscreen) && !ui.IsModifierPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	select {
	case u := <-g.updates:
		if u.Err != nil {
			g.Logger.Warn("feed load failed", "err", u.Err)
			g.Screen.SetError(u.Err)
		} else {
			g.Screen.SetOutput(u.Output)
		}
	default:
	}

	g.Screen.Update(ui.Keys{
		Prev:        keyRepeating(kb.Prev),
		Next:        keyRepeating(kb.Next),
		First:       keyJustPressed(kb.First),
		Last:        keyJustPressed(kb.Last),
		NextSection: keyJustPressed(kb.NextCarousel),
		Open:        inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !ui.IsModifierPressed(),
	})

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screen.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screen)
}

// Layout follows the window size. Viewports are resized before the window
// width is published so resize listeners see the new geometry.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	g.Screen.SetSize(float64(outsideWidth), float64(outsideHeight))
	g.Window.SetWidth(float64(outsideWidth))
	return outsideWidth, outsideHeight
}
