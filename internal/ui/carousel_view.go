package ui

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/chatdeck/internal/cache"
	"github.com/depeter/chatdeck/internal/carousel"
	"github.com/depeter/chatdeck/internal/feed"
)

// CarouselViewOptions configures a CarouselView.
type CarouselViewOptions struct {
	// Width is the initial viewport width.
	Width           float64
	RowHeight       float64
	Breakpoint      float64
	SpringFrequency float64
	SpringDamping   float64
	Images          *cache.ImageCache
	Logger          *slog.Logger
}

// dotAnim is the displayed state of one dot, sprung toward its target.
type dotAnim struct {
	width, widthVel     float64
	opacity, opacityVel float64
	active, activeVel   float64 // 0 inactive color, 1 active color
}

// CarouselView draws a row of cards driven by a carousel.Carousel and
// feeds it pointer input.
type CarouselView struct {
	Label    string
	Cards    []feed.Card
	Carousel *carousel.Carousel
	Viewport *carousel.SpringViewport

	Active bool // whether this row has keyboard focus

	// OnOpen is called when a card is tapped or activated with Enter.
	OnOpen func(card feed.Card)

	ctx       context.Context
	images    *cache.ImageCache
	rowHeight float64
	bounds    carousel.Rect
	layout    carousel.Layout
	dots      []dotAnim
	dotSpring harmonica.Spring

	hoverX, hoverY float64
	hovering       bool

	mu       sync.Mutex
	decoded  map[string]image.Image
	textures map[string]*ebiten.Image
}

func NewCarouselView(ctx context.Context, label string, cards []feed.Card, win carousel.Window, opts CarouselViewOptions) *CarouselView {
	vp := carousel.NewSpringViewport(opts.Width, ebiten.TPS(), opts.SpringFrequency, opts.SpringDamping)
	c := carousel.New(len(cards), carousel.Options{
		Breakpoint: opts.Breakpoint,
		Logger:     opts.Logger,
	})
	c.Mount(vp, win)

	cv := &CarouselView{
		Label:     label,
		Cards:     cards,
		Carousel:  c,
		Viewport:  vp,
		ctx:       ctx,
		images:    opts.Images,
		rowHeight: opts.RowHeight,
		bounds:    carousel.Rect{W: opts.Width, H: opts.RowHeight},
		dotSpring: harmonica.NewSpring(harmonica.FPS(ebiten.TPS()), DotSpringFrequency, 1),
		decoded:   make(map[string]image.Image),
		textures:  make(map[string]*ebiten.Image),
	}
	cv.loadImages()
	return cv
}

// SetCards replaces the cards, keeping the scroll position where it is
// still valid.
func (cv *CarouselView) SetCards(cards []feed.Card) {
	cv.Cards = cards
	cv.Carousel.SetItemCount(len(cards))
	cv.loadImages()
}

// Close releases the carousel's viewport and window listeners.
func (cv *CarouselView) Close() {
	cv.Carousel.Unmount()
}

func (cv *CarouselView) loadImages() {
	if cv.images == nil {
		return
	}
	for _, card := range cv.Cards {
		url := card.ImageURL
		if url == "" {
			continue
		}
		cv.images.LoadAsync(cv.ctx, url, func(img image.Image) {
			cv.mu.Lock()
			cv.decoded[url] = img
			cv.mu.Unlock()
		})
	}
}

// texture returns the ebiten image for url once it has been decoded.
func (cv *CarouselView) texture(url string) *ebiten.Image {
	if url == "" {
		return nil
	}
	if tex, ok := cv.textures[url]; ok {
		return tex
	}
	cv.mu.Lock()
	img, ok := cv.decoded[url]
	delete(cv.decoded, url)
	cv.mu.Unlock()
	if !ok {
		return nil
	}
	tex := ebiten.NewImageFromImage(img)
	cv.textures[url] = tex
	return tex
}

// SetBounds places the item row. w is also the viewport width.
func (cv *CarouselView) SetBounds(x, y, w float64) {
	cv.bounds = carousel.Rect{X: x, Y: y, W: w, H: cv.rowHeight}
	if cv.Viewport.Width() != w {
		cv.Viewport.SetWidth(w)
	}
	cv.relayout()
}

// Height is the space the row and its indicator take, label included.
// An empty carousel takes none.
func (cv *CarouselView) Height() float64 {
	if cv.Carousel.TotalItems() == 0 {
		return 0
	}
	return SectionTitleH + cv.layout.Height
}

func (cv *CarouselView) relayout() carousel.View {
	v := cv.Carousel.View()
	cv.layout = carousel.ComputeLayout(cv.bounds, cv.rowHeight, v, cv.Viewport.ScrollOffset(), carousel.DefaultMetrics)
	return v
}

// area is the region that accepts presses: the item row and the dots.
func (cv *CarouselView) area() carousel.Rect {
	r := cv.layout.Bounds
	r.H = cv.layout.Height
	return r
}

// Update advances the viewport animation and handles pointer input.
// wheelX is the horizontal wheel delta. It reports whether the input was
// consumed.
func (cv *CarouselView) Update(p Pointer, wheelX float64) bool {
	cv.Viewport.Tick()
	v := cv.relayout()
	if v.Empty {
		return false
	}

	area := cv.area()
	inside := area.Contains(p.X, p.Y)
	cv.hoverX, cv.hoverY, cv.hovering = p.X, p.Y, inside && !p.Touch

	c := cv.Carousel
	consumed := false
	switch {
	case p.JustPressed && inside:
		c.PointerDown(p.X)
		consumed = true
	case c.Dragging() && p.JustReleased:
		cv.release(c.PointerUp(), p)
		consumed = true
	case c.Dragging() && !p.Touch && !inside:
		// Mouse left the carousel mid-press; a tap here is no tap
		c.PointerLeave()
	case c.Dragging() && p.Pressed:
		c.PointerMove(p.X)
		consumed = true
	}

	if inside && wheelX != 0 && !c.Dragging() {
		cv.Viewport.SetScrollOffset(cv.Viewport.ScrollOffset() - wheelX*ScrollWheelSpeed)
		consumed = true
	}

	cv.relayout()
	return consumed
}

func (cv *CarouselView) release(rel carousel.Release, p Pointer) {
	if !rel.Tapped {
		return
	}
	hit := cv.layout.HitTest(p.X, p.Y)
	if cv.Carousel.Dispatch(hit) {
		return
	}
	if hit.Target == carousel.TargetItem {
		cv.open(hit.Index)
	}
}

func (cv *CarouselView) open(i int) {
	if cv.OnOpen != nil && i >= 0 && i < len(cv.Cards) {
		cv.OnOpen(cv.Cards[i])
	}
}

// OpenCurrent activates the card at the current position.
func (cv *CarouselView) OpenCurrent() {
	cv.open(cv.Carousel.Position().NearestIndex)
}

// Draw renders the label, visible cards, nav buttons and dots.
func (cv *CarouselView) Draw(dst *ebiten.Image) {
	v := cv.Carousel.View()
	if v.Empty {
		return
	}
	l := cv.layout

	labelClr := ColorTextSecondary
	if cv.Active {
		labelClr = ColorText
	}
	DrawText(dst, cv.Label, l.Bounds.X+CardInset, l.Bounds.Y-SectionTitleH, FontSizeHeading, labelClr)

	row := Clip(dst, l.Bounds.X, l.Bounds.Y, l.Bounds.W, l.Bounds.H)
	for i, slot := range l.Items {
		// Skip offscreen items
		if !l.Visible(i) || i >= len(cv.Cards) {
			continue
		}
		card := cv.Cards[i]
		hovered := cv.hovering && !v.Dragging && slot.Contains(cv.hoverX, cv.hoverY)
		DrawCard(row, card, cv.texture(card.ImageURL), slot.X, slot.Y, slot.W, slot.H, hovered)
	}

	if !l.Prev.Empty() {
		drawNavButton(dst, float32(l.Prev.X), float32(l.Prev.Y), float32(l.Prev.W), -1, cv.hovering && l.Prev.Contains(cv.hoverX, cv.hoverY))
	}
	if !l.Next.Empty() {
		drawNavButton(dst, float32(l.Next.X), float32(l.Next.Y), float32(l.Next.W), 1, cv.hovering && l.Next.Contains(cv.hoverX, cv.hoverY))
	}

	cv.drawDots(dst, v.Dots, l.Dots)
}

func (cv *CarouselView) drawDots(dst *ebiten.Image, dots []carousel.Dot, rects []carousel.Rect) {
	if len(cv.dots) != len(dots) {
		cv.dots = make([]dotAnim, len(dots))
		for i, d := range dots {
			cv.dots[i] = targetAnim(d)
		}
	}

	pad := carousel.DefaultMetrics.DotPad
	for i, d := range dots {
		a := &cv.dots[i]
		target := targetAnim(d)
		if d.Animated {
			a.width, a.widthVel = cv.dotSpring.Update(a.width, a.widthVel, target.width)
			a.opacity, a.opacityVel = cv.dotSpring.Update(a.opacity, a.opacityVel, target.opacity)
			a.active, a.activeVel = cv.dotSpring.Update(a.active, a.activeVel, target.active)
		} else {
			*a = target
		}

		r := rects[i]
		clr := MixColor(carousel.InactiveColor, carousel.ActiveColor, a.active)
		x := r.X + pad + (d.Width-a.width)/2
		y := r.Y + pad
		DrawFilledRoundRect(dst, float32(x), float32(y), float32(a.width), carousel.DotHeight, carousel.DotHeight/2, WithAlpha(clr, a.opacity))
	}
}

func targetAnim(d carousel.Dot) dotAnim {
	a := dotAnim{width: d.Width, opacity: d.Opacity}
	if d.Color == carousel.DotActive {
		a.active = 1
	}
	return a
}
