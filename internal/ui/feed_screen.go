package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/chatdeck/internal/carousel"
	"github.com/depeter/chatdeck/internal/feed"
)

// Keys are the keyboard actions for one frame, already resolved from the
// configured bindings.
type Keys struct {
	Prev        bool
	Next        bool
	First       bool
	Last        bool
	NextSection bool
	Open        bool
}

// FeedScreen shows the News and Events carousels of one chat response,
// stacked vertically, plus its cited sources.
type FeedScreen struct {
	Title string

	// OnOpen is called with the card the user activated.
	OnOpen func(card feed.Card)

	sections  []*CarouselView
	focus     int
	citations []feed.Citation
	loaded    bool

	width, height float64
	scroll        ScrollState
	pointer       PointerTracker
	errDisplay    ErrorDisplay
	logger        *slog.Logger
}

// NewFeedScreen creates an empty screen. opts.Width is ignored; carousels are
// sized from the window.
func NewFeedScreen(ctx context.Context, win carousel.Window, opts CarouselViewOptions) *FeedScreen {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	opts.Width = max(0, win.Width()-SectionPadding*2)

	fs := &FeedScreen{
		Title:  "Chat Deck",
		width:  win.Width(),
		logger: opts.Logger,
	}
	fs.sections = []*CarouselView{
		NewCarouselView(ctx, "News", nil, win, opts),
		NewCarouselView(ctx, "Events", nil, win, opts),
	}
	for _, s := range fs.sections {
		s.OnOpen = fs.open
	}
	fs.setFocus(0)
	return fs
}

// Sections returns the carousels in display order.
func (fs *FeedScreen) Sections() []*CarouselView { return fs.sections }

// SetOutput replaces the shown response.
func (fs *FeedScreen) SetOutput(out *feed.SecondaryOutput) {
	fs.sections[0].SetCards(out.NewsCards())
	fs.sections[1].SetCards(out.EventCards())
	fs.citations = nil
	if out != nil {
		fs.citations = out.Citations
	}
	fs.loaded = true
	fs.errDisplay.Text = ""
	if fs.sections[fs.focus].Carousel.TotalItems() == 0 {
		fs.focusNext()
	}
}

// SetError shows err in the banner. The current content stays.
func (fs *FeedScreen) SetError(err error) {
	if err == nil {
		fs.errDisplay.Text = ""
		return
	}
	fs.errDisplay.Text = err.Error()
}

// SetSize is called from Layout with the logical screen size.
func (fs *FeedScreen) SetSize(w, h float64) {
	fs.width, fs.height = w, h
	fs.layout()
}

// Close releases every carousel's listeners.
func (fs *FeedScreen) Close() {
	for _, s := range fs.sections {
		s.Close()
	}
}

func (fs *FeedScreen) open(card feed.Card) {
	fs.logger.Info("card opened", "kind", card.Kind, "title", card.Title, "link", card.Link)
	if fs.OnOpen != nil {
		fs.OnOpen(card)
	}
}

func (fs *FeedScreen) setFocus(i int) {
	fs.focus = i
	for j, s := range fs.sections {
		s.Active = j == i
	}
}

// focusNext moves focus to the next carousel that has cards.
func (fs *FeedScreen) focusNext() {
	for step := 1; step <= len(fs.sections); step++ {
		i := (fs.focus + step) % len(fs.sections)
		if fs.sections[i].Carousel.TotalItems() > 0 {
			fs.setFocus(i)
			return
		}
	}
}

// contentTop is where the first section label starts, unscrolled.
func (fs *FeedScreen) contentTop() float64 {
	return HeaderHeight + fs.errDisplay.Height()
}

// layout positions the sections and returns the content height.
func (fs *FeedScreen) layout() float64 {
	w := max(0, fs.width-SectionPadding*2)
	y := fs.contentTop()
	for _, s := range fs.sections {
		s.SetBounds(SectionPadding, y+SectionTitleH-fs.scroll.ScrollY, w)
		if h := s.Height(); h > 0 {
			y += h + SectionGap
		}
	}
	y += fs.citationsHeight()
	fs.scroll.SetContentHeight(y, fs.height)
	return y
}

func (fs *FeedScreen) Update(keys Keys) {
	p := fs.pointer.Read()
	wx, wy := MouseWheelDelta()

	if p.JustPressed && fs.errDisplay.HandleClick(p.X, p.Y) {
		p.JustPressed = false
	}

	fs.layout()
	for i, s := range fs.sections {
		if s.Update(p, wx) && p.JustPressed {
			fs.setFocus(i)
		}
	}
	if wy != 0 {
		fs.scroll.HandleMouseWheel(wy)
	}

	cur := fs.sections[fs.focus]
	c := cur.Carousel
	switch {
	case keys.NextSection:
		fs.focusNext()
		cur = fs.sections[fs.focus]
		fs.scroll.EnsureVisible(cur.bounds.Y-SectionTitleH+fs.scroll.ScrollY, cur.bounds.Y+cur.layout.Height+fs.scroll.ScrollY, fs.height)
	case keys.Prev:
		c.GoToPrev()
	case keys.Next:
		c.GoToNext()
	case keys.First:
		c.GoToPage(0)
	case keys.Last:
		c.GoToPage(c.TotalItems() - 1)
	case keys.Open:
		cur.OpenCurrent()
	}

	fs.scroll.Animate()
}

func (fs *FeedScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)

	// Header
	vector.DrawFilledRect(dst, 0, 0, float32(fs.width), HeaderHeight, ColorSurface, false)
	vector.StrokeLine(dst, 0, HeaderHeight, float32(fs.width), HeaderHeight, 1, ColorBorder, false)
	DrawText(dst, fs.Title, SectionPadding, (HeaderHeight-FontSizeTitle)/2-2, FontSizeTitle, ColorPrimary)
	if fs.loaded {
		summary := fmt.Sprintf("%d news · %d events",
			fs.sections[0].Carousel.TotalItems(), fs.sections[1].Carousel.TotalItems())
		sw, _ := MeasureText(summary, FontSizeSmall)
		DrawText(dst, summary, fs.width-SectionPadding-sw, (HeaderHeight-FontSizeSmall)/2-2, FontSizeSmall, ColorTextSecondary)
	}

	body := Clip(dst, 0, HeaderHeight+1, fs.width, fs.height-HeaderHeight-1)

	empty := true
	bottom := fs.contentTop() - fs.scroll.ScrollY
	for _, s := range fs.sections {
		if s.Carousel.TotalItems() == 0 {
			continue
		}
		empty = false
		s.Draw(body)
		bottom = s.bounds.Y + s.layout.Height + SectionGap
	}

	switch {
	case !fs.loaded:
		DrawTextCentered(body, "Waiting for a response…", fs.width/2, fs.height/2, FontSizeHeading, ColorTextMuted)
	case empty:
		DrawTextCentered(body, "No news or events in this response", fs.width/2, fs.height/2, FontSizeHeading, ColorTextMuted)
	}

	fs.drawCitations(body, bottom)

	// Banner stays on top of scrolled content
	fs.errDisplay.Draw(body, SectionPadding, HeaderHeight+8, fs.width-SectionPadding*2)
}

const citationLineH = 22.0

func (fs *FeedScreen) citationsHeight() float64 {
	if len(fs.citations) == 0 {
		return 0
	}
	return SectionTitleH + float64(len(fs.citations))*citationLineH + SectionPadding
}

func (fs *FeedScreen) drawCitations(dst *ebiten.Image, y float64) {
	if len(fs.citations) == 0 {
		return
	}
	x := float64(SectionPadding + CardInset)
	DrawText(dst, "Sources", x, y, FontSizeHeading, ColorTextSecondary)
	y += SectionTitleH
	maxW := fs.width - x - SectionPadding
	for i, c := range fs.citations {
		label := c.Title
		if label == "" {
			label = c.URL
		}
		line := TruncateText(fmt.Sprintf("[%d] %s", i+1, label), maxW, FontSizeSmall)
		DrawText(dst, line, x, y, FontSizeSmall, ColorPrimary)
		y += citationLineH
	}
}
