// Package carousel implements a horizontally scrolling, paged item viewport
// with pointer drag, snap-to-page navigation and an interpolated page
// indicator. It has no rendering dependency; a host feeds it a Viewport, a
// Window and pointer events and draws from View.
package carousel

import (
	"io"
	"log/slog"
	"time"
)

// Options configures a Carousel.
type Options struct {
	// Breakpoint is the window width at which two items share a page.
	// Zero means DefaultBreakpoint.
	Breakpoint float64
	Logger     *slog.Logger
	// Now is the clock used to stamp drags. Defaults to time.Now.
	Now func() time.Time
}

// Carousel owns the view state of one carousel instance. All methods must be
// called from the same goroutine.
type Carousel struct {
	totalItems   int
	itemsPerPage int
	breakpoint   float64

	pos     Position
	drag    dragState
	pending pendingNav
	page    int

	viewport Viewport
	window   Window
	cancels  []func()

	logger *slog.Logger
	now    func() time.Time

	// OnPageChange, if set, is called when the page holding NearestIndex
	// changes.
	OnPageChange func(page int)
}

// pendingNav is a smooth scroll the carousel requested and has not yet
// observed settling.
type pendingNav struct {
	active bool
	index  int
}

// New creates an unmounted carousel over totalItems items.
func New(totalItems int, opts Options) *Carousel {
	c := &Carousel{
		totalItems:   max(0, totalItems),
		itemsPerPage: 1,
		breakpoint:   opts.Breakpoint,
		logger:       opts.Logger,
		now:          opts.Now,
	}
	if c.breakpoint <= 0 {
		c.breakpoint = DefaultBreakpoint
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Mount attaches the carousel to a viewport and window and subscribes to
// their scroll and resize notifications. Mounting an already mounted
// carousel unmounts it first.
func (c *Carousel) Mount(vp Viewport, win Window) {
	c.Unmount()
	if vp == nil || win == nil {
		return
	}
	c.viewport = vp
	c.window = win
	c.cancels = append(c.cancels,
		vp.OnScroll(c.handleScroll),
		win.OnResize(c.handleResize),
	)
	c.itemsPerPage = ItemsPerPageAt(win.Width(), c.breakpoint)
	c.syncExtent()
	c.handleScroll(vp.ScrollOffset())
	c.page = c.currentPage()
	c.logger.Debug("carousel mounted", "items", c.totalItems, "itemsPerPage", c.itemsPerPage)
}

// Unmount releases every listener acquired by Mount. Handlers invoked after
// Unmount are no-ops.
func (c *Carousel) Unmount() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
	c.viewport = nil
	c.window = nil
	c.drag = dragState{}
	c.pending = pendingNav{}
}

// Mounted reports whether the carousel is attached to a viewport.
func (c *Carousel) Mounted() bool {
	return c.viewport != nil
}

// SetItemCount replaces the item count, keeping the current index where it
// is still valid.
func (c *Carousel) SetItemCount(n int) {
	c.totalItems = max(0, n)
	c.pending = pendingNav{}
	if c.viewport == nil {
		c.pos.NearestIndex = ClampIndex(c.pos.NearestIndex, c.totalItems, c.itemsPerPage)
		return
	}
	c.syncExtent()
	c.handleScroll(c.viewport.ScrollOffset())
}

// handleResize re-evaluates the breakpoint and re-anchors the viewport on
// the current item so the same content stays at the left edge.
func (c *Carousel) handleResize(width float64) {
	vp := c.viewport
	if vp == nil {
		return
	}
	anchor := c.pos.NearestIndex
	if c.pending.active {
		anchor = c.pending.index
	}
	c.pending = pendingNav{}

	prev := c.itemsPerPage
	c.itemsPerPage = ItemsPerPageAt(width, c.breakpoint)
	if prev != c.itemsPerPage {
		c.logger.Debug("carousel breakpoint crossed", "width", width, "itemsPerPage", c.itemsPerPage)
	}
	c.syncExtent()

	anchor = ClampIndex(anchor, c.totalItems, c.itemsPerPage)
	vp.SetScrollOffset(float64(anchor) * ItemWidth(vp.Width(), c.itemsPerPage))
	c.handleScroll(vp.ScrollOffset())
}

func (c *Carousel) syncExtent() {
	if c.viewport == nil {
		return
	}
	c.viewport.SetContentWidth(ContentWidth(c.viewport.Width(), c.totalItems, c.itemsPerPage))
}

func (c *Carousel) currentPage() int {
	pages := TotalPages(c.totalItems, c.itemsPerPage)
	if pages == 0 {
		return 0
	}
	p := roundHalfUp(float64(c.pos.NearestIndex) / float64(c.itemsPerPage))
	return min(max(p, 0), pages-1)
}

func (c *Carousel) notifyPage() {
	p := c.currentPage()
	if p == c.page {
		return
	}
	c.page = p
	if c.OnPageChange != nil {
		c.OnPageChange(p)
	}
}

// TotalItems returns the number of items.
func (c *Carousel) TotalItems() int { return c.totalItems }

// ItemsPerPage returns the current page size.
func (c *Carousel) ItemsPerPage() int { return c.itemsPerPage }

// TotalPages returns the number of pages.
func (c *Carousel) TotalPages() int { return TotalPages(c.totalItems, c.itemsPerPage) }

// Position returns the last computed position.
func (c *Carousel) Position() Position { return c.pos }

// View is a render snapshot of the carousel.
type View struct {
	// Empty is set when there are no items; nothing should be drawn.
	Empty        bool
	TotalItems   int
	ItemsPerPage int
	TotalPages   int
	Position     Position
	Dragging     bool
	// ShowNav is set when there are more items than fit one page.
	ShowNav   bool
	CanGoPrev bool
	CanGoNext bool

	// Dots is nil when there is at most one page.
	Dots []Dot
}

// View returns what the host should draw this frame.
func (c *Carousel) View() View {
	if c.totalItems == 0 {
		return View{Empty: true, ItemsPerPage: c.itemsPerPage}
	}
	v := View{
		TotalItems:   c.totalItems,
		ItemsPerPage: c.itemsPerPage,
		TotalPages:   c.TotalPages(),
		Position:     c.pos,
		Dragging:     c.drag.active,
		ShowNav:      c.totalItems > c.itemsPerPage,
		CanGoPrev:    c.CanGoPrev(),
		CanGoNext:    c.CanGoNext(),
	}
	if v.TotalPages > 1 {
		v.Dots = RenderDots(v.TotalPages, c.pos.ExactPage, c.drag.active)
	}
	return v
}
