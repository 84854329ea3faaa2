package carousel

import "math"

// Position is the state derived from the raw scroll offset.
type Position struct {
	// NearestIndex is the whole item closest to the left edge, clamped so a
	// full page is always visible.
	NearestIndex int
	// ExactIndex is the offset in item units.
	ExactIndex float64
	// ExactPage is the offset in page units. The integer part is the current
	// page and the fraction is the progress toward the next.
	ExactPage float64
	// Progress is ExactPage's fractional part in [0,1].
	Progress float64
}

// Page returns the page the position currently rests in.
func (p Position) Page() int {
	return int(math.Floor(p.ExactPage))
}

// ComputePosition derives a Position from a raw offset. A non-positive
// viewport width yields the zero Position.
func ComputePosition(offset, viewportWidth float64, itemsPerPage, totalItems int) Position {
	itemWidth := ItemWidth(viewportWidth, itemsPerPage)
	if itemWidth <= 0 || itemsPerPage < 1 {
		return Position{}
	}

	exactIndex := offset / itemWidth
	exactPage := exactIndex / float64(itemsPerPage)
	progress := exactPage - math.Floor(exactPage)

	return Position{
		NearestIndex: ClampIndex(roundHalfUp(exactIndex), totalItems, itemsPerPage),
		ExactIndex:   exactIndex,
		ExactPage:    exactPage,
		Progress:     clamp(progress, 0, 1),
	}
}

// handleScroll recomputes the position from the viewport. Runs on every
// scroll notification.
func (c *Carousel) handleScroll(float64) {
	vp := c.viewport
	if vp == nil {
		return
	}
	c.pos = ComputePosition(vp.ScrollOffset(), vp.Width(), c.itemsPerPage, c.totalItems)
	if c.pending.active {
		if vp.Animating() {
			c.pos.NearestIndex = c.pending.index
		} else {
			c.pending = pendingNav{}
		}
	}
	c.notifyPage()
}

// GoToPage brings item targetIndex to the left edge with a smooth scroll.
// Out-of-range indices saturate. NearestIndex is updated before the
// animation starts so navigation controls reflect the request at once; the
// exact page catches up from the scroll notifications that follow.
func (c *Carousel) GoToPage(targetIndex int) {
	vp := c.viewport
	if vp == nil {
		return
	}
	idx := ClampIndex(targetIndex, c.totalItems, c.itemsPerPage)
	target := float64(idx) * ItemWidth(vp.Width(), c.itemsPerPage)

	c.logger.Debug("carousel navigate", "index", idx, "requested", targetIndex, "offset", target)
	vp.SmoothScrollTo(target)
	c.pos.NearestIndex = idx
	c.pending = pendingNav{active: vp.Animating(), index: idx}
	c.notifyPage()
}

// GoToDot navigates to the first item of the given page.
func (c *Carousel) GoToDot(page int) {
	c.GoToPage(page * c.itemsPerPage)
}

// GoToNext advances by one page.
func (c *Carousel) GoToNext() {
	c.GoToPage(c.pos.NearestIndex + c.itemsPerPage)
}

// GoToPrev retreats by one page.
func (c *Carousel) GoToPrev() {
	c.GoToPage(c.pos.NearestIndex - c.itemsPerPage)
}

// CanGoPrev reports whether there is content before the current index.
func (c *Carousel) CanGoPrev() bool {
	return c.pos.NearestIndex > 0
}

// CanGoNext reports whether there is content after the current page.
func (c *Carousel) CanGoNext() bool {
	return c.pos.NearestIndex < c.totalItems-c.itemsPerPage
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
