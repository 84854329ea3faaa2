package carousel

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Metrics are the fixed control sizes around the item row.
type Metrics struct {
	ButtonSize   float64
	ButtonInset  float64
	ButtonTop    float64 // fraction of the item row height
	DotGap       float64
	DotPad       float64
	IndicatorGap float64 // space between items and dots
}

// DefaultMetrics mirrors the chat widget's control sizes.
var DefaultMetrics = Metrics{
	ButtonSize:   48,
	ButtonInset:  8,
	ButtonTop:    0.45,
	DotGap:       8,
	DotPad:       4,
	IndicatorGap: 16,
}

// Layout is the placement of everything a carousel draws.
type Layout struct {
	Bounds Rect
	// Items holds one slot per item, translated by the scroll offset.
	Items []Rect
	Prev  Rect
	Next  Rect
	// Dots are the dot hit targets; the visible pill is centered inside.
	Dots []Rect
	// Height is the total height used, indicator included.
	Height float64
}

// ComputeLayout places the item slots, nav buttons and dots for a row of
// the given height starting at bounds. bounds.W is the viewport width.
func ComputeLayout(bounds Rect, rowHeight float64, v View, offset float64, m Metrics) Layout {
	l := Layout{Bounds: Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: rowHeight}}
	if v.Empty {
		return l
	}
	l.Height = rowHeight

	itemWidth := ItemWidth(bounds.W, v.ItemsPerPage)
	l.Items = make([]Rect, 0, v.TotalItems)
	for i := 0; i < v.TotalItems; i++ {
		l.Items = append(l.Items, Rect{
			X: bounds.X + float64(i)*itemWidth - offset,
			Y: bounds.Y,
			W: itemWidth,
			H: rowHeight,
		})
	}

	if v.ShowNav {
		by := bounds.Y + rowHeight*m.ButtonTop - m.ButtonSize/2
		if v.CanGoPrev {
			l.Prev = Rect{X: bounds.X + m.ButtonInset, Y: by, W: m.ButtonSize, H: m.ButtonSize}
		}
		if v.CanGoNext {
			l.Next = Rect{X: bounds.X + bounds.W - m.ButtonInset - m.ButtonSize, Y: by, W: m.ButtonSize, H: m.ButtonSize}
		}
	}

	if len(v.Dots) > 0 {
		rowW := m.DotGap * float64(len(v.Dots)-1)
		for _, d := range v.Dots {
			rowW += d.Width + m.DotPad*2
		}
		x := bounds.X + (bounds.W-rowW)/2
		y := bounds.Y + rowHeight + m.IndicatorGap
		h := DotHeight + m.DotPad*2
		l.Dots = make([]Rect, len(v.Dots))
		for i, d := range v.Dots {
			w := d.Width + m.DotPad*2
			l.Dots[i] = Rect{X: x, Y: y, W: w, H: h}
			x += w + m.DotGap
		}
		l.Height += m.IndicatorGap + h
	}
	return l
}

// Visible reports whether item slot i overlaps the viewport.
func (l Layout) Visible(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	r := l.Items[i]
	return r.X+r.W > l.Bounds.X && r.X < l.Bounds.X+l.Bounds.W
}

// Target identifies what a tap landed on.
type Target int

const (
	TargetNone Target = iota
	TargetPrev
	TargetNext
	TargetDot
	TargetItem
)

// Hit is the result of HitTest. Index is the dot page or item index.
type Hit struct {
	Target Target
	Index  int
}

// HitTest resolves a point to a control. Buttons sit above dots, which sit
// above items.
func (l Layout) HitTest(x, y float64) Hit {
	switch {
	case !l.Prev.Empty() && l.Prev.Contains(x, y):
		return Hit{Target: TargetPrev}
	case !l.Next.Empty() && l.Next.Contains(x, y):
		return Hit{Target: TargetNext}
	}
	for i, r := range l.Dots {
		if r.Contains(x, y) {
			return Hit{Target: TargetDot, Index: i}
		}
	}
	if l.Bounds.Contains(x, y) {
		for i, r := range l.Items {
			if r.Contains(x, y) && l.Visible(i) {
				return Hit{Target: TargetItem, Index: i}
			}
		}
	}
	return Hit{Target: TargetNone}
}

// Dispatch applies a tap result to the carousel. It reports whether the
// tap was consumed by a navigation control.
func (c *Carousel) Dispatch(h Hit) bool {
	switch h.Target {
	case TargetPrev:
		c.GoToPrev()
	case TargetNext:
		c.GoToNext()
	case TargetDot:
		c.GoToDot(h.Index)
	default:
		return false
	}
	return true
}
