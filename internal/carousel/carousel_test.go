package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mount builds a carousel whose viewport spans the whole window.
func mount(t *testing.T, items int, width float64) (*Carousel, *SpringViewport, *WindowSize) {
	t.Helper()
	vp := NewSpringViewport(width, DefaultFPS, 0, 0)
	win := NewWindowSize(width)
	c := New(items, Options{})
	c.Mount(vp, win)
	require.True(t, c.Mounted())
	return c, vp, win
}

// settle ticks the viewport until its smooth scroll finishes.
func settle(t *testing.T, vp *SpringViewport) {
	t.Helper()
	for i := 0; i < 600 && vp.Animating(); i++ {
		vp.Tick()
	}
	require.False(t, vp.Animating(), "viewport did not settle")
}

func TestScenarioSevenItemsNarrow(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)

	assert.Equal(t, 1, c.ItemsPerPage())
	assert.Equal(t, 7, c.TotalPages())

	c.GoToPage(3)
	assert.Equal(t, 3, c.Position().NearestIndex)
	settle(t, vp)
	assert.InDelta(t, 3*375.0, vp.ScrollOffset(), 1e-9)
	assert.InDelta(t, 3.0, c.Position().ExactPage, 1e-9)

	c.GoToNext()
	assert.Equal(t, 4, c.Position().NearestIndex)
	settle(t, vp)

	c.GoToPage(6)
	settle(t, vp)
	assert.False(t, c.CanGoNext())
	assert.True(t, c.CanGoPrev())

	c.GoToNext()
	assert.Equal(t, 6, c.Position().NearestIndex)
	assert.False(t, vp.Animating())
}

func TestGoToPageClamps(t *testing.T) {
	cases := []struct {
		name  string
		items int
		width float64
	}{
		{"narrow", 7, 375},
		{"wide", 5, 800},
		{"fewer than a page", 1, 800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, vp, _ := mount(t, tc.items, tc.width)
			hi := MaxIndex(tc.items, c.ItemsPerPage())
			for p := -20; p <= 20; p++ {
				c.GoToPage(p)
				got := c.Position().NearestIndex
				assert.GreaterOrEqual(t, got, 0, "page %d", p)
				assert.LessOrEqual(t, got, hi, "page %d", p)
				settle(t, vp)
				assert.LessOrEqual(t, c.Position().NearestIndex, hi, "page %d settled", p)
			}
		})
	}
}

func TestNavigationIsOptimistic(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)

	c.GoToPage(5)
	require.True(t, vp.Animating())
	vp.Tick()

	pos := c.Position()
	assert.Equal(t, 5, pos.NearestIndex, "controls must reflect the requested index mid-flight")
	assert.Greater(t, pos.ExactPage, 0.0)
	assert.Less(t, pos.ExactPage, 5.0)
	assert.True(t, c.CanGoNext())

	// A second request builds on the pending one.
	c.GoToNext()
	assert.Equal(t, 6, c.Position().NearestIndex)
	settle(t, vp)
	assert.InDelta(t, 6.0, c.Position().ExactPage, 1e-9)
	assert.Equal(t, 6, c.Position().NearestIndex)
}

func TestEmptyCarousel(t *testing.T) {
	c, vp, win := mount(t, 0, 800)

	v := c.View()
	assert.True(t, v.Empty)
	assert.False(t, v.ShowNav)
	assert.Nil(t, v.Dots)
	assert.Equal(t, 0, c.TotalPages())

	c.GoToNext()
	c.PointerDown(10)
	c.PointerMove(300)
	c.PointerUp()
	win.SetWidth(300)
	assert.Equal(t, 0.0, vp.ScrollOffset())

	l := ComputeLayout(Rect{W: 800}, 200, v, 0, DefaultMetrics)
	assert.Empty(t, l.Items)
	assert.Empty(t, l.Dots)
	assert.True(t, l.Prev.Empty())
	assert.True(t, l.Next.Empty())
}

func TestSinglePageHasNoControls(t *testing.T) {
	c, _, _ := mount(t, 2, 800)

	v := c.View()
	assert.False(t, v.Empty)
	assert.False(t, v.ShowNav)
	assert.Nil(t, v.Dots)
	assert.Equal(t, 1, v.TotalPages)
}

func TestUnmountReleasesListeners(t *testing.T) {
	vp := NewSpringViewport(800, DefaultFPS, 0, 0)
	win := NewWindowSize(800)
	c := New(5, Options{})

	for i := 0; i < 3; i++ {
		c.Mount(vp, win)
		assert.Equal(t, 1, vp.Listeners())
		assert.Equal(t, 1, win.Listeners())
	}
	c.Unmount()
	assert.Equal(t, 0, vp.Listeners())
	assert.Equal(t, 0, win.Listeners())
	assert.False(t, c.Mounted())

	// Handlers are silent no-ops once unmounted.
	assert.NotPanics(t, func() {
		c.GoToPage(2)
		c.GoToNext()
		c.GoToPrev()
		c.PointerDown(0)
		c.PointerMove(100)
		assert.Equal(t, Release{}, c.PointerUp())
		assert.Equal(t, Release{}, c.PointerLeave())
		c.handleScroll(0)
		c.handleResize(300)
	})
	assert.Equal(t, 0.0, vp.ScrollOffset())
	assert.False(t, vp.Animating())
}

func TestMountIgnoresNilHandles(t *testing.T) {
	c := New(3, Options{})
	c.Mount(nil, NewWindowSize(800))
	assert.False(t, c.Mounted())
	assert.NotPanics(t, func() { c.GoToNext() })
}

func TestResizeCrossesBreakpoint(t *testing.T) {
	c, vp, win := mount(t, 7, 375)
	c.GoToPage(3)
	settle(t, vp)

	vp.SetWidth(800)
	win.SetWidth(800)

	assert.Equal(t, 2, c.ItemsPerPage())
	assert.Equal(t, 4, c.TotalPages())
	assert.Equal(t, 3, c.Position().NearestIndex)
	assert.InDelta(t, 3*400.0, vp.ScrollOffset(), 1e-9)
	assert.InDelta(t, 1.5, c.Position().ExactPage, 1e-9)

	// Rapid resizes must not break anything.
	for i := 0; i < 50; i++ {
		w := 300.0 + float64(i*37%700)
		vp.SetWidth(w)
		win.SetWidth(w)
	}
	assert.GreaterOrEqual(t, c.ItemsPerPage(), 1)
	assert.LessOrEqual(t, c.Position().NearestIndex, MaxIndex(7, c.ItemsPerPage()))
}

func TestResizeDuringAnimationKeepsTarget(t *testing.T) {
	c, vp, win := mount(t, 7, 375)
	c.GoToPage(4)
	vp.Tick()

	vp.SetWidth(800)
	win.SetWidth(800)

	assert.False(t, vp.Animating())
	assert.Equal(t, 4, c.Position().NearestIndex)
	assert.InDelta(t, 4*400.0, vp.ScrollOffset(), 1e-9)
}

func TestSetItemCount(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	c.GoToPage(6)
	settle(t, vp)

	c.SetItemCount(3)
	assert.Equal(t, 2, c.Position().NearestIndex)
	assert.InDelta(t, 2*375.0, vp.ScrollOffset(), 1e-9)
	assert.False(t, c.CanGoNext())

	c.SetItemCount(0)
	assert.True(t, c.View().Empty)
	assert.Equal(t, 0.0, vp.ScrollOffset())
}

func TestOnPageChange(t *testing.T) {
	c, vp, _ := mount(t, 5, 800)
	var pages []int
	c.OnPageChange = func(p int) { pages = append(pages, p) }

	c.GoToNext()
	settle(t, vp)
	c.GoToNext()
	settle(t, vp)
	c.GoToPrev()
	settle(t, vp)
	c.GoToPrev()
	settle(t, vp)

	assert.Equal(t, []int{1, 2, 1, 0}, pages)
}

func TestViewNavEnablement(t *testing.T) {
	c, vp, _ := mount(t, 5, 800)

	v := c.View()
	assert.True(t, v.ShowNav)
	assert.False(t, v.CanGoPrev)
	assert.True(t, v.CanGoNext)
	require.Len(t, v.Dots, 3)
	assert.Equal(t, DotActive, v.Dots[0].Color)

	c.GoToPage(99)
	settle(t, vp)
	v = c.View()
	assert.Equal(t, 3, v.Position.NearestIndex)
	assert.True(t, v.CanGoPrev)
	assert.False(t, v.CanGoNext)
	// Fully scrolled, the last dot is the active one.
	assert.Equal(t, DotActive, v.Dots[2].Color)
	assert.Equal(t, DotInactive, v.Dots[1].Color)
}
