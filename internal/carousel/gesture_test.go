package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTapLeavesOffsetUntouched(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	c.GoToPage(2)
	settle(t, vp)
	before := vp.ScrollOffset()

	// 4px of physical movement amplifies to 4.8px, under the threshold.
	for _, moves := range [][]float64{{}, {102}, {103, 104}, {96}, {101, 99, 104}} {
		c.PointerDown(100)
		assert.True(t, c.Dragging())
		for _, x := range moves {
			c.PointerMove(x)
			assert.Equal(t, before, vp.ScrollOffset())
		}
		rel := c.PointerUp()
		assert.True(t, rel.Tapped)
		assert.False(t, rel.Snapped)
		assert.False(t, c.Dragging())
		assert.Equal(t, before, vp.ScrollOffset())
		assert.False(t, vp.Animating(), "a tap must not trigger a snap")
	}
}

func TestDragScenarioWide(t *testing.T) {
	c, vp, _ := mount(t, 5, 800)
	require.Equal(t, 2, c.ItemsPerPage())
	require.Equal(t, 3, c.TotalPages())
	c.GoToPage(2)
	settle(t, vp)
	require.InDelta(t, 800.0, vp.ScrollOffset(), 1e-9)

	c.PointerDown(200)
	c.PointerMove(260)
	assert.InDelta(t, 800.0-72.0, vp.ScrollOffset(), 1e-9)
	assert.True(t, c.View().Dragging)

	rel := c.PointerUp()
	assert.False(t, rel.Tapped)
	assert.True(t, rel.Snapped)
	assert.Equal(t, 2, rel.Index)
	settle(t, vp)
	assert.InDelta(t, 800.0, vp.ScrollOffset(), 1e-9)
	assert.InDelta(t, 1.0, c.Position().ExactPage, 1e-9)
}

func TestDragSnapsToNearestItem(t *testing.T) {
	cases := []struct {
		name   string
		from   int
		dx     float64
		expect int
	}{
		{"small left drag returns", 0, -60, 0},
		{"left drag past half an item", 0, -200, 1},
		{"right drag at start clamps", 0, 300, 0},
		{"long left drag clamps to last index", 0, -2000, 3},
		{"short right drag from the end", 3, 100, 3},
		{"right drag back one item", 3, 250, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, vp, _ := mount(t, 5, 800)
			c.GoToPage(tc.from)
			settle(t, vp)

			c.PointerDown(500)
			c.PointerMove(500 + tc.dx/2)
			c.PointerMove(500 + tc.dx)
			rel := c.PointerUp()
			require.True(t, rel.Snapped)
			assert.Equal(t, tc.expect, rel.Index)
			assert.Equal(t, tc.expect, c.Position().NearestIndex)
			settle(t, vp)
			assert.InDelta(t, float64(tc.expect)*400, vp.ScrollOffset(), 1e-9)
		})
	}
}

func TestSnapIsIdempotent(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	c.PointerDown(300)
	c.PointerMove(100)
	offset := vp.ScrollOffset()

	first := c.Snap()
	vp.SetScrollOffset(offset)
	second := c.Snap()
	assert.Equal(t, first, second)
	assert.Equal(t, first, c.Position().NearestIndex)

	settle(t, vp)
	third := c.Snap()
	assert.Equal(t, first, third)
}

func TestPointerLeave(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)

	// Idle leave is ignored.
	assert.Equal(t, Release{}, c.PointerLeave())
	assert.False(t, vp.Animating())

	c.PointerDown(300)
	c.PointerMove(50)
	rel := c.PointerLeave()
	assert.True(t, rel.Snapped)
	assert.False(t, c.Dragging())
	assert.Equal(t, 1, rel.Index)

	// Moves after the drag ended do nothing.
	before := vp.ScrollOffset()
	c.PointerMove(0)
	assert.Equal(t, before, vp.ScrollOffset())
}

func TestMoveWhileIdleIgnored(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	c.PointerMove(400)
	assert.Equal(t, 0.0, vp.ScrollOffset())
	assert.Equal(t, Release{}, c.PointerUp())
}

func TestDragInterruptsSmoothScroll(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	c.GoToPage(5)
	vp.Tick()
	vp.Tick()
	mid := vp.ScrollOffset()

	c.PointerDown(200)
	c.PointerMove(100)
	assert.False(t, vp.Animating())
	assert.InDelta(t, mid+120, vp.ScrollOffset(), 1e-9)
	// With the pending navigation dropped the index follows the finger.
	assert.Equal(t, ComputePosition(mid+120, 375, 1, 7).NearestIndex, c.Position().NearestIndex)
}

func TestReleaseDuration(t *testing.T) {
	now := time.Unix(1000, 0)
	c := New(3, Options{Now: func() time.Time { return now }})
	c.Mount(NewSpringViewport(375, DefaultFPS, 0, 0), NewWindowSize(375))

	c.PointerDown(10)
	now = now.Add(250 * time.Millisecond)
	rel := c.PointerUp()
	assert.Equal(t, 250*time.Millisecond, rel.Duration)
}
