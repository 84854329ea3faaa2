package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout(t *testing.T) {
	c, vp, _ := mount(t, 5, 800)
	c.GoToPage(1)
	settle(t, vp)

	bounds := Rect{X: 40, Y: 100, W: 800}
	l := ComputeLayout(bounds, 300, c.View(), vp.ScrollOffset(), DefaultMetrics)

	require.Len(t, l.Items, 5)
	assert.Equal(t, Rect{X: 40 - 400, Y: 100, W: 400, H: 300}, l.Items[0])
	assert.Equal(t, Rect{X: 40, Y: 100, W: 400, H: 300}, l.Items[1])
	assert.False(t, l.Visible(0))
	assert.True(t, l.Visible(1))
	assert.True(t, l.Visible(2))
	assert.False(t, l.Visible(3))
	assert.False(t, l.Visible(9))

	assert.False(t, l.Prev.Empty())
	assert.False(t, l.Next.Empty())
	assert.Equal(t, 48.0, l.Next.W)
	assert.InDelta(t, 100+300*0.45-24, l.Prev.Y, 1e-9)
	assert.Equal(t, 40+800-8-48.0, l.Next.X)

	require.Len(t, l.Dots, 3)
	// Dots are centered under the row.
	left := l.Dots[0].X - bounds.X
	last := l.Dots[2]
	right := bounds.X + bounds.W - (last.X + last.W)
	assert.InDelta(t, left, right, 1e-9)
	assert.InDelta(t, 300+16+8+8, l.Height, 1e-9)
}

func TestComputeLayoutHidesDisabledButtons(t *testing.T) {
	c, vp, _ := mount(t, 5, 800)
	l := ComputeLayout(Rect{W: 800}, 200, c.View(), vp.ScrollOffset(), DefaultMetrics)
	assert.True(t, l.Prev.Empty())
	assert.False(t, l.Next.Empty())
}

func TestHitTestAndDispatch(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	c.GoToPage(2)
	settle(t, vp)
	l := ComputeLayout(Rect{W: 375}, 200, c.View(), vp.ScrollOffset(), DefaultMetrics)

	center := func(r Rect) (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

	x, y := center(l.Prev)
	assert.Equal(t, Hit{Target: TargetPrev}, l.HitTest(x, y))
	x, y = center(l.Next)
	assert.Equal(t, Hit{Target: TargetNext}, l.HitTest(x, y))
	x, y = center(l.Dots[5])
	assert.Equal(t, Hit{Target: TargetDot, Index: 5}, l.HitTest(x, y))
	assert.Equal(t, Hit{Target: TargetItem, Index: 2}, l.HitTest(187, 20))
	assert.Equal(t, Hit{Target: TargetNone}, l.HitTest(-10, -10))

	assert.True(t, c.Dispatch(l.HitTest(center(l.Next))))
	assert.Equal(t, 3, c.Position().NearestIndex)
	assert.True(t, c.Dispatch(Hit{Target: TargetDot, Index: 5}))
	assert.Equal(t, 5, c.Position().NearestIndex)
	assert.True(t, c.Dispatch(Hit{Target: TargetPrev}))
	assert.Equal(t, 4, c.Position().NearestIndex)
	assert.False(t, c.Dispatch(Hit{Target: TargetItem, Index: 4}))
	assert.False(t, c.Dispatch(Hit{}))
}

func TestTapOnControlAfterPress(t *testing.T) {
	c, vp, _ := mount(t, 7, 375)
	l := ComputeLayout(Rect{W: 375}, 200, c.View(), vp.ScrollOffset(), DefaultMetrics)
	x, y := l.Dots[3].X+2, l.Dots[3].Y+2

	c.PointerDown(x)
	c.PointerMove(x + 2)
	rel := c.PointerUp()
	require.True(t, rel.Tapped)
	assert.True(t, c.Dispatch(l.HitTest(x+2, y)))
	assert.Equal(t, 3, c.Position().NearestIndex)
}
