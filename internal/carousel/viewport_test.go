package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewport() *SpringViewport {
	vp := NewSpringViewport(400, DefaultFPS, 0, 0)
	vp.SetContentWidth(2000)
	return vp
}

func TestSpringViewportSettlesOnTarget(t *testing.T) {
	vp := newTestViewport()
	var seen []float64
	vp.OnScroll(func(off float64) { seen = append(seen, off) })

	vp.SmoothScrollTo(1200)
	require.True(t, vp.Animating())
	assert.Equal(t, 1200.0, vp.Target())
	assert.Equal(t, 0.0, vp.ScrollOffset(), "the request itself does not move the viewport")

	settle(t, vp)
	assert.Equal(t, 1200.0, vp.ScrollOffset())
	require.NotEmpty(t, seen)
	assert.Equal(t, 1200.0, seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1], "critically damped spring must not overshoot")
	}
	assert.LessOrEqual(t, len(seen), 120, "should settle within two seconds of frames")

	n := len(seen)
	vp.Tick()
	assert.Len(t, seen, n, "an idle viewport emits nothing")
}

func TestSpringViewportClamps(t *testing.T) {
	vp := newTestViewport()
	assert.Equal(t, 1600.0, vp.MaxOffset())

	vp.SetScrollOffset(-50)
	assert.Equal(t, 0.0, vp.ScrollOffset())
	vp.SetScrollOffset(9000)
	assert.Equal(t, 1600.0, vp.ScrollOffset())

	vp.SmoothScrollTo(-10)
	assert.Equal(t, 0.0, vp.Target())
	settle(t, vp)
	assert.Equal(t, 0.0, vp.ScrollOffset())

	vp.SetScrollOffset(1600)
	vp.SetContentWidth(1000)
	assert.Equal(t, 600.0, vp.ScrollOffset())
	vp.SetWidth(1200)
	assert.Equal(t, 0.0, vp.ScrollOffset())
}

func TestSpringViewportDirectWriteCancels(t *testing.T) {
	vp := newTestViewport()
	vp.SmoothScrollTo(1500)
	vp.Tick()
	vp.SetScrollOffset(300)
	assert.False(t, vp.Animating())
	assert.Equal(t, 300.0, vp.ScrollOffset())
	vp.Tick()
	assert.Equal(t, 300.0, vp.ScrollOffset())
}

func TestSpringViewportSupersede(t *testing.T) {
	vp := newTestViewport()
	vp.SmoothScrollTo(1500)
	for i := 0; i < 5; i++ {
		vp.Tick()
	}
	vp.SmoothScrollTo(200)
	assert.Equal(t, 200.0, vp.Target())
	settle(t, vp)
	assert.Equal(t, 200.0, vp.ScrollOffset())
}

func TestSpringViewportToCurrentOffsetIsIdle(t *testing.T) {
	vp := newTestViewport()
	vp.SetScrollOffset(400)
	vp.SmoothScrollTo(400)
	assert.False(t, vp.Animating())
}
