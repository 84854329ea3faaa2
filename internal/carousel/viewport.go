package carousel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Viewport is the horizontally scrollable surface a Carousel drives.
type Viewport interface {
	// ScrollOffset is the current raw offset in pixels, always >= 0.
	ScrollOffset() float64
	// SetScrollOffset moves the viewport immediately. Any smooth scroll in
	// flight is abandoned.
	SetScrollOffset(px float64)
	// SmoothScrollTo starts an animated scroll toward px and returns at once.
	// A later request supersedes an earlier one.
	SmoothScrollTo(px float64)
	// Animating reports whether a smooth scroll is in flight.
	Animating() bool
	// Width is the visible width in pixels.
	Width() float64
	// SetContentWidth sets the total scrollable extent.
	SetContentWidth(px float64)
	// OnScroll subscribes fn to offset changes.
	OnScroll(fn func(offset float64)) (cancel func())
}

// Spring tuning for SpringViewport. Frequency 10 with critical damping
// settles an 800px jump in well under a second without overshoot.
const (
	DefaultSpringFrequency = 10.0
	DefaultSpringDamping   = 1.0
	DefaultFPS             = 60

	settleDistance = 0.5
	settleVelocity = 1.0
)

// SpringViewport is a Viewport whose smooth scroll is driven by a harmonica
// spring. Call Tick once per frame.
type SpringViewport struct {
	width        float64
	contentWidth float64
	offset       float64
	target       float64
	velocity     float64
	animating    bool

	spring harmonica.Spring
	scroll Signal[float64]
}

// NewSpringViewport creates a viewport of the given width. Non-positive
// frequency or damping fall back to the defaults.
func NewSpringViewport(width float64, fps int, frequency, damping float64) *SpringViewport {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if frequency <= 0 {
		frequency = DefaultSpringFrequency
	}
	if damping <= 0 {
		damping = DefaultSpringDamping
	}
	return &SpringViewport{
		width:  math.Max(0, width),
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

func (v *SpringViewport) ScrollOffset() float64 { return v.offset }

func (v *SpringViewport) Width() float64 { return v.width }

func (v *SpringViewport) Animating() bool { return v.animating }

// Target is where the current (or last) smooth scroll is heading.
func (v *SpringViewport) Target() float64 { return v.target }

// MaxOffset is the largest reachable offset.
func (v *SpringViewport) MaxOffset() float64 {
	return math.Max(0, v.contentWidth-v.width)
}

// SetWidth changes the visible width. The offset is re-clamped silently.
func (v *SpringViewport) SetWidth(px float64) {
	v.width = math.Max(0, px)
	v.reclamp()
}

func (v *SpringViewport) SetContentWidth(px float64) {
	v.contentWidth = math.Max(0, px)
	v.reclamp()
}

func (v *SpringViewport) SetScrollOffset(px float64) {
	v.animating = false
	v.velocity = 0
	v.target = v.clampOffset(px)
	v.moveTo(v.target)
}

func (v *SpringViewport) SmoothScrollTo(px float64) {
	v.target = v.clampOffset(px)
	v.animating = v.target != v.offset
}

func (v *SpringViewport) OnScroll(fn func(offset float64)) (cancel func()) {
	return v.scroll.Subscribe(fn)
}

// Listeners returns the number of scroll subscribers.
func (v *SpringViewport) Listeners() int {
	return v.scroll.Len()
}

// Tick advances an in-flight smooth scroll by one frame.
func (v *SpringViewport) Tick() {
	if !v.animating {
		return
	}
	pos, vel := v.spring.Update(v.offset, v.velocity, v.target)
	v.velocity = vel
	if math.Abs(pos-v.target) < settleDistance && math.Abs(vel) < settleVelocity {
		v.animating = false
		v.velocity = 0
		pos = v.target
	}
	v.moveTo(v.clampOffset(pos))
}

func (v *SpringViewport) moveTo(px float64) {
	if px == v.offset && v.animating {
		return
	}
	v.offset = px
	v.scroll.Emit(px)
}

func (v *SpringViewport) reclamp() {
	v.target = v.clampOffset(v.target)
	v.offset = v.clampOffset(v.offset)
}

func (v *SpringViewport) clampOffset(px float64) float64 {
	return clamp(px, 0, v.MaxOffset())
}
