package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScrollY    float64
}

// HandleMouseWheel moves the target scroll position by the vertical wheel delta.
func (s *ScrollState) HandleMouseWheel(wy float64) {
	if wy != 0 {
		s.TargetScrollY -= wy * ScrollWheelSpeed
		s.clamp()
	}
}

// SetContentHeight updates the scroll range for content of height h shown
// in a view of height viewHeight.
func (s *ScrollState) SetContentHeight(h, viewHeight float64) {
	s.MaxScrollY = max(0, h-viewHeight)
	s.clamp()
}

// Animate performs smooth scroll interpolation. Call once per frame.
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if d := s.ScrollY - s.TargetScrollY; d > -0.5 && d < 0.5 {
		s.ScrollY = s.TargetScrollY
	}
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// EnsureVisible scrolls so the span [top, bottom) of content lies inside a
// view of height viewHeight.
func (s *ScrollState) EnsureVisible(top, bottom, viewHeight float64) {
	if bottom > viewHeight+s.TargetScrollY {
		s.TargetScrollY = bottom - viewHeight
	}
	if top < s.TargetScrollY {
		s.TargetScrollY = top
	}
	s.clamp()
}

func (s *ScrollState) clamp() {
	s.TargetScrollY = min(max(s.TargetScrollY, 0), s.MaxScrollY)
}
