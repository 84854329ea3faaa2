package carousel

// Window is the hosting environment's width source. The breakpoint rule is
// evaluated against it.
type Window interface {
	Width() float64
	OnResize(fn func(width float64)) (cancel func())
}

// WindowSize is a Window fed by the host's layout pass.
type WindowSize struct {
	width  float64
	resize Signal[float64]
}

func NewWindowSize(width float64) *WindowSize {
	return &WindowSize{width: width}
}

func (w *WindowSize) Width() float64 { return w.width }

// SetWidth records a new width and notifies subscribers when it changed.
func (w *WindowSize) SetWidth(width float64) {
	if width == w.width {
		return
	}
	w.width = width
	w.resize.Emit(width)
}

func (w *WindowSize) OnResize(fn func(width float64)) (cancel func()) {
	return w.resize.Subscribe(fn)
}

// Listeners returns the number of resize subscribers.
func (w *WindowSize) Listeners() int {
	return w.resize.Len()
}
