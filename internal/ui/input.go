package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the primary pointer for one frame, from either the mouse or
// the first active touch.
type Pointer struct {
	X, Y         float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	Touch        bool
}

// PointerTracker follows the first touch point across frames and falls back
// to the mouse when no touch is active.
type PointerTracker struct {
	touchID  ebiten.TouchID
	touching bool
	lastX    float64
	lastY    float64
	pressed  []ebiten.TouchID
}

// Read samples the pointer. Call once per Update.
func (pt *PointerTracker) Read() Pointer {
	pt.pressed = inpututil.AppendJustPressedTouchIDs(pt.pressed[:0])
	if !pt.touching && len(pt.pressed) > 0 {
		pt.touchID = pt.pressed[0]
		pt.touching = true
		pt.sampleTouch()
		return Pointer{X: pt.lastX, Y: pt.lastY, Pressed: true, JustPressed: true, Touch: true}
	}

	if pt.touching {
		if inpututil.IsTouchJustReleased(pt.touchID) {
			pt.touching = false
			// Released touches report no position
			return Pointer{X: pt.lastX, Y: pt.lastY, JustReleased: true, Touch: true}
		}
		pt.sampleTouch()
		return Pointer{X: pt.lastX, Y: pt.lastY, Pressed: true, Touch: true}
	}

	mx, my := ebiten.CursorPosition()
	return Pointer{
		X:            float64(mx),
		Y:            float64(my),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

func (pt *PointerTracker) sampleTouch() {
	x, y := ebiten.TouchPosition(pt.touchID)
	pt.lastX, pt.lastY = float64(x), float64(y)
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// KeyRepeating reports a press on the first frame and then at the repeat
// rate while the key stays held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// MouseWheelDelta returns the mouse wheel scroll delta. Shift turns vertical
// wheel motion into horizontal.
func MouseWheelDelta() (dx, dy float64) {
	dx, dy = ebiten.Wheel()
	if dx == 0 && ebiten.IsKeyPressed(ebiten.KeyShift) {
		dx, dy = dy, 0
	}
	return
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py float64, rx, ry, rw, rh float64) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}

// Lerp for smooth animation
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
