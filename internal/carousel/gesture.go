package carousel

import (
	"math"
	"time"
)

// Drag tuning. The physical pointer distance is amplified by DragSensitivity;
// an amplified displacement above MoveThreshold turns a press into a drag.
const (
	DragSensitivity = 1.2
	MoveThreshold   = 5.0
)

// dragState lives from pointer down to pointer up.
type dragState struct {
	active       bool
	anchorX      float64
	anchorOffset float64
	crossed      bool
	startedAt    time.Time
}

// Release describes how a press ended.
type Release struct {
	// Tapped is set when the pointer never crossed the move threshold. The
	// host should dispatch the tap to whatever control lies under it.
	Tapped bool
	// Snapped is set when the release triggered a snap.
	Snapped bool
	// Index is the snap target when Snapped.
	Index    int
	Duration time.Duration
}

// Dragging reports whether a press is in progress.
func (c *Carousel) Dragging() bool {
	return c.drag.active
}

// PointerDown starts a press at client x. Mouse and touch input share this
// entry point.
func (c *Carousel) PointerDown(x float64) {
	vp := c.viewport
	if vp == nil {
		return
	}
	c.drag = dragState{
		active:       true,
		anchorX:      x,
		anchorOffset: vp.ScrollOffset(),
		startedAt:    c.now(),
	}
}

// PointerMove follows the pointer while pressed. Once the amplified
// displacement exceeds MoveThreshold the viewport tracks the pointer 1:1.2
// with no easing; before that the viewport does not move.
func (c *Carousel) PointerMove(x float64) {
	vp := c.viewport
	if vp == nil || !c.drag.active {
		return
	}
	delta := (x - c.drag.anchorX) * DragSensitivity
	if !c.drag.crossed && math.Abs(delta) > MoveThreshold {
		c.drag.crossed = true
		c.pending = pendingNav{}
	}
	if !c.drag.crossed {
		return
	}
	vp.SetScrollOffset(c.drag.anchorOffset - delta)
}

// PointerUp ends a press. A drag snaps to the nearest item; a tap leaves the
// offset untouched.
func (c *Carousel) PointerUp() Release {
	if c.viewport == nil || !c.drag.active {
		c.drag = dragState{}
		return Release{}
	}
	d := c.drag
	c.drag = dragState{}

	rel := Release{Tapped: !d.crossed, Duration: c.now().Sub(d.startedAt)}
	if d.crossed {
		rel.Snapped = true
		rel.Index = c.Snap()
	}
	c.logger.Debug("carousel release", "tapped", rel.Tapped, "index", rel.Index, "duration", rel.Duration)
	return rel
}

// PointerLeave ends a press when the pointer leaves the carousel mid-drag.
// It is ignored while idle.
func (c *Carousel) PointerLeave() Release {
	if !c.drag.active {
		return Release{}
	}
	return c.PointerUp()
}

// Snap smoothly scrolls to the item nearest the current offset and returns
// its index.
func (c *Carousel) Snap() int {
	vp := c.viewport
	if vp == nil {
		return c.pos.NearestIndex
	}
	itemWidth := ItemWidth(vp.Width(), c.itemsPerPage)
	idx := 0
	if itemWidth > 0 {
		idx = roundHalfUp(vp.ScrollOffset() / itemWidth)
	}
	idx = ClampIndex(idx, c.totalItems, c.itemsPerPage)
	c.GoToPage(idx)
	return idx
}
