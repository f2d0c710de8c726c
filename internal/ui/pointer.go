package ui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerTarget receives a single pointer stream in container coordinates.
// menu.Widget implements it.
type PointerTarget interface {
	PointerDown(x, y int) bool
	PointerMove(x, y int) bool
	PointerUp(x, y int) bool
	PointerCancel()
}

// PointerTracker merges the mouse and the first active touch into one
// pointer stream. A second touch while one is down is ignored.
type PointerTracker struct {
	down         bool
	touching     bool
	touchID      ebiten.TouchID
	lastX, lastY int
	touchIDs     []ebiten.TouchID
}

// Poll reads this frame's mouse and touch state and forwards it to target.
func (pt *PointerTracker) Poll(target PointerTarget) {
	pt.touchIDs = ebiten.AppendTouchIDs(pt.touchIDs[:0])

	if pt.touching || (!pt.down && len(pt.touchIDs) > 0) {
		pt.pollTouch(target)
		return
	}

	x, y := ebiten.CursorPosition()
	pt.Feed(target, x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (pt *PointerTracker) pollTouch(target PointerTarget) {
	if !pt.touching {
		pt.touching = true
		pt.touchID = pt.touchIDs[0]
	}
	if inpututil.IsTouchJustReleased(pt.touchID) || !slices.Contains(pt.touchIDs, pt.touchID) {
		pt.touching = false
		pt.Feed(target, pt.lastX, pt.lastY, false)
		return
	}
	x, y := ebiten.TouchPosition(pt.touchID)
	pt.Feed(target, x, y, true)
}

// Feed advances the tracker with one sample. Down, move and up are derived
// from the change in pressed state.
func (pt *PointerTracker) Feed(target PointerTarget, x, y int, pressed bool) {
	switch {
	case pressed && !pt.down:
		pt.down = true
		target.PointerDown(x, y)
	case pressed && (x != pt.lastX || y != pt.lastY):
		target.PointerMove(x, y)
	case !pressed && pt.down:
		pt.down = false
		target.PointerUp(x, y)
	}
	pt.lastX, pt.lastY = x, y
}

// Cancel abandons a press in progress, e.g. when the window loses focus.
func (pt *PointerTracker) Cancel(target PointerTarget) {
	if pt.down {
		target.PointerCancel()
	}
	pt.down = false
	pt.touching = false
}

// Down reports whether a pointer is pressed.
func (pt *PointerTracker) Down() bool { return pt.down }

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}
