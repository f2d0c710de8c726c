// Package menu implements a radial fan menu anchored to a screen corner:
// circular item placement with view recycling, bounded or endless angular
// scrolling, and the open/close reveal choreography.
//
// Nothing in this package draws. A container supplies views through a
// ViewPool, forwards pointer events to a Widget, advances its animations
// once per frame and renders the resulting bounds and rotations.
package menu

import (
	"fmt"
	"math"
	"strings"
)

const (
	// NoPosition marks an absent logical position.
	NoPosition = -1

	// EndlessItemCount is the item count reported in endless mode.
	EndlessItemCount = math.MaxInt32

	// UndefinedAngle means "no explicit first item offset".
	UndefinedAngle = -1000.0
)

// Corner is the screen corner the menu is anchored to.
type Corner int

const (
	CornerLeftTop Corner = iota
	CornerRightTop
	CornerLeftBottom
	CornerRightBottom
)

var cornerSides = [...]struct {
	name string
	left bool
	up   bool
}{
	CornerLeftTop:     {"left_top", true, true},
	CornerRightTop:    {"right_top", false, true},
	CornerLeftBottom:  {"left_bottom", true, false},
	CornerRightBottom: {"right_bottom", false, false},
}

func (c Corner) valid() bool {
	return c >= CornerLeftTop && c <= CornerRightBottom
}

func (c Corner) IsLeftSide() bool   { return c.valid() && cornerSides[c].left }
func (c Corner) IsRightSide() bool  { return c.valid() && !cornerSides[c].left }
func (c Corner) IsUpSide() bool     { return c.valid() && cornerSides[c].up }
func (c Corner) IsBottomSide() bool { return c.valid() && !cornerSides[c].up }

func (c Corner) String() string {
	if !c.valid() {
		return fmt.Sprintf("corner(%d)", int(c))
	}
	return cornerSides[c].name
}

// ParseCorner accepts the names produced by Corner.String.
func ParseCorner(s string) (Corner, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c := range cornerSides {
		if cornerSides[c].name == key {
			return Corner(c), nil
		}
	}
	return 0, &ArgumentError{Param: "corner", Value: s}
}

// ScrollMode selects bounded or wrap-around scrolling.
type ScrollMode int

const (
	ScrollBasic ScrollMode = iota
	ScrollEndless
)

func (m ScrollMode) valid() bool {
	return m == ScrollBasic || m == ScrollEndless
}

func (m ScrollMode) String() string {
	switch m {
	case ScrollBasic:
		return "basic"
	case ScrollEndless:
		return "endless"
	default:
		return fmt.Sprintf("scroll(%d)", int(m))
	}
}

// ParseScrollMode accepts "basic" or "endless".
func ParseScrollMode(s string) (ScrollMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return ScrollBasic, nil
	case "endless":
		return ScrollEndless, nil
	}
	return 0, &ArgumentError{Param: "scroll_type", Value: s}
}

// ScalingType selects how the expanded radius is chosen.
// AUTO grows with the item count between the auto min and max radius,
// FIXED uses the fixed radius clamped to the available space.
type ScalingType int

const (
	ScalingAuto ScalingType = iota
	ScalingFixed
)

func (s ScalingType) valid() bool {
	return s == ScalingAuto || s == ScalingFixed
}

func (s ScalingType) String() string {
	switch s {
	case ScalingAuto:
		return "auto"
	case ScalingFixed:
		return "fixed"
	default:
		return fmt.Sprintf("scaling(%d)", int(s))
	}
}

// ParseScalingType accepts "auto" or "fixed".
func ParseScalingType(s string) (ScalingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ScalingAuto, nil
	case "fixed":
		return ScalingFixed, nil
	}
	return 0, &ArgumentError{Param: "scaling_type", Value: s}
}

// State is the menu open/close state.
type State int

const (
	StateClosed State = iota
	StateInOpenProcess
	StateOpen
	StateInCloseProcess
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateInOpenProcess:
		return "in_open_process"
	case StateOpen:
		return "open"
	case StateInCloseProcess:
		return "in_close_process"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// InProcess reports whether an animated transition is running.
func (s State) InProcess() bool {
	return s == StateInOpenProcess || s == StateInCloseProcess
}

// Rect is an integer rectangle in viewport coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Center returns the center the way scroll reprojection measures it.
func (r Rect) Center() (float64, float64) {
	return float64(r.Right) - float64(r.Width())/2.0, float64(r.Top) + float64(r.Height())/2.0
}
