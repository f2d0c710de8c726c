package menu

import (
	"log/slog"
	"time"
)

const (
	rippleRevealDuration = 300 * time.Millisecond
	rippleAlphaDuration  = 450 * time.Millisecond
)

// Trigger is the corner button. A press grows a ripple from the corner and a
// release inside the button toggles the menu.
type Trigger struct {
	machine  *StateMachine
	animator *Animator
	logger   *slog.Logger

	bounds    Rect
	baseAlpha float64

	radius float64
	alpha  float64

	shouldOpen bool
	wasOutside bool

	sizeTween  *Tween
	alphaTween *Tween
}

// NewTrigger creates a trigger toggling machine.
func NewTrigger(machine *StateMachine, animator *Animator, logger *slog.Logger) *Trigger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trigger{
		machine:   machine,
		animator:  animator,
		logger:    logger,
		baseAlpha: 1,
	}
}

// SetBounds sets the button rectangle used for the inside/outside test.
func (t *Trigger) SetBounds(r Rect) { t.bounds = r }

// Bounds returns the button rectangle.
func (t *Trigger) Bounds() Rect { return t.bounds }

// SetRippleAlpha sets the alpha in [0, 1] a press starts the ripple at.
func (t *Trigger) SetRippleAlpha(a float64) { t.baseAlpha = a }

// RippleRadius is the current ripple radius.
func (t *Trigger) RippleRadius() float64 { return t.radius }

// RippleAlpha is the current ripple alpha in [0, 1].
func (t *Trigger) RippleAlpha() float64 { return t.alpha }

// Down starts a press. It returns false while the menu is opening or closing.
func (t *Trigger) Down(x, y int) bool {
	t.shouldOpen = false
	if t.machine.State().InProcess() {
		return false
	}
	t.cancel()
	t.wasOutside = false
	t.alpha = t.baseAlpha
	t.grow(0, t.machine.RevealRadius())
	return true
}

// Move tracks whether the press left the button.
func (t *Trigger) Move(x, y int) bool {
	t.shouldOpen = false
	if t.machine.State().InProcess() {
		return false
	}
	if !t.bounds.Contains(x, y) {
		t.wasOutside = true
	}
	return true
}

// Up ends a press, toggling the menu unless it left the button.
func (t *Trigger) Up(x, y int) bool {
	t.shouldOpen = false
	if t.machine.State().InProcess() {
		return false
	}
	t.release()
	return true
}

// Cancel ends a press without toggling.
func (t *Trigger) Cancel() bool {
	t.shouldOpen = false
	if t.machine.State().InProcess() {
		return false
	}
	t.wasOutside = true
	t.release()
	return true
}

func (t *Trigger) release() {
	t.sizeTween.Cancel()
	switch {
	case t.wasOutside:
		t.grow(t.radius, 0)
	case t.radius == t.machine.RevealRadius():
		t.grow(t.radius, t.machine.OutRadius())
		t.toggle()
	default:
		t.grow(t.radius, t.machine.OutRadius())
		if t.machine.State() == StateClosed {
			t.shouldOpen = true
		} else {
			t.toggle()
		}
	}
	t.alphaTween.Cancel()
	t.alphaTween = t.animator.Start(&Tween{
		From:     t.alpha,
		To:       0,
		Duration: rippleAlphaDuration,
		Set:      func(v float64) { t.alpha = v },
	})
}

func (t *Trigger) grow(from, to float64) {
	t.sizeTween = t.animator.Start(&Tween{
		From:     from,
		To:       to,
		Duration: rippleRevealDuration,
		Set:      t.setRadius,
	})
}

// setRadius opens a closed menu once a released ripple passes the button.
func (t *Trigger) setRadius(r float64) {
	t.radius = r
	if t.shouldOpen && r >= t.machine.CollapsedRadius() {
		t.shouldOpen = false
		t.toggle()
	}
}

func (t *Trigger) toggle() {
	if err := t.machine.Toggle(); err != nil {
		t.logger.Debug("Menu toggle rejected", "error", err)
	}
}

func (t *Trigger) cancel() {
	t.sizeTween.Cancel()
	t.alphaTween.Cancel()
	t.sizeTween, t.alphaTween = nil, nil
}
