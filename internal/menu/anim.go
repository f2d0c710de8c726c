package menu

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Interpolator maps linear progress in [0, 1] to eased progress.
type Interpolator func(t float64) float64

// Eased adapts a normalized gween easing curve.
func Eased(fn ease.TweenFunc) Interpolator {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	// Linear leaves progress unchanged.
	Linear = Eased(ease.Linear)
	// Decelerate starts fast and slows to a stop.
	Decelerate = Eased(ease.OutQuad)
	// AccelerateDecelerate eases in and out along a cosine curve.
	AccelerateDecelerate = Eased(ease.InOutSine)
)

// Overshoot passes the target then settles back, with the given tension.
// ease.OutBack is the same curve with the tension fixed at 1.70158.
func Overshoot(tension float64) Interpolator {
	return func(t float64) float64 {
		t--
		return t*t*((tension+1)*t+tension) + 1
	}
}

// Tween animates one float value through a typed setter.
type Tween struct {
	From, To     float64
	Duration     time.Duration
	StartOffset  time.Duration
	Interpolator Interpolator
	// FillBefore applies From as soon as the tween starts, during its start offset.
	FillBefore bool
	Set        func(v float64)
	OnEnd      func()

	elapsed   time.Duration
	done      bool
	cancelled bool
}

// Cancel stops the tween where it is. OnEnd is not called.
func (t *Tween) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Running reports whether the tween is still scheduled.
func (t *Tween) Running() bool {
	return t != nil && !t.done && !t.cancelled
}

func (t *Tween) value(p float64) float64 {
	if p >= 1 {
		return t.To
	}
	interp := t.Interpolator
	if interp == nil {
		interp = AccelerateDecelerate
	}
	return t.From + (t.To-t.From)*interp(p)
}

// step advances the tween and reports whether it just finished.
func (t *Tween) step(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed < t.StartOffset {
		if t.FillBefore && t.Set != nil {
			t.Set(t.From)
		}
		return false
	}
	p := 1.0
	if t.Duration > 0 {
		p = float64(t.elapsed-t.StartOffset) / float64(t.Duration)
		if p > 1 {
			p = 1
		}
	}
	if t.Set != nil {
		t.Set(t.value(p))
	}
	if p >= 1 {
		t.done = true
		return true
	}
	return false
}

// Animator runs tweens off a frame clock. It is not safe for concurrent use;
// the owner calls Advance once per frame from the UI loop.
type Animator struct {
	active    []*Tween
	advancing bool
	pending   []*Tween
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Start schedules t. A tween started from inside an OnEnd callback begins on the next frame.
func (a *Animator) Start(t *Tween) *Tween {
	if t.FillBefore && t.Set != nil {
		t.Set(t.From)
	}
	if a.advancing {
		a.pending = append(a.pending, t)
	} else {
		a.active = append(a.active, t)
	}
	return t
}

// Advance moves every running tween forward by dt, then runs completion
// callbacks in the order the tweens were started.
func (a *Animator) Advance(dt time.Duration) {
	a.advancing = true
	var finished []*Tween
	live := a.active[:0]
	for _, t := range a.active {
		if t.cancelled {
			continue
		}
		if t.step(dt) {
			finished = append(finished, t)
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = live
	a.advancing = false

	for _, t := range finished {
		if t.OnEnd != nil && !t.cancelled {
			t.OnEnd()
		}
	}

	if len(a.pending) > 0 {
		a.active = append(a.active, a.pending...)
		a.pending = a.pending[:0]
	}
}

// Running reports whether any tween is scheduled.
func (a *Animator) Running() bool {
	for _, t := range a.active {
		if t.Running() {
			return true
		}
	}
	for _, t := range a.pending {
		if t.Running() {
			return true
		}
	}
	return false
}

// Settle advances in fixed frames until nothing is running or limit elapses.
func (a *Animator) Settle(frame, limit time.Duration) {
	for elapsed := time.Duration(0); a.Running() && elapsed < limit; elapsed += frame {
		a.Advance(frame)
	}
}
