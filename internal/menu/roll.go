package menu

import "time"

const (
	rollDuration         = 300 // ms
	rollOutStagger       = 50  // ms
	rollStartAngle       = 100.0
	overshootCoefficient = 6
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// rollSign is the direction items roll out towards for each corner.
func (c Corner) rollSign() float64 {
	switch c {
	case CornerRightTop, CornerLeftBottom:
		return 1
	default:
		return -1
	}
}

// RollIn rotates the attached views in from off-screen, overshooting past
// rest and then settling back, staggered by index. done runs once every
// view settles, or immediately when nothing is attached.
func (p *Positioner) RollIn(done func()) {
	views := p.Attached()
	n := len(views)
	if n == 0 {
		if done != nil {
			done()
		}
		return
	}
	p.rollDone = done
	stagger := rollDuration / n
	sign := p.corner.rollSign()

	for i, av := range views {
		v := av.View
		p.ClearAnimation(v)

		// The settle leg waits out the forward leg and then its own stagger,
		// holding the overshoot in between.
		overshoot := -sign * float64(i+overshootCoefficient) * p.marginAngle * 2
		forward := ms(stagger * i / 2)
		p.startTween(v, &Tween{
			From:         sign * rollStartAngle,
			To:           overshoot,
			Duration:     ms(rollDuration),
			StartOffset:  forward,
			Interpolator: Decelerate,
			FillBefore:   true,
			Set:          v.SetRotation,
		})
		p.startTween(v, &Tween{
			From:         overshoot,
			To:           0,
			Duration:     ms((i + overshootCoefficient) * stagger / 2),
			StartOffset:  forward + ms(rollDuration) + ms((n-i-1)*stagger/2),
			Interpolator: Linear,
			Set:          v.SetRotation,
			OnEnd:        p.rollStepped,
		})
	}
}

// RollOut rotates the attached views off-screen, last index first.
// done runs once every view is out, or immediately when nothing is attached.
func (p *Positioner) RollOut(done func()) {
	views := p.Attached()
	n := len(views)
	if n == 0 {
		if done != nil {
			done()
		}
		return
	}
	p.rollDone = done
	target := p.corner.rollSign() * rollStartAngle

	for i := n - 1; i >= 0; i-- {
		v := views[i].View
		p.ClearAnimation(v)
		t := &Tween{
			From:         v.Rotation(),
			To:           target,
			Duration:     ms(rollDuration),
			StartOffset:  ms(rollOutStagger * (n - i - 1)),
			Interpolator: Decelerate,
			Set:          v.SetRotation,
			OnEnd:        p.rollStepped,
		}
		p.startTween(v, t)
	}
}

// ClearAnimation cancels every running tween on v.
func (p *Positioner) ClearAnimation(v View) {
	for _, t := range p.tweens[v] {
		t.Cancel()
	}
	delete(p.tweens, v)
}

// ClearAnimations cancels all roll tweens and puts every view back at rest.
// The pending roll callback is dropped.
func (p *Positioner) ClearAnimations() {
	p.rollDone = nil
	for v, ts := range p.tweens {
		for _, t := range ts {
			t.Cancel()
		}
		delete(p.tweens, v)
	}
	for _, av := range p.attached {
		av.View.SetRotation(0)
	}
}

func (p *Positioner) startTween(v View, t *Tween) {
	live := p.tweens[v][:0]
	for _, old := range p.tweens[v] {
		if old.Running() {
			live = append(live, old)
		}
	}
	p.tweens[v] = append(live, t)
	p.animator.Start(t)
}

// Rolling reports whether any roll tween is still scheduled.
func (p *Positioner) Rolling() bool {
	for _, ts := range p.tweens {
		for _, t := range ts {
			if t.Running() {
				return true
			}
		}
	}
	return false
}

// rollStepped completes the roll once its last tween has ended.
func (p *Positioner) rollStepped() {
	if p.rollDone == nil || p.Rolling() {
		return
	}
	done := p.rollDone
	p.rollDone = nil
	done()
}

// recycle hands v back to the pool with its roll tweens cancelled.
func (p *Positioner) recycle(v View) {
	p.ClearAnimation(v)
	p.pool.Recycle(v)
}

// abandonRoll completes a roll whose views were all recycled mid-flight.
// It runs from inside guard, so done is queued behind the current pass.
func (p *Positioner) abandonRoll() {
	if p.rollDone == nil || p.Rolling() {
		return
	}
	done := p.rollDone
	p.rollDone = nil
	p.logger.Debug("Menu roll interrupted by layout")
	p.deferred = append(p.deferred, done)
}
