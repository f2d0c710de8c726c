package menu

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestInterpolatorsEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		interp Interpolator
	}{
		{"linear", Linear},
		{"decelerate", Decelerate},
		{"accelerate_decelerate", AccelerateDecelerate},
		{"overshoot", Overshoot(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0, tt.interp(0), 1e-6)
			assert.InDelta(t, 1, tt.interp(1), 1e-6)
		})
	}
}

func TestInterpolatorCurves(t *testing.T) {
	tests := []struct {
		name   string
		interp Interpolator
		want   func(t float64) float64
	}{
		{"linear", Linear, func(t float64) float64 { return t }},
		{"decelerate", Decelerate, func(t float64) float64 { return 1 - (1-t)*(1-t) }},
		{"accelerate_decelerate", AccelerateDecelerate, func(t float64) float64 { return math.Cos((t+1)*math.Pi)/2 + 0.5 }},
		{"back", Eased(ease.OutBack), Overshoot(1.70158)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				x := float64(i) / 20
				assert.InDelta(t, tt.want(x), tt.interp(x), 1e-5, "t=%v", x)
			}
		})
	}
}

func TestTweenEndsExactlyOnTarget(t *testing.T) {
	for _, interp := range []Interpolator{Linear, Decelerate, AccelerateDecelerate, Overshoot(6)} {
		a := NewAnimator()
		var got float64
		a.Start(&Tween{
			From:         0.1,
			To:           -95.47,
			Duration:     70 * time.Millisecond,
			Interpolator: interp,
			Set:          func(v float64) { got = v },
		})
		a.Settle(frame, time.Second)
		assert.Equal(t, -95.47, got)
	}
}

func TestOvershootPassesTarget(t *testing.T) {
	assert.Greater(t, Overshoot(2)(0.5), 1.0)
}

func TestTweenReachesTarget(t *testing.T) {
	a := NewAnimator()
	var got float64
	ended := 0
	a.Start(&Tween{
		From:     10,
		To:       20,
		Duration: 100 * time.Millisecond,
		Set:      func(v float64) { got = v },
		OnEnd:    func() { ended++ },
	})

	a.Advance(50 * time.Millisecond)
	assert.Greater(t, got, 10.0)
	assert.Less(t, got, 20.0)
	assert.True(t, a.Running())

	a.Advance(60 * time.Millisecond)
	assert.Equal(t, 20.0, got)
	assert.Equal(t, 1, ended)
	assert.False(t, a.Running())
}

func TestTweenFillBeforeHoldsStartDuringOffset(t *testing.T) {
	a := NewAnimator()
	got := -1.0
	a.Start(&Tween{
		From:        5,
		To:          0,
		Duration:    100 * time.Millisecond,
		StartOffset: 100 * time.Millisecond,
		FillBefore:  true,
		Set:         func(v float64) { got = v },
	})
	assert.Equal(t, 5.0, got)

	a.Advance(50 * time.Millisecond)
	assert.Equal(t, 5.0, got)

	a.Advance(200 * time.Millisecond)
	assert.Equal(t, 0.0, got)
}

func TestTweenCancelSkipsOnEnd(t *testing.T) {
	a := NewAnimator()
	ended := false
	tw := a.Start(&Tween{
		From:     0,
		To:       1,
		Duration: 100 * time.Millisecond,
		OnEnd:    func() { ended = true },
	})
	a.Advance(10 * time.Millisecond)
	tw.Cancel()
	a.Advance(time.Second)

	assert.False(t, ended)
	assert.False(t, tw.Running())
	assert.False(t, a.Running())
}

func TestTweenChainedFromOnEndStartsNextFrame(t *testing.T) {
	a := NewAnimator()
	var second float64
	a.Start(&Tween{
		From:     0,
		To:       1,
		Duration: 10 * time.Millisecond,
		OnEnd: func() {
			a.Start(&Tween{
				From:     1,
				To:       2,
				Duration: 10 * time.Millisecond,
				Set:      func(v float64) { second = v },
			})
		},
	})

	a.Advance(10 * time.Millisecond)
	assert.Equal(t, 0.0, second)
	assert.True(t, a.Running())

	a.Settle(frame, time.Second)
	assert.Equal(t, 2.0, second)
}

func TestTweenStartedFromSetterIsDeferred(t *testing.T) {
	a := NewAnimator()
	started := false
	var nested *Tween
	a.Start(&Tween{
		From:     0,
		To:       1,
		Duration: 100 * time.Millisecond,
		Set: func(v float64) {
			if !started && v > 0 {
				started = true
				nested = a.Start(&Tween{From: 0, To: 1, Duration: 10 * time.Millisecond})
			}
		},
	})

	a.Advance(frame)
	assert.True(t, started)
	assert.True(t, nested.Running())

	a.Settle(frame, time.Second)
	assert.False(t, nested.Running())
}
