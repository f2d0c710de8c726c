package menu

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/depeter/cyclemenu/internal/logging"
)

const (
	testItemSize = 40
	testViewport = 200
	frame        = 16 * time.Millisecond
)

// fakeView is a fixed-size view that records what it was bound to.
type fakeView struct {
	w, h     int
	bounds   Rect
	rotation float64
	item     Item
	tint     color.Color
	binds    int
}

func newFakeView() View { return &fakeView{w: testItemSize, h: testItemSize} }

func (v *fakeView) Measure(_, _ int) (int, int) { return v.w, v.h }
func (v *fakeView) Bounds() Rect                { return v.bounds }
func (v *fakeView) SetBounds(r Rect)            { v.bounds = r }
func (v *fakeView) SetRotation(deg float64)     { v.rotation = deg }
func (v *fakeView) Rotation() float64           { return v.rotation }

func (v *fakeView) Bind(item Item, tint color.Color) {
	v.item = item
	v.tint = tint
	v.binds++
}

func newTestAdapter(t *testing.T, n int) *Adapter {
	t.Helper()
	a := NewAdapter(logging.Discard())
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i, Icon: "dot", Color: color.RGBA{R: uint8(i), A: 0xff}}
	}
	require.NoError(t, a.SetItems(items))
	return a
}

func newTestPositioner(t *testing.T, corner Corner, n int, mode ScrollMode) (*Positioner, *Adapter, *Pool) {
	t.Helper()
	a := newTestAdapter(t, n)
	a.setScrollMode(mode)
	pool := NewPool(a, newFakeView)
	p := NewPositioner(corner, pool, a, NewAnimator(), WithLogger(logging.Discard()))
	return p, a, pool
}

func positions(p *Positioner) []int {
	var out []int
	for _, av := range p.Attached() {
		out = append(out, av.Position)
	}
	return out
}

func boundsByPosition(p *Positioner) map[int]Rect {
	out := make(map[int]Rect)
	for _, av := range p.Attached() {
		out[av.Position] = av.View.Bounds()
	}
	return out
}

func anglesByPosition(p *Positioner) map[int]float64 {
	out := make(map[int]float64)
	for _, av := range p.Attached() {
		a, _ := p.Angle(av.Position)
		out[av.Position] = a
	}
	return out
}

// expectedGeometry mirrors the derivation for a square viewport of testItemSize items.
func expectedGeometry(viewport int) Geometry {
	radius := viewport - int(float64(testItemSize)*DefaultRadiusFraction)
	perItem := 360 * float64(testItemSize) / (2 * math.Pi * float64(radius))
	return Geometry{
		Radius:       radius,
		AnglePerItem: perItem * DefaultSpacing,
		MarginAngle:  (perItem*DefaultSpacing - perItem) / 2,
		HalfMargin:   int((float64(testItemSize)*DefaultSpacing - testItemSize) / 2),
	}
}

// testSettings is a fixed 200px menu in a 300x300 container with 40px items.
func testSettings() Settings {
	s := DefaultSettings()
	s.ScalingType = ScalingFixed
	s.FixedRadius = 200
	s.ShadowSize = 40
	s.CollapsedRadius = 60
	return s
}

func newTestWidget(t *testing.T, n int, mode ScrollMode) *Widget {
	t.Helper()
	s := testSettings()
	s.ScrollType = mode
	w, err := NewWidget(newTestAdapter(t, n), newFakeView, s, logging.Discard())
	require.NoError(t, err)
	w.Attach()
	w.Resize(300, 300)
	return w
}

func settle(w *Widget) {
	for elapsed := time.Duration(0); w.Animator().Running() && elapsed < 10*time.Second; elapsed += frame {
		w.Advance(frame)
	}
}
