package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/depeter/cyclemenu/internal/menu"
)

// Fan draws a menu.Widget: shadow, reveal disc, ripple, items and the
// corner icon, in that order.
type Fan struct {
	Widget *menu.Widget

	shadowRing []color.RGBA
}

func NewFan(w *menu.Widget) *Fan {
	f := &Fan{Widget: w}
	f.RefreshColors()
	return f
}

// RefreshColors rebuilds the shadow gradient from the background color.
// Call it after changing the widget's background color.
func (f *Fan) RefreshColors() {
	f.shadowRing = ShadowGradient(f.Widget.Settings().BackgroundColor, ShadowSteps)
}

// ShadowGradient returns steps colors fading from a darkened bg at the disc
// edge to fully transparent.
func ShadowGradient(bg color.RGBA, steps int) []color.RGBA {
	if steps <= 0 {
		return nil
	}
	base, ok := colorful.MakeColor(bg)
	if !ok {
		base = colorful.Color{}
	}
	dark := base.BlendLab(colorful.Color{}, 0.7).Clamped()

	ring := make([]color.RGBA, steps)
	for i := range ring {
		t := float64(i) / float64(steps)
		alpha := ShadowMaxAlpha * (1 - t) * (1 - t)
		r, g, b := dark.RGB255()
		ring[i] = color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 0xff)}).(color.RGBA)
	}
	return ring
}

// Draw renders the menu onto dst in container coordinates.
func (f *Fan) Draw(dst *ebiten.Image) {
	w := f.Widget
	m := w.Machine()
	s := w.Settings()
	px, py := w.CornerPoint()
	cx, cy := float32(px), float32(py)

	reveal := float32(m.RevealRadius())
	if reveal <= 0 {
		return
	}

	// Shadow, outermost ring first
	if shadow := float32(m.ShadowSize()); shadow > 0 && len(f.shadowRing) > 0 {
		step := shadow / float32(len(f.shadowRing))
		for i := len(f.shadowRing) - 1; i >= 0; i-- {
			vector.DrawFilledCircle(dst, cx, cy, reveal+step*float32(i+1), f.shadowRing[i], true)
		}
	}

	vector.DrawFilledCircle(dst, cx, cy, reveal, s.BackgroundColor, true)

	t := w.Trigger()
	if rr := float32(t.RippleRadius()); rr > 0 && t.RippleAlpha() > 0 {
		vector.DrawFilledCircle(dst, cx, cy, rr, scaleAlpha(s.RippleColor, t.RippleAlpha()), true)
	}

	if m.ItemsShown() {
		b := w.RecyclerBounds()
		for _, av := range w.Positioner().Attached() {
			iv, ok := av.View.(*ItemView)
			if !ok {
				continue
			}
			ix, iy := iv.Center(float64(b.Left), float64(b.Top), float64(px), float64(py))
			if !insideCircle(ix, iy, float64(px), float64(py), float64(reveal)) {
				continue
			}
			iv.Draw(dst, float64(b.Left), float64(b.Top), float64(px), float64(py))
		}
	}

	f.drawCornerIcon(dst)
}

func (f *Fan) drawCornerIcon(dst *ebiten.Image) {
	w := f.Widget
	s := w.Settings()
	bounds := w.Trigger().Bounds()
	if bounds.Width() <= 0 {
		return
	}
	// The icon sits in the middle of the collapsed quarter disc.
	x, y := bounds.Center()
	r := float32(bounds.Width()) * CornerIconScale / 2
	switch s.CornerIcon {
	case "", "plus":
		DrawPlusIcon(dst, float32(x), float32(y), r, w.Machine().IconRotation(), ColorIcon)
	default:
		DrawIcon(dst, s.CornerIcon, float32(x), float32(y), r, ColorIcon)
	}
}

func insideCircle(x, y, cx, cy, r float64) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// scaleAlpha multiplies a premultiplied color by a = alpha / c.A.
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if c.A == 0 {
		return c
	}
	k := alpha * 0xff / float64(c.A)
	k = min(max(k, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
