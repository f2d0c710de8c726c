package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cyclemenu/internal/menu"
)

// DebugLines describes the widget state, one fact per line.
func DebugLines(w *menu.Widget) []string {
	m := w.Machine()
	p := w.Positioner()
	g := p.Geometry()
	s := w.Settings()
	width, height := w.Size()

	current := p.CurrentPosition()
	realPos := menu.NoPosition
	if current != menu.NoPosition && w.Adapter().RealItemCount() > 0 {
		realPos = w.Adapter().RealPosition(current)
	}

	lines := []string{
		fmt.Sprintf("state: %s  touch: %t  scroll: %t", m.State(), m.TouchEnabled(), p.ScrollEnabled()),
		fmt.Sprintf("corner: %s  scaling: %s  mode: %s", s.Corner, s.ScalingType, w.ScrollMode()),
		fmt.Sprintf("container: %dx%d  radius: %d  item: %d  slots: %d",
			width, height, w.RecyclerSize(), w.ItemSize(), w.VisibleSlots()),
		fmt.Sprintf("reveal: %.1f  shadow: %.1f  icon: %.1f", m.RevealRadius(), m.ShadowSize(), m.IconRotation()),
		fmt.Sprintf("geometry: r=%d  per item=%.2f  margin=%.2f", g.Radius, g.AnglePerItem, g.MarginAngle),
		fmt.Sprintf("position: %d (item %d)  offset: %.2f  attached: %d",
			current, realPos, p.CurrentItemsAngleOffset(), len(p.Attached())),
	}
	return lines
}

// DrawDebugOverlay draws DebugLines in a panel at the bottom-right corner.
func DrawDebugOverlay(screen *ebiten.Image, w *menu.Widget) {
	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginB = 20.0
		panelW  = 460.0
	)

	lines := DebugLines(w)
	panelH := float64(len(lines)+1)*lineH + padY*2
	bounds := screen.Bounds()
	px := float64(bounds.Dx()) - panelW - marginR
	py := float64(bounds.Dy()) - panelH - marginB

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
