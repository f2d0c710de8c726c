package ui

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type iconFunc func(dst *ebiten.Image, cx, cy, r float32, clr color.Color)

var icons = map[string]iconFunc{
	"compass": drawCompassIcon,
	"gear":    drawGearIcon,
	"search":  drawSearchIcon,
	"list":    drawListIcon,
	"play":    drawPlayIcon,
	"star":    drawStarIcon,
	"dot":     drawDotIcon,
	"plus": func(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
		DrawPlusIcon(dst, cx, cy, r, 0, clr)
	},
}

// IconNames lists the icon names DrawIcon understands, sorted.
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DrawIcon draws the named icon centered at (cx, cy). Unknown names draw a dot.
func DrawIcon(dst *ebiten.Image, name string, cx, cy, r float32, clr color.Color) {
	fn, ok := icons[name]
	if !ok {
		fn = drawDotIcon
	}
	fn(dst, cx, cy, r, clr)
}

// DrawPlusIcon draws a plus sign rotated by deg degrees around its center.
func DrawPlusIcon(dst *ebiten.Image, cx, cy, r float32, deg float64, clr color.Color) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	dx, dy := r*float32(cos), r*float32(sin)
	vector.StrokeLine(dst, cx-dx, cy-dy, cx+dx, cy+dy, 2.5, clr, true)
	vector.StrokeLine(dst, cx+dy, cy-dx, cx-dy, cy+dx, 2.5, clr, true)
}

// drawCompassIcon draws a compass/discovery icon at (cx, cy) with given radius.
func drawCompassIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, 1.5, clr, true)
	dotR := r * 0.15
	vector.DrawFilledCircle(dst, cx, cy-r*0.75, dotR, clr, true)
	vector.DrawFilledCircle(dst, cx+r*0.75, cy, dotR, clr, true)
	vector.DrawFilledCircle(dst, cx, cy+r*0.75, dotR, clr, true)
	vector.DrawFilledCircle(dst, cx-r*0.75, cy, dotR, clr, true)
	// Needle
	n := r * 0.35
	vector.StrokeLine(dst, cx, cy-n, cx+n/2, cy, 1.5, clr, true)
	vector.StrokeLine(dst, cx+n/2, cy, cx, cy+n, 1.5, clr, true)
	vector.StrokeLine(dst, cx, cy+n, cx-n/2, cy, 1.5, clr, true)
	vector.StrokeLine(dst, cx-n/2, cy, cx, cy-n, 1.5, clr, true)
}

// drawGearIcon draws a gear/settings icon at (cx, cy) with given radius.
func drawGearIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, true)
	teeth := 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		tx := cx + r*0.75*float32(math.Cos(angle))
		ty := cy + r*0.75*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, r*0.25, clr, true)
	}
	vector.StrokeCircle(dst, cx, cy, r*0.55, 1.5, clr, true)
}

// drawSearchIcon draws a magnifying glass icon at (cx, cy) with given radius.
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, true)
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, true)
}

func drawListIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lineW := r * 1.2
	gap := r * 0.5
	for i := -1; i <= 1; i++ {
		ly := cy + float32(i)*gap
		vector.DrawFilledCircle(dst, cx-lineW*0.6, ly, 1.5, clr, true)
		vector.StrokeLine(dst, cx-lineW*0.3, ly, cx+lineW*0.7, ly, 1.8, clr, true)
	}
}

func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	strokePolygon(dst, []float32{
		cx - r*0.5, cy - r*0.7,
		cx + r*0.7, cy,
		cx - r*0.5, cy + r*0.7,
	}, clr)
}

func drawStarIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	pts := make([]float32, 0, 20)
	for i := 0; i < 10; i++ {
		rr := r
		if i%2 == 1 {
			rr = r * 0.45
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, cx+rr*float32(math.Cos(a)), cy+rr*float32(math.Sin(a)))
	}
	strokePolygon(dst, pts, clr)
}

func drawDotIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.4, clr, true)
}

// strokePolygon outlines the closed polygon given as x, y pairs.
func strokePolygon(dst *ebiten.Image, pts []float32, clr color.Color) {
	n := len(pts) / 2
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vector.StrokeLine(dst, pts[2*i], pts[2*i+1], pts[2*j], pts[2*j+1], 1.8, clr, true)
	}
}
