package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/cyclemenu/internal/menu"
)

// ItemView is a round menu item: a filled disc with an icon on top.
type ItemView struct {
	size     int
	bounds   menu.Rect
	rotation float64
	item     menu.Item
	tint     color.Color
}

// NewItemView creates a view with the given diameter.
func NewItemView(size int) *ItemView {
	return &ItemView{size: size}
}

func (v *ItemView) Measure(maxWidth, maxHeight int) (int, int) {
	return min(v.size, maxWidth), min(v.size, maxHeight)
}

func (v *ItemView) Bounds() menu.Rect           { return v.bounds }
func (v *ItemView) SetBounds(r menu.Rect)       { v.bounds = r }
func (v *ItemView) SetRotation(degrees float64) { v.rotation = degrees }
func (v *ItemView) Rotation() float64           { return v.rotation }
func (v *ItemView) Item() menu.Item             { return v.item }

func (v *ItemView) Bind(item menu.Item, tint color.Color) {
	v.item = item
	v.tint = tint
}

// Center returns the drawn center after rotating the view around (pivotX,
// pivotY). originX and originY translate the view bounds into screen space.
func (v *ItemView) Center(originX, originY, pivotX, pivotY float64) (float64, float64) {
	cx, cy := v.bounds.Center()
	cx += originX
	cy += originY
	if v.rotation == 0 {
		return cx, cy
	}
	sin, cos := math.Sincos(v.rotation * math.Pi / 180)
	dx, dy := cx-pivotX, cy-pivotY
	return pivotX + dx*cos - dy*sin, pivotY + dx*sin + dy*cos
}

// Draw renders the view in screen space, rolled around the pivot.
func (v *ItemView) Draw(dst *ebiten.Image, originX, originY, pivotX, pivotY float64) {
	cx, cy := v.Center(originX, originY, pivotX, pivotY)
	r := float32(min(v.bounds.Width(), v.bounds.Height())) / 2

	vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, v.item.Color, true)

	var iconColor color.Color = ColorIcon
	if v.tint != nil {
		iconColor = v.tint
	}
	DrawIcon(dst, v.item.Icon, float32(cx), float32(cy), r*2*ItemIconScale, iconColor)
}
