package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/cyclemenu/internal/menu"
)

func TestShadowGradientFadesOut(t *testing.T) {
	ring := ShadowGradient(color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}, 6)
	require.Len(t, ring, 6)

	for i := 1; i < len(ring); i++ {
		assert.Less(t, ring[i].A, ring[i-1].A, "ring %d", i)
	}
	edge := ShadowMaxAlpha * 0xff
	assert.Equal(t, uint8(edge), ring[0].A)
	for _, c := range ring {
		assert.LessOrEqual(t, c.R, c.A)
		assert.LessOrEqual(t, c.B, c.A)
	}

	assert.Nil(t, ShadowGradient(color.RGBA{A: 0xff}, 0))
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0x66}

	assert.Equal(t, c, scaleAlpha(c, 0.4))
	assert.Equal(t, color.RGBA{}, scaleAlpha(c, 0))
	assert.Equal(t, c, scaleAlpha(c, 1), "clamped to the base alpha")
	assert.Equal(t, color.RGBA{}, scaleAlpha(color.RGBA{}, 0.5))
}

func TestItemViewCenterRollsAroundPivot(t *testing.T) {
	v := NewItemView(ItemSize)
	v.SetBounds(menu.Rect{Left: 80, Top: -10, Right: 100, Bottom: 10})

	x, y := v.Center(0, 0, 0, 0)
	assert.InDelta(t, 90, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	v.SetRotation(90)
	x, y = v.Center(0, 0, 0, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 90, y, 1e-9)

	v.SetRotation(-90)
	x, y = v.Center(10, 20, 10, 20)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, -70, y, 1e-9)
}

func TestItemViewMeasureAndBind(t *testing.T) {
	v := NewItemView(56)
	w, h := v.Measure(40, 100)
	assert.Equal(t, 40, w)
	assert.Equal(t, 56, h)

	item := menu.Item{ID: 3, Icon: "star", Color: color.RGBA{R: 1, A: 0xff}}
	v.Bind(item, nil)
	assert.Equal(t, item, v.Item())
}

func TestIconNamesSorted(t *testing.T) {
	names := IconNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "plus")
	assert.Contains(t, names, "dot")
}
