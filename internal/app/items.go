package app

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/depeter/cyclemenu/internal/menu"
)

// DemoItems returns n items with evenly spaced hues and icons taken in turn
// from icons.
func DemoItems(n int, icons []string) []menu.Item {
	items := make([]menu.Item, n)
	for i := range items {
		hue := 360 * float64(i) / float64(max(n, 1))
		r, g, b := colorful.Hcl(hue, 0.55, 0.6).Clamped().RGB255()
		icon := "dot"
		if len(icons) > 0 {
			icon = icons[i%len(icons)]
		}
		items[i] = menu.Item{
			ID:    i,
			Icon:  icon,
			Color: color.RGBA{R: r, G: g, B: b, A: 0xff},
		}
	}
	return items
}
