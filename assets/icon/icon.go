package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	darkBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	menuBlue  = color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	shadowCol = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x50}
	white     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	dotColors = []color.RGBA{
		{R: 0xEF, G: 0x53, B: 0x50, A: 0xFF},
		{R: 0xFF, G: 0xCA, B: 0x28, A: 0xFF},
		{R: 0x66, G: 0xBB, B: 0x6A, A: 0xFF},
	}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws an open fan menu anchored to the top-left corner.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	fillCircle(img, 0, 0, s*0.92, shadowCol)
	fillCircle(img, 0, 0, s*0.86, menuBlue)

	// Items on the arc
	arc := s * 0.6
	for i, c := range dotColors {
		a := (15 + 30*float64(i)) * math.Pi / 180
		fillCircle(img, arc*math.Cos(a), arc*math.Sin(a), s*0.1, c)
	}

	// Plus in the collapsed corner
	cx, cy := s*0.17, s*0.17
	arm := s * 0.1
	thick := max(int(s*0.04), 1)
	fillRect(img, int(cx-arm), int(cy)-thick/2, int(2*arm), thick, white)
	fillRect(img, int(cx)-thick/2, int(cy-arm), thick, int(2*arm), white)

	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites the premultiplied color c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	blend := func(src uint32, dst uint8) uint8 {
		return uint8((src + uint32(dst)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: blend(r0, existing.R),
		G: blend(g0, existing.G),
		B: blend(b0, existing.B),
		A: 0xFF,
	})
}
