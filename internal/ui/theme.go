package ui

import "image/color"

// Colors for the demo surface behind the menu
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorIcon          = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Layout constants
const (
	ItemSize        = 56
	ItemIconScale   = 0.32
	CornerIconScale = 0.28

	// ShadowSteps is the number of rings the soft shadow is drawn with.
	ShadowSteps    = 12
	ShadowMaxAlpha = 0.35

	FontSizeBody  = 16
	FontSizeSmall = 13

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 40
)
