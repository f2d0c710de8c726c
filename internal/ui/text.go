package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

// InitFonts loads the Go Regular face used for all labels.
func InitFonts() error {
	return InitFontsFrom(goregular.TTF)
}

func InitFontsFrom(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

// DrawText draws txt with its top-left corner at (x, y). It is a no-op until
// InitFonts has run.
func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	if fontSource == nil {
		return
	}
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func MeasureText(txt string, size float64) (float64, float64) {
	if fontSource == nil {
		return 0, 0
	}
	return text.Measure(txt, GetFace(size), 0)
}
