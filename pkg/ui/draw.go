package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	face  = text.NewGoXFace(bitmapfont.Face)
	pixel *ebiten.Image
)

// fillRect fills a rectangle given by its top-left corner
func fillRect(screen *ebiten.Image, x, y, width, height float64, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, op)
}

// fillCentered fills a rectangle given by its centre
func fillCentered(screen *ebiten.Image, cx, cy, width, height float64, clr color.Color) {
	fillRect(screen, cx-width/2, cy-height/2, width, height, clr)
}

// drawTextAt draws text with its left edge at x, vertically centred on y.
// The bitmap font is 16px tall; size scales it.
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-8*scale)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, face, op)
}

// drawTextCentered draws text centred on (cx, y)
func drawTextCentered(screen *ebiten.Image, str string, cx, y float64, size float64, clr color.Color) {
	width := text.Advance(str, face) * size / 16.0
	drawTextAt(screen, str, cx-width/2, y, size, clr)
}

// drawTextRight draws text with its right edge at x
func drawTextRight(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	width := text.Advance(str, face) * size / 16.0
	drawTextAt(screen, str, x-width, y, size, clr)
}
