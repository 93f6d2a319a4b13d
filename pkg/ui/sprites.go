package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 200}
	wheelColor      = color.RGBA{30, 30, 30, 255}
	cabColor        = color.RGBA{0x5a, 0x0a, 0x98, 255}
)

// drawVehicle draws a side-on vehicle centred on (cx, cy) facing right
func drawVehicle(screen *ebiten.Image, cx, cy, width, height float64, body color.Color) {
	left, top := cx-width/2, cy-height/2
	const (
		outline     = 2.0
		wheelWidth  = 8.0
		wheelHeight = 6.0
	)

	for _, wx := range []float64{left + 5, left + width - wheelWidth - 5} {
		fillRect(screen, wx, top-wheelHeight/2, wheelWidth, wheelHeight, wheelColor)
		fillRect(screen, wx, top+height-wheelHeight/2, wheelWidth, wheelHeight, wheelColor)
	}

	fillRect(screen, left, top, width, height, outlineColor)
	fillRect(screen, left+outline, top+outline, width-2*outline, height-2*outline, body)

	wsWidth, wsHeight := width*0.2, height*0.6
	fillRect(screen, left+width-outline-wsWidth, cy-wsHeight/2, wsWidth, wsHeight, windshieldColor)
}

// drawRig draws the player's truck: a trailer behind a darker cab.
func drawRig(screen *ebiten.Image, cx, cy, width, height float64, body color.Color) {
	left := cx - width/2
	trailer := width * 0.68
	fillRect(screen, left, cy-height/2, trailer, height, outlineColor)
	fillRect(screen, left+2, cy-height/2+2, trailer-4, height-4, body)

	cabWidth := width - trailer - 2
	drawVehicle(screen, left+trailer+2+cabWidth/2, cy, cabWidth, height-8, cabColor)
}
