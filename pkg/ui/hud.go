package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/truckin/pkg/game"
	"github.com/golangdaddy/truckin/pkg/models"
)

// lowLevel is where a resource bar turns red
const lowLevel = 30

var (
	barBackground = color.RGBA{0x44, 0x44, 0x44, 255}
	barLow        = color.RGBA{0xff, 0x00, 0x00, 255}
	deliveryGreen = color.RGBA{0x00, 0xff, 0x00, 255}
)

type resourceBar struct {
	label    string
	resource models.Resource
	fill     color.RGBA
}

var resourceBars = []resourceBar{
	{"Hunger", models.Hunger, color.RGBA{0xff, 0x99, 0x00, 255}},
	{"Sleep", models.Sleep, color.RGBA{0x00, 0x99, 0xff, 255}},
	{"Gas", models.Fuel, color.RGBA{0x00, 0xff, 0x00, 255}},
}

func level(l models.Levels, r models.Resource) float64 {
	switch r {
	case models.Hunger:
		return l.Hunger
	case models.Sleep:
		return l.Sleep
	}
	return l.Fuel
}

// drawHUD draws resource bars and the speedometer on the left, the run's
// stats on the right.
func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	const (
		barX      = 20.0
		barWidth  = 150.0
		barHeight = 20.0
	)
	barY := 20.0
	for _, b := range resourceBars {
		lvl := level(snap.Resources, b.resource)
		drawTextAt(screen, b.label, barX, barY-4, 14, textWhite)
		fillRect(screen, barX, barY+5, barWidth, barHeight, barBackground)

		fill := b.fill
		if lvl <= lowLevel {
			fill = barLow
		}
		fillRect(screen, barX, barY+5, lvl/models.MaxLevel*barWidth, barHeight, fill)
		barY += 35
	}

	drawSpeedometer(screen, barX, barY+10, snap.MPH)

	right := float64(screen.Bounds().Dx()) - 20
	drawTextRight(screen, "Time: "+snap.TimeLabel(), right, 30, 18, textWhite)
	drawTextRight(screen, fmt.Sprintf("$%d", snap.Money), right, 60, 20, brandPurple)
	drawTextRight(screen, fmt.Sprintf("Delivery: %d mi", snap.DeliveryLeft()), right, 90, 16, deliveryGreen)
}

// drawSpeedometer shows mph as a number over a gauge bar
func drawSpeedometer(screen *ebiten.Image, x, y float64, mph int) {
	drawTextAt(screen, fmt.Sprintf("Speed: %d mph", mph), x, y, 16, textWhite)
	drawSpeedGauge(screen, x, y+14, 150, 10, float64(mph))
}

// drawSpeedGauge fills a bar green to yellow to red as speed rises
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height float64, mph float64) {
	ratio := math.Min(mph/100, 1.0)

	fillRect(screen, x-1, y-1, width+2, height+2, color.RGBA{150, 150, 150, 255})
	fillRect(screen, x, y, width, height, color.RGBA{40, 40, 40, 255})

	var bar color.RGBA
	if ratio < 0.5 {
		r := ratio / 0.5
		bar = color.RGBA{uint8(100 + r*155), 255, 100, 255}
	} else {
		r := (ratio - 0.5) / 0.5
		bar = color.RGBA{255, uint8(255 - r*155), uint8(100 - r*100), 255}
	}
	fillRect(screen, x, y, width*ratio, height, bar)
}

// drawPitStopPanel shows which service is being used and how far along
// the refill is.
func drawPitStopPanel(screen *ebiten.Image, snap game.Snapshot) {
	kind, ok := snap.Vehicle.ActiveStop()
	if !ok {
		return
	}
	width := float64(screen.Bounds().Dx())
	panelW, panelH := 260.0, 70.0
	x, y := width/2-panelW/2, float64(screen.Bounds().Dy())-panelH-20

	fillRect(screen, x, y, panelW, panelH, color.RGBA{20, 20, 30, 200})
	title := fmt.Sprintf("%s STOP", stopLabels[kind])
	drawTextCentered(screen, title, width/2, y+18, 20, stopColors[kind])

	fillRect(screen, x+20, y+40, panelW-40, 14, barBackground)
	fillRect(screen, x+20, y+40, (panelW-40)*snap.PitStopProgress, 14, stopColors[kind])
}
