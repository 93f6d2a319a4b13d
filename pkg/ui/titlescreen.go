package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/truckin/pkg/game"
)

var (
	brandPurple = color.RGBA{0x79, 0x0e, 0xcb, 255}
	textWhite   = color.RGBA{255, 255, 255, 255}
	textGrey    = color.RGBA{0xcc, 0xcc, 0xcc, 255}
)

// TitleScreen is shown before the first run
type TitleScreen struct {
	startTime time.Time
	title     string
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(title string) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		title:     title,
	}
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image, _ game.Snapshot) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(asphaltDark)

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 2

	// Pulse between 1.0 and 1.1 of the base size
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	drawTextCentered(screen, ts.title, centerX, centerY-100, 48*pulse, brandPurple)

	// Blink every half second
	if int(elapsed*2)%2 == 0 {
		drawTextCentered(screen, "Press SPACE or Click to Start!", centerX, centerY, 24, textWhite)
	}

	help := []string{
		"Right/Left: Accelerate/Brake | Up/Down: Change Lanes",
		"Drive through pit stops at top to refuel!",
		"Survive as long as possible!",
	}
	for i, line := range help {
		drawTextCentered(screen, line, centerX, centerY+60+float64(i)*30, 16, textGrey)
	}

	drawDecorativeLines(screen, width, height)
}

// drawDecorativeLines frames the title with two thin rules
func drawDecorativeLines(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	fillRect(screen, 0, float64(height)/6, float64(width), 2, lineColor)
	fillRect(screen, 0, float64(height)*5/6, float64(width), 2, lineColor)
}
