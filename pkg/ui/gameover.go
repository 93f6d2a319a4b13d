package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/truckin/pkg/game"
	"github.com/golangdaddy/truckin/pkg/models"
)

var (
	gameOverRed    = color.RGBA{0xff, 0x00, 0x00, 255}
	exhaustedNames = map[models.Resource]string{
		models.Fuel:   "gas",
		models.Hunger: "food",
		models.Sleep:  "sleep",
	}
)

// GameOverScreen draws the final road under a summary of the run
type GameOverScreen struct {
	gameplay *GameplayScreen
}

// NewGameOverScreen wraps the gameplay renderer
func NewGameOverScreen(gameplay *GameplayScreen) *GameOverScreen {
	return &GameOverScreen{gameplay: gameplay}
}

// Draw renders the overlay
func (gs *GameOverScreen) Draw(screen *ebiten.Image, snap game.Snapshot) {
	gs.gameplay.Draw(screen, snap)

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	fillRect(screen, 0, 0, width, height, color.RGBA{0, 0, 0, 178})

	cx, cy := width/2, height/2
	drawTextCentered(screen, "GAME OVER", cx, cy-80, 48, gameOverRed)
	drawTextCentered(screen, causeLabel(snap.Cause), cx, cy-40, 18, textGrey)
	drawTextCentered(screen, "Time: "+snap.TimeLabel(), cx, cy-10, 24, textWhite)
	drawTextCentered(screen, fmt.Sprintf("Money: $%d", snap.Money), cx, cy+20, 24, textWhite)
	drawTextCentered(screen, fmt.Sprintf("Miles: %d", snap.Miles()), cx, cy+50, 24, textWhite)
	drawTextCentered(screen, "Press SPACE or Click to Restart", cx, cy+100, 20, brandPurple)
}

func causeLabel(c game.Cause) string {
	switch {
	case c.Collision:
		return "You crashed into traffic"
	case c.Exhausted:
		return "You ran out of " + exhaustedNames[c.Resource]
	}
	return ""
}
