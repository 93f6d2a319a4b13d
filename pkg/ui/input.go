package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/truckin/pkg/game"
)

// ReadInput samples the keyboard and mouse for one frame. Driving keys
// report their held state; start fires only on the frame it is pressed.
func ReadInput() game.Input {
	return game.Input{
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Brake:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		LaneUp:     ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		LaneDown:   ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Start: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}
