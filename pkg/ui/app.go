package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/game"
)

// Screen draws one top level state
type Screen interface {
	Draw(screen *ebiten.Image, snap game.Snapshot)
}

// App implements ebiten.Game around a World. Update steps the world once
// per tick; Draw renders the latest snapshot with the screen for its state.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	world   *game.World
	snap    game.Snapshot
	screens map[game.State]Screen
}

// NewApp creates the shell for world.
func NewApp(cfg *config.Config, world *game.World, log *zap.Logger) *App {
	gameplay := NewGameplayScreen(cfg)
	return &App{
		cfg:   cfg,
		log:   log,
		world: world,
		snap:  world.Snapshot(),
		screens: map[game.State]Screen{
			game.StateStart:    NewTitleScreen(cfg.Window.Title),
			game.StatePlaying:  gameplay,
			game.StateGameOver: NewGameOverScreen(gameplay),
		},
	}
}

// Update handles game logic updates
func (a *App) Update() error {
	prev := a.snap.State
	a.snap = a.world.Step(ReadInput())
	if a.snap.State != prev {
		a.log.Debug("screen changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", a.snap.State),
		)
	}
	return nil
}

// Draw renders the current screen
func (a *App) Draw(screen *ebiten.Image) {
	if s, ok := a.screens[a.snap.State]; ok {
		s.Draw(screen, a.snap)
	}
}

// Layout returns the game's screen dimensions
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
