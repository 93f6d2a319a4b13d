package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/truckin/pkg/background"
	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/game"
	"github.com/golangdaddy/truckin/pkg/road"
)

var (
	asphaltDark  = color.RGBA{0x2a, 0x2a, 0x2a, 255}
	asphalt      = color.RGBA{0x3a, 0x3a, 0x3a, 255}
	pitAreaColor = color.RGBA{0x1a, 0x1a, 0x1a, 255}
	markerYellow = color.RGBA{0xff, 0xff, 0x00, 255}

	stopColors = map[road.ServiceType]color.RGBA{
		road.ServiceTypeFuel: {0x00, 0xff, 0x00, 255},
		road.ServiceTypeFood: {0xff, 0x99, 0x00, 255},
		road.ServiceTypeRest: {0x00, 0x99, 0xff, 255},
	}
	stopLabels = map[road.ServiceType]string{
		road.ServiceTypeFuel: "GAS",
		road.ServiceTypeFood: "FOOD",
		road.ServiceTypeRest: "REST",
	}
)

const (
	laneHalfHeight = 50  // Half the height of a through lane
	markerHeight   = 4   // Lane divider thickness
	vergeSeed      = 101 // Scenery is the same every run
)

// GameplayScreen draws the road and everything on it
type GameplayScreen struct {
	cfg      *config.Config
	verge    *ebiten.Image
	roadTop  float64
	roadBot  float64
	dividers [2]float64
}

// NewGameplayScreen lays the road out from the lane positions in cfg
func NewGameplayScreen(cfg *config.Config) *GameplayScreen {
	lanes := cfg.Vehicle.LaneY
	gs := &GameplayScreen{
		cfg:     cfg,
		roadTop: lanes[0] - laneHalfHeight,
		roadBot: lanes[len(lanes)-1] + laneHalfHeight,
	}
	gs.dividers[0] = (lanes[0]+lanes[1])/2 - markerHeight/2
	gs.dividers[1] = (lanes[1]+lanes[2])/2 - markerHeight/2

	vergeHeight := cfg.Window.Height - int(gs.roadBot)
	if vergeHeight > 0 {
		gen := background.NewGenerator(cfg.Window.Width, vergeHeight)
		gs.verge = gen.GenerateVerge(vergeSeed)
	}
	return gs
}

// Draw renders one frame of play
func (gs *GameplayScreen) Draw(screen *ebiten.Image, snap game.Snapshot) {
	width := float64(screen.Bounds().Dx())
	screen.Fill(asphaltDark)

	gs.drawRoad(screen, snap, width)
	gs.drawStops(screen, snap)
	gs.drawTraffic(screen, snap)
	gs.drawTruck(screen, snap)
	drawHUD(screen, snap)

	if snap.ShowPitStopHint() {
		drawTextCentered(screen, "^ PIT STOP", width/2, 180, 30, brandPurple)
	}
	if snap.Vehicle.InPitStop {
		drawPitStopPanel(screen, snap)
	}
}

func (gs *GameplayScreen) drawRoad(screen *ebiten.Image, snap game.Snapshot, width float64) {
	fillRect(screen, 0, gs.roadTop, width, gs.roadBot-gs.roadTop, asphalt)
	for _, m := range snap.Markers {
		for _, y := range gs.dividers {
			fillRect(screen, m.X, y, m.Width, markerHeight, markerYellow)
		}
	}
	fillRect(screen, 0, 0, width, gs.roadTop, pitAreaColor)

	if gs.verge == nil {
		return
	}
	// The verge scrolls with the road and wraps every screen width.
	scrolled := snap.Distance / gs.cfg.Sim.DistanceScale
	offset := math.Mod(scrolled, width)
	for _, x := range []float64{-offset, width - offset} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, gs.roadBot)
		screen.DrawImage(gs.verge, op)
	}
}

func (gs *GameplayScreen) drawStops(screen *ebiten.Image, snap game.Snapshot) {
	for _, s := range snap.Stops {
		if s.Collected {
			continue
		}
		fillCentered(screen, s.X, s.Y, s.Width, s.Height, stopColors[s.Type])
		drawTextCentered(screen, stopLabels[s.Type], s.X, s.Y, 14, color.Black)
	}
}

func (gs *GameplayScreen) drawTraffic(screen *ebiten.Image, snap game.Snapshot) {
	for _, o := range snap.Obstacles {
		drawVehicle(screen, o.X, o.Y, o.Width, o.Height, o.Color)
	}
}

func (gs *GameplayScreen) drawTruck(screen *ebiten.Image, snap game.Snapshot) {
	v := snap.Vehicle
	drawRig(screen, v.X, v.Y, v.Width, v.Height, brandPurple)
}
