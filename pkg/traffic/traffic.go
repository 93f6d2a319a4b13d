// Package traffic runs the through-traffic sharing the highway with the
// player: spawning from behind on a timed cadence, relative motion, and
// retiring vehicles that leave the visible span.
package traffic

import (
	"image/color"
	"time"

	"github.com/golangdaddy/truckin/pkg/clock"
	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/geom"
	"github.com/golangdaddy/truckin/pkg/random"
)

// Kind is the body type of a traffic vehicle
type Kind int

const (
	Car Kind = iota
	Truck
	kindCount
)

func (k Kind) String() string {
	if k == Truck {
		return "truck"
	}
	return "car"
}

// Size returns the width and height of a vehicle of this kind.
func (k Kind) Size() (width, height float64) {
	if k == Truck {
		return 90, 60
	}
	return 60, 50
}

// truckColor is the paint every traffic truck wears; cars are random.
var truckColor = color.RGBA{0x4a, 0x4a, 0x4a, 255}

// Obstacle is a traffic vehicle in screen space
type Obstacle struct {
	X, Y          float64    // Centre position
	Width, Height float64    // Body size
	Lane          int        // Lane index (0 = top)
	Kind          Kind       // Car or truck
	Speed         float64    // Own road speed, independent of the player
	Color         color.RGBA // Body colour
}

// Bounds returns the obstacle's collision box.
func (o Obstacle) Bounds() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Field owns the active set of traffic vehicles
type Field struct {
	cfg         config.TrafficConfig
	laneY       []float64 // Centre y of each through lane
	screenWidth float64
	src         random.Source
	spawn       clock.Cadence
	obstacles   []Obstacle
}

// NewField creates an empty traffic field over the given lanes.
func NewField(cfg config.TrafficConfig, laneY []float64, screenWidth float64, src random.Source) *Field {
	return &Field{
		cfg:         cfg,
		laneY:       laneY,
		screenWidth: screenWidth,
		src:         src,
		spawn:       clock.NewCadence(cfg.SpawnInterval),
		obstacles:   []Obstacle{},
	}
}

// Reset drops all traffic and restarts the spawn cadence
func (f *Field) Reset() {
	f.obstacles = []Obstacle{}
	f.spawn.Reset()
}

// Update runs one frame: move everything, spawn whatever the cadence says is
// due, then retire vehicles that left the road.
func (f *Field) Update(dt time.Duration, playerSpeed float64) {
	f.Advance(playerSpeed)
	for n := f.spawn.Advance(dt); n > 0; n-- {
		f.SpawnOne()
	}
	f.Reap()
}

// SpawnOne adds a vehicle behind the player in a random lane with a random
// kind and a speed drawn without regard to the player's.
func (f *Field) SpawnOne() Obstacle {
	lane := f.src.Intn(len(f.laneY))
	kind := Kind(f.src.Intn(int(kindCount)))
	speed := f.cfg.MinSpeed + f.src.Float64()*(f.cfg.MaxSpeed-f.cfg.MinSpeed)

	paint := truckColor
	if kind == Car {
		rgb := f.src.Intn(0xFFFFFF)
		paint = color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 255}
	}

	width, height := kind.Size()
	o := Obstacle{
		X:      f.cfg.SpawnX,
		Y:      f.laneY[lane],
		Width:  width,
		Height: height,
		Lane:   lane,
		Kind:   kind,
		Speed:  speed,
		Color:  paint,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Place adds a vehicle as-is.
func (f *Field) Place(o Obstacle) {
	f.obstacles = append(f.obstacles, o)
}

// Advance moves each vehicle by its speed relative to the player.
func (f *Field) Advance(playerSpeed float64) {
	for i := range f.obstacles {
		f.obstacles[i].X += f.obstacles[i].Speed - playerSpeed
	}
}

// Reap keeps only vehicles within the margin beyond either screen edge.
func (f *Field) Reap() {
	active := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X < -f.cfg.Margin || o.X > f.screenWidth+f.cfg.Margin {
			continue
		}
		active = append(active, o)
	}
	f.obstacles = active
}

// Obstacles returns the active vehicles. The slice is only valid until the
// next update.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}
