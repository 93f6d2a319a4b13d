package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/golangdaddy/truckin/pkg/clock"
	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/models"
	"github.com/golangdaddy/truckin/pkg/random"
	"github.com/golangdaddy/truckin/pkg/road"
	"github.com/golangdaddy/truckin/pkg/traffic"
	"github.com/golangdaddy/truckin/pkg/vehicle"
)

// Lane divider dashes
const (
	markerCount   = 20
	markerSpacing = 60
	markerWidth   = 40
)

// World is one play session: the truck, the road around it and the
// run's bookkeeping. It is driven one frame at a time by Step and is not
// safe for concurrent use.
type World struct {
	cfg  *config.Config
	log  *zap.Logger
	src  random.Source
	seed int64
	dt   time.Duration

	state    State
	cause    Cause
	odometer float64 // Sum of per-frame speeds this run

	clock   *clock.Clock
	pool    *models.ResourcePool
	traffic *traffic.Field
	stops   *road.StopField
	truck   *vehicle.Controller
	ledger  *models.DeliveryLedger
	markers *road.Markers
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		w.log = l
	}
}

// WithSource replaces the seeded random source, for reproducible tests.
func WithSource(src random.Source) Option {
	return func(w *World) {
		w.src = src
	}
}

// New builds a world waiting on the start screen.
func New(cfg *config.Config, opts ...Option) *World {
	w := &World{
		cfg: cfg,
		log: zap.NewNop(),
		dt:  cfg.Sim.Tick(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.src == nil {
		w.seed = random.Seed(cfg.Sim.Seed)
		w.src = random.New(w.seed)
	}

	width := float64(cfg.Window.Width)
	w.clock = clock.New()
	w.pool = models.NewResourcePool(cfg.Resources)
	w.traffic = traffic.NewField(cfg.Traffic, cfg.Vehicle.LaneY, width, w.src)
	w.stops = road.NewStopField(cfg.Stops, cfg.Vehicle.ServiceLaneY, w.src)
	w.truck = vehicle.NewController(cfg.Vehicle, cfg.Resources)
	w.ledger = models.NewDeliveryLedger(cfg.Delivery, w.src)
	w.markers = road.NewMarkers(markerCount, markerSpacing, markerWidth, width)
	return w
}

// Start resets every component and begins a run.
func (w *World) Start() {
	w.clock.Reset()
	w.pool.Reset()
	w.traffic.Reset()
	w.stops.Reset()
	w.truck.Reset()
	w.ledger.Reset()
	w.markers.Reset()
	w.odometer = 0
	w.cause = Cause{}
	w.state = StatePlaying

	w.log.Info("game started",
		zap.Int64("seed", w.seed),
		zap.Int("contract", w.ledger.Contract().Target),
	)
}

// Restart begins a fresh run after a game over.
func (w *World) Restart() {
	w.Start()
}

// State returns the current mode.
func (w *World) State() State {
	return w.state
}

// Step advances the world by one frame. Outside of play the only input
// that matters is Start.
func (w *World) Step(in Input) Snapshot {
	if w.state == StatePlaying {
		w.advance(in)
	} else if in.Start {
		w.Start()
	}
	return w.Snapshot()
}

func (w *World) advance(in Input) {
	v := w.truck.Vehicle()
	ahead := w.stops.UncollectedAhead(v.X, w.cfg.Sim.LookAhead)

	w.truck.ApplyThrottle(in.Accelerate, in.Brake)
	w.truck.ApplyLane(in.LaneUp, in.LaneDown, ahead)
	w.truck.Ease()

	speed := w.truck.Vehicle().Speed
	delta := speed * w.cfg.Sim.DistanceScale
	w.odometer += speed

	w.pool.Deplete(delta)
	if r, ok := w.pool.Exhausted(); ok {
		w.gameOver(Cause{Exhausted: true, Resource: r})
		return
	}

	w.ledger.Advance(delta)
	if paid, ok := w.ledger.TrySettle(); ok {
		w.log.Debug("contract settled",
			zap.Int("paid", paid),
			zap.Int("next", w.ledger.Contract().Target),
		)
	}

	w.traffic.Update(w.dt, speed)

	w.stops.Advance(speed)
	w.stops.AdvanceCadences(delta)
	for _, t := range w.stops.SpawnDue() {
		w.log.Debug("stop spawned",
			zap.Stringer("kind", t),
			zap.Float64("distance", w.Distance()),
		)
	}
	w.stops.Reap(v.X)

	if w.collide() {
		return
	}

	w.truck.UpdatePitStop(w.pool)
	w.clock.Tick(w.dt)
	w.markers.Advance(speed)
}

// collide resolves overlaps with the truck. Hitting traffic ends the run
// and reports true; touching an uncollected stop starts a pit stop.
func (w *World) collide() bool {
	box := w.truck.Vehicle().Bounds()

	for _, o := range w.traffic.Obstacles() {
		if box.Overlaps(o.Bounds()) {
			w.gameOver(Cause{Collision: true})
			return true
		}
	}

	for i, s := range w.stops.Stops() {
		if s.Collected || !box.Overlaps(s.Bounds()) {
			continue
		}
		if t, ok := w.stops.Collect(i); ok {
			w.truck.EnterPitStop(t)
		}
	}
	return false
}

func (w *World) gameOver(cause Cause) {
	w.state = StateGameOver
	w.cause = cause
	w.log.Info("game over",
		zap.Stringer("cause", cause),
		zap.Int("money", w.ledger.Money()),
		zap.Float64("distance", w.Distance()),
		zap.Int("seconds", w.clock.Seconds()),
	)
}

// Distance returns the total distance driven this run.
func (w *World) Distance() float64 {
	return w.odometer * w.cfg.Sim.DistanceScale
}

// Snapshot captures the world for rendering.
func (w *World) Snapshot() Snapshot {
	v := w.truck.Vehicle()
	return Snapshot{
		State:            w.state,
		Vehicle:          v,
		MPH:              w.truck.DisplayMPH(),
		PitStopProgress:  w.truck.PitStopProgress(),
		Resources:        w.pool.Levels(),
		Frame:            w.clock.Frame(),
		PlayTime:         w.clock.Elapsed(),
		Seconds:          w.clock.Seconds(),
		Distance:         w.Distance(),
		Money:            w.ledger.Money(),
		Contract:         w.ledger.Contract(),
		Settled:          w.ledger.Settled(),
		Obstacles:        append([]traffic.Obstacle(nil), w.traffic.Obstacles()...),
		Stops:            append([]road.Stop(nil), w.stops.Stops()...),
		Markers:          append([]road.Marker(nil), w.markers.All()...),
		ServiceAvailable: w.stops.UncollectedAhead(v.X, w.cfg.Sim.LookAhead),
		Cause:            w.cause,
	}
}
