package road

import (
	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/geom"
	"github.com/golangdaddy/truckin/pkg/random"
)

// Stop is a service stop in the service lane. It is stationary on the road,
// so on screen it moves left at the player's speed.
type Stop struct {
	X, Y          float64 // Centre position
	Width, Height float64
	Type          ServiceType
	Collected     bool // Set once the stop has started a pit stop
}

// Bounds returns the stop's collision box.
func (s Stop) Bounds() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// SpawnCadence tracks distance driven since the last stop of one type.
type SpawnCadence struct {
	Accumulated float64 // Distance since the last spawn
	Threshold   float64 // Distance at which the next one spawns
}

// StopField owns the active service stops and their per-type spawn cadence.
type StopField struct {
	cfg      config.StopConfig
	laneY    float64
	src      random.Source
	ranges   [serviceTypeCount]config.Range
	cadences [serviceTypeCount]SpawnCadence
	stops    []Stop
}

// NewStopField creates an empty field whose stops sit at laneY.
func NewStopField(cfg config.StopConfig, laneY float64, src random.Source) *StopField {
	f := &StopField{
		cfg:   cfg,
		laneY: laneY,
		src:   src,
		ranges: [serviceTypeCount]config.Range{
			ServiceTypeFuel: cfg.Fuel,
			ServiceTypeFood: cfg.Food,
			ServiceTypeRest: cfg.Rest,
		},
	}
	f.Reset()
	return f
}

// Reset clears the stops and rewinds every cadence to its first threshold
func (f *StopField) Reset() {
	f.stops = []Stop{}
	f.cadences = [serviceTypeCount]SpawnCadence{
		ServiceTypeFuel: {Threshold: f.cfg.FirstFuel},
		ServiceTypeFood: {Threshold: f.cfg.FirstFood},
		ServiceTypeRest: {Threshold: f.cfg.FirstRest},
	}
}

// AdvanceCadences adds the distance driven to every type's accumulator.
func (f *StopField) AdvanceCadences(distance float64) {
	for i := range f.cadences {
		f.cadences[i].Accumulated += distance
	}
}

// SpawnDue spawns one stop of each type whose accumulator reached its
// threshold, then zeroes that accumulator and draws a new threshold.
// It returns the types spawned.
func (f *StopField) SpawnDue() []ServiceType {
	var spawned []ServiceType
	for _, t := range ServiceTypes {
		c := &f.cadences[t]
		if c.Accumulated < c.Threshold {
			continue
		}
		f.Spawn(t)
		c.Accumulated = 0
		r := f.ranges[t]
		c.Threshold = r.Min + f.src.Float64()*(r.Max-r.Min)
		spawned = append(spawned, t)
	}
	return spawned
}

// Spawn places a stop of type t at the forward spawn offset.
func (f *StopField) Spawn(t ServiceType) Stop {
	s := Stop{
		X:      f.cfg.SpawnX,
		Y:      f.laneY,
		Width:  f.cfg.Width,
		Height: f.cfg.Height,
		Type:   t,
	}
	f.stops = append(f.stops, s)
	return s
}

// Place adds a stop as-is.
func (f *StopField) Place(s Stop) {
	f.stops = append(f.stops, s)
}

// Advance scrolls the stops past the player.
func (f *StopField) Advance(playerSpeed float64) {
	for i := range f.stops {
		f.stops[i].X -= playerSpeed
	}
}

// Reap drops stops the player is past by more than the trailing margin,
// collected or not. Missed stops are gone for good.
func (f *StopField) Reap(playerX float64) {
	active := f.stops[:0]
	for _, s := range f.stops {
		if playerX > s.X+f.cfg.TrailingMargin {
			continue
		}
		active = append(active, s)
	}
	f.stops = active
}

// UncollectedAhead reports whether an uncollected stop lies strictly ahead
// of x within window.
func (f *StopField) UncollectedAhead(x, window float64) bool {
	for _, s := range f.stops {
		if !s.Collected && s.X > x && s.X < x+window {
			return true
		}
	}
	return false
}

// Collect latches stop i as collected. It reports false if the stop was
// already collected, so each stop starts at most one pit stop.
func (f *StopField) Collect(i int) (ServiceType, bool) {
	s := &f.stops[i]
	if s.Collected {
		return s.Type, false
	}
	s.Collected = true
	return s.Type, true
}

// Stops returns the active stops. The slice is only valid until the next
// update.
func (f *StopField) Stops() []Stop {
	return f.stops
}

// Cadence returns the spawn cadence of type t.
func (f *StopField) Cadence(t ServiceType) SpawnCadence {
	return f.cadences[t]
}
