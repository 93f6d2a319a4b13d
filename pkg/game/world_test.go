package game

import (
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/models"
	"github.com/golangdaddy/truckin/pkg/road"
	"github.com/golangdaddy/truckin/pkg/traffic"
)

// newWorld returns a started world. tune may adjust the defaults first.
func newWorld(t *testing.T, tune func(*config.Config)) *World {
	t.Helper()
	cfg := config.Defaults()
	cfg.Sim.Seed = 1
	if tune != nil {
		tune(cfg)
	}
	w := New(cfg, WithLogger(zaptest.NewLogger(t)))
	w.Start()
	return w
}

// noTraffic keeps the road empty for long scenarios.
func noTraffic(cfg *config.Config) {
	cfg.Traffic.SpawnInterval = time.Hour
}

func TestStartScreenIgnoresDriving(t *testing.T) {
	w := New(config.Defaults(), WithLogger(zaptest.NewLogger(t)))

	snap := w.Step(Input{Accelerate: true, LaneUp: true})
	if snap.State != StateStart {
		t.Fatalf("expected start state, got %s", snap.State)
	}
	if snap.Vehicle.Speed != 0 || snap.Frame != 0 {
		t.Fatalf("expected nothing to advance, got speed %v frame %d", snap.Vehicle.Speed, snap.Frame)
	}

	snap = w.Step(Input{Start: true})
	if snap.State != StatePlaying {
		t.Fatalf("expected playing after start, got %s", snap.State)
	}
}

func TestOneFrameOfAcceleration(t *testing.T) {
	w := newWorld(t, nil)
	snap := w.Step(Input{Accelerate: true})
	if snap.Vehicle.Speed != 0.2 {
		t.Fatalf("expected speed 0.2, got %v", snap.Vehicle.Speed)
	}
	if snap.Frame != 1 {
		t.Fatalf("expected frame 1, got %d", snap.Frame)
	}
}

func TestEmptyFuelEndsGame(t *testing.T) {
	w := newWorld(t, nil)
	w.pool.Set(models.Fuel, 0)

	snap := w.Step(Input{})
	if snap.State != StateGameOver {
		t.Fatalf("expected game over, got %s", snap.State)
	}
	if got := snap.Cause.String(); got != "exhausted:fuel" {
		t.Fatalf("expected exhausted:fuel, got %q", got)
	}
	if snap.Frame != 0 {
		t.Fatalf("expected the frame to stop before the clock ticked, got %d", snap.Frame)
	}

	again := w.Step(Input{Accelerate: true})
	if again.State != StateGameOver || again.Vehicle.Speed != 0 {
		t.Fatalf("expected game over to be frozen, got %s at speed %v", again.State, again.Vehicle.Speed)
	}
}

func TestResourcesStayInRange(t *testing.T) {
	w := newWorld(t, noTraffic)
	w.pool.Set(models.Fuel, 0.5)

	for i := 0; i < 1000 && w.State() == StatePlaying; i++ {
		snap := w.Step(Input{Accelerate: true})
		for _, level := range []float64{snap.Resources.Fuel, snap.Resources.Hunger, snap.Resources.Sleep} {
			if level < 0 || level > models.MaxLevel {
				t.Fatalf("frame %d: level %v out of range", i, level)
			}
		}
	}
	if w.State() != StateGameOver {
		t.Fatal("expected fuel to run out")
	}
}

func TestTrafficCollisionEndsGame(t *testing.T) {
	for _, kind := range []traffic.Kind{traffic.Car, traffic.Truck} {
		t.Run(kind.String(), func(t *testing.T) {
			w := newWorld(t, nil)
			v := w.truck.Vehicle()
			width, height := kind.Size()
			w.traffic.Place(traffic.Obstacle{
				X: v.X, Y: v.Y, Width: width, Height: height, Kind: kind, Lane: 1,
			})

			snap := w.Step(Input{})
			if snap.State != StateGameOver {
				t.Fatalf("expected game over, got %s", snap.State)
			}
			if !snap.Cause.Collision {
				t.Fatalf("expected collision cause, got %q", snap.Cause)
			}
		})
	}
}

func TestStopCollisionStartsPitStop(t *testing.T) {
	w := newWorld(t, noTraffic)
	w.pool.Set(models.Hunger, 50)
	w.truck.Place(road.LaneService)
	w.stops.Place(road.Stop{X: 430, Y: 120, Width: 80, Height: 60, Type: road.ServiceTypeFood})

	snap := w.Step(Input{})
	if snap.State != StatePlaying {
		t.Fatalf("expected a stop never to end the game, got %s", snap.State)
	}
	if !snap.Stops[0].Collected {
		t.Fatal("expected the stop to be collected")
	}
	kind, ok := snap.Vehicle.ActiveStop()
	if !ok || kind != road.ServiceTypeFood {
		t.Fatalf("expected a food pit stop, got %s %v", kind, ok)
	}

	// A collected stop cannot start another pit stop.
	w.truck.UpdatePitStop(w.pool)
	for w.truck.Vehicle().InPitStop {
		w.truck.UpdatePitStop(w.pool)
	}
	w.Step(Input{})
	if w.truck.Vehicle().InPitStop {
		t.Fatal("expected the collected stop to stay spent")
	}
}

func TestPitStopRefillsFuel(t *testing.T) {
	w := newWorld(t, noTraffic)
	w.pool.Set(models.Fuel, 40)
	w.truck.Place(road.LaneService)
	w.stops.Place(road.Stop{X: 430, Y: 120, Width: 80, Height: 60, Type: road.ServiceTypeFuel})

	var snap Snapshot
	for i := 0; i < 300; i++ {
		snap = w.Step(Input{})
	}

	if snap.State != StatePlaying {
		t.Fatalf("expected to still be playing, got %s (%s)", snap.State, snap.Cause)
	}
	if snap.Resources.Fuel != 100 {
		t.Fatalf("expected fuel 100, got %v", snap.Resources.Fuel)
	}
	if snap.Vehicle.InPitStop {
		t.Fatal("expected the pit stop to be over")
	}
}

func TestDrivingIntoSpawnedStop(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := config.Defaults()
	cfg.Sim.Seed = 1
	noTraffic(cfg)
	w := New(cfg, WithLogger(zap.New(core)))
	w.Start()
	w.truck.Place(road.LaneTop)

	held := Input{Accelerate: true, LaneUp: true}
	var snap Snapshot
	enteredService := false
	for i := 0; i < 600 && !snap.Vehicle.InPitStop; i++ {
		snap = w.Step(held)
		if snap.State != StatePlaying {
			t.Fatalf("frame %d: expected to keep playing, got %s (%s)", i, snap.State, snap.Cause)
		}
		spawned := logs.FilterMessage("stop spawned").Len()
		if len(snap.Stops) != spawned {
			t.Fatalf("frame %d: %d stops on the road after %d spawns", i, len(snap.Stops), spawned)
		}
		if snap.Vehicle.Lane == road.LaneService {
			enteredService = true
		}
	}

	if logs.FilterMessage("stop spawned").Len() == 0 {
		t.Fatal("expected at least one stop to spawn")
	}
	if !enteredService {
		t.Fatal("expected the held key to take the truck into the service lane")
	}
	if !snap.Vehicle.InPitStop {
		t.Fatal("expected the truck to reach a pit stop")
	}
	if kind, _ := snap.Vehicle.ActiveStop(); kind != road.ServiceTypeFuel {
		t.Fatalf("expected the first fuel stop to be reached first, got %s", kind)
	}
	collected := 0
	for _, s := range snap.Stops {
		if s.Collected {
			collected++
		}
	}
	if collected != 1 {
		t.Fatalf("expected one collected stop, got %d", collected)
	}
}

func TestDistanceIsSumOfSpeeds(t *testing.T) {
	w := newWorld(t, noTraffic)

	sum := 0.0
	var snap Snapshot
	for i := 0; i < 240; i++ {
		snap = w.Step(Input{Accelerate: true})
		sum += snap.Vehicle.Speed
	}

	if snap.Vehicle.Speed != 10 {
		t.Fatalf("expected speed to saturate at 10, got %v", snap.Vehicle.Speed)
	}
	if want := sum * 0.02; snap.Distance != want {
		t.Fatalf("expected distance %v, got %v", want, snap.Distance)
	}
}

func TestLaneUpFromTopNeedsStop(t *testing.T) {
	w := newWorld(t, nil)
	w.truck.Place(road.LaneTop)

	snap := w.Step(Input{LaneUp: true})
	if snap.Vehicle.Lane != road.LaneTop {
		t.Fatalf("expected to stay in top lane, got %s", snap.Vehicle.Lane)
	}
	if snap.ServiceAvailable {
		t.Fatal("expected no service lane without a stop")
	}
}

func TestLaneUpIntoServiceLane(t *testing.T) {
	w := newWorld(t, nil)
	w.truck.Place(road.LaneTop)
	w.stops.Place(road.Stop{X: 600, Y: 120, Width: 80, Height: 60, Type: road.ServiceTypeRest})

	snap := w.Step(Input{LaneUp: true})
	if snap.Vehicle.Lane != road.LaneService {
		t.Fatalf("expected service lane, got %s", snap.Vehicle.Lane)
	}
	if !snap.ServiceAvailable {
		t.Fatal("expected the service lane to be open")
	}
}

func TestContractSettlesDuringStep(t *testing.T) {
	w := newWorld(t, nil)

	want := 0
	for i := 0; i < 3; i++ {
		c := w.ledger.Contract()
		want += c.Target
		w.ledger.Advance(c.Remaining)
		w.Step(Input{})
	}

	snap := w.Snapshot()
	if snap.Money != want {
		t.Fatalf("expected money %d, got %d", want, snap.Money)
	}
	if snap.Settled != 3 {
		t.Fatalf("expected 3 settled contracts, got %d", snap.Settled)
	}
	if snap.Contract.Remaining != float64(snap.Contract.Target) {
		t.Fatalf("expected a fresh contract, got %+v", snap.Contract)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	w := newWorld(t, noTraffic)
	for i := 0; i < 120; i++ {
		w.Step(Input{Accelerate: true})
	}
	w.traffic.Place(traffic.Obstacle{X: 400, Y: w.truck.Vehicle().Y, Width: 60, Height: 50})
	if w.Step(Input{}).State != StateGameOver {
		t.Fatal("expected game over")
	}

	snap := w.Step(Input{Start: true})
	if snap.State != StatePlaying {
		t.Fatalf("expected playing, got %s", snap.State)
	}
	if snap.Vehicle.Speed != 0 || snap.Vehicle.Lane != road.LaneMiddle {
		t.Fatalf("expected a fresh truck, got %+v", snap.Vehicle)
	}
	if snap.Resources != (models.Levels{Fuel: 100, Hunger: 100, Sleep: 100}) {
		t.Fatalf("expected full resources, got %+v", snap.Resources)
	}
	if len(snap.Obstacles) != 0 || len(snap.Stops) != 0 {
		t.Fatalf("expected empty road, got %d obstacles %d stops", len(snap.Obstacles), len(snap.Stops))
	}
	if snap.Frame != 0 || snap.Distance != 0 || snap.Money != 0 {
		t.Fatalf("expected zeroed counters, got frame %d distance %v money %d", snap.Frame, snap.Distance, snap.Money)
	}
	if snap.Cause != (Cause{}) {
		t.Fatalf("expected cause cleared, got %q", snap.Cause)
	}
}

func TestClockCountsSeconds(t *testing.T) {
	w := newWorld(t, nil)
	var snap Snapshot
	for i := 0; i < 60; i++ {
		snap = w.Step(Input{})
	}
	if snap.Frame != 60 || snap.Seconds != 1 {
		t.Fatalf("expected 60 frames and 1 second, got %d frames %d seconds", snap.Frame, snap.Seconds)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Snapshot {
		cfg := config.Defaults()
		cfg.Sim.Seed = 7
		w := New(cfg)
		w.Start()
		var snap Snapshot
		for i := 0; i < 600; i++ {
			snap = w.Step(Input{Accelerate: i%3 != 0, LaneUp: i%90 == 0, LaneDown: i%140 == 0})
		}
		return snap
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical runs for one seed:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	w := newWorld(t, nil)
	w.traffic.Place(traffic.Obstacle{X: 100, Y: 400, Width: 60, Height: 50})

	snap := w.Snapshot()
	snap.Obstacles[0].X = 999
	if got := w.traffic.Obstacles()[0].X; got != 100 {
		t.Fatalf("expected world untouched by snapshot edits, got x=%v", got)
	}
}

func TestGameOverIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	w := New(config.Defaults(), WithLogger(zap.New(core)))
	w.Start()
	w.pool.Set(models.Sleep, 0)
	w.Step(Input{})

	entries := logs.FilterMessage("game over").All()
	if len(entries) != 1 {
		t.Fatalf("expected one game over entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["cause"]; got != "exhausted:sleep" {
		t.Fatalf("expected cause exhausted:sleep, got %v", got)
	}
}
