package vehicle

import (
	"math"

	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/models"
	"github.com/golangdaddy/truckin/pkg/road"
)

// Controller owns the truck: speed, lane changes, easing between lanes and
// the pit stop sub-state.
type Controller struct {
	cfg             config.VehicleConfig
	layout          road.Layout
	replenishFrames int
	replenishRate   float64 // Resource gained per pit stop frame
	vehicle         Vehicle

	// Lane intents fire once per press: a press latches a pending intent
	// that is cleared when it is used or the key is released.
	upHeld, downHeld       bool
	upPending, downPending bool
}

// NewController creates a stationary truck in the starting lane.
func NewController(cfg config.VehicleConfig, res config.ResourceConfig) *Controller {
	c := &Controller{
		cfg:             cfg,
		layout:          road.NewLayout(cfg),
		replenishFrames: res.ReplenishFrames,
		replenishRate:   models.MaxLevel / float64(res.ReplenishFrames),
	}
	c.Reset()
	return c
}

// Reset puts a fresh truck in the starting lane
func (c *Controller) Reset() {
	start := road.Lane(c.cfg.StartLane)
	c.vehicle = Vehicle{
		X:      c.cfg.X,
		Y:      c.layout.CenterY(start),
		Width:  c.cfg.Width,
		Height: c.cfg.Height,
		Lane:   start,
	}
	c.upHeld, c.downHeld = false, false
	c.upPending, c.downPending = false, false
}

// ApplyThrottle updates speed for one frame. Accelerate wins over brake;
// with neither the truck coasts down at half the natural deceleration.
func (c *Controller) ApplyThrottle(accelerate, brake bool) {
	v := &c.vehicle
	switch {
	case accelerate:
		v.Speed = math.Min(v.Speed+c.cfg.Acceleration, c.cfg.MaxSpeed)
	case brake:
		v.Speed = math.Max(v.Speed-c.cfg.Deceleration*2, 0)
	default:
		v.Speed = math.Max(v.Speed-c.cfg.Deceleration*0.5, 0)
	}
}

// ApplyLane resolves lane intents for one frame. up and down are the held
// state of the keys; canEnterService reports whether an uncollected stop
// is close ahead.
func (c *Controller) ApplyLane(up, down, canEnterService bool) {
	c.latch(up, down)
	v := &c.vehicle

	if v.Lane != road.LaneService {
		if c.upPending && v.Lane > road.LaneTop && !v.InPitStop {
			v.Lane--
			c.upPending = false
		}
		if c.downPending && v.Lane < road.LaneBottom && !v.InPitStop {
			v.Lane++
			c.downPending = false
		}
		if c.upPending && v.Lane == road.LaneTop && canEnterService && !v.InPitStop {
			v.Lane = road.LaneService
			c.upPending = false
		}
		return
	}

	if c.downPending && !v.InPitStop {
		v.Lane = road.LaneTop
		c.downPending = false
	}
	// Nothing is above the service lane.
	c.upPending = false

	if !canEnterService && !v.InPitStop {
		v.Lane = road.LaneTop
	}
}

func (c *Controller) latch(up, down bool) {
	if up && !c.upHeld {
		c.upPending = true
	}
	if !up {
		c.upPending = false
	}
	if down && !c.downHeld {
		c.downPending = true
	}
	if !down {
		c.downPending = false
	}
	c.upHeld, c.downHeld = up, down
}

// Ease moves the truck a fixed fraction of the way to its lane's centre.
func (c *Controller) Ease() {
	target := c.layout.CenterY(c.vehicle.Lane)
	c.vehicle.Y += (target - c.vehicle.Y) * c.cfg.Easing
}

// EnterPitStop starts refilling the resource served by t.
func (c *Controller) EnterPitStop(t road.ServiceType) {
	c.vehicle.InPitStop = true
	c.vehicle.PitStopTimer = 0
	c.vehicle.StopType = t
}

// UpdatePitStop refills one frame's worth of the active resource. The pit
// stop ends when the timer hits its cap or the resource is full, whichever
// comes first; it reports whether it ended this frame.
func (c *Controller) UpdatePitStop(pool *models.ResourcePool) bool {
	v := &c.vehicle
	if !v.InPitStop {
		return false
	}
	v.PitStopTimer++
	r := v.StopType.Replenishes()
	pool.Replenish(r, c.replenishRate)

	if v.PitStopTimer >= c.replenishFrames || pool.Full(r) {
		v.InPitStop = false
		v.PitStopTimer = 0
		v.StopType = 0
		return true
	}
	return false
}

// PitStopProgress returns how far through the timer cap the pit stop is, in [0, 1].
func (c *Controller) PitStopProgress() float64 {
	if !c.vehicle.InPitStop {
		return 0
	}
	return float64(c.vehicle.PitStopTimer) / float64(c.replenishFrames)
}

// DisplayMPH converts speed to the 0-100 mph shown on the dash.
func (c *Controller) DisplayMPH() int {
	return int(math.Floor(c.vehicle.Speed / c.cfg.MaxSpeed * 100))
}

// SetSpeed forces the speed, clamped to [0, MaxSpeed].
func (c *Controller) SetSpeed(speed float64) {
	c.vehicle.Speed = math.Max(0, math.Min(speed, c.cfg.MaxSpeed))
}

// Place moves the truck straight into lane with no easing.
func (c *Controller) Place(lane road.Lane) {
	c.vehicle.Lane = lane
	c.vehicle.Y = c.layout.CenterY(lane)
}

// Vehicle returns a copy of the truck's state.
func (c *Controller) Vehicle() Vehicle {
	return c.vehicle
}

// Layout returns the lane positions the controller steers between.
func (c *Controller) Layout() road.Layout {
	return c.layout
}
