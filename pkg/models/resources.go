package models

import "github.com/golangdaddy/truckin/pkg/config"

// MaxLevel is the ceiling of every resource.
const MaxLevel = 100.0

// Resource identifies one of the driver's depleting needs
type Resource int

const (
	Fuel Resource = iota
	Hunger
	Sleep
	resourceCount
)

// Resources lists every resource in display order.
var Resources = [...]Resource{Fuel, Hunger, Sleep}

func (r Resource) String() string {
	switch r {
	case Fuel:
		return "fuel"
	case Hunger:
		return "hunger"
	case Sleep:
		return "sleep"
	}
	return "unknown"
}

// Levels is a copy of the three resource levels for display.
type Levels struct {
	Fuel   float64
	Hunger float64
	Sleep  float64
}

// ResourcePool tracks fuel, hunger and sleep, each in [0, MaxLevel].
type ResourcePool struct {
	levels       [resourceCount]float64
	fullDistance [resourceCount]float64 // distance that drains a full resource
}

// NewResourcePool creates a full pool
func NewResourcePool(cfg config.ResourceConfig) *ResourcePool {
	p := &ResourcePool{
		fullDistance: [resourceCount]float64{
			Fuel:   cfg.FuelDistance,
			Hunger: cfg.HungerDistance,
			Sleep:  cfg.SleepDistance,
		},
	}
	p.Reset()
	return p
}

// Reset refills every resource
func (p *ResourcePool) Reset() {
	for i := range p.levels {
		p.levels[i] = MaxLevel
	}
}

// Deplete drains each resource in proportion to the distance driven.
// Levels stop at zero.
func (p *ResourcePool) Deplete(distance float64) {
	for i := range p.levels {
		p.levels[i] -= distance / p.fullDistance[i] * MaxLevel
		if p.levels[i] < 0 {
			p.levels[i] = 0
		}
	}
}

// Replenish raises one resource by amount, never past MaxLevel
func (p *ResourcePool) Replenish(r Resource, amount float64) {
	p.Set(r, p.levels[r]+amount)
}

// Set forces a resource level, clamped to [0, MaxLevel].
func (p *ResourcePool) Set(r Resource, level float64) {
	if level > MaxLevel {
		level = MaxLevel
	}
	if level < 0 {
		level = 0
	}
	p.levels[r] = level
}

// Level returns the current level of r.
func (p *ResourcePool) Level(r Resource) float64 {
	return p.levels[r]
}

// Full reports whether r is at its ceiling.
func (p *ResourcePool) Full(r Resource) bool {
	return p.levels[r] >= MaxLevel
}

// IsExhausted reports whether any resource has run out
func (p *ResourcePool) IsExhausted() bool {
	_, ok := p.Exhausted()
	return ok
}

// Exhausted returns the first resource at or below zero.
func (p *ResourcePool) Exhausted() (Resource, bool) {
	for _, r := range Resources {
		if p.levels[r] <= 0 {
			return r, true
		}
	}
	return 0, false
}

// Levels returns a snapshot of all three levels.
func (p *ResourcePool) Levels() Levels {
	return Levels{
		Fuel:   p.levels[Fuel],
		Hunger: p.levels[Hunger],
		Sleep:  p.levels[Sleep],
	}
}
