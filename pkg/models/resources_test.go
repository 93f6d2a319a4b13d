package models

import (
	"math"
	"testing"

	"github.com/golangdaddy/truckin/pkg/config"
)

func newPool() *ResourcePool {
	return NewResourcePool(config.Defaults().Resources)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDepleteIsAsymmetric(t *testing.T) {
	p := newPool()
	p.Deplete(10)

	want := Levels{Fuel: 99, Hunger: 100 - 10.0/1500*100, Sleep: 99.2}
	got := p.Levels()
	if !near(got.Fuel, want.Fuel) || !near(got.Hunger, want.Hunger) || !near(got.Sleep, want.Sleep) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDepleteStopsAtZero(t *testing.T) {
	p := newPool()
	p.Deplete(5000)
	for _, r := range Resources {
		if p.Level(r) != 0 {
			t.Fatalf("expected %s at 0, got %v", r, p.Level(r))
		}
	}
	if r, ok := p.Exhausted(); !ok || r != Fuel {
		t.Fatalf("expected fuel reported first, got %s %v", r, ok)
	}
}

func TestReplenishClampsAtCeiling(t *testing.T) {
	p := newPool()
	p.Set(Hunger, 95)
	p.Replenish(Hunger, 20)
	if p.Level(Hunger) != MaxLevel {
		t.Fatalf("expected hunger clamped to %v, got %v", MaxLevel, p.Level(Hunger))
	}
	if !p.Full(Hunger) {
		t.Fatalf("expected hunger to be full")
	}
	if p.Level(Fuel) != MaxLevel || p.Level(Sleep) != MaxLevel {
		t.Fatalf("replenish touched other resources: %+v", p.Levels())
	}
}

func TestIsExhausted(t *testing.T) {
	tests := []struct {
		name  string
		r     Resource
		level float64
		want  bool
	}{
		{"fuel zero", Fuel, 0, true},
		{"sleep negative clamps to zero", Sleep, -3, true},
		{"hunger barely left", Hunger, 0.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPool()
			p.Set(tt.r, tt.level)
			if got := p.IsExhausted(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResetRefills(t *testing.T) {
	p := newPool()
	p.Deplete(300)
	p.Reset()
	if p.Levels() != (Levels{Fuel: 100, Hunger: 100, Sleep: 100}) {
		t.Fatalf("expected full pool, got %+v", p.Levels())
	}
}
