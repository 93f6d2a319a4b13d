package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config is the full game configuration.
type Config struct {
	Window    WindowConfig   `toml:"window" yaml:"window"`
	Sim       SimConfig      `toml:"sim" yaml:"sim"`
	Vehicle   VehicleConfig  `toml:"vehicle" yaml:"vehicle"`
	Resources ResourceConfig `toml:"resources" yaml:"resources"`
	Traffic   TrafficConfig  `toml:"traffic" yaml:"traffic"`
	Stops     StopConfig     `toml:"stops" yaml:"stops"`
	Delivery  DeliveryConfig `toml:"delivery" yaml:"delivery"`
	Logging   LoggingConfig  `toml:"logging" yaml:"logging"`
}

// WindowConfig sizes and titles the game window.
type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// SimConfig holds the frame and distance settings of the simulation.
type SimConfig struct {
	Seed          int64   `toml:"seed" yaml:"seed" env:"TRUCKIN_SEED"` // 0 = seed from the clock
	TPS           int     `toml:"tps" yaml:"tps" env:"TRUCKIN_TPS"`    // reference tick rate the per-frame constants assume
	DistanceScale float64 `toml:"distance_scale" yaml:"distance_scale" env:"TRUCKIN_DISTANCE_SCALE"`
	LookAhead     float64 `toml:"look_ahead" yaml:"look_ahead"` // service lane opens when a stop is this close ahead
}

// Tick returns the duration of one reference frame.
func (s SimConfig) Tick() time.Duration {
	return time.Second / time.Duration(s.TPS)
}

// VehicleConfig tunes the player truck and the lane geometry.
type VehicleConfig struct {
	X            float64   `toml:"x" yaml:"x"`
	Width        float64   `toml:"width" yaml:"width"`
	Height       float64   `toml:"height" yaml:"height"`
	MaxSpeed     float64   `toml:"max_speed" yaml:"max_speed" env:"TRUCKIN_MAX_SPEED"`
	Acceleration float64   `toml:"acceleration" yaml:"acceleration"`
	Deceleration float64   `toml:"deceleration" yaml:"deceleration"` // braking is twice this, coasting half
	Easing       float64   `toml:"easing" yaml:"easing"`             // fraction of the remaining lane gap closed per frame
	LaneY        []float64 `toml:"lane_y" yaml:"lane_y"`             // top, middle, bottom
	ServiceLaneY float64   `toml:"service_lane_y" yaml:"service_lane_y"`
	StartLane    int       `toml:"start_lane" yaml:"start_lane"`
}

// ResourceConfig sets how fast fuel, hunger and sleep drain and refill.
type ResourceConfig struct {
	FuelDistance    float64 `toml:"fuel_distance" yaml:"fuel_distance"` // distance that empties a full tank
	HungerDistance  float64 `toml:"hunger_distance" yaml:"hunger_distance"`
	SleepDistance   float64 `toml:"sleep_distance" yaml:"sleep_distance"`
	ReplenishFrames int     `toml:"replenish_frames" yaml:"replenish_frames"` // frames for a full refill, also the pit stop cap
}

// TrafficConfig controls traffic spawning.
type TrafficConfig struct {
	SpawnInterval time.Duration `toml:"spawn_interval" yaml:"spawn_interval" env:"TRUCKIN_TRAFFIC_INTERVAL"`
	SpawnX        float64       `toml:"spawn_x" yaml:"spawn_x"`
	Margin        float64       `toml:"margin" yaml:"margin"` // reap distance beyond either screen edge
	MinSpeed      float64       `toml:"min_speed" yaml:"min_speed"`
	MaxSpeed      float64       `toml:"max_speed" yaml:"max_speed"`
}

// Range is a uniform draw interval.
type Range struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// StopConfig places service stops and sets their spawn spacing.
type StopConfig struct {
	SpawnX         float64 `toml:"spawn_x" yaml:"spawn_x"`
	TrailingMargin float64 `toml:"trailing_margin" yaml:"trailing_margin"`
	Width          float64 `toml:"width" yaml:"width"`
	Height         float64 `toml:"height" yaml:"height"`
	Fuel           Range   `toml:"fuel" yaml:"fuel"`
	Food           Range   `toml:"food" yaml:"food"`
	Rest           Range   `toml:"rest" yaml:"rest"`
	FirstFuel      float64 `toml:"first_fuel" yaml:"first_fuel"` // thresholds used before the first draw
	FirstFood      float64 `toml:"first_food" yaml:"first_food"`
	FirstRest      float64 `toml:"first_rest" yaml:"first_rest"`
}

// Tier is one band of the contract length distribution.
type Tier struct {
	Weight float64 `toml:"weight" yaml:"weight"`
	Min    int     `toml:"min" yaml:"min"`
	Max    int     `toml:"max" yaml:"max"` // exclusive
}

// DeliveryConfig weights the contract lengths.
type DeliveryConfig struct {
	Tiers []Tier `toml:"tiers" yaml:"tiers"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" env:"TRUCKIN_LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" env:"TRUCKIN_LOG_FORMAT"` // "json" or "console"
}

// Load reads a TOML or YAML file (by extension) over the defaults, then
// applies TRUCKIN_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := decode(path, data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return toml.Unmarshal(data, cfg)
	}
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, r Range) {
		if r.Min <= 0 || r.Max < r.Min {
			errs = append(errs, fmt.Errorf("%s range [%v, %v] is invalid", name, r.Min, r.Max))
		}
	}

	positive("sim.tps", float64(c.Sim.TPS))
	positive("sim.distance_scale", c.Sim.DistanceScale)
	positive("sim.look_ahead", c.Sim.LookAhead)
	positive("vehicle.max_speed", c.Vehicle.MaxSpeed)
	positive("vehicle.acceleration", c.Vehicle.Acceleration)
	positive("vehicle.deceleration", c.Vehicle.Deceleration)
	if c.Vehicle.Easing <= 0 || c.Vehicle.Easing > 1 {
		errs = append(errs, fmt.Errorf("vehicle.easing must be in (0, 1], got %v", c.Vehicle.Easing))
	}
	if len(c.Vehicle.LaneY) != 3 {
		errs = append(errs, fmt.Errorf("vehicle.lane_y needs 3 lanes, got %d", len(c.Vehicle.LaneY)))
	}
	if c.Vehicle.StartLane < 0 || c.Vehicle.StartLane > 2 {
		errs = append(errs, fmt.Errorf("vehicle.start_lane must be 0-2, got %d", c.Vehicle.StartLane))
	}
	positive("resources.fuel_distance", c.Resources.FuelDistance)
	positive("resources.hunger_distance", c.Resources.HungerDistance)
	positive("resources.sleep_distance", c.Resources.SleepDistance)
	positive("resources.replenish_frames", float64(c.Resources.ReplenishFrames))
	positive("traffic.spawn_interval", float64(c.Traffic.SpawnInterval))
	if c.Traffic.MaxSpeed < c.Traffic.MinSpeed {
		errs = append(errs, fmt.Errorf("traffic speed range [%v, %v] is invalid", c.Traffic.MinSpeed, c.Traffic.MaxSpeed))
	}
	ordered("stops.fuel", c.Stops.Fuel)
	ordered("stops.food", c.Stops.Food)
	ordered("stops.rest", c.Stops.Rest)
	if len(c.Delivery.Tiers) == 0 {
		errs = append(errs, errors.New("delivery.tiers must not be empty"))
	}
	for i, t := range c.Delivery.Tiers {
		if t.Weight <= 0 || t.Max <= t.Min {
			errs = append(errs, fmt.Errorf("delivery.tiers[%d] is invalid: %+v", i, t))
		}
	}
	return errors.Join(errs...)
}

// Defaults returns the tuning the game ships with.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Truckin'",
		},
		Sim: SimConfig{
			TPS:           60,
			DistanceScale: 0.02,
			LookAhead:     300,
		},
		Vehicle: VehicleConfig{
			X:            400,
			Width:        80,
			Height:       60,
			MaxSpeed:     10, // shown as 100 mph
			Acceleration: 0.2,
			Deceleration: 0.15,
			Easing:       0.15,
			LaneY:        []float64{200, 300, 400},
			ServiceLaneY: 120,
			StartLane:    1,
		},
		Resources: ResourceConfig{
			FuelDistance:    1000,
			HungerDistance:  1500,
			SleepDistance:   1250,
			ReplenishFrames: 300,
		},
		Traffic: TrafficConfig{
			SpawnInterval: 80 * time.Second / 60, // 80 frames at 60 TPS
			SpawnX:        -100,
			Margin:        200,
			MinSpeed:      3,
			MaxSpeed:      11,
		},
		Stops: StopConfig{
			SpawnX:         900,
			TrailingMargin: 200,
			Width:          80,
			Height:         60,
			Fuel:           Range{Min: 5, Max: 10},
			Food:           Range{Min: 7, Max: 12},
			Rest:           Range{Min: 6, Max: 11},
			FirstFuel:      2,
			FirstFood:      3,
			FirstRest:      4,
		},
		Delivery: DeliveryConfig{
			Tiers: []Tier{
				{Weight: 0.6, Min: 100, Max: 800},
				{Weight: 0.3, Min: 800, Max: 1500},
				{Weight: 0.1, Min: 1500, Max: 2800},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
