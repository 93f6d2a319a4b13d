package game

import (
	"fmt"
	"math"
	"time"

	"github.com/golangdaddy/truckin/pkg/models"
	"github.com/golangdaddy/truckin/pkg/road"
	"github.com/golangdaddy/truckin/pkg/traffic"
	"github.com/golangdaddy/truckin/pkg/vehicle"
)

// hintFlashFrames is the on/off period of the pit stop hint.
const hintFlashFrames = 15

// Snapshot is everything the presentation layer needs to draw a frame.
// Slices are copies and safe to keep.
type Snapshot struct {
	State            State
	Vehicle          vehicle.Vehicle
	MPH              int
	PitStopProgress  float64 // In [0, 1] while in a pit stop
	Resources        models.Levels
	Frame            uint64
	PlayTime         time.Duration
	Seconds          int     // Whole seconds of play
	Distance         float64 // Total distance driven this run
	Money            int
	Contract         models.Contract
	Settled          int // Contracts completed this run
	Obstacles        []traffic.Obstacle
	Stops            []road.Stop
	Markers          []road.Marker
	ServiceAvailable bool // An uncollected stop is inside the look-ahead window
	Cause            Cause
}

// TimeLabel formats the play time as m:ss.
func (s Snapshot) TimeLabel() string {
	return fmt.Sprintf("%d:%02d", s.Seconds/60, s.Seconds%60)
}

// Miles returns the whole distance units driven.
func (s Snapshot) Miles() int {
	return int(math.Floor(s.Distance))
}

// DeliveryLeft returns the distance left on the contract, rounded up.
func (s Snapshot) DeliveryLeft() int {
	return int(math.Ceil(s.Contract.Remaining))
}

// ShowPitStopHint reports whether the flashing pit stop hint is lit this
// frame. It only shows from the top lane while a stop is in reach.
func (s Snapshot) ShowPitStopHint() bool {
	if !s.ServiceAvailable || s.Vehicle.Lane != road.LaneTop {
		return false
	}
	return (s.Frame/hintFlashFrames)%2 == 0
}
