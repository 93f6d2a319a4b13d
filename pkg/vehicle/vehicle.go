package vehicle

import (
	"github.com/golangdaddy/truckin/pkg/geom"
	"github.com/golangdaddy/truckin/pkg/road"
)

// Vehicle is the player's truck in screen space
type Vehicle struct {
	X, Y          float64          // Centre; X never changes, Y eases toward the lane
	Width, Height float64          // Body size
	Speed         float64          // Pixels per frame, in [0, MaxSpeed]
	Lane          road.Lane        // Lane the truck is heading for
	InPitStop     bool             // Refilling at a stop
	PitStopTimer  int              // Frames spent in the current pit stop
	StopType      road.ServiceType // Meaningful only while InPitStop
}

// Bounds returns the truck's collision box.
func (v Vehicle) Bounds() geom.Rect {
	return geom.Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// ActiveStop returns the service being used, if any.
func (v Vehicle) ActiveStop() (road.ServiceType, bool) {
	return v.StopType, v.InPitStop
}
