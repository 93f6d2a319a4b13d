package road

import "github.com/golangdaddy/truckin/pkg/config"

// Lane is a vertical position on the highway
type Lane int

const (
	LaneTop Lane = iota
	LaneMiddle
	LaneBottom
	LaneService // Off-road lane above the top lane, only open near a stop
)

func (l Lane) String() string {
	switch l {
	case LaneTop:
		return "top"
	case LaneMiddle:
		return "middle"
	case LaneBottom:
		return "bottom"
	case LaneService:
		return "service"
	}
	return "unknown"
}

// Layout maps lanes to screen positions
type Layout struct {
	LaneY    [3]float64 // Centre y of the top, middle and bottom lanes
	ServiceY float64    // Centre y of the service lane
}

// NewLayout builds a layout from vehicle settings.
func NewLayout(cfg config.VehicleConfig) Layout {
	var l Layout
	copy(l.LaneY[:], cfg.LaneY)
	l.ServiceY = cfg.ServiceLaneY
	return l
}

// CenterY returns the y the vehicle settles at in lane.
func (l Layout) CenterY(lane Lane) float64 {
	if lane == LaneService {
		return l.ServiceY
	}
	if lane < LaneTop {
		lane = LaneTop
	}
	if lane > LaneBottom {
		lane = LaneBottom
	}
	return l.LaneY[lane]
}

// Marker is one dash of the lane divider
type Marker struct {
	X     float64
	Width float64
}

// Markers scrolls the lane divider dashes past the fixed player.
type Markers struct {
	markers     []Marker
	count       int
	spacing     float64
	width       float64
	screenWidth float64
}

// NewMarkers lays out count dashes spacing apart from x=0.
func NewMarkers(count int, spacing, width, screenWidth float64) *Markers {
	m := &Markers{
		count:       count,
		spacing:     spacing,
		width:       width,
		screenWidth: screenWidth,
	}
	m.Reset()
	return m
}

// Reset returns every dash to its starting position
func (m *Markers) Reset() {
	m.markers = make([]Marker, m.count)
	for i := range m.markers {
		m.markers[i] = Marker{X: float64(i) * m.spacing, Width: m.width}
	}
}

// Advance scrolls the dashes left by speed, wrapping those that leave the
// left edge back to the right edge.
func (m *Markers) Advance(speed float64) {
	for i := range m.markers {
		m.markers[i].X -= speed
		if m.markers[i].X < -m.spacing {
			m.markers[i].X = m.screenWidth
		}
	}
}

// All returns the dashes.
func (m *Markers) All() []Marker {
	return m.markers
}
