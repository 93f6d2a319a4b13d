package game

import "github.com/golangdaddy/truckin/pkg/models"

// State is the top level mode of a session
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Input is the held state of the controls for one frame. Lane changes
// fire once per press; the vehicle controller does the edge detection.
type Input struct {
	Accelerate bool
	Brake      bool
	LaneUp     bool
	LaneDown   bool
	Start      bool // Start or restart; ignored while playing
}

// Cause records why a run ended.
type Cause struct {
	Collision bool
	Exhausted bool
	Resource  models.Resource // Set when Exhausted
}

func (c Cause) String() string {
	switch {
	case c.Collision:
		return "collision"
	case c.Exhausted:
		return "exhausted:" + c.Resource.String()
	}
	return ""
}
