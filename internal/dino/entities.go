package dino

import "github.com/vovakirdan/dino-jump/internal/core"

// Player is the jumping character.
type Player struct {
	X, Y     float64 // Top-left corner in field units
	W, H     float64
	Velocity float64 // Vertical velocity, negative is up
	Airborne bool
}

// Rect returns the collision rectangle for the player.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a ground obstacle scrolling toward the player.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// OffField reports whether the obstacle's trailing edge has passed the
// left boundary of the field.
func (o Obstacle) OffField() bool {
	return o.X+o.W < 0
}

// Phase is the session state machine: Running --collision--> Ended
// --restart--> Running.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
