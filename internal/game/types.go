package game

import "chosenoffset.com/hunt67/internal/core/vision"

// State tracks where a round stands.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// Player represents the player's physical state in the world.
type Player struct {
	Pos    vision.Point
	Radius float64
	Speed  float64 // Pixels per second
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
