package entity

import "math"

// Facing values
const (
	FacingLeft  = -1
	FacingRight = 1
)

// Player represents the player character.
// Owned by the session and mutated only by the player controller.
type Player struct {
	Box      Rect
	Velocity Vec2

	// Jumps left before landing again (double jump = 2)
	RemainingJumps int
	Facing         int
	Frame          float64
}

// NewPlayer creates a player with its top-left corner at pos.
// The player starts airborne with no jumps until it first lands.
func NewPlayer(pos, size Vec2) *Player {
	return &Player{
		Box:    NewRect(pos.X, pos.Y, size.X, size.Y),
		Facing: FacingRight,
	}
}

// Position returns the top-left corner of the player box
func (p *Player) Position() Vec2 { return p.Box.Position() }

// Center returns the visual center of the player
func (p *Player) Center() Vec2 { return p.Box.Center() }

// Rect returns the player's bounding box
func (p *Player) Rect() Rect { return p.Box }

// AnimationIndex returns the current animation frame index
func (p *Player) AnimationIndex() int { return int(math.Floor(p.Frame)) }
