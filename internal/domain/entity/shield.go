package entity

import "math"

// ShieldParams tunes how a shield tracks threats
type ShieldParams struct {
	// Seconds to close the gap when the threat is level with the shield
	TimeConstant float64
	// Pixels of horizontal threat distance per second taken off TimeConstant
	DistanceDivisor float64
	MinTimeConstant float64
	FlashDuration   float64
}

// Shield guards the tower while roles are reversed.
// It moves only vertically, easing toward the nearest threat.
type Shield struct {
	position Vec2
	size     Vec2
	targetY  float64
	flip     bool
	flash    float64
	params   ShieldParams
}

// NewShield creates a shield at pos. flip is true when the shield guards
// the tower's left side.
func NewShield(pos, size Vec2, flip bool, params ShieldParams) *Shield {
	return &Shield{
		position: pos,
		size:     size,
		targetY:  pos.Y,
		flip:     flip,
		params:   params,
	}
}

// Update decays the flash timer and eases toward the threat.
// threat is the center of the projectile to intercept, or nil to hold the
// current target.
func (s *Shield) Update(dt float64, threat *Vec2) {
	s.flash = math.Max(s.flash-dt, 0)

	timeConstant := s.params.TimeConstant
	if threat != nil {
		s.targetY = threat.Y - s.size.Y/2
		timeConstant -= math.Abs(s.position.X+s.size.X/2-threat.X) / s.params.DistanceDivisor
	}
	timeConstant = math.Max(timeConstant, s.params.MinTimeConstant)

	step := math.Min(dt/timeConstant, 1)
	s.position.Y += (s.targetY - s.position.Y) * step
}

// Hit starts the damage flash
func (s *Shield) Hit() {
	s.flash = s.params.FlashDuration
}

// Position returns the top-left corner of the shield
func (s *Shield) Position() Vec2 { return s.position }

// TargetY returns the y the shield is easing toward
func (s *Shield) TargetY() float64 { return s.targetY }

// Rect returns the shield's hit region
func (s *Shield) Rect() Rect {
	return Rect{X: s.position.X, Y: s.position.Y, Width: s.size.X, Height: s.size.Y}
}

// Flipped reports whether the shield guards the tower's left side
func (s *Shield) Flipped() bool { return s.flip }

// Flashing reports whether the damage flash is showing
func (s *Shield) Flashing() bool { return s.flash > 0 }
