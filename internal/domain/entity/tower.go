package entity

import "math"

// healthEpsilon snaps accumulated float error to an exact zero
const healthEpsilon = 1e-9

// TowerParams tunes damage, timers and the shield of a tower
type TowerParams struct {
	NormalDamage   float64 // health lost per hit while Normal
	ReversedDamage float64 // reversed health lost per hit while Reversed
	FlashDuration  float64
	Countdown      float64 // seconds the tower must survive while Reversed
	ShieldSize     Vec2
	ShieldGap      float64 // px between the tower edge and the shield
	Shield         ShieldParams
}

// TowerMode is the tower's mode-dependent state: NormalMode or *ReversedMode
type TowerMode interface {
	isTowerMode()
}

// NormalMode is the default mode: the tower is defended by the player
type NormalMode struct{}

func (NormalMode) isTowerMode() {}

// ReversedMode is the temporary mode in which the tower defends itself
// with a shield while the player attacks it.
type ReversedMode struct {
	Shield    *Shield
	Health    float64
	Countdown float64
}

func (*ReversedMode) isTowerMode() {}

// Tower is the defended structure
type Tower struct {
	position Vec2
	size     Vec2
	health   float64
	flash    float64
	mode     TowerMode
	params   TowerParams
}

// NewTower creates a tower in Normal mode at full health
func NewTower(pos, size Vec2, params TowerParams) *Tower {
	return &Tower{
		position: pos,
		size:     size,
		health:   1,
		mode:     NormalMode{},
		params:   params,
	}
}

// Update advances timers and reports whether the session is over.
// threat is the center of the projectile the shield should track, if any.
func (t *Tower) Update(dt float64, threat *Vec2) (gameOver bool) {
	t.flash = math.Max(t.flash-dt, 0)

	switch m := t.mode.(type) {
	case *ReversedMode:
		m.Countdown -= dt
		if m.Countdown <= 0 {
			m.Countdown = 0
			gameOver = true
		}

		m.Shield.Update(dt, threat)
		if m.Health <= 0 {
			t.mode = NormalMode{}
		}
	default:
		if t.health <= 0 {
			gameOver = true
		}
	}
	return gameOver
}

// ReverseRoles switches to Reversed mode with a fresh shield.
// flip places the shield on the tower's left side.
func (t *Tower) ReverseRoles(flip bool) {
	shieldSize := t.params.ShieldSize
	offset := Vec2{X: t.size.X + t.params.ShieldGap, Y: (t.size.Y - shieldSize.Y) / 2}
	if flip {
		offset.X = -(shieldSize.X + t.params.ShieldGap)
	}

	t.mode = &ReversedMode{
		Shield:    NewShield(t.position.Add(offset), shieldSize, flip, t.params.Shield),
		Health:    1,
		Countdown: t.params.Countdown,
	}
}

// Hit damages whichever health is live in the current mode
func (t *Tower) Hit() {
	if m, ok := t.mode.(*ReversedMode); ok {
		m.Health = drain(m.Health, t.params.ReversedDamage)
	} else {
		t.health = drain(t.health, t.params.NormalDamage)
	}
	t.flash = t.params.FlashDuration
}

// HitShield flashes the shield. It never costs health.
func (t *Tower) HitShield() {
	if m, ok := t.mode.(*ReversedMode); ok {
		m.Shield.Hit()
	}
}

func drain(health, amount float64) float64 {
	health -= amount
	if health < healthEpsilon {
		return 0
	}
	return health
}

// Mode returns the current mode
func (t *Tower) Mode() TowerMode { return t.mode }

// Reversed reports whether roles are currently reversed
func (t *Tower) Reversed() bool {
	_, ok := t.mode.(*ReversedMode)
	return ok
}

// Health returns the Normal-mode health fraction
func (t *Tower) Health() float64 { return t.health }

// ReversedHealth returns the Reversed-mode health fraction, or 0 while Normal
func (t *Tower) ReversedHealth() float64 {
	if m, ok := t.mode.(*ReversedMode); ok {
		return m.Health
	}
	return 0
}

// Countdown returns the seconds left to survive while Reversed, or 0
func (t *Tower) Countdown() float64 {
	if m, ok := t.mode.(*ReversedMode); ok {
		return m.Countdown
	}
	return 0
}

// DisplayHealth returns the health fraction a HUD should show for the mode
func (t *Tower) DisplayHealth() float64 {
	if m, ok := t.mode.(*ReversedMode); ok {
		return m.Health
	}
	return t.health
}

// Flashing reports whether the damage flash is showing
func (t *Tower) Flashing() bool { return t.flash > 0 }

// Position returns the tower's top-left corner
func (t *Tower) Position() Vec2 { return t.position }

// Size returns the tower's size
func (t *Tower) Size() Vec2 { return t.size }

// Rect returns the tower's hit region
func (t *Tower) Rect() Rect {
	return Rect{X: t.position.X, Y: t.position.Y, Width: t.size.X, Height: t.size.Y}
}

// Shield returns the shield while Reversed
func (t *Tower) Shield() (*Shield, bool) {
	if m, ok := t.mode.(*ReversedMode); ok {
		return m.Shield, true
	}
	return nil, false
}

// ShieldRect returns the shield's hit region while Reversed
func (t *Tower) ShieldRect() (Rect, bool) {
	if s, ok := t.Shield(); ok {
		return s.Rect(), true
	}
	return Rect{}, false
}

// Flipped reports the shield orientation; false while Normal
func (t *Tower) Flipped() bool {
	if s, ok := t.Shield(); ok {
		return s.Flipped()
	}
	return false
}
