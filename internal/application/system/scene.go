package system

import (
	"math"
	"slices"

	"github.com/younwookim/personality/internal/domain/entity"
)

// Mask is the solid classification of the level bitmap
type Mask interface {
	IsSolid(px, py int) bool
	Width() int
	Height() int
}

// Scene composes the level mask, the tower and the live projectiles.
// It is the World the player collides against.
type Scene struct {
	mask           Mask
	bounds         entity.Rect
	tower          *entity.Tower
	projectiles    []entity.Projectile
	projectileSize entity.Vec2

	events []entity.EventKind
}

// NewScene creates a scene sized to mask
func NewScene(mask Mask, tower *entity.Tower, projectileSize entity.Vec2) *Scene {
	return &Scene{
		mask:           mask,
		bounds:         entity.NewRect(0, 0, float64(mask.Width()), float64(mask.Height())),
		tower:          tower,
		projectiles:    make([]entity.Projectile, 0, 32),
		projectileSize: projectileSize,
		events:         make([]entity.EventKind, 0, 8),
	}
}

// IsSolid reports whether the level pixel is solid
func (s *Scene) IsSolid(px, py int) bool { return s.mask.IsSolid(px, py) }

// Bounds returns the scene rectangle [0,w]x[0,h]
func (s *Scene) Bounds() entity.Rect { return s.bounds }

// ShieldRect returns the tower shield box while the tower is reversed
func (s *Scene) ShieldRect() (entity.Rect, bool) { return s.tower.ShieldRect() }

// Width returns the scene width in pixels
func (s *Scene) Width() int { return s.mask.Width() }

// Height returns the scene height in pixels
func (s *Scene) Height() int { return s.mask.Height() }

// Tower returns the defended tower
func (s *Scene) Tower() *entity.Tower { return s.tower }

// Projectiles returns the live projectiles. The slice must not be kept
// across updates.
func (s *Scene) Projectiles() []entity.Projectile { return s.projectiles }

// ProjectileSize returns the hit box size shared by all projectiles
func (s *Scene) ProjectileSize() entity.Vec2 { return s.projectileSize }

// Spawn adds a projectile
func (s *Scene) Spawn(p entity.Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// Emit records an event for this frame
func (s *Scene) Emit(kind entity.EventKind) {
	s.events = append(s.events, kind)
}

// DrainEvents returns the events recorded since the last drain
func (s *Scene) DrainEvents() []entity.EventKind {
	if len(s.events) == 0 {
		return nil
	}
	out := slices.Clone(s.events)
	s.events = s.events[:0]
	return out
}

// ReverseRoles puts the tower into Reversed mode. The shield goes on the
// side facing the player.
func (s *Scene) ReverseRoles(playerCenter entity.Vec2) {
	flip := playerCenter.X < s.tower.Rect().Center().X
	s.tower.ReverseRoles(flip)
	s.Emit(entity.EventRolesReversed)
}

// Threat returns the center of the projectile the shield should track.
// Only projectiles on the shield's side of the tower and inside its height
// band qualify; the one horizontally closest to the tower wins.
func (s *Scene) Threat() (entity.Vec2, bool) {
	if !s.tower.Reversed() {
		return entity.Vec2{}, false
	}

	tower := s.tower.Rect()
	flip := s.tower.Flipped()

	var best entity.Vec2
	found := false
	bestDist := math.Inf(1)
	for _, p := range s.projectiles {
		c := p.Center(s.projectileSize)
		if c.Y <= tower.Y || c.Y >= tower.Bottom() {
			continue
		}

		var dist float64
		if flip {
			if c.X >= tower.X {
				continue
			}
			dist = tower.X - c.X
		} else {
			if c.X <= tower.Right() {
				continue
			}
			dist = c.X - tower.Right()
		}

		if dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}
	return best, found
}

// Update advances the tower and every projectile by dt and reports whether
// the session is over.
func (s *Scene) Update(dt float64) (gameOver bool) {
	wasReversed := s.tower.Reversed()

	var threat *entity.Vec2
	if c, ok := s.Threat(); ok {
		threat = &c
	}
	gameOver = s.tower.Update(dt, threat)

	if wasReversed && !s.tower.Reversed() {
		s.Emit(entity.EventRolesRestored)
	}

	s.updateProjectiles(dt)

	if gameOver {
		s.Emit(entity.EventGameOver)
	}
	return gameOver
}

// updateProjectiles moves projectiles and resolves what they hit.
// Leaving the scene beats hitting the tower, which beats hitting the
// shield, which beats hitting another projectile.
func (s *Scene) updateProjectiles(dt float64) {
	tower := s.tower.Rect()
	shield, hasShield := s.tower.ShieldRect()

	for i := len(s.projectiles) - 1; i >= 0; i-- {
		s.projectiles[i].Advance(dt)
		hb := s.projectiles[i].Hitbox(s.projectileSize)

		switch {
		case !hb.Overlaps(s.bounds):
			s.remove(i)
		case hb.Overlaps(tower):
			s.remove(i)
			s.tower.Hit()
			s.Emit(entity.EventHit)
		case hasShield && hb.Overlaps(shield):
			s.remove(i)
			s.tower.HitShield()
			s.Emit(entity.EventShieldHit)
		default:
			for j := i + 1; j < len(s.projectiles); j++ {
				if hb.Overlaps(s.projectiles[j].Hitbox(s.projectileSize)) {
					// Higher index first so i stays valid
					s.remove(j)
					s.remove(i)
					break
				}
			}
		}
	}
}

func (s *Scene) remove(i int) {
	s.projectiles = slices.Delete(s.projectiles, i, i+1)
}
