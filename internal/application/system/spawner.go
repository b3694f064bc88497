package system

import (
	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

// Random is the randomness the spawner draws from. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Spawner fires enemy bullets from the scene edges and triggers role
// reversal while the tower is Normal.
type Spawner struct {
	config *config.SpawnerConfig
	rng    Random

	bulletTimer  float64
	reverseTimer float64
	bannerTimer  float64
}

// NewSpawner creates a spawner whose first bullet fires on the first update
func NewSpawner(cfg *config.SpawnerConfig, rng Random) *Spawner {
	s := &Spawner{
		config: cfg,
		rng:    rng,
	}
	s.reverseTimer = s.uniform(cfg.ReversalMin, cfg.ReversalMax)
	return s
}

// SetConfig swaps the spawn rules, used on tuning reload.
// Running timers keep their current values.
func (s *Spawner) SetConfig(cfg *config.SpawnerConfig) {
	s.config = cfg
}

// Update advances the timers. player is the player's bounding box, used to
// hold off role reversal while the player stands next to the tower.
func (s *Spawner) Update(dt float64, scene *Scene, player entity.Rect) {
	if !scene.Tower().Reversed() {
		s.spawnBullets(dt, scene)
		s.countdownReversal(dt, scene, player)
	}

	if s.bannerTimer > 0 {
		s.bannerTimer -= dt / 2
		if s.bannerTimer < 0 {
			s.bannerTimer = 0
		}
	}
}

func (s *Spawner) spawnBullets(dt float64, scene *Scene) {
	cfg := s.config
	s.bulletTimer -= dt
	for s.bulletTimer <= 0 {
		flip := s.rng.Float64() < 0.5

		x, dir := float64(scene.Width()), -1.0
		if flip {
			x, dir = 0, 1
		}
		y := s.intRange(cfg.TopMargin, scene.Height()-cfg.BottomMargin)

		scene.Spawn(entity.NewProjectile(
			entity.Vec2{X: x, Y: float64(y)},
			entity.Vec2{
				X: dir * float64(s.intRange(cfg.SpeedMin, cfg.SpeedMax)),
				Y: float64(s.intRange(cfg.DriftMin, cfg.DriftMax)),
			},
		))
		s.bulletTimer += s.uniform(cfg.IntervalMin, cfg.IntervalMax)
	}
}

func (s *Spawner) countdownReversal(dt float64, scene *Scene, player entity.Rect) {
	s.reverseTimer -= dt
	if s.reverseTimer > 0 {
		return
	}

	strip := scene.Tower().Rect().Widen(s.config.TriggerMargin).VerticalStrip(float64(scene.Height()))
	if player.Overlaps(strip) {
		return
	}

	scene.ReverseRoles(player.Center())
	s.reverseTimer = s.uniform(s.config.ReversalMin, s.config.ReversalMax)
	s.bannerTimer = s.config.BannerDuration
}

// Banner returns the "Roles Reversed!" banner timer while it is showing
func (s *Spawner) Banner() (float64, bool) {
	return s.bannerTimer, s.bannerTimer > 0
}

// ReversalIn returns the seconds until the next reversal attempt
func (s *Spawner) ReversalIn() float64 { return s.reverseTimer }

// uniform returns a float in [lo, hi)
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// intRange returns an int in [lo, hi), or lo for an empty range
func (s *Spawner) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}
