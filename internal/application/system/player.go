package system

import (
	"math"

	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

// PlayerStep reports what happened to the player during one update
type PlayerStep struct {
	Shot   *entity.Projectile // set when a shot was fired this frame
	Jumped bool
	Landed bool
}

// PlayerSystem moves the player against the world
type PlayerSystem struct {
	config *config.PlayerConfig
	scale  float64
}

// NewPlayerSystem creates a player controller.
// scale is the screen-to-world zoom and sets the resolver step size.
func NewPlayerSystem(cfg *config.PlayerConfig, scale float64) *PlayerSystem {
	return &PlayerSystem{
		config: cfg,
		scale:  scale,
	}
}

// SetConfig swaps the movement rules, used on tuning reload
func (s *PlayerSystem) SetConfig(cfg *config.PlayerConfig) {
	s.config = cfg
}

// Scale returns the resolver scale
func (s *PlayerSystem) Scale() float64 { return s.scale }

// Update applies one frame of input and movement to the player
func (s *PlayerSystem) Update(player *entity.Player, input InputState, world World, dt float64) PlayerStep {
	var step PlayerStep

	if input.Fire {
		shot := s.shoot(player, input.Aim())
		step.Shot = &shot
	}

	// Horizontal velocity
	t := math.Min(dt/s.config.SmoothingRate, 1)
	target := input.Axis() * s.config.Speed
	player.Velocity.X += (target - player.Velocity.X) * t

	// Vertical velocity
	player.Velocity.Y += s.config.Gravity * dt
	if input.JumpPressed && player.RemainingJumps > 0 {
		player.Velocity.Y = s.config.JumpVelocity
		player.RemainingJumps--
		step.Jumped = true
	}
	if input.JumpReleased && player.Velocity.Y < 0 {
		player.Velocity.Y *= s.config.JumpCut
	}

	motion := player.Velocity.Scale(dt)
	s.moveX(player, motion.X, world)
	step.Landed = s.moveY(player, motion.Y, world)

	s.animate(player, dt)

	if input.AimX > player.Box.X {
		player.Facing = entity.FacingRight
	} else {
		player.Facing = entity.FacingLeft
	}

	return step
}

// shoot builds a projectile leaving the gun toward aim.
// The gun side follows the facing of the previous frame.
func (s *PlayerSystem) shoot(player *entity.Player, aim entity.Vec2) entity.Projectile {
	offset := s.config.GunOffsetRight
	if player.Facing < 0 {
		offset = s.config.GunOffsetLeft
	}
	gun := player.Position().Add(entity.Vec2{X: offset.X, Y: offset.Y})
	return entity.NewAimedProjectile(gun, aim, s.config.ShotDistanceFactor, s.config.ShotBaseSpeed)
}

// moveX moves horizontally, climbing steps no taller than the distance
// travelled this frame and stopping at anything taller.
func (s *PlayerSystem) moveX(player *entity.Player, dx float64, world World) {
	player.Box.X += dx
	if !Collides(player.Box, world) {
		return
	}

	stepHeight := Resolve(&player.Box, world, s.scale, entity.Vec2{Y: -1}, true)
	if math.Ceil(math.Abs(dx))/stepHeight >= 1 {
		player.Box.Y -= stepHeight
		return
	}

	player.Velocity.X = 0
	Resolve(&player.Box, world, s.scale, entity.Vec2{X: -math.Copysign(1, dx)}, false)
}

// moveY moves vertically and reports whether the player landed
func (s *PlayerSystem) moveY(player *entity.Player, dy float64, world World) (landed bool) {
	player.Box.Y += dy
	if !Collides(player.Box, world) {
		return false
	}

	if player.Velocity.Y > 0 {
		player.RemainingJumps = s.config.MaxJumps
		landed = true
	}
	player.Velocity.Y = 0
	Resolve(&player.Box, world, s.scale, entity.Vec2{Y: -math.Copysign(1, dy)}, false)
	return landed
}

func (s *PlayerSystem) animate(player *entity.Player, dt float64) {
	if math.Abs(player.Velocity.X) <= s.config.AnimationMinSpeed || s.config.AnimationFrames <= 0 {
		return
	}
	player.Frame = math.Mod(player.Frame+dt*s.config.AnimationFPS, float64(s.config.AnimationFrames))
}
