// Package session runs one play-through: it owns the player, the scene and
// the spawner and steps them once per frame in a fixed order.
package session

import (
	"errors"
	"fmt"

	"github.com/younwookim/personality/internal/application/system"
	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

var (
	// ErrNoMask is returned when a session is started without level geometry
	ErrNoMask = errors.New("session: no solid mask")
	// ErrNoRandom is returned when a session is started without a random source
	ErrNoRandom = errors.New("session: no random source")
)

// Session is a single run from spawn to game over
type Session struct {
	tuning *config.TuningConfig
	stage  *config.StageConfig
	mask   system.Mask
	rng    system.Random

	players *system.PlayerSystem
	spawner *system.Spawner
	scene   *system.Scene
	player  *entity.Player

	playTime float64
	over     bool
}

// New validates cfg and starts a session on mask.
// rng drives bullet spawns and role reversal; seed it for replays.
func New(cfg *config.GameConfig, mask *entity.SolidMask, rng system.Random) (*Session, error) {
	if cfg == nil || cfg.Tuning == nil || cfg.Stage == nil {
		return nil, fmt.Errorf("session: %w: missing tuning or stage", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if mask == nil {
		return nil, ErrNoMask
	}
	if rng == nil {
		return nil, ErrNoRandom
	}

	s := &Session{
		tuning: cfg.Tuning,
		stage:  cfg.Stage,
		mask:   mask,
		rng:    rng,
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Scale returns the world-to-screen zoom for a stage: the scene height
// always fills the screen height.
func Scale(tuning *config.TuningConfig, stage *config.StageConfig) float64 {
	return float64(tuning.Display.ScreenHeight) / float64(stage.Size.Height)
}

// Restart puts the player back at the spawn point with a fresh tower.
// The random source carries on from where it was.
func (s *Session) Restart() error {
	scene, player, err := system.LoadStage(s.tuning, s.stage, s.mask)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.scene = scene
	s.player = player
	s.players = system.NewPlayerSystem(&s.tuning.Player, Scale(s.tuning, s.stage))
	s.spawner = system.NewSpawner(&s.tuning.Spawner, s.rng)
	s.playTime = 0
	s.over = false
	return nil
}

// Update steps the session by dt and reports whether it is over.
// A finished session no longer advances.
func (s *Session) Update(dt float64, input system.InputState) (gameOver bool) {
	if s.over {
		return true
	}

	step := s.players.Update(s.player, input, s.scene, dt)
	if step.Shot != nil {
		s.scene.Spawn(*step.Shot)
		s.scene.Emit(entity.EventShoot)
	}
	if step.Jumped {
		s.scene.Emit(entity.EventJump)
	}

	s.over = s.scene.Update(dt)
	s.playTime += dt
	s.spawner.Update(dt, s.scene, s.player.Rect())

	return s.over
}

// ApplyTuning swaps in reloaded tuning. Movement and spawn rules change
// at once; tower and shield values apply from the next restart.
func (s *Session) ApplyTuning(tuning *config.TuningConfig) error {
	cfg := &config.GameConfig{Tuning: tuning, Stage: s.stage}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.tuning = tuning
	s.players.SetConfig(&tuning.Player)
	s.spawner.SetConfig(&tuning.Spawner)
	return nil
}

// Events returns and clears the events recorded since the last call
func (s *Session) Events() []entity.EventKind { return s.scene.DrainEvents() }

// Player returns the player
func (s *Session) Player() *entity.Player { return s.player }

// Scene returns the scene
func (s *Session) Scene() *system.Scene { return s.scene }

// Tower returns the tower
func (s *Session) Tower() *entity.Tower { return s.scene.Tower() }

// Stage returns the stage config
func (s *Session) Stage() *config.StageConfig { return s.stage }

// Tuning returns the active tuning
func (s *Session) Tuning() *config.TuningConfig { return s.tuning }

// Scale returns the resolver and camera zoom for this session
func (s *Session) Scale() float64 { return s.players.Scale() }

// Over reports whether the session has ended
func (s *Session) Over() bool { return s.over }

// PlayTime returns the seconds survived so far
func (s *Session) PlayTime() float64 { return s.playTime }

// Seconds returns the whole seconds survived, as shown on the game over screen
func (s *Session) Seconds() int { return int(s.playTime) }

// Banner returns the "Roles Reversed!" banner timer while it is showing
func (s *Session) Banner() (float64, bool) { return s.spawner.Banner() }
