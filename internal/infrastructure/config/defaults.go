package config

import (
	"errors"
	"fmt"
)

// Default returns the stock tuning. Loaded files are decoded on top of it,
// so a tuning.yaml only needs the values it changes.
func Default() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  860,
			ScreenHeight: 480,
			Framerate:    60,
			Title:        "Personality",
		},
		Player: PlayerConfig{
			Speed:              100,
			SmoothingRate:      0.1,
			Gravity:            400,
			JumpVelocity:       -200,
			JumpCut:            0.5,
			MaxJumps:           2,
			GunOffsetLeft:      PointConfig{X: 4, Y: 11},
			GunOffsetRight:     PointConfig{X: 6, Y: 11},
			ShotDistanceFactor: 0.5,
			ShotBaseSpeed:      80,
			AnimationFPS:       5,
			AnimationFrames:    2,
			AnimationMinSpeed:  0.5,
		},
		Tower: TowerConfig{
			NormalDamage:   0.01,
			ReversedDamage: 0.1,
			FlashDuration:  0.1,
			Countdown:      10,
			ShieldGap:      3,
		},
		Shield: ShieldConfig{
			TimeConstant:    0.7,
			DistanceDivisor: 200,
			MinTimeConstant: 0.05,
			FlashDuration:   0.1,
		},
		Spawner: SpawnerConfig{
			IntervalMin:    1,
			IntervalMax:    2,
			SpeedMin:       10,
			SpeedMax:       200,
			DriftMin:       -10,
			DriftMax:       10,
			TopMargin:      32,
			BottomMargin:   24,
			ReversalMin:    20,
			ReversalMax:    50,
			TriggerMargin:  10,
			BannerDuration: 1,
		},
	}
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the tuning for values the simulation cannot run with
func (c *TuningConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	case c.Player.SmoothingRate <= 0:
		return fmt.Errorf("%w: player smoothingRate must be positive", ErrInvalidConfig)
	case c.Player.MaxJumps < 0:
		return fmt.Errorf("%w: player maxJumps %d", ErrInvalidConfig, c.Player.MaxJumps)
	case c.Shield.MinTimeConstant <= 0:
		return fmt.Errorf("%w: shield minTimeConstant must be positive", ErrInvalidConfig)
	case c.Shield.DistanceDivisor <= 0:
		return fmt.Errorf("%w: shield distanceDivisor must be positive", ErrInvalidConfig)
	case c.Spawner.IntervalMin <= 0 || c.Spawner.IntervalMax < c.Spawner.IntervalMin:
		return fmt.Errorf("%w: spawner interval [%g, %g)", ErrInvalidConfig, c.Spawner.IntervalMin, c.Spawner.IntervalMax)
	case c.Spawner.SpeedMax <= c.Spawner.SpeedMin:
		return fmt.Errorf("%w: spawner speed [%d, %d)", ErrInvalidConfig, c.Spawner.SpeedMin, c.Spawner.SpeedMax)
	case c.Spawner.DriftMax <= c.Spawner.DriftMin:
		return fmt.Errorf("%w: spawner drift [%d, %d)", ErrInvalidConfig, c.Spawner.DriftMin, c.Spawner.DriftMax)
	case c.Spawner.ReversalMax < c.Spawner.ReversalMin:
		return fmt.Errorf("%w: spawner reversal [%g, %g)", ErrInvalidConfig, c.Spawner.ReversalMin, c.Spawner.ReversalMax)
	}
	return nil
}

// Validate checks the stage for sizes the simulation cannot run with
func (s *StageConfig) Validate() error {
	switch {
	case s.Size.Width <= 0 || s.Size.Height <= 0:
		return fmt.Errorf("%w: stage %s size %dx%d", ErrInvalidConfig, s.ID, s.Size.Width, s.Size.Height)
	case s.PlayerSize.Width <= 0 || s.PlayerSize.Height <= 0:
		return fmt.Errorf("%w: stage %s player size", ErrInvalidConfig, s.ID)
	case s.Tower.W <= 0 || s.Tower.H <= 0:
		return fmt.Errorf("%w: stage %s tower size", ErrInvalidConfig, s.ID)
	case s.ShieldSize.Width <= 0 || s.ShieldSize.Height <= 0:
		return fmt.Errorf("%w: stage %s shield size", ErrInvalidConfig, s.ID)
	case s.ProjectileSize.Width <= 0 || s.ProjectileSize.Height <= 0:
		return fmt.Errorf("%w: stage %s projectile size", ErrInvalidConfig, s.ID)
	case s.Mask.Image == "" && len(s.Mask.Rows) == 0:
		return fmt.Errorf("%w: stage %s has no solid mask", ErrInvalidConfig, s.ID)
	case s.Mask.Image == "" && s.Mask.CellSize <= 0:
		return fmt.Errorf("%w: stage %s mask cellSize %d", ErrInvalidConfig, s.ID, s.Mask.CellSize)
	}
	return nil
}

// Validate checks tuning and stage, and that they fit each other
func (g *GameConfig) Validate() error {
	if err := g.Tuning.Validate(); err != nil {
		return err
	}
	if err := g.Stage.Validate(); err != nil {
		return err
	}
	sp := g.Tuning.Spawner
	if g.Stage.Size.Height-sp.BottomMargin <= sp.TopMargin {
		return fmt.Errorf("%w: stage %s too short for spawn margins %d+%d", ErrInvalidConfig, g.Stage.ID, sp.TopMargin, sp.BottomMargin)
	}
	return nil
}
