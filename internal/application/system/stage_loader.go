package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

// ErrMaskMismatch is returned when the mask does not match the stage size
var ErrMaskMismatch = errors.New("mask does not match stage size")

// TowerParams converts tower and shield tuning into entity parameters
func TowerParams(tuning *config.TuningConfig, stage *config.StageConfig) entity.TowerParams {
	return entity.TowerParams{
		NormalDamage:   tuning.Tower.NormalDamage,
		ReversedDamage: tuning.Tower.ReversedDamage,
		FlashDuration:  tuning.Tower.FlashDuration,
		Countdown:      tuning.Tower.Countdown,
		ShieldSize:     entity.Vec2{X: stage.ShieldSize.Width, Y: stage.ShieldSize.Height},
		ShieldGap:      tuning.Tower.ShieldGap,
		Shield: entity.ShieldParams{
			TimeConstant:    tuning.Shield.TimeConstant,
			DistanceDivisor: tuning.Shield.DistanceDivisor,
			MinTimeConstant: tuning.Shield.MinTimeConstant,
			FlashDuration:   tuning.Shield.FlashDuration,
		},
	}
}

// LoadStage builds a fresh scene and player for a stage
func LoadStage(tuning *config.TuningConfig, stage *config.StageConfig, mask Mask) (*Scene, *entity.Player, error) {
	if mask == nil {
		return nil, nil, fmt.Errorf("stage %s: %w: no mask", stage.ID, ErrMaskMismatch)
	}
	if mask.Width() != stage.Size.Width || mask.Height() != stage.Size.Height {
		return nil, nil, fmt.Errorf("stage %s: %w: mask %dx%d, stage %dx%d",
			stage.ID, ErrMaskMismatch, mask.Width(), mask.Height(), stage.Size.Width, stage.Size.Height)
	}

	tower := entity.NewTower(
		entity.Vec2{X: stage.Tower.X, Y: stage.Tower.Y},
		entity.Vec2{X: stage.Tower.W, Y: stage.Tower.H},
		TowerParams(tuning, stage),
	)
	scene := NewScene(mask, tower, entity.Vec2{X: stage.ProjectileSize.Width, Y: stage.ProjectileSize.Height})

	player := entity.NewPlayer(
		entity.Vec2{X: stage.PlayerSpawn.X, Y: stage.PlayerSpawn.Y},
		entity.Vec2{X: stage.PlayerSize.Width, Y: stage.PlayerSize.Height},
	)
	return scene, player, nil
}
