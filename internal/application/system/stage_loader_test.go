package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:             "test",
		Size:           config.SizeConfig{Width: 256, Height: 144},
		PlayerSpawn:    config.PointConfig{X: 10, Y: 100},
		PlayerSize:     config.SizeFConfig{Width: 10, Height: 16},
		Tower:          config.RectConfig{X: 118, Y: 80, W: 20, H: 48},
		ShieldSize:     config.SizeFConfig{Width: 7, Height: 20},
		ProjectileSize: config.SizeFConfig{Width: 4, Height: 4},
	}
}

func TestTowerParams(t *testing.T) {
	params := TowerParams(config.Default(), createTestStageConfig())

	assert.Equal(t, createTestTowerParams(), params)
}

func TestLoadStage(t *testing.T) {
	t.Run("builds scene and player", func(t *testing.T) {
		mask := &testWorld{width: 256, height: 144}

		scene, player, err := LoadStage(config.Default(), createTestStageConfig(), mask)
		require.NoError(t, err)

		assert.Equal(t, 256, scene.Width())
		assert.Equal(t, entity.NewRect(118, 80, 20, 48), scene.Tower().Rect())
		assert.False(t, scene.Tower().Reversed())
		assert.Equal(t, entity.Vec2{X: 4, Y: 4}, scene.ProjectileSize())

		assert.Equal(t, entity.NewRect(10, 100, 10, 16), player.Rect())
		assert.Zero(t, player.RemainingJumps)
	})

	t.Run("rejects mismatched mask", func(t *testing.T) {
		mask := &testWorld{width: 128, height: 144}

		_, _, err := LoadStage(config.Default(), createTestStageConfig(), mask)
		assert.ErrorIs(t, err, ErrMaskMismatch)
	})

	t.Run("rejects missing mask", func(t *testing.T) {
		_, _, err := LoadStage(config.Default(), createTestStageConfig(), nil)
		assert.ErrorIs(t, err, ErrMaskMismatch)
	})

	t.Run("shield size comes from the stage", func(t *testing.T) {
		stage := createTestStageConfig()
		stage.ShieldSize = config.SizeFConfig{Width: 5, Height: 30}
		mask := &testWorld{width: 256, height: 144}

		scene, _, err := LoadStage(config.Default(), stage, mask)
		require.NoError(t, err)

		scene.ReverseRoles(entity.Vec2{X: 200})
		shield, ok := scene.ShieldRect()
		require.True(t, ok)
		assert.Equal(t, entity.NewRect(141, 89, 5, 30), shield)
	})
}
