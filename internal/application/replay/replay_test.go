package replay

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/personality/internal/application/session"
	"github.com/younwookim/personality/internal/application/system"
	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
	"github.com/younwookim/personality/internal/infrastructure/level"
)

const configDir = "../../../cmd/personality/configs"

func loadTestStage(t *testing.T) (*config.GameConfig, *entity.SolidMask) {
	t.Helper()
	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadAll("scene1")
	require.NoError(t, err)
	lvl, err := level.Build(loader.FS(), cfg.Stage)
	require.NoError(t, err)
	return cfg, lvl.Mask
}

func TestFrameInput_RoundTripsInputState(t *testing.T) {
	in := system.InputState{
		Left:         true,
		Right:        true,
		JumpPressed:  true,
		JumpReleased: true,
		Fire:         true,
		AimX:         123.5,
		AimY:         45.25,
	}

	fi := NewFrameInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestEncodeDecode(t *testing.T) {
	data := CreateTestReplayData(3, 100, 50)
	data.Frames[1].FI = true

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, data))
	assert.Contains(t, buf.String(), `"fi": true`)

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, *decoded)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("{not json"))
	assert.ErrorContains(t, err, "failed to decode replay")
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(t.TempDir() + "/missing.json")
	assert.ErrorContains(t, err, "failed to open file")
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Stage:   "test",
		Frames: []FrameInput{
			{F: 0, L: true, AX: 100, AY: 100},
			{F: 1, R: true, JP: true, AX: 110, AY: 95},
			{F: 2, FI: true, AX: 120, AY: 90},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 100.0, input.AimX)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.JumpPressed)
	assert.Equal(t, 95.0, input.AimY)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Fire)

	// End
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, 100, 100)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFramesAndSeed(t *testing.T) {
	data := CreateTestReplayData(10, 100, 100)
	data.Seed = 99999
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3, 100, 100)
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.Equal(t, 100.0, input.AimX)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 200, 150)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "test", data.Stage)
	assert.Equal(t, 60, data.Framerate)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 200.0, frame.AX)
		assert.Equal(t, 150.0, frame.AY)
	}
}

// scriptedInput walks right and left, hops and fires at the tower
func scriptedInput(i int) system.InputState {
	return system.InputState{
		Right:        i%240 < 100,
		Left:         i%240 >= 140 && i%240 < 200,
		JumpPressed:  i%120 == 30,
		JumpReleased: i%120 == 45,
		Fire:         i%20 == 0,
		AimX:         128,
		AimY:         float64(60 + i%60),
	}
}

func TestRun_MatchesLiveSession(t *testing.T) {
	cfg, mask := loadTestStage(t)
	const seed = 2024
	const frames = 3000

	live, err := session.New(cfg, mask, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	data := ReplayData{Version: Version, Seed: seed, Stage: "scene1", Framerate: 60}
	for i := 0; i < frames && !live.Over(); i++ {
		in := scriptedInput(i)
		data.Frames = append(data.Frames, NewFrameInput(i, in))
		live.Update(1.0/60, in)
	}

	// A second load so the replay shares nothing with the live run
	cfg2, mask2 := loadTestStage(t)
	res, err := Run(data, cfg2, mask2)
	require.NoError(t, err)

	assert.Equal(t, len(data.Frames), res.Frames)
	assert.Equal(t, live.PlayTime(), res.PlayTime)
	assert.Equal(t, live.Over(), res.GameOver)
	assert.Equal(t, live.Seconds(), res.Seconds())
	assert.Positive(t, res.Shots)
}

func TestRun_StopsAtGameOver(t *testing.T) {
	cfg, mask := loadTestStage(t)
	cfg.Tuning.Tower.NormalDamage = 1

	// Stand still and shoot straight at the tower
	data := ReplayData{Seed: 1, Stage: "scene1", Framerate: 60}
	for i := 0; i < 600; i++ {
		data.Frames = append(data.Frames, FrameInput{F: i, FI: i >= 60 && i%15 == 0, AX: 128, AY: 111})
	}

	res, err := Run(data, cfg, mask)
	require.NoError(t, err)

	assert.True(t, res.GameOver)
	assert.Less(t, res.Frames, 600)
	assert.Positive(t, res.TowerHits)
}

func TestRun_StageMismatch(t *testing.T) {
	cfg, mask := loadTestStage(t)
	data := CreateTestReplayData(10, 0, 0)
	data.Stage = "other"

	_, err := Run(data, cfg, mask)
	assert.ErrorContains(t, err, "recorded on stage other")
}

func TestRun_FramerateFallsBackToTuning(t *testing.T) {
	cfg, mask := loadTestStage(t)
	data := CreateTestReplayData(30, 200, 100)
	data.Stage = ""
	data.Framerate = 0

	res, err := Run(data, cfg, mask)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.PlayTime, 1e-9)
}
