package playing

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/personality/internal/application/replay"
	"github.com/younwookim/personality/internal/application/scene"
	"github.com/younwookim/personality/internal/application/session"
	"github.com/younwookim/personality/internal/application/state"
	"github.com/younwookim/personality/internal/application/system"
	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
	"github.com/younwookim/personality/internal/infrastructure/level"
)

const configDir = "../../../../cmd/personality/configs"

type savedRun struct {
	stage   string
	seconds int
	seed    int64
}

type fakeStore struct {
	runs []savedRun
	err  error
}

func (f *fakeStore) SaveRun(stage string, seconds int, seed int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, savedRun{stage, seconds, seed})
	return int64(len(f.runs)), nil
}

type fakeSound struct {
	played []entity.EventKind
}

func (f *fakeSound) PlayAll(events []entity.EventKind) {
	f.played = append(f.played, events...)
}

type fakeWatcher struct {
	names []string
}

func (f *fakeWatcher) Poll() (string, bool) {
	if len(f.names) == 0 {
		return "", false
	}
	name := f.names[0]
	f.names = f.names[1:]
	return name, true
}

type fakeTuning struct {
	tuning *config.TuningConfig
	err    error
	calls  int
}

func (f *fakeTuning) LoadTuning() (*config.TuningConfig, error) {
	f.calls++
	return f.tuning, f.err
}

// fixedInput returns the same input every frame
type fixedInput struct {
	input system.InputState
}

func (f *fixedInput) GetInput(system.Viewport) system.InputState { return f.input }

func createTestConfig(t *testing.T) (*config.GameConfig, *level.Level) {
	t.Helper()
	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadAll("scene1")
	require.NoError(t, err)
	lvl, err := level.Build(loader.FS(), cfg.Stage)
	require.NoError(t, err)
	return cfg, lvl
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	cfg, lvl := createTestConfig(t)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	if opts.Input == nil {
		opts.Input = &fixedInput{}
	}
	p, err := New(cfg, lvl, opts)
	require.NoError(t, err)
	return p
}

// endRun drains the tower and steps once so the session ends
func endRun(p *Playing) {
	for i := 0; i < 100; i++ {
		p.Session().Tower().Hit()
	}
	p.step(system.InputState{})
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 7})

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, int64(7), p.Seed())
	assert.InDelta(t, 480.0/144.0, p.camera.Zoom, 1e-12)
	assert.Nil(t, p.recorder)

	w, h := p.Layout(1, 1)
	assert.Equal(t, 860, w)
	assert.Equal(t, 480, h)
}

func TestNewPlaying_Errors(t *testing.T) {
	cfg, lvl := createTestConfig(t)

	t.Run("missing level", func(t *testing.T) {
		_, err := New(cfg, nil, Options{})
		assert.ErrorIs(t, err, session.ErrNoMask)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := New(nil, lvl, Options{})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.InDelta(t, 1.0/60.0, p.Session().PlayTime(), 1e-12)
}

func TestPlaying_PausedDoesNotAdvance(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.state = state.StatePaused

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Zero(t, p.Session().PlayTime())
	assert.Equal(t, state.StatePaused, p.State())
}

func TestPlaying_RoutesEventsToSound(t *testing.T) {
	sound := &fakeSound{}
	p := createTestPlaying(t, Options{Sound: sound})

	for i := 0; i < 60; i++ {
		p.step(system.InputState{AimX: 200})
	}
	p.step(system.InputState{Fire: true, AimX: 200, AimY: 110})

	assert.Contains(t, sound.played, entity.EventShoot)
}

func TestPlaying_CameraFollowsPlayer(t *testing.T) {
	p := createTestPlaying(t, Options{Input: &fixedInput{system.InputState{Right: true, AimX: 250}}})
	// A narrow screen so the view scrolls
	p.camera = NewCamera(320, 480, 256, 144, p.Session().Scale())

	for i := 0; i < 120; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	view := p.camera.ViewSize()
	want := p.Session().Player().Center().X - view.X/2
	want = max(0, min(want, 256-view.X))
	assert.InDelta(t, want, p.camera.X, 1e-9)
	assert.Positive(t, p.camera.X)
}

func TestPlaying_GameOver(t *testing.T) {
	store := &fakeStore{}
	sound := &fakeSound{}
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{Seed: 9, Store: store, Sound: sound, RecordPath: path})

	for i := 0; i < 30; i++ {
		p.step(system.InputState{})
	}
	endRun(p)

	assert.Equal(t, state.StateGameOver, p.State())
	assert.Contains(t, sound.played, entity.EventGameOver)

	require.Len(t, store.runs, 1)
	assert.Equal(t, savedRun{"scene1", 0, 9}, store.runs[0])

	// The first run is saved and recording ends with it
	assert.False(t, p.recorder.IsRecording())
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 31)
	assert.Equal(t, int64(9), data.Seed)
	assert.Equal(t, "scene1", data.Stage)

	// Game over holds until restart
	played := p.Session().PlayTime()
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, played, p.Session().PlayTime())
}

func TestPlaying_GameOver_StoreErrorIsLogged(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	p := createTestPlaying(t, Options{Store: store})

	assert.NotPanics(t, func() { endRun(p) })
	assert.Equal(t, state.StateGameOver, p.State())
}

func TestPlaying_Restart(t *testing.T) {
	p := createTestPlaying(t, Options{RecordPath: filepath.Join(t.TempDir(), "run.json")})
	endRun(p)
	old := p.Session()

	require.NoError(t, p.restart())

	assert.Equal(t, state.StatePlaying, p.State())
	assert.NotSame(t, old, p.Session())
	assert.NotEqual(t, int64(42), p.Seed())
	assert.False(t, p.Session().Over())
	assert.Equal(t, 1.0, p.Session().Tower().Health())

	// Later runs are not recorded
	frames := p.recorder.FrameCount()
	p.step(system.InputState{})
	assert.Equal(t, frames, p.recorder.FrameCount())
}

func TestPlaying_PollConfig(t *testing.T) {
	t.Run("tuning change is applied", func(t *testing.T) {
		tuning := config.Default()
		tuning.Player.Gravity = 0
		loader := &fakeTuning{tuning: tuning}
		p := createTestPlaying(t, Options{
			Watcher: &fakeWatcher{names: []string{"tuning.yaml", "tuning.yaml"}},
			Tuning:  loader,
		})

		p.pollConfig()

		assert.Equal(t, 1, loader.calls, "bursts reload once")
		assert.Same(t, tuning, p.Session().Tuning())
		assert.Same(t, tuning, p.cfg.Tuning)
	})

	t.Run("invalid tuning is rejected", func(t *testing.T) {
		bad := config.Default()
		bad.Display.Framerate = 0
		p := createTestPlaying(t, Options{
			Watcher: &fakeWatcher{names: []string{"tuning.yaml"}},
			Tuning:  &fakeTuning{tuning: bad},
		})
		before := p.Session().Tuning()

		p.pollConfig()

		assert.Same(t, before, p.Session().Tuning())
	})

	t.Run("load error keeps tuning", func(t *testing.T) {
		p := createTestPlaying(t, Options{
			Watcher: &fakeWatcher{names: []string{"tuning.yaml"}},
			Tuning:  &fakeTuning{err: errors.New("broken yaml")},
		})
		before := p.Session().Tuning()

		p.pollConfig()

		assert.Same(t, before, p.Session().Tuning())
	})

	t.Run("stage change is ignored", func(t *testing.T) {
		loader := &fakeTuning{tuning: config.Default()}
		p := createTestPlaying(t, Options{
			Watcher: &fakeWatcher{names: []string{"stages/scene1.yaml"}},
			Tuning:  loader,
		})

		p.pollConfig()

		assert.Zero(t, loader.calls)
	})
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exit.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(12345, "test", 60)

	r.RecordFrame(system.InputState{Left: true, AimX: 3})
	r.RecordFrame(system.InputState{Fire: true, AimY: 4})

	data := r.GetData()
	assert.Equal(t, replay.Version, data.Version)
	assert.Equal(t, 60, data.Framerate)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, replay.FrameInput{F: 0, L: true, AX: 3}, data.Frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, FI: true, AY: 4}, data.Frames[1])
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(12345, "test", 60)

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder(12345, "test", 60)
	r.Stop()

	// Should not record when stopped
	r.RecordFrame(system.InputState{Left: true})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_Save(t *testing.T) {
	t.Run("empty recording", func(t *testing.T) {
		r := NewRecorder(1, "test", 60)
		err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
		assert.ErrorIs(t, err, ErrNoFrames)
	})

	t.Run("parent is a file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		r := NewRecorder(1, "test", 60)
		r.RecordFrame(system.InputState{})
		err := r.Save(filepath.Join(blocker, "run.json"))
		assert.ErrorContains(t, err, "failed to create directory")
	})

	t.Run("writes file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "replays")
		path := filepath.Join(dir, "run.json")
		r := NewRecorder(1, "test", 60)
		r.RecordFrame(system.InputState{Right: true})

		require.NoError(t, r.Save(path))

		data, err := replay.LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, r.GetData(), *data)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file is cleaned up")
	})
}
