// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/personality/internal/application/scene"
	"github.com/younwookim/personality/internal/application/session"
	"github.com/younwookim/personality/internal/application/state"
	"github.com/younwookim/personality/internal/application/system"
	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
	"github.com/younwookim/personality/internal/infrastructure/level"
)

// Colors for rendering
var (
	colorSky        = colornames.Skyblue
	colorPlayer     = colornames.Forestgreen
	colorPlayerAlt  = colornames.Seagreen
	colorTower      = colornames.Slategray
	colorShield     = colornames.Lightsteelblue
	colorFlash      = colornames.White
	colorBullet     = colornames.Black
	colorBarFrame   = colornames.Black
	colorBarBG      = colornames.Gray
	colorHealth     = colornames.Red
	colorBadHealth  = colornames.Blue
	colorOverlay    = color.RGBA{0, 0, 0, 128}
	colorGameOverBG = color.RGBA{20, 20, 30, 220}
)

// Tower health bar, in world pixels
var healthBarSize = entity.Vec2{X: 20, Y: 4}

const healthBarSpacing = 3.0

// debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

// RunStore persists finished runs
type RunStore interface {
	SaveRun(stage string, seconds int, seed int64) (int64, error)
}

// CuePlayer plays audio cues for a frame's events
type CuePlayer interface {
	PlayAll(events []entity.EventKind)
}

// ConfigWatcher reports changed config files without blocking
type ConfigWatcher interface {
	Poll() (string, bool)
}

// TuningLoader reloads tuning from disk
type TuningLoader interface {
	LoadTuning() (*config.TuningConfig, error)
}

// InputSource reads one frame of input
type InputSource interface {
	GetInput(view system.Viewport) system.InputState
}

// Options wires optional collaborators into the scene. Nil fields are
// skipped.
type Options struct {
	Logger     *log.Logger
	RecordPath string
	Seed       int64 // 0 picks a seed from the clock
	Store      RunStore
	Sound      CuePlayer
	Watcher    ConfigWatcher
	Tuning     TuningLoader
	Input      InputSource
}

// Playing is the main gameplay scene
type Playing struct {
	cfg     *config.GameConfig
	level   *level.Level
	log     *log.Logger
	store   RunStore
	sound   CuePlayer
	watcher ConfigWatcher
	tuning  TuningLoader
	input   InputSource

	session *session.Session
	camera  *Camera
	state   state.GameState
	seed    int64
	dt      float64
	screenW int
	screenH int

	// Input recording; only the first run is recorded
	recorder       *Recorder
	recordFilename string

	background *ebiten.Image
	texts      map[string]*ebiten.Image
}

// New creates a new Playing scene on a loaded level.
// If opts.RecordPath is not empty, the first run is recorded.
func New(cfg *config.GameConfig, lvl *level.Level, opts Options) (*Playing, error) {
	if lvl == nil {
		return nil, session.ErrNoMask
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := session.New(cfg, lvl.Mask, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	input := opts.Input
	if input == nil {
		input = system.NewInputSystem()
	}

	display := cfg.Tuning.Display
	p := &Playing{
		cfg:            cfg,
		level:          lvl,
		log:            logger,
		store:          opts.Store,
		sound:          opts.Sound,
		watcher:        opts.Watcher,
		tuning:         opts.Tuning,
		input:          input,
		session:        s,
		camera:         NewCamera(display.ScreenWidth, display.ScreenHeight, lvl.Width(), lvl.Height(), s.Scale()),
		state:          state.StatePlaying,
		seed:           seed,
		dt:             1.0 / float64(display.Framerate),
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		recordFilename: opts.RecordPath,
		texts:          make(map[string]*ebiten.Image),
	}
	p.camera.Follow(s.Player().Center())

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(seed, cfg.Stage.ID, display.Framerate)
		p.log.Info("recording enabled", "file", opts.RecordPath, "seed", seed)
	}
	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollConfig()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.state.TogglePause()
			return nil, nil
		}
		p.step(p.input.GetInput(p.camera))
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

// step advances the session by one frame of input
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	over := p.session.Update(p.dt, input)
	events := p.session.Events()
	if p.sound != nil && len(events) > 0 {
		p.sound.PlayAll(events)
	}
	for _, ev := range events {
		switch ev {
		case entity.EventRolesReversed:
			p.log.Debug("roles reversed", "flipped", p.session.Tower().Flipped())
		case entity.EventRolesRestored:
			p.log.Debug("roles restored")
		}
	}

	p.camera.Follow(p.session.Player().Center())

	if over {
		p.finish()
	}
}

// finish records the end of a run
func (p *Playing) finish() {
	p.state = state.StateGameOver
	seconds := p.session.Seconds()
	p.log.Info("game over", "stage", p.cfg.Stage.ID, "seconds", seconds, "seed", p.seed)

	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}

	if p.store != nil {
		if _, err := p.store.SaveRun(p.cfg.Stage.ID, seconds, p.seed); err != nil {
			p.log.Error("failed to save run", "err", err)
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "err", err)
	} else {
		p.log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// restart begins a new run with a fresh seed
func (p *Playing) restart() error {
	p.seed = time.Now().UnixNano()
	s, err := session.New(p.cfg, p.level.Mask, rand.New(rand.NewSource(p.seed)))
	if err != nil {
		return err
	}

	p.session = s
	p.state = state.StatePlaying
	p.camera.Follow(s.Player().Center())
	p.log.Debug("restarted", "seed", p.seed)
	return nil
}

// pollConfig applies tuning changes reported by the watcher
func (p *Playing) pollConfig() {
	if p.watcher == nil || p.tuning == nil {
		return
	}

	reload := false
	for {
		name, ok := p.watcher.Poll()
		if !ok {
			break
		}
		if config.IsTuningFile(name) {
			reload = true
		} else {
			p.log.Debug("config change ignored until restart", "file", name)
		}
	}
	if !reload {
		return
	}

	tuning, err := p.tuning.LoadTuning()
	if err != nil {
		p.log.Warn("tuning reload failed", "err", err)
		return
	}
	if err := p.session.ApplyTuning(tuning); err != nil {
		p.log.Warn("tuning rejected", "err", err)
		return
	}
	p.cfg = &config.GameConfig{Tuning: tuning, Stage: p.cfg.Stage}
	p.log.Info("tuning reloaded")
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	p.drawLevel(screen)
	p.drawProjectiles(screen)
	p.drawTower(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawLevel(screen *ebiten.Image) {
	if p.background == nil {
		p.background = ebiten.NewImageFromImage(p.level.Image)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-p.camera.X, -p.camera.Y)
	op.GeoM.Scale(p.camera.Zoom, p.camera.Zoom)
	screen.DrawImage(p.background, op)
}

func (p *Playing) fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	x, y, w, h := p.camera.RectToScreen(r)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	scn := p.session.Scene()
	size := scn.ProjectileSize()
	for _, proj := range scn.Projectiles() {
		p.fillRect(screen, proj.Hitbox(size), colorBullet)
	}
}

func (p *Playing) drawTower(screen *ebiten.Image) {
	tower := p.session.Tower()

	c := colorTower
	if tower.Flashing() {
		c = colorFlash
	}
	p.fillRect(screen, tower.Rect(), c)

	if shield, ok := tower.Shield(); ok {
		c = colorShield
		if shield.Flashing() {
			c = colorFlash
		}
		p.fillRect(screen, shield.Rect(), c)
	}

	// Health bar above the tower
	bar := entity.NewRect(
		tower.Position().X+(tower.Size().X-healthBarSize.X)/2,
		tower.Position().Y-healthBarSpacing-healthBarSize.Y,
		healthBarSize.X, healthBarSize.Y,
	)
	inner := entity.NewRect(bar.X+1, bar.Y+1, bar.Width-2, bar.Height-2)
	fill := inner
	fill.Width *= tower.DisplayHealth()

	healthColor := colorHealth
	if tower.Reversed() {
		healthColor = colorBadHealth
	}
	p.fillRect(screen, bar, colorBarFrame)
	p.fillRect(screen, inner, colorBarBG)
	p.fillRect(screen, fill, healthColor)

	if tower.Reversed() {
		x, y := p.camera.WorldToScreen(bar.Position())
		p.drawText(screen, fmt.Sprintf("%d", int(tower.Countdown())), x, y-10*p.camera.Zoom, p.camera.Zoom*10/glyphH, colorHealth)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.session.Player()

	c := colorPlayer
	if player.AnimationIndex()%2 == 1 {
		c = colorPlayerAlt
	}
	p.fillRect(screen, player.Rect(), c)

	// Eye on the facing side
	box := player.Rect()
	eye := entity.NewRect(box.X+box.Width-3, box.Y+3, 2, 2)
	if player.Facing < 0 {
		eye.X = box.X + 1
	}
	p.fillRect(screen, eye, colorFlash)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.0f", ebiten.ActualFPS()), 12, 12)

	if timer, ok := p.session.Banner(); ok {
		p.drawText(screen, "Roles Reversed!", 20, 20, timer*100/glyphH, colornames.Whitesmoke)
	}

	controls := "A/D: Move | Space: Jump | LClick: Shoot | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 12, p.screenH-glyphH-4)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	p.drawCentered(screen, "PAUSED", float64(p.screenH)/2-30, 3)
	p.drawCentered(screen, "Press ESC to resume", float64(p.screenH)/2+20, 1.5)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorGameOverBG, false)
	p.drawCentered(screen, "Game Over", 10, 60.0/glyphH)
	p.drawCentered(screen, fmt.Sprintf("You held on for %d seconds", p.session.Seconds()), 70, 30.0/glyphH)
	p.drawCentered(screen, "Press P to restart", 110, 20.0/glyphH)
}

// drawCentered draws s horizontally centered at screen row y
func (p *Playing) drawCentered(screen *ebiten.Image, s string, y, scale float64) {
	w := float64(len(s)*glyphW) * scale
	p.drawText(screen, s, (float64(p.screenW)-w)/2, y, scale, colornames.White)
}

// drawText draws debug-font text scaled and tinted. Rendered strings are
// cached since the HUD repeats them every frame.
func (p *Playing) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	if scale <= 0 {
		return
	}
	img, ok := p.texts[s]
	if !ok {
		img = ebiten.NewImage(len(s)*glyphW+1, glyphH)
		ebitenutil.DebugPrint(img, s)
		p.texts[s] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(_, _ int) (int, int) {
	return p.screenW, p.screenH
}

// Session returns the running session
func (p *Playing) Session() *session.Session { return p.session }

// State returns the scene state
func (p *Playing) State() state.GameState { return p.state }

// Seed returns the seed of the current run
func (p *Playing) Seed() int64 { return p.seed }
