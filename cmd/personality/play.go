package main

import (
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/personality/internal/application/game"
	"github.com/younwookim/personality/internal/application/scene/playing"
	"github.com/younwookim/personality/internal/infrastructure/audio"
	"github.com/younwookim/personality/internal/infrastructure/config"
	"github.com/younwookim/personality/internal/infrastructure/storage"
)

var (
	flagRecord string
	flagSeed   int64
	flagWatch  bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a stage",
	Long: `Open the game window and play.

Controls:
  A/D, Left/Right  - Move
  Space            - Jump (twice for a double jump)
  Left click       - Shoot toward the cursor
  Esc              - Pause
  P                - Restart (after game over)

Examples:
  personality play
  personality play --stage scene1 --seed 42
  personality play --record run.json
  personality play --config ./configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the first run's input to file (e.g. --record run.json)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning.yaml while playing (needs --config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger(flagDebug)

	loader, err := openLoader(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, lvl, err := loadStage(loader, flagStage)
	if err != nil {
		return err
	}

	opts := playing.Options{
		Logger:     logger,
		RecordPath: flagRecord,
		Seed:       flagSeed,
		Tuning:     loader,
	}

	// Run history is optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
	} else {
		defer func() { _ = store.Close() }()
		opts.Store = store
	}

	sound := audio.NewSoundManager()
	sound.SetMuted(flagMute)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		defer sound.Cleanup()
	}
	opts.Sound = sound

	if flagWatch {
		if base := loader.BasePath(); base == "" {
			logger.Warn("--watch needs --config; embedded configs cannot change")
		} else {
			watcher, err := config.NewWatcher(base, filepath.Join(base, "stages"))
			if err != nil {
				logger.Warn("config watch disabled", "err", err)
			} else {
				defer func() { _ = watcher.Close() }()
				opts.Watcher = watcher
				logger.Info("watching configs", "dir", base)
			}
		}
	}

	scn, err := playing.New(cfg, lvl, opts)
	if err != nil {
		return err
	}

	display := cfg.Tuning.Display
	g := game.New(scn, display.ScreenWidth, display.ScreenHeight, display.Framerate)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	logger.Info("starting", "stage", cfg.Stage.ID, "seed", scn.Seed())
	return ebiten.RunGame(g)
}
