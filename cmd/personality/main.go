// personality is a side-scrolling tower defense game where, every so
// often, the tower and the player swap roles.
//
// Usage:
//
//	personality play           - Play a stage
//	personality replay <file>  - Re-simulate a recording without a window
//	personality scores         - Show the longest runs
//
// Global flags:
//
//	--config <dir>  - Load configs from disk instead of the embedded defaults
//	--stage <id>    - Stage to play (default: scene1)
//	--db <path>     - Run history database (default: ~/.personality/runs.db)
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/personality/internal/infrastructure/config"
	"github.com/younwookim/personality/internal/infrastructure/level"
)

var (
	// Global flags
	flagConfigDir string
	flagStage     string
	flagDBPath    string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "personality",
	Short: "Personality - defend the tower, then attack it",
	Long: `Personality is a side-scrolling tower defense game. Bullets fly in
from both edges and you shoot them down before they reach the tower.
Every so often the roles reverse: the tower raises a shield and you
have to break it before its countdown runs out.

Examples:
  personality play
  personality play --record run.json
  personality replay run.json
  personality scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagStage, "stage", "scene1", "Stage ID")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.personality/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger shared by every component
func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "personality",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLoader reads configs from dir, or from the embedded defaults when
// dir is empty.
func openLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("config directory: %w", err)
		}
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, ""), nil
}

// loadStage loads tuning plus one stage and builds its level
func loadStage(loader *config.Loader, stage string) (*config.GameConfig, *level.Level, error) {
	cfg, err := loader.LoadAll(stage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	lvl, err := level.Build(loader.FS(), cfg.Stage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build level: %w", err)
	}
	return cfg, lvl, nil
}
