package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/personality/internal/application/replay"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run without a window",
	Long: `Replay a recording made with 'personality play --record'. The run is
simulated headless with the recorded seed, so it ends exactly as the
recorded one did.

Examples:
  personality replay run.json
  personality replay run.json --config ./configs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := openLoader(flagConfigDir)
		if err != nil {
			return err
		}
		return runReplay(cmd.OutOrStdout(), args[0], loader)
	},
}

// runReplay simulates the recording at path and prints a summary to w.
// The recording's stage wins over --stage.
func runReplay(w io.Writer, path string, loader *config.Loader) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	stage := data.Stage
	if stage == "" {
		stage = flagStage
	}
	cfg, lvl, err := loadStage(loader, stage)
	if err != nil {
		return err
	}

	res, err := replay.Run(*data, cfg, lvl.Mask)
	if err != nil {
		return err
	}

	status := "recording ended"
	if res.GameOver {
		status = "game over"
	}
	_, err = fmt.Fprintf(w, `Replay %s (stage %s, seed %d)
  %s after %d frames
  You held on for %d seconds
  shots: %d  tower hits: %d  shield hits: %d  reversals: %d
`,
		path, stage, data.Seed,
		status, res.Frames,
		res.Seconds(),
		res.Shots, res.TowerHits, res.ShieldHits, res.Reversals,
	)
	return err
}

