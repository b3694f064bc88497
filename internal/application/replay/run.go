package replay

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/personality/internal/application/session"
	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

// Result summarizes a replayed run
type Result struct {
	Frames     int     // frames simulated
	PlayTime   float64 // seconds survived
	GameOver   bool
	Shots      int
	TowerHits  int
	ShieldHits int
	Reversals  int
}

// Seconds returns the whole seconds survived
func (r Result) Seconds() int { return int(r.PlayTime) }

// Run re-simulates a recording without a window. The session is seeded
// from the recording, so the run matches the live one frame for frame.
// Playback stops at game over or when the frames run out.
func Run(data ReplayData, cfg *config.GameConfig, mask *entity.SolidMask) (Result, error) {
	if cfg != nil && cfg.Stage != nil && data.Stage != "" && data.Stage != cfg.Stage.ID {
		return Result{}, fmt.Errorf("replay recorded on stage %s, got %s", data.Stage, cfg.Stage.ID)
	}

	s, err := session.New(cfg, mask, rand.New(rand.NewSource(data.Seed)))
	if err != nil {
		return Result{}, err
	}

	framerate := data.Framerate
	if framerate <= 0 {
		framerate = cfg.Tuning.Display.Framerate
	}
	dt := 1.0 / float64(framerate)

	var res Result
	replayer := NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}

		over := s.Update(dt, input)
		res.Frames++
		for _, ev := range s.Events() {
			switch ev {
			case entity.EventShoot:
				res.Shots++
			case entity.EventHit:
				res.TowerHits++
			case entity.EventShieldHit:
				res.ShieldHits++
			case entity.EventRolesReversed:
				res.Reversals++
			}
		}
		if over {
			res.GameOver = true
			break
		}
	}

	res.PlayTime = s.PlayTime()
	return res, nil
}
