// Package audio plays short synthesized cues for simulation events.
// Audio is optional: without an output device every call is a no-op.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/personality/internal/domain/entity"
)

const (
	sampleRate = beep.SampleRate(48000)

	// masterGain keeps overlapping cues below clipping
	masterGain = 0.25
)

// SoundManager routes events to cached cues
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        map[entity.EventKind]floatBuffer
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager with every cue pre-rendered
func NewSoundManager() *SoundManager {
	rng := rand.New(rand.NewSource(noiseSeed))
	return &SoundManager{
		mixer: &beep.Mixer{},
		cues: map[entity.EventKind]floatBuffer{
			entity.EventShoot:         generateShootSound(rng).scale(0.6),
			entity.EventJump:          generateJumpSound(rng).scale(0.5),
			entity.EventHit:           generateHitSound(rng),
			entity.EventShieldHit:     generateShieldHitSound(rng).scale(0.7),
			entity.EventRolesReversed: generateArpeggio(rng, 440, 554, 659, 880),
			entity.EventRolesRestored: generateArpeggio(rng, 880, 659, 554, 440),
			entity.EventGameOver:      generateGameOverSound(rng),
		},
	}
}

// Initialize opens the speaker. Safe to call twice.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted turns cue playback off or on
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether cues are muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts the cue for kind
func (sm *SoundManager) Play(kind entity.EventKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	cue, ok := sm.cues[kind]
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newBufferStreamer(cue, masterGain))
	speaker.Unlock()
}

// PlayAll plays one cue per distinct event, so a burst of hits in one
// frame sounds once.
func (sm *SoundManager) PlayAll(events []entity.EventKind) {
	var seen [entity.EventGameOver + 1]bool
	for _, ev := range events {
		if ev < 0 || int(ev) >= len(seen) || seen[ev] {
			continue
		}
		seen[ev] = true
		sm.Play(ev)
	}
}
