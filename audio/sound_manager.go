package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/events"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue identifies a short game sound
type Cue uint8

const (
	CueStart Cue = iota
	CueEat
	CueGameOver
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundManager plays game cues through a mixer on the speaker
// Without an audio device it stays silent; every method is safe to call
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	requested [cueCount]atomic.Int32
	logger    zerolog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		sm.logger.Warn().Err(err).Msg("Audio unavailable, continuing silent")
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether a device is playing
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	m := !sm.muted.Load()
	sm.muted.Store(m)
	sm.logger.Debug().Bool("muted", m).Msg("Mute toggled")
	return m
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Requested returns how many times a cue was triggered, played or not
func (sm *SoundManager) Requested(c Cue) int {
	if c >= cueCount {
		return 0
	}
	return int(sm.requested[c].Load())
}

// Play triggers a cue
func (sm *SoundManager) Play(c Cue) {
	if c >= cueCount {
		return
	}
	sm.requested[c].Add(1)

	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(cueStreamer(c))
	speaker.Unlock()
}

// cueStreamer builds a finite streamer for a cue
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueEat:
		return beep.Take(sampleRate.N(time.Millisecond*90), NewChirpGenerator(sampleRate, 660, 1320))
	case CueGameOver:
		return beep.Take(sampleRate.N(time.Millisecond*450), NewFallingBuzzGenerator(sampleRate, 220, 70))
	default:
		return beep.Take(sampleRate.N(time.Millisecond*60), NewChirpGenerator(sampleRate, 440, 660))
	}
}

// HandleEvent maps game events to cues
func (sm *SoundManager) HandleEvent(_ *engine.Game, ev events.GameEvent) {
	switch ev.Type {
	case events.EventStarted:
		sm.Play(CueStart)
	case events.EventFoodEaten:
		sm.Play(CueEat)
	case events.EventGameOver:
		sm.Play(CueGameOver)
	}
}

// EventTypes returns the events that trigger cues
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{events.EventStarted, events.EventFoodEaten, events.EventGameOver}
}
