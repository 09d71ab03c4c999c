package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/skirmish/internal/simulation"
)

// SoundManager plays cues through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	voices      [simulation.CueCount]*voice
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing is opened until Initialize.
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize renders every cue and opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	voices, err := buildVoices(sm.config, sr)
	if err != nil {
		return err
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sr, sr.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	sm.voices = voices
	for _, v := range voices {
		sm.mixer.Add(v)
	}
	speaker.Play(masterVolume(sm.mixer, sm.config.MasterVolume))
	sm.initialized = true
	return nil
}

// Play restarts cue from time zero. A cue that is still sounding is cut
// and rewound rather than layered.
func (sm *SoundManager) Play(cue simulation.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || cue < 0 || cue >= simulation.CueCount {
		return
	}

	speaker.Lock()
	err := sm.voices[cue].restart()
	speaker.Unlock()
	if err != nil {
		log.Printf("Failed to restart %v cue: %v", cue, err)
	}
}

// Cleanup silences all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

func buildVoices(cfg *Config, sr beep.SampleRate) ([simulation.CueCount]*voice, error) {
	var voices [simulation.CueCount]*voice
	for cue := simulation.Cue(0); cue < simulation.CueCount; cue++ {
		buf, err := cueBuffer(cue, cfg, sr)
		if err != nil {
			return voices, err
		}
		voices[cue] = newVoice(buf.Streamer(0, buf.Len()))
	}
	return voices, nil
}

// masterVolume scales s linearly by level in [0, 1].
func masterVolume(s beep.Streamer, level float64) beep.Streamer {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}
