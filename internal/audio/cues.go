package audio

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"chosenoffset.com/skirmish/internal/simulation"
)

// cueBuffer renders the sound for cue into memory, either from the WAV file
// configured for it or from a built-in synth patch.
func cueBuffer(cue simulation.Cue, cfg *Config, sr beep.SampleRate) (*beep.Buffer, error) {
	if path := cueFile(cue, cfg); path != "" {
		return loadWAV(path, sr)
	}

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	switch cue {
	case simulation.CueShoot:
		// Short bright blip
		tone, err := generators.SineTone(sr, 880)
		if err != nil {
			return nil, fmt.Errorf("shoot cue: %w", err)
		}
		buf.Append(newDecay(beep.Take(sr.N(60*time.Millisecond), tone), sr, 40, 0.4))
	case simulation.CueHit:
		// Low thump with a burst of noise
		tone, err := generators.SineTone(sr, 140)
		if err != nil {
			return nil, fmt.Errorf("hit cue: %w", err)
		}
		n := sr.N(90 * time.Millisecond)
		thump := newDecay(beep.Take(n, tone), sr, 25, 0.5)
		crack := newDecay(beep.Take(n, &noise{rng: rand.New(rand.NewSource(int64(cue)))}), sr, 60, 0.25)
		mix := &beep.Mixer{}
		mix.Add(thump, crack)
		buf.Append(beep.Take(n, mix))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCue, cue)
	}

	return buf, nil
}

func cueFile(cue simulation.Cue, cfg *Config) string {
	if cfg == nil {
		return ""
	}
	switch cue {
	case simulation.CueShoot:
		return cfg.ShootWAV
	case simulation.CueHit:
		return cfg.HitWAV
	}
	return ""
}

// loadWAV decodes path fully and resamples it to sr.
func loadWAV(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	if format.SampleRate == sr {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, sr, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}

	return buf, nil
}

// decay applies an exponential fade and a fixed gain
type decay struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	gain     float64
	pos      int
}

func newDecay(s beep.Streamer, sr beep.SampleRate, rate, gain float64) beep.Streamer {
	return &decay{streamer: s, sr: sr, rate: rate, gain: gain}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.sr)
		env := d.gain * math.Exp(-t*d.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// noise generates white noise
type noise struct {
	rng *rand.Rand
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }
