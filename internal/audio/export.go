package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"chosenoffset.com/skirmish/internal/simulation"
)

// ExportCues writes the built-in synth patch of every cue to dir as
// <cue>.wav and returns the written paths. The files are valid overrides
// for SKIRMISH_SHOOT_WAV and SKIRMISH_HIT_WAV.
func ExportCues(dir string, sampleRate int) ([]string, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	// An empty config never points at files, so every cue is synthesized.
	synth := &Config{SampleRate: sampleRate}
	sr := beep.SampleRate(sampleRate)

	var paths []string
	for cue := simulation.Cue(0); cue < simulation.CueCount; cue++ {
		buf, err := cueBuffer(cue, synth, sr)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, cue.String()+".wav")
		if err := writeWAV(path, buf); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWAV(path string, buf *beep.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, buf.Streamer(0, buf.Len()), buf.Format()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
