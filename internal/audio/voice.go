package audio

import "github.com/gopxl/beep"

// voice streams a single cue forever, emitting silence while idle. It stays
// in the mixer for the whole run so a restart is a seek, never a new stream.
type voice struct {
	src    beep.StreamSeeker
	active bool
}

func newVoice(src beep.StreamSeeker) *voice {
	return &voice{src: src}
}

// restart rewinds the cue to time zero. Callers hold the speaker lock.
func (v *voice) restart() error {
	if err := v.src.Seek(0); err != nil {
		return err
	}
	v.active = true
	return nil
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	if v.active {
		filled, ok = v.src.Stream(samples)
		if !ok || filled < len(samples) {
			v.active = false
		}
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (v *voice) Err() error {
	return v.src.Err()
}
