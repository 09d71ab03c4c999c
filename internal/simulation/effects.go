package simulation

import "fmt"

// Cue identifies a short sound played in response to a game event.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueCount
)

// String returns the cue's asset name.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// EffectKind classifies an effect emitted by the simulation.
type EffectKind int

const (
	EffectPlayCue    EffectKind = iota // Cue holds the sound to (re)start
	EffectEnemyDown                    // Enemy holds the index of the enemy that died
	EffectPlayerDown                   // The player died this frame
)

// Effect is a side effect requested by the simulation. The frame driver
// decides how to carry it out, keeping the step itself deterministic.
type Effect struct {
	Kind  EffectKind
	Cue   Cue
	Enemy int
}

// PlayCue builds an effect that (re)starts cue.
func PlayCue(cue Cue) Effect {
	return Effect{Kind: EffectPlayCue, Cue: cue}
}
