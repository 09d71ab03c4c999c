// Package audio plays the short sound cues requested by the simulation.
package audio

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

import (
	"errors"

	"chosenoffset.com/skirmish/internal/simulation"
)

// ErrUnknownCue is returned when no sound exists for a cue.
var ErrUnknownCue = errors.New("unknown sound cue")

// Player starts sound cues without blocking the caller.
type Player interface {
	// Play (re)starts cue from the beginning.
	Play(cue simulation.Cue)
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play implements Player.
func (Nop) Play(simulation.Cue) {}
