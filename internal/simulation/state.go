package simulation

import (
	"math/rand"
	"time"
)

// State is the complete arcade world. The frame driver owns it for the
// process lifetime and is its only mutator.
type State struct {
	Width, Height float64 // Canvas size the enemies were placed in

	Player  Player
	Enemies []Enemy
	Bullets []Bullet

	// Frame counts completed simulation steps.
	Frame uint64

	combat CombatConfig
}

// NewState builds the starting world for a canvas of the given size.
// Enemy positions are drawn uniformly from the canvas using rng, or from a
// clock-seeded source when rng is nil.
func NewState(cfg *Config, width, height float64, rng *rand.Rand) *State {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &State{
		Width:  width,
		Height: height,
		Player: Player{
			Body: Body{
				Pos:    Vec{X: cfg.Player.X, Y: cfg.Player.Y},
				Size:   cfg.Player.Size,
				Health: cfg.Player.Health,
				Alive:  true,
			},
			Speed: cfg.Player.Speed,
		},
		Enemies: make([]Enemy, 0, cfg.Enemies.Count),
		combat:  cfg.Combat,
	}

	for i := 0; i < cfg.Enemies.Count; i++ {
		s.Enemies = append(s.Enemies, Enemy{Body: Body{
			Pos:    Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
			Size:   cfg.Enemies.Size,
			Health: cfg.Enemies.Health,
			Alive:  true,
		}})
	}

	return s
}

// AliveEnemies returns how many enemies are still alive.
func (s *State) AliveEnemies() int {
	n := 0
	for i := range s.Enemies {
		if s.Enemies[i].Alive {
			n++
		}
	}
	return n
}
