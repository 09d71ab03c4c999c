// Package simulation holds the arcade state and the per-frame rules that
// mutate it. Tuning values are loaded from data files so a run can be
// adjusted without rebuilding.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all tunable simulation rules
type Config struct {
	Player  PlayerConfig `json:"player"`
	Enemies EnemyConfig  `json:"enemies"`
	Combat  CombatConfig `json:"combat"`
}

// PlayerConfig defines the player's starting state
type PlayerConfig struct {
	X      float64 `json:"x"`      // Spawn position in world coords
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`   // Contact threshold against enemies
	Speed  float64 `json:"speed"`  // Displacement per frame per held axis
	Health float64 `json:"health"` // Starting health (also the bar maximum)
}

// EnemyConfig defines how the enemy set is populated
type EnemyConfig struct {
	Count  int     `json:"count"`
	Size   float64 `json:"size"`
	Health float64 `json:"health"`
}

// CombatConfig defines damage amounts
type CombatConfig struct {
	BulletDamage  float64 `json:"bullet_damage"`  // Per bullet hit on an enemy
	ContactDamage float64 `json:"contact_damage"` // Per frame of enemy overlap on the player
}

// DefaultConfig returns the classic arcade tuning
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			X:      400,
			Y:      300,
			Size:   20,
			Speed:  4,
			Health: 100,
		},
		Enemies: EnemyConfig{
			Count:  5,
			Size:   20,
			Health: 50,
		},
		Combat: CombatConfig{
			BulletDamage:  20,
			ContactDamage: 0.2,
		},
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects tunings that cannot produce a playable state.
func (c *Config) Validate() error {
	if c.Enemies.Count < 0 {
		return fmt.Errorf("invalid simulation config: enemies.count %d is negative", c.Enemies.Count)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("invalid simulation config: player.health must be positive")
	}
	if c.Enemies.Health <= 0 {
		return fmt.Errorf("invalid simulation config: enemies.health must be positive")
	}
	if c.Combat.BulletDamage < 0 || c.Combat.ContactDamage < 0 {
		return fmt.Errorf("invalid simulation config: damage must not be negative")
	}
	return nil
}
