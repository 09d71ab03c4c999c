package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	data := `{"player": {"speed": 6}, "enemies": {"count": 8}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Player.Speed != 6 {
		t.Errorf("Expected speed 6, got %v", cfg.Player.Speed)
	}
	if cfg.Enemies.Count != 8 {
		t.Errorf("Expected 8 enemies, got %d", cfg.Enemies.Count)
	}
	if cfg.Player.Health != 100 || cfg.Combat.ContactDamage != 0.2 {
		t.Errorf("Expected untouched fields to keep defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":       `{"player": `,
		"negative count":  `{"enemies": {"count": -1}}`,
		"dead player":     `{"player": {"health": 0}}`,
		"negative damage": `{"combat": {"bullet_damage": -5}}`,
		"dead enemies":    `{"enemies": {"health": -1}}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sim.json")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
