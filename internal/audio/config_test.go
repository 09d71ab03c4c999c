package audio

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.ShootWAV != "" || cfg.HitWAV != "" {
		t.Error("Expected synthesized cues by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SKIRMISH_AUDIO_ENABLED", "false")
	t.Setenv("SKIRMISH_MASTER_VOLUME", "80")
	t.Setenv("SKIRMISH_SAMPLE_RATE", "48000")
	t.Setenv("SKIRMISH_SHOOT_WAV", "shoot.wav")
	t.Setenv("SKIRMISH_HIT_WAV", "hit.wav")

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.ShootWAV != "shoot.wav" || cfg.HitWAV != "hit.wav" {
		t.Errorf("Expected WAV overrides, got %q %q", cfg.ShootWAV, cfg.HitWAV)
	}
}

func TestLoadConfigVolumeClamping(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0},
		{"50", 0.5},
		{"100", 1},
		{"150", 1},
		{"-20", 0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SKIRMISH_MASTER_VOLUME", tc.value)
			cfg := LoadConfig()
			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected volume %f for %q, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

func TestLoadConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("SKIRMISH_AUDIO_ENABLED", "maybe")
	t.Setenv("SKIRMISH_SAMPLE_RATE", "-1")

	cfg := LoadConfig()

	if !cfg.Enabled {
		t.Error("Expected invalid flag to keep the default")
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected invalid sample rate to keep the default, got %d", cfg.SampleRate)
	}
}
