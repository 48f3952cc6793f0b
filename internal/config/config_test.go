package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(defaultYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML is invalid: %v", err)
	}

	def := DefaultConfig()
	if cfg.Playfield != def.Playfield {
		t.Errorf("playfield = %+v, expected %+v", cfg.Playfield, def.Playfield)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Knife != def.Knife {
		t.Errorf("knife = %+v, expected %+v", cfg.Knife, def.Knife)
	}
	if cfg.Hazards.FruitInterval != 1200*time.Millisecond || cfg.Hazards.BombInterval != 3*time.Second {
		t.Errorf("intervals = %v/%v", cfg.Hazards.FruitInterval, cfg.Hazards.BombInterval)
	}
	if len(cfg.Hazards.Fruits) != 4 {
		t.Errorf("expected 4 fruit kinds, got %d", len(cfg.Hazards.Fruits))
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty = %+v, expected %+v", cfg.Difficulty, def.Difficulty)
	}
	if cfg.Input != def.Input {
		t.Errorf("input = %+v, expected %+v", cfg.Input, def.Input)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 9\nhazards:\n  bomb_interval: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, expected 9", cfg.Gameplay.Lives)
	}
	if cfg.Hazards.BombInterval != time.Second {
		t.Errorf("bomb interval = %v, expected 1s", cfg.Hazards.BombInterval)
	}
	// Untouched sections keep their defaults
	if cfg.Playfield.Width != 800 || cfg.Knife.Speed != 8 {
		t.Errorf("defaults lost: playfield=%+v knife=%+v", cfg.Playfield, cfg.Knife)
	}
	if len(cfg.Hazards.Fruits) == 0 {
		t.Error("fruit kinds should fall back to defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("expected lives validation error, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		multiplier float64
		lives      int
	}{
		{DifficultyEasy, true, 0.8, 7},
		{DifficultyNormal, true, 1.0, 5},
		{DifficultyHard, true, 1.5, 3},
		{DifficultyFixed, false, 1.0, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.BaseMultiplier != tc.multiplier {
				t.Errorf("base multiplier = %v, expected %v", cfg.Difficulty.BaseMultiplier, tc.multiplier)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestValidateMultiplierBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Difficulty.BaseMultiplier = 4
	if err := cfg.Validate(); err == nil {
		t.Error("base multiplier above max should be rejected")
	}

	cfg = DefaultConfig()
	cfg.Difficulty.MinMultiplier = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero min multiplier should be rejected")
	}
}

func TestDifficultyAdjustClamps(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	for i := 0; i < 20; i++ {
		d.Adjust(0.2)
	}
	if d.Multiplier() != 3.0 {
		t.Errorf("multiplier = %v, expected clamp at 3.0", d.Multiplier())
	}

	for i := 0; i < 20; i++ {
		d.Adjust(-0.2)
	}
	if d.Multiplier() != 0.5 {
		t.Errorf("multiplier = %v, expected clamp at 0.5", d.Multiplier())
	}

	prev, next := d.Adjust(0.2)
	if prev != 0.5 || math.Abs(next-0.7) > 1e-9 {
		t.Errorf("Adjust() = (%v, %v), expected (0.5, 0.7)", prev, next)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)
	if got := d.Interval(1200 * time.Millisecond); got != 1200*time.Millisecond {
		t.Errorf("Interval at 1.0 = %v", got)
	}
	d.Adjust(1.0)
	if got := d.Interval(3 * time.Second); got != 1500*time.Millisecond {
		t.Errorf("Interval at 2.0 = %v, expected 1.5s", got)
	}
}

func TestDifficultyRamp(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)
	d.Reset(0)

	if _, ok := d.Ramp(4999 * time.Millisecond); ok {
		t.Error("ramp should not fire before the interval")
	}
	step, ok := d.Ramp(5 * time.Second)
	if !ok || step != 0.1 {
		t.Errorf("Ramp(5s) = (%v, %v), expected (0.1, true)", step, ok)
	}
	if _, ok := d.Ramp(6 * time.Second); ok {
		t.Error("ramp clock should restart after a step")
	}

	d.Adjust(10)
	if _, ok := d.Ramp(time.Hour); ok {
		t.Error("ramp should stop at max multiplier")
	}

	d.SetEnabled(false)
	d.Adjust(-10)
	if _, ok := d.Ramp(2 * time.Hour); ok {
		t.Error("disabled ramp should never fire")
	}
}
