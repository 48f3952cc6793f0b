// Package config provides YAML-based game configuration loading and
// difficulty management for knifefall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// KnifefallConfig contains all tunable parameters of the game.
type KnifefallConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Knife      KnifeConfig      `yaml:"knife"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Effects    EffectsConfig    `yaml:"effects"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// PlayfieldConfig defines the logical drawing surface.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the knife thrower.
type PlayerConfig struct {
	X        float64       `yaml:"x"`
	Y        float64       `yaml:"y"`
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	Speed    float64       `yaml:"speed"`     // Horizontal units per tick while a direction is held
	AttackFx time.Duration `yaml:"attack_fx"` // How long the throwing pose lasts
	HurtFx   time.Duration `yaml:"hurt_fx"`   // How long the hurt pose lasts
}

// KnifeConfig defines thrown knives.
type KnifeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Upward units per tick
}

// HazardsConfig defines falling fruit and bombs.
type HazardsConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	MinSpeed      float64       `yaml:"min_speed"` // Fall speed range at multiplier 1.0
	MaxSpeed      float64       `yaml:"max_speed"`
	FruitInterval time.Duration `yaml:"fruit_interval"` // Spawn interval at multiplier 1.0
	BombInterval  time.Duration `yaml:"bomb_interval"`
	Fruits        []FruitKind   `yaml:"fruits"`
}

// FruitKind is one variety of fruit, picked uniformly at spawn time.
type FruitKind struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// EffectsConfig defines cosmetic effects.
type EffectsConfig struct {
	ExplosionScale    float64       `yaml:"explosion_scale"`
	ExplosionDuration time.Duration `yaml:"explosion_duration"`
	Snowflakes        int           `yaml:"snowflakes"`
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines the speed multiplier and its progression.
type DifficultyConfig struct {
	Enabled        bool       `yaml:"enabled"` // Whether the time ramp is active
	BaseMultiplier float64    `yaml:"base_multiplier"`
	MinMultiplier  float64    `yaml:"min_multiplier"`
	MaxMultiplier  float64    `yaml:"max_multiplier"`
	ButtonStep     float64    `yaml:"button_step"` // Change applied by the faster/slower controls
	Ramp           RampConfig `yaml:"ramp"`
}

// RampConfig defines how difficulty increases over time.
type RampConfig struct {
	Every time.Duration `yaml:"every"`
	Step  float64       `yaml:"step"`
}

// InputConfig tunes keyboard handling for terminals, which never report key release.
type InputConfig struct {
	Hold   time.Duration `yaml:"hold"`   // A direction stays held this long after its last press
	Repeat time.Duration `yaml:"repeat"` // Fire presses closer together than this are auto-repeat
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *KnifefallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseMultiplier = 0.8
		cfg.Gameplay.Lives = 7
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseMultiplier = 1.0
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseMultiplier = 1.5
		cfg.Gameplay.Lives = 3
	}
}

// Validate reports configuration values the game cannot run with.
func (c KnifefallConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, errors.New("playfield must have positive size"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Playfield.Width {
		errs = append(errs, errors.New("player must fit inside the playfield"))
	}
	if c.Knife.Width <= 0 || c.Knife.Height <= 0 || c.Knife.Speed <= 0 {
		errs = append(errs, errors.New("knife needs positive size and speed"))
	}
	if c.Hazards.Width <= 0 || c.Hazards.Height <= 0 || c.Hazards.Width > c.Playfield.Width {
		errs = append(errs, errors.New("hazards must fit inside the playfield"))
	}
	if c.Hazards.MinSpeed <= 0 || c.Hazards.MaxSpeed < c.Hazards.MinSpeed {
		errs = append(errs, errors.New("hazard speed range is invalid"))
	}
	if c.Hazards.FruitInterval <= 0 || c.Hazards.BombInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if len(c.Hazards.Fruits) == 0 {
		errs = append(errs, errors.New("at least one fruit kind is required"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}

	d := c.Difficulty
	if d.MinMultiplier <= 0 || d.MaxMultiplier < d.MinMultiplier {
		errs = append(errs, errors.New("multiplier bounds are invalid"))
	} else if d.BaseMultiplier < d.MinMultiplier || d.BaseMultiplier > d.MaxMultiplier {
		errs = append(errs, errors.New("base multiplier is outside its bounds"))
	}
	if d.Enabled && (d.Ramp.Every <= 0 || d.Ramp.Step <= 0) {
		errs = append(errs, errors.New("difficulty ramp needs a positive interval and step"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
