package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/knifefall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/knifefall.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() KnifefallConfig {
	return KnifefallConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 500,
		},
		Player: PlayerConfig{
			X:        350,
			Y:        420,
			Width:    50,
			Height:   80,
			Speed:    5,
			AttackFx: 200 * time.Millisecond,
			HurtFx:   500 * time.Millisecond,
		},
		Knife: KnifeConfig{
			Width:  15,
			Height: 32,
			Speed:  8,
		},
		Hazards: HazardsConfig{
			Width:         40,
			Height:        40,
			MinSpeed:      2,
			MaxSpeed:      5,
			FruitInterval: 1200 * time.Millisecond,
			BombInterval:  3 * time.Second,
			Fruits: []FruitKind{
				{Name: "apple", Glyph: "●", Color: "bright_red"},
				{Name: "hami melon", Glyph: "◍", Color: "bright_yellow"},
				{Name: "watermelon", Glyph: "◉", Color: "bright_green"},
				{Name: "peach", Glyph: "●", Color: "orange"},
			},
		},
		Effects: EffectsConfig{
			ExplosionScale:    2,
			ExplosionDuration: 500 * time.Millisecond,
			Snowflakes:        80,
		},
		Gameplay: GameplayConfig{
			Lives: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BaseMultiplier: 1.0,
			MinMultiplier:  0.5,
			MaxMultiplier:  3.0,
			ButtonStep:     0.2,
			Ramp: RampConfig{
				Every: 5 * time.Second,
				Step:  0.1,
			},
		},
		Input: InputConfig{
			Hold:   150 * time.Millisecond,
			Repeat: 60 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default config file, e.g. for `knifefall config`.
func DefaultYAML() []byte {
	return defaultYAML
}
