package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "knifefall.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.knifefall/configs/knifefall.yaml -> ./configs/knifefall.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func Load(customPath string) (KnifefallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KnifefallConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return KnifefallConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadWithPreset loads the configuration and applies a difficulty preset on top.
func LoadWithPreset(customPath string, preset DifficultyPreset) (KnifefallConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		ApplyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

func decode(data []byte) (KnifefallConfig, error) {
	cfg := DefaultConfig()
	// Replace the fruit list wholesale instead of merging element by element.
	cfg.Hazards.Fruits = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KnifefallConfig{}, err
	}
	if len(cfg.Hazards.Fruits) == 0 {
		cfg.Hazards.Fruits = DefaultConfig().Hazards.Fruits
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".knifefall", "configs", filename)
}
