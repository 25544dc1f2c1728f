package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot run a mission.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadTrek loads the mission configuration.
// Search order: customPath -> ~/.trek/configs/trek.yaml -> ./configs/trek.yaml -> embedded default
func LoadTrek(customPath string) (TrekConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultTrekConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, Validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("trek.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, Validate(cfg)
			}
			cfg = DefaultTrekConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/trek.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, Validate(cfg)
		}
		cfg = DefaultTrekConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTrekYAML, &cfg); err != nil {
		return DefaultTrekConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects configurations that would break engine invariants.
func Validate(cfg TrekConfig) error {
	switch {
	case cfg.Ship.Energy <= 0:
		return fmt.Errorf("%w: ship energy must be positive", ErrInvalidConfig)
	case cfg.Ship.Torpedoes < 0:
		return fmt.Errorf("%w: torpedo capacity must not be negative", ErrInvalidConfig)
	case cfg.Klingon.Energy <= 0:
		return fmt.Errorf("%w: klingon energy must be positive", ErrInvalidConfig)
	case cfg.Galaxy.MaxStars < 1 || cfg.Galaxy.MaxStars > 8:
		return fmt.Errorf("%w: max stars must be within 1..8", ErrInvalidConfig)
	case cfg.Galaxy.MissionDays < 1:
		return fmt.Errorf("%w: mission days must be positive", ErrInvalidConfig)
	case cfg.Navigation.MaxWarp <= 0 || cfg.Navigation.MaxWarp > cfg.Navigation.PromptMaxWarp:
		return fmt.Errorf("%w: max warp must be within (0, prompt_max_warp]", ErrInvalidConfig)
	case cfg.Weapons.PhaserScale <= 0:
		return fmt.Errorf("%w: phaser scale must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trek", "configs", filename)
}
