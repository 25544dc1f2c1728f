package config

import "strings"

// DifficultyPreset names a canned adjustment of the mission constants.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // use the loaded file untouched
)

// ParseDifficulty converts a flag value to a preset. Unknown or empty
// values fall back to normal.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	case DifficultyFixed:
		return DifficultyFixed
	default:
		return DifficultyNormal
	}
}

// ApplyTrekPreset modifies the config based on a difficulty preset.
func ApplyTrekPreset(cfg *TrekConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Galaxy.MissionDays += 10
		cfg.Klingon.Energy = scale(cfg.Klingon.Energy, 0.75)
	case DifficultyHard:
		cfg.Galaxy.MissionDays = max(1, cfg.Galaxy.MissionDays-5)
		cfg.Klingon.Energy = scale(cfg.Klingon.Energy, 1.25)
	}
}

// scale multiplies a positive quantity, never letting it drop below 1.
func scale(v int, f float64) int {
	return max(1, int(float64(v)*f))
}
