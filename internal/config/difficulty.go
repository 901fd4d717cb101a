package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts a preset name, case-insensitively.
// An empty string means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard)", ErrInvalid, s)
}

// BaseSpeedForPreset returns the level 1 speed for a preset, or 0 for none.
func BaseSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 14
	default:
		return 0
	}
}

// ApplyPreset modifies the settings based on a difficulty preset.
func ApplyPreset(cfg *Settings, preset DifficultyPreset) {
	if speed := BaseSpeedForPreset(preset); speed > 0 {
		cfg.Rules.BaseSpeed = speed
	}
	if preset == DifficultyHard {
		cfg.Rules.SpeedStep = max(cfg.Rules.SpeedStep, 3)
	}
}
