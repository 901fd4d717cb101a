// Package config provides YAML-based settings loading, environment
// overrides and difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid settings")

// Settings contains the whole game configuration.
type Settings struct {
	Board   BoardConfig    `yaml:"board"`
	Rules   RulesConfig    `yaml:"rules"`
	Storage storage.Config `yaml:"storage"`
	Log     LogConfig      `yaml:"log"`

	// Source is the file the settings were read from, or "embedded".
	Source string `yaml:"-"`
}

// BoardConfig defines the playing field in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines the scoring and speed policy.
type RulesConfig struct {
	WallBehavior    game.WallBehavior `yaml:"wall_behavior"`
	BaseSpeed       int               `yaml:"base_speed"`       // Ticks per second at level 1
	SpeedStep       int               `yaml:"speed_step"`       // Added to speed on level up
	PointsPerFood   int               `yaml:"points_per_food"`  // Score per meal
	LevelEvery      int               `yaml:"level_every"`      // Points per level
	LeaderboardSize int               `yaml:"leaderboard_size"` // Rows shown on the leaderboard
	IdleRate        int               `yaml:"idle_rate"`        // Driver rate outside a round
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by interactive play only
}

// GameRules converts the settings into the rules a session runs with.
func (s Settings) GameRules() game.Rules {
	return game.Rules{
		Width:           s.Board.Width,
		Height:          s.Board.Height,
		Wall:            s.Rules.WallBehavior,
		BaseSpeed:       s.Rules.BaseSpeed,
		SpeedStep:       s.Rules.SpeedStep,
		PointsPerFood:   s.Rules.PointsPerFood,
		LevelEvery:      s.Rules.LevelEvery,
		LeaderboardSize: s.Rules.LeaderboardSize,
	}
}

// Validate checks every section. The error wraps ErrInvalid.
func (s Settings) Validate() error {
	if err := s.GameRules().Validate(); err != nil {
		return fmt.Errorf("%w: rules: %w", ErrInvalid, err)
	}
	if s.Rules.IdleRate < 1 {
		return fmt.Errorf("%w: rules: idle_rate must be at least 1, got %d", ErrInvalid, s.Rules.IdleRate)
	}
	if err := s.Storage.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalid, err)
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (s Settings) LogLevel() log.Level {
	lvl, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
