package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSnakeYAML))
	copy(out, defaultSnakeYAML)
	return out
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	rules := game.DefaultRules()
	return Settings{
		Board: BoardConfig{
			Width:  rules.Width,
			Height: rules.Height,
		},
		Rules: RulesConfig{
			WallBehavior:    rules.Wall,
			BaseSpeed:       rules.BaseSpeed,
			SpeedStep:       rules.SpeedStep,
			PointsPerFood:   rules.PointsPerFood,
			LevelEvery:      rules.LevelEvery,
			LeaderboardSize: rules.LeaderboardSize,
			IdleRate:        30,
		},
		Storage: storage.DefaultConfig(),
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
		Source: "embedded",
	}
}
