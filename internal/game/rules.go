package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// WallBehavior decides what happens when the head leaves the board.
type WallBehavior string

const (
	WallLethal     WallBehavior = "lethal"
	WallWraparound WallBehavior = "wraparound"
)

// Valid reports whether w is a known behavior.
func (w WallBehavior) Valid() bool {
	return w == WallLethal || w == WallWraparound
}

// MinBoardSize is the smallest accepted board edge.
const MinBoardSize = 5

// Rules holds the board geometry and the scoring/leveling policy of a round.
type Rules struct {
	Width  int
	Height int
	Wall   WallBehavior

	BaseSpeed     int // ticks per second at level 1
	SpeedStep     int // added to the speed on every level up
	PointsPerFood int
	LevelEvery    int // a level is gained each time the score crosses a multiple of this

	LeaderboardSize int
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return Rules{
		Width:           40,
		Height:          20,
		Wall:            WallLethal,
		BaseSpeed:       10,
		SpeedStep:       2,
		PointsPerFood:   10,
		LevelEvery:      50,
		LeaderboardSize: 10,
	}
}

// Validate rejects rule sets the tick algorithm cannot honour.
// LevelEvery must be at least PointsPerFood so that one meal crosses at
// most one level boundary.
func (r Rules) Validate() error {
	if r.Width < MinBoardSize || r.Height < MinBoardSize {
		return fmt.Errorf("board %dx%d is smaller than %dx%d", r.Width, r.Height, MinBoardSize, MinBoardSize)
	}
	if !r.Wall.Valid() {
		return fmt.Errorf("unknown wall behavior %q", r.Wall)
	}
	if r.BaseSpeed < 1 {
		return fmt.Errorf("base speed must be at least 1, got %d", r.BaseSpeed)
	}
	if r.SpeedStep < 0 {
		return fmt.Errorf("speed step must not be negative, got %d", r.SpeedStep)
	}
	if r.PointsPerFood < 1 {
		return fmt.Errorf("points per food must be at least 1, got %d", r.PointsPerFood)
	}
	if r.LevelEvery < r.PointsPerFood {
		return fmt.Errorf("level_every (%d) must be >= points per food (%d)", r.LevelEvery, r.PointsPerFood)
	}
	if r.LeaderboardSize < 1 {
		return fmt.Errorf("leaderboard size must be at least 1, got %d", r.LeaderboardSize)
	}
	return nil
}

// Bounds returns the board as a rectangle anchored at the origin.
func (r Rules) Bounds() core.Rect {
	return core.NewRect(0, 0, r.Width, r.Height)
}
