package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Snapshot is a read-only render model of the session, built fresh on
// every call.
type Snapshot struct {
	Phase       Phase
	Paused      bool
	Status      Status
	StoreOnline bool

	Username string // registered player, empty before login
	Input    string // login buffer

	Width  int
	Height int
	Wall   WallBehavior

	Snake     []core.Point // head first, nil before the first round
	Food      core.Point
	Direction core.Direction
	Score     int
	Level     int
	Speed     int
	Tick      uint64
	Round     int
	Cause     Cause

	Leaderboard []storage.ScoreEntry
}

// Snapshot returns the current render model.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       s.phase,
		Paused:      s.paused,
		Status:      s.status,
		StoreOnline: s.storeOnline,
		Username:    s.username,
		Input:       string(s.buffer),
		Width:       s.rules.Width,
		Height:      s.rules.Height,
		Wall:        s.rules.Wall,
		Food:        s.food,
		Direction:   s.current,
		Score:       s.score,
		Level:       s.level,
		Speed:       s.speed,
		Tick:        s.ticks,
		Round:       s.round,
		Cause:       s.cause,
	}
	if s.body != nil {
		snap.Snake = s.body.Cells()
	}
	if len(s.leaderboard) > 0 {
		snap.Leaderboard = make([]storage.ScoreEntry, len(s.leaderboard))
		copy(snap.Leaderboard, s.leaderboard)
	}
	return snap
}

// Head returns the head cell, or false before the first round.
func (snap Snapshot) Head() (core.Point, bool) {
	if len(snap.Snake) == 0 {
		return core.Point{}, false
	}
	return snap.Snake[0], true
}
