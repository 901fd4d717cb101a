// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and session driving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// TickMsg is sent to trigger a driver iteration.
type TickMsg time.Time

// DefaultIdleRate is the driver rate outside a running round.
const DefaultIdleRate = 30

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickInterval returns the wait before the next driver iteration. A running
// round ticks at the session speed; everything else polls at idleRate.
func TickInterval(phase game.Phase, paused bool, speed, idleRate int) time.Duration {
	if idleRate <= 0 {
		idleRate = DefaultIdleRate
	}
	rate := idleRate
	if phase == game.PhasePlaying && !paused && speed > 0 {
		rate = speed
	}
	return time.Second / time.Duration(rate)
}
