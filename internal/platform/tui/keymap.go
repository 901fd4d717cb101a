package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// KeyMap defines the key bindings for every phase.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Confirm     key.Binding
	Backspace   key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "play again"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l/tab", "leaderboard"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to intents for the given phase.
// Typing on the login screen yields one AppendChar per rune, so pasted
// text arrives intact.
func (k KeyMap) MapKey(phase game.Phase, msg tea.KeyMsg) []core.Intent {
	if phase == game.PhaseLogin {
		return k.mapLoginKey(msg)
	}

	switch {
	case key.Matches(msg, k.Up):
		return one(core.Turn(core.DirUp))
	case key.Matches(msg, k.Down):
		return one(core.Turn(core.DirDown))
	case key.Matches(msg, k.Left):
		return one(core.Turn(core.DirLeft))
	case key.Matches(msg, k.Right):
		return one(core.Turn(core.DirRight))
	case key.Matches(msg, k.Pause):
		return one(core.Do(core.IntentTogglePause))
	case key.Matches(msg, k.Restart):
		return one(core.Do(core.IntentRestart))
	case key.Matches(msg, k.Leaderboard):
		return one(core.Do(core.IntentViewLeaderboard))
	case key.Matches(msg, k.Confirm):
		return one(core.Confirm(""))
	case key.Matches(msg, k.Quit):
		return one(core.Do(core.IntentQuit))
	}
	return nil
}

func (k KeyMap) mapLoginKey(msg tea.KeyMsg) []core.Intent {
	switch msg.Type {
	case tea.KeyEnter:
		return one(core.Confirm(""))
	case tea.KeyBackspace:
		return one(core.Do(core.IntentBackspace))
	case tea.KeyEsc:
		return one(core.Do(core.IntentQuit))
	case tea.KeySpace:
		return one(core.AppendChar(' '))
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]core.Intent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				out = append(out, core.AppendChar(r))
			}
		}
		return out
	}
	return nil
}

func one(i core.Intent) []core.Intent {
	return []core.Intent{i}
}

// phaseHelp adapts KeyMap to help.KeyMap for one phase.
type phaseHelp struct {
	keys  KeyMap
	phase game.Phase
}

// ShortHelp returns key bindings for the short help view.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case game.PhaseLogin:
		return []key.Binding{k.Confirm, k.Backspace, withHelp(k.Quit, "esc", "quit")}
	case game.PhasePlaying:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
	case game.PhaseGameOver:
		return []key.Binding{k.Restart, k.Leaderboard, k.Quit}
	case game.PhaseLeaderboard:
		return []key.Binding{k.Restart, withHelp(k.Confirm, "enter/esc", "back"), k.Screenshot}
	}
	return nil
}

// FullHelp returns key bindings for the full help view.
func (h phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {h.keys.Screenshot, h.keys.ForceQuit}}
}

func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}
