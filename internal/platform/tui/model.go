package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Options configures a terminal driver for one session.
type Options struct {
	Session       *game.Session
	Logger        *log.Logger
	IdleRate      int    // ticks per second outside a running round
	ScreenshotDir string // defaults to ~/.snake/screenshots
	Width         int
	Height        int
}

// Model is the Bubble Tea model driving one game session.
// Key presses are queued and applied right before the next tick.
type Model struct {
	session     *game.Session
	logger      *log.Logger
	screen      *core.Screen
	queue       *core.IntentQueue
	keys        KeyMap
	leaderboard leaderboardView
	idleRate    int
	shotDir     string
	autoPaused  bool
	quitting    bool
	err         error
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.IdleRate <= 0 {
		opts.IdleRate = DefaultIdleRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	}

	return Model{
		session:     opts.Session,
		logger:      opts.Logger,
		screen:      core.NewScreen(opts.Width, opts.Height),
		queue:       &core.IntentQueue{},
		keys:        DefaultKeyMap(),
		leaderboard: newLeaderboardView(opts.Width, opts.Height),
		idleRate:    opts.IdleRate,
		shotDir:     opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.nextInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the intents for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	phase := m.session.CurrentPhase()
	if phase == game.PhaseLeaderboard && key.Matches(msg, m.keys.Up, m.keys.Down) {
		return m, m.leaderboard.scroll(msg)
	}

	if key.Matches(msg, m.keys.Pause) {
		m.autoPaused = false
	}
	for _, in := range m.keys.MapKey(phase, msg) {
		m.queue.Push(in)
	}
	return m, nil
}

// handleResize resizes the screen. A running round pauses itself when the
// board no longer fits and resumes once it does again.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.leaderboard.resize(msg.Width, msg.Height)

	playing := m.session.CurrentPhase() == game.PhasePlaying
	small := m.tooSmall()
	switch {
	case small && playing && !m.autoPaused && !m.pausedAfterQueue():
		m.queue.Push(core.Do(core.IntentTogglePause))
		m.autoPaused = true
		m.logger.Debug("auto-pause", "width", msg.Width, "height", msg.Height)
	case !small && m.autoPaused:
		m.autoPaused = false
		if playing && m.pausedAfterQueue() {
			m.queue.Push(core.Do(core.IntentTogglePause))
		}
	}

	return m, nil
}

// handleTick drains queued intents, then advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, in := range m.queue.Drain() {
		if err := m.session.ApplyIntent(in); err != nil {
			return m.fail(err)
		}
	}

	if m.session.WantsExit() {
		m.quitting = true
		return m, tea.Quit
	}

	if err := m.session.Tick(); err != nil {
		return m.fail(err)
	}

	if m.session.CurrentPhase() == game.PhaseLeaderboard {
		m.leaderboard.sync(m.session.Snapshot())
	}

	return m, tickCmd(m.nextInterval())
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("session stopped", "err", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// pausedAfterQueue reports whether the round will be paused once the
// pending intents are applied.
func (m Model) pausedAfterQueue() bool {
	return m.session.Paused() != (m.queue.Count(core.IntentTogglePause)%2 == 1)
}

func (m Model) nextInterval() time.Duration {
	return TickInterval(m.session.CurrentPhase(), m.session.Paused(), m.session.Speed(), m.idleRate)
}

func (m Model) tooSmall() bool {
	r := m.session.Rules()
	w, h := game.MinScreenSize(r.Width, r.Height)
	return m.screen.Width() < w || m.screen.Height() < h
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() {
	game.Render(m.session.Snapshot(), m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	if snap.Phase == game.PhaseLeaderboard {
		return m.leaderboard.view(snap, m.keys)
	}

	return RenderFrame(snap, m.screen)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the session and blocks until it exits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
