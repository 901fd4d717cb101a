package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Leaderboard layout constants
const (
	leaderboardChrome = 8 // title, status, borders and help
	minTableRows      = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	emptyStyle = mutedStyle.
			Italic(true).
			Padding(1, 4)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// leaderboardView shows the LEADERBOARD phase as a scrollable table.
type leaderboardView struct {
	table   table.Model
	help    help.Model
	entries []storage.ScoreEntry
	self    string
	width   int
	height  int
}

func newLeaderboardView(width, height int) leaderboardView {
	h := help.New()
	h.ShowAll = false
	v := leaderboardView{help: h, width: width, height: height}
	v.table = newScoreTable(nil, "", height-leaderboardChrome, true)
	return v
}

// newScoreTable builds a bubbles table for entries. The row of the player
// named self is preselected.
func newScoreTable(entries []storage.ScoreEntry, self string, height int, focused bool) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: storage.MaxUsernameLen},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 13},
	}

	if height < minTableRows {
		height = minTableRows
	}
	if len(entries) > 0 && height > len(entries)+2 {
		height = len(entries) + 2
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(scoreRows(entries)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	if !focused {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	for i, e := range entries {
		if self != "" && e.Username == self {
			t.SetCursor(i)
			break
		}
	}
	return t
}

func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		date := ""
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Username,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			date,
		}
	}
	return rows
}

// sync rebuilds the table when the snapshot's entries changed.
func (v *leaderboardView) sync(snap game.Snapshot) {
	if sameEntries(v.entries, snap.Leaderboard) && v.self == snap.Username {
		return
	}
	v.entries = snap.Leaderboard
	v.self = snap.Username
	v.table = newScoreTable(v.entries, v.self, v.height-leaderboardChrome, true)
}

func (v *leaderboardView) resize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.table = newScoreTable(v.entries, v.self, height-leaderboardChrome, true)
}

// scroll passes navigation keys to the table.
func (v *leaderboardView) scroll(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v leaderboardView) view(snap game.Snapshot, keys KeyMap) string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), v.width))
	b.WriteString("\n\n")

	var body string
	if len(snap.Leaderboard) == 0 {
		body = emptyStyle.Render("No scores yet.\nPlay a round to set one!")
	} else {
		body = v.table.View()
	}
	b.WriteString(centerText(frameStyle.Render(body), v.width))
	b.WriteString("\n")

	if snap.Status != game.StatusNone {
		style := mutedStyle
		if snap.Status.IsError() {
			style = errorStyle
		}
		b.WriteString(centerText(style.Render(snap.Status.Message()), v.width))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(v.help.View(phaseHelp{keys: keys, phase: game.PhaseLeaderboard})))

	return b.String()
}

// RenderScoreTable returns a static table of entries for non-interactive output.
func RenderScoreTable(entries []storage.ScoreEntry) string {
	if len(entries) == 0 {
		return emptyStyle.Render("No scores recorded yet.")
	}
	t := newScoreTable(entries, "", len(entries)+2, false)
	return frameStyle.Render(t.View())
}

func sameEntries(a, b []storage.ScoreEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Score != b[i].Score {
			return false
		}
	}
	return true
}

// centerText centers every line of a block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
