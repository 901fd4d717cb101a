package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	GlyphHead = '@'
	GlyphBody = 'o'
	GlyphFood = '*'
)

// MinScreenSize returns the terminal size needed to draw a board of the
// given dimensions: the framed board plus a HUD row and a footer row.
func MinScreenSize(width, height int) (w, h int) {
	return width + 2, height + 4
}

// Render draws snap onto dst. The screen is cleared first.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	switch snap.Phase {
	case PhaseLogin:
		renderLogin(snap, dst)
	case PhaseLeaderboard:
		renderLeaderboard(snap, dst)
	default:
		minW, minH := MinScreenSize(snap.Width, snap.Height)
		if dst.Width() < minW || dst.Height() < minH {
			renderOverlay(dst, "Terminal too small", fmt.Sprintf("Need %dx%d", minW, minH))
			return
		}
		renderBoard(snap, dst)
		switch {
		case snap.Phase == PhaseGameOver:
			renderGameOver(snap, dst)
		case snap.Paused:
			renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

func renderBoard(snap Snapshot, dst *core.Screen) {
	frameW, _ := MinScreenSize(snap.Width, snap.Height)
	offX := (dst.Width() - frameW) / 2
	offY := 1

	// HUD
	hud := fmt.Sprintf(" Score: %d  Level: %d  Speed: %d", snap.Score, snap.Level, snap.Speed)
	dst.DrawTextColored(offX, 0, hud, core.ColorBrightYellow)
	if snap.Username != "" {
		dst.DrawTextColored(offX+len(hud), 0, "  Player: "+snap.Username, core.ColorCyan)
	}

	borderColor := core.ColorBlue
	if snap.Wall == WallWraparound {
		borderColor = core.ColorGray
	}
	dst.DrawBox(core.NewRect(offX, offY, snap.Width+2, snap.Height+2), borderColor)

	cell := func(p core.Point, r rune, c core.Color) {
		dst.SetColored(offX+1+p.X, offY+1+p.Y, r, c)
	}

	if len(snap.Snake) > 0 {
		cell(snap.Food, GlyphFood, core.ColorRed)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(snap.Snake[i], GlyphHead, core.ColorBrightGreen)
		} else {
			cell(snap.Snake[i], GlyphBody, core.ColorGreen)
		}
	}

	footer := " Arrows/WASD: move  P: pause  Q: end round"
	if snap.Wall == WallWraparound {
		footer += "  (walls wrap)"
	}
	dst.DrawTextColored(offX, offY+snap.Height+2, footer, core.ColorGray)
}

func renderGameOver(snap Snapshot, dst *core.Screen) {
	lines := []overlayLine{
		{"GAME OVER", core.ColorBrightRed},
		{snap.Cause.Message(), core.ColorDefault},
		{fmt.Sprintf("Score: %d  Level: %d", snap.Score, snap.Level), core.ColorBrightYellow},
		{snap.Status.Message(), statusColor(snap.Status)},
		{"R: play again  L: leaderboard  Q: quit", core.ColorGray},
	}
	drawPanel(dst, lines)
}

func renderLogin(snap Snapshot, dst *core.Screen) {
	cursor := "_"
	input := snap.Input + cursor
	db := "DB: DISCONNECTED"
	dbColor := core.ColorRed
	if snap.StoreOnline {
		db = "DB: CONNECTED"
		dbColor = core.ColorGreen
	}

	lines := []overlayLine{
		{"S N A K E", core.ColorBrightGreen},
		{"", core.ColorDefault},
		{"Enter username:", core.ColorDefault},
		{"[" + padRight(input, 21) + "]", core.ColorBrightYellow},
		{snap.Status.Message(), statusColor(snap.Status)},
		{db, dbColor},
		{"Enter: play  Esc: quit", core.ColorGray},
	}
	drawPanel(dst, lines)
}

func renderLeaderboard(snap Snapshot, dst *core.Screen) {
	lines := []overlayLine{
		{"LEADERBOARD", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{fmt.Sprintf("%-3s %-20s %6s %5s", "#", "Player", "Score", "Lvl"), core.ColorCyan},
	}
	for i, e := range snap.Leaderboard {
		c := core.ColorDefault
		if e.Username == snap.Username {
			c = core.ColorBrightGreen
		}
		lines = append(lines, overlayLine{
			fmt.Sprintf("%-3d %-20s %6d %5d", i+1, e.Username, e.Score, e.Level), c,
		})
	}
	if len(snap.Leaderboard) == 0 {
		lines = append(lines, overlayLine{"No scores yet", core.ColorGray})
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{snap.Status.Message(), statusColor(snap.Status)},
		overlayLine{"R: play again  Enter/Esc: back", core.ColorGray},
	)
	drawPanel(dst, lines)
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawPanel draws a framed block of lines centered on the screen.
func drawPanel(dst *core.Screen, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	drawPanel(dst, []overlayLine{
		{line1, core.ColorBrightYellow},
		{"", core.ColorDefault},
		{line2, core.ColorDefault},
	})
}

func statusColor(s Status) core.Color {
	switch {
	case s.IsError():
		return core.ColorBrightRed
	case s == StatusScoreSaved:
		return core.ColorGreen
	}
	return core.ColorDefault
}

func padRight(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
