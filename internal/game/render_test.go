package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestRenderLogin(t *testing.T) {
	s := newTestSession(t, smallRules(), newFakeStore())
	mustApply(t, s, core.AppendChar('a'))

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	if !screen.Contains("Enter username:") {
		t.Error("Login screen should prompt for a username")
	}
	if !screen.Contains("a_") {
		t.Error("Login screen should show the buffer with a cursor")
	}
	if !screen.Contains("DB: CONNECTED") {
		t.Error("Login screen should report the store as connected")
	}
}

func TestRenderLoginStatus(t *testing.T) {
	store := newFakeStore()
	store.failRegister = true
	s := newTestSession(t, smallRules(), store)
	mustApply(t, s, core.Confirm("x"))

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	if !screen.Contains(StatusRegisterFailed.Message()) {
		t.Error("Login screen should show the registration failure")
	}
	if !screen.Contains("DB: DISCONNECTED") {
		t.Error("Login screen should report the store as disconnected")
	}
}

func TestRenderPlaying(t *testing.T) {
	s := playing(t, newFakeStore())
	s.food = core.Pt(1, 1)

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	if !screen.Contains("Score: 0") {
		t.Error("HUD should show the score")
	}
	if !screen.Contains("alice") {
		t.Error("HUD should show the player")
	}

	// Board is centered with a one-cell frame below the HUD row
	frameW, _ := MinScreenSize(10, 10)
	offX := (80 - frameW) / 2
	if got := screen.Get(offX+1+5, 1+1+5); got != GlyphHead {
		t.Errorf("Expected head glyph at board (5,5), got %q", got)
	}
	if got := screen.Get(offX+1+1, 1+1+1); got != GlyphFood {
		t.Errorf("Expected food glyph at board (1,1), got %q", got)
	}
	if got := screen.GetCell(offX+1+5, 1+1+5).Color; got != core.ColorBrightGreen {
		t.Errorf("Head colour = %d, expected bright green", got)
	}
}

func TestRenderPaused(t *testing.T) {
	s := playing(t, newFakeStore())
	mustApply(t, s, core.Do(core.IntentTogglePause))

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	if !screen.Contains("Paused") {
		t.Error("Paused overlay expected")
	}
}

func TestRenderGameOver(t *testing.T) {
	s := playing(t, newFakeStore())
	mustApply(t, s, core.Do(core.IntentQuit))

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	for _, want := range []string{"GAME OVER", "Score: 0  Level: 1", "Score saved"} {
		if !screen.Contains(want) {
			t.Errorf("Game over screen should contain %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(t, DefaultRules(), newFakeStore())
	mustApply(t, s, core.Confirm("tiny"))

	screen := core.NewScreen(30, 10)
	Render(s.Snapshot(), screen)

	if !screen.Contains("Terminal too small") {
		t.Error("Expected a too-small notice")
	}
}

func TestRenderLeaderboard(t *testing.T) {
	snap := Snapshot{
		Phase:    PhaseLeaderboard,
		Username: "bob",
		Leaderboard: []storage.ScoreEntry{
			{Username: "alice", Score: 90, Level: 2},
			{Username: "bob", Score: 40, Level: 1},
		},
	}

	screen := core.NewScreen(80, 24)
	Render(snap, screen)

	if !screen.Contains("LEADERBOARD") {
		t.Error("Leaderboard title expected")
	}
	if !screen.Contains("alice") || !screen.Contains("90") {
		t.Error("Leaderboard should list alice with 90")
	}

	snap.Leaderboard = nil
	snap.Status = StatusLeaderboardUnavailable
	Render(snap, screen)
	if !screen.Contains("No scores yet") || !screen.Contains("Leaderboard unavailable") {
		t.Error("Empty leaderboard should show placeholder and status")
	}
}
