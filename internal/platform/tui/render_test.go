package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "Score", core.ColorYellow)
	s.DrawTextColored(6, 0, "@oo", core.ColorBrightGreen)
	s.SetColored(3, 2, '*', core.ColorRed)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("Expected 3 rows, got %d newlines", n)
	}
	for _, want := range []string{"Score", "@oo", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered frame missing %q: %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGreen; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("No style for colour %d", c)
		}
	}
}

func TestRenderFrameLogin(t *testing.T) {
	s, err := game.NewSession(game.Options{Rules: game.DefaultRules(), Username: "neo"})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	screen := core.NewScreen(80, 24)

	out := RenderFrame(s.Snapshot(), screen)
	if !strings.Contains(out, "neo") {
		t.Error("Pre-filled username not rendered")
	}
	if !screen.Contains("DB: DISCONNECTED") {
		t.Error("Session without a store should render as disconnected")
	}
}
