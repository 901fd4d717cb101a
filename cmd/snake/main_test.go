package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestSessionStoreReportsUnreachableDatabase(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg := config.DefaultSettings()
	cfg.Storage.Path = filepath.Join(blocker, "scores.db")

	store := openSessionStore(context.Background(), cfg, log.New(io.Discard))
	defer store.Close()
	if _, ok := store.(*storage.Lazy); !ok {
		t.Fatalf("openSessionStore() = %T, expected *storage.Lazy", store)
	}

	session, err := game.NewSession(game.Options{Rules: cfg.GameRules(), Store: store, Seed: 1})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if session.Snapshot().StoreOnline {
		t.Error("Unreachable database should be reported offline")
	}

	if err := session.ApplyIntent(core.Confirm("bob")); err != nil {
		t.Fatalf("ApplyIntent() failed: %v", err)
	}
	snap := session.Snapshot()
	if snap.Phase != game.PhaseLogin || snap.Status != game.StatusRegisterFailed {
		t.Fatalf("Expected LOGIN/register_failed, got %v/%q", snap.Phase, snap.Status)
	}

	// The database becomes reachable
	if err := os.Remove(blocker); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if err := session.ApplyIntent(core.Confirm("")); err != nil {
		t.Fatalf("ApplyIntent() failed: %v", err)
	}
	if session.CurrentPhase() != game.PhasePlaying {
		t.Fatalf("Expected PLAYING once the database is up, got %v", session.CurrentPhase())
	}
	if err := session.ApplyIntent(core.Do(core.IntentQuit)); err != nil {
		t.Fatalf("ApplyIntent() failed: %v", err)
	}
	if got := session.Snapshot().Status; got != game.StatusScoreSaved {
		t.Errorf("Status = %q, expected score_saved", got)
	}
	if _, err := os.Stat(cfg.Storage.Path); err != nil {
		t.Errorf("Scores were not written to the database: %v", err)
	}
}
