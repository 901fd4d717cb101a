package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRegisterIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id1, err := m.RegisterOrGetIdentity(ctx, "alice")
	if err != nil {
		t.Fatalf("RegisterOrGetIdentity() failed: %v", err)
	}
	id2, _ := m.RegisterOrGetIdentity(ctx, "alice")
	if id1 != id2 {
		t.Errorf("Same username should yield same id: %q vs %q", id1, id2)
	}

	if _, err := m.RegisterOrGetIdentity(ctx, ""); !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("Expected ErrInvalidUsername, got %v", err)
	}
}

func TestMemoryTopScoresTieOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, _ := m.RegisterOrGetIdentity(ctx, "carol")
	for _, s := range []int{10, 50, 30, 50} {
		if err := m.RecordScore(ctx, id, s, 1); err != nil {
			t.Fatalf("RecordScore(%d) failed: %v", s, err)
		}
	}

	scores, err := m.TopScores(ctx, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 50 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].ID != 2 || scores[1].ID != 4 {
		t.Errorf("Equal scores should keep insertion order, got ids %d, %d", scores[0].ID, scores[1].ID)
	}
}

func TestMemoryRecordUnknownPlayer(t *testing.T) {
	m := NewMemory()
	if err := m.RecordScore(context.Background(), "missing", 10, 1); err == nil {
		t.Error("Expected error for unknown player")
	}
}

func TestMemoryHighScoreAndBest(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, _ := m.RegisterOrGetIdentity(ctx, "a")
	b, _ := m.RegisterOrGetIdentity(ctx, "b")
	m.RecordScore(ctx, a, 40, 1)
	m.RecordScore(ctx, b, 90, 2)

	if high, _ := m.HighScore(ctx); high != 90 {
		t.Errorf("HighScore() = %d, expected 90", high)
	}
	if best, _ := m.PlayerBest(ctx, "a"); best != 40 {
		t.Errorf("PlayerBest(a) = %d, expected 40", best)
	}
	if best, _ := m.PlayerBest(ctx, " a  "); best != 40 {
		t.Errorf("PlayerBest(padded a) = %d, expected 40", best)
	}
	if _, err := m.PlayerBest(ctx, ""); !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("PlayerBest(\"\") = %v, expected ErrInvalidUsername", err)
	}
}

func TestMemoryClosedAndCancelled(t *testing.T) {
	m := NewMemory()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.RegisterOrGetIdentity(ctx, "x"); !IsUnavailable(err) {
		t.Errorf("Cancelled context should be unavailable, got %v", err)
	}

	m.Close()
	if err := m.Ping(context.Background()); !IsUnavailable(err) {
		t.Errorf("Closed store should be unavailable, got %v", err)
	}
	if _, err := m.TopScores(context.Background(), 5); !IsUnavailable(err) {
		t.Errorf("Closed store should be unavailable, got %v", err)
	}
}
