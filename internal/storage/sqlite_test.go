package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Driver() != DriverSQLite {
		t.Errorf("Driver() = %q, expected %q", store.Driver(), DriverSQLite)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreMigrateIdempotent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate() failed: %v", err)
	}
}

func TestStoreRegisterIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id1, err := store.RegisterOrGetIdentity(ctx, "alice")
	if err != nil {
		t.Fatalf("RegisterOrGetIdentity() failed: %v", err)
	}
	if id1 == "" {
		t.Fatal("Expected a non-empty player id")
	}

	id2, err := store.RegisterOrGetIdentity(ctx, "  alice ")
	if err != nil {
		t.Fatalf("RegisterOrGetIdentity() failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("Same username should yield same id: %q vs %q", id1, id2)
	}

	other, err := store.RegisterOrGetIdentity(ctx, "bob")
	if err != nil {
		t.Fatalf("RegisterOrGetIdentity() failed: %v", err)
	}
	if other == id1 {
		t.Error("Different usernames should yield different ids")
	}
}

func TestStoreRegisterInvalid(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"", "   ", "abcdefghijklmnopqrstu"} {
		_, err := store.RegisterOrGetIdentity(context.Background(), name)
		if !errors.Is(err, ErrInvalidUsername) {
			t.Errorf("RegisterOrGetIdentity(%q) error = %v, expected ErrInvalidUsername", name, err)
		}
		if IsUnavailable(err) {
			t.Errorf("Validation error for %q should not be classified as unavailable", name)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	alice, _ := store.RegisterOrGetIdentity(ctx, "alice")
	bob, _ := store.RegisterOrGetIdentity(ctx, "bob")

	if err := store.RecordScore(ctx, alice, 100, 3); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if err := store.RecordScore(ctx, bob, 50, 2); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if err := store.RecordScore(ctx, alice, 200, 5); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, err := store.TopScores(ctx, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 200 || scores[0].Username != "alice" || scores[0].Level != 5 {
		t.Errorf("Unexpected first entry: %+v", scores[0])
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 || scores[2].Username != "bob" {
		t.Errorf("Unexpected third entry: %+v", scores[2])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, _ := store.RegisterOrGetIdentity(ctx, "carol")
	for _, s := range []int{10, 50, 30, 50} {
		if err := store.RecordScore(ctx, id, s, 1); err != nil {
			t.Fatalf("RecordScore(%d) failed: %v", s, err)
		}
	}

	scores, err := store.TopScores(ctx, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 50 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].ID >= scores[1].ID {
		t.Errorf("Equal scores should keep insertion order, got ids %d, %d", scores[0].ID, scores[1].ID)
	}
}

func TestStoreTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, _ := store.RegisterOrGetIdentity(ctx, "dave")
	for i := 0; i < 15; i++ {
		store.RecordScore(ctx, id, i*10, 1)
	}

	scores, err := store.TopScores(ctx, 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreRecordScoreRejectsInvalid(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id, _ := store.RegisterOrGetIdentity(ctx, "erin")

	if err := store.RecordScore(ctx, "", 10, 1); err == nil {
		t.Error("Expected error for empty player id")
	}
	if err := store.RecordScore(ctx, id, -10, 1); err == nil {
		t.Error("Expected error for negative score")
	}
	if err := store.RecordScore(ctx, id, 10, 0); err == nil {
		t.Error("Expected error for level 0")
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	alice, _ := store.RegisterOrGetIdentity(ctx, "alice")
	bob, _ := store.RegisterOrGetIdentity(ctx, "bob")
	store.RecordScore(ctx, alice, 100, 3)
	store.RecordScore(ctx, bob, 300, 7)
	store.RecordScore(ctx, alice, 200, 5)

	high, _ = store.HighScore(ctx)
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	best, _ := store.PlayerBest(ctx, "alice")
	if best != 200 {
		t.Errorf("Expected alice's best to be 200, got %d", best)
	}

	best, _ = store.PlayerBest(ctx, "nobody")
	if best != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", best)
	}

	best, _ = store.PlayerBest(ctx, "  alice ")
	if best != 200 {
		t.Errorf("Expected padded name to match alice, got %d", best)
	}
	if _, err := store.PlayerBest(ctx, "   "); !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("Expected ErrInvalidUsername for a blank name, got %v", err)
	}
}

func TestStoreUsernamesCaseSensitive(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	lower, _ := store.RegisterOrGetIdentity(ctx, "bob")
	upper, err := store.RegisterOrGetIdentity(ctx, "Bob")
	if err != nil {
		t.Fatalf("RegisterOrGetIdentity(Bob) failed: %v", err)
	}
	if lower == upper {
		t.Error("bob and Bob should be different players")
	}

	store.RecordScore(ctx, lower, 30, 1)
	if best, _ := store.PlayerBest(ctx, "Bob"); best != 0 {
		t.Errorf("Expected 0 for Bob, got %d", best)
	}
}

func TestStoreSeedSample(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Seeding twice replaces the sample rows instead of duplicating them
	for i := 0; i < 2; i++ {
		if err := store.SeedSample(ctx); err != nil {
			t.Fatalf("SeedSample() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, 100)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != len(sampleScores) {
		t.Fatalf("Expected %d sample scores, got %d", len(sampleScores), len(scores))
	}
	if scores[0].Score != 450 || scores[0].Username != SampleUsername {
		t.Errorf("Unexpected top sample entry: %+v", scores[0])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, _ := store.RegisterOrGetIdentity(ctx, "frank")
	store.RecordScore(ctx, id, 100, 3)

	if err := store.ClearScores(ctx); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(ctx, 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Player survives
	again, _ := store.RegisterOrGetIdentity(ctx, "frank")
	if again != id {
		t.Error("Player identity should survive ClearScores")
	}
}

func TestStoreClosedIsUnavailable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	store.Close()

	_, err = store.TopScores(context.Background(), 10)
	if !IsUnavailable(err) {
		t.Errorf("Expected ErrUnavailable after close, got %v", err)
	}
}
