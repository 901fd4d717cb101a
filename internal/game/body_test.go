package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBodyAdvance(t *testing.T) {
	b := NewBody(core.Pt(5, 5))

	b.Advance(core.Pt(6, 5), false)
	if b.Len() != 1 {
		t.Fatalf("Expected length 1 after plain move, got %d", b.Len())
	}
	if b.Occupies(core.Pt(5, 5)) {
		t.Error("Old tail should be released")
	}

	b.Advance(core.Pt(7, 5), true)
	if b.Len() != 2 {
		t.Fatalf("Expected length 2 after growth, got %d", b.Len())
	}

	head, err := b.Head()
	if err != nil {
		t.Fatalf("Head() failed: %v", err)
	}
	if head != core.Pt(7, 5) {
		t.Errorf("Head = %v, expected (7,5)", head)
	}

	cells := b.Cells()
	want := []core.Point{core.Pt(7, 5), core.Pt(6, 5)}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, cells[i], want[i])
		}
	}
}

func TestBodyOccupiesTracksDuplicates(t *testing.T) {
	// A head may briefly share a cell with the tail it is about to release
	b := NewBody(core.Pt(1, 1), core.Pt(1, 2), core.Pt(2, 2), core.Pt(2, 1))
	b.Advance(core.Pt(2, 1), false)

	if !b.Occupies(core.Pt(2, 1)) {
		t.Error("Cell held by the new head should still be occupied")
	}
	if b.Len() != 4 {
		t.Errorf("Expected length 4, got %d", b.Len())
	}
}

func TestBodyCellsIsCopy(t *testing.T) {
	b := NewBody(core.Pt(0, 0))
	cells := b.Cells()
	cells[0] = core.Pt(9, 9)

	if head, _ := b.Head(); head != core.Pt(0, 0) {
		t.Error("Mutating Cells() result should not affect the body")
	}
}

func TestBodyEmptyHead(t *testing.T) {
	b := NewBody()
	_, err := b.Head()
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("Expected ErrEmptyBody, got %v", err)
	}
	if !errors.Is(err, ErrPrecondition) {
		t.Error("ErrEmptyBody should be a precondition violation")
	}
}

func TestSpawnerAvoidsBody(t *testing.T) {
	bounds := core.NewRect(0, 0, 5, 5)
	body := NewBody(core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0), core.Pt(3, 0), core.Pt(4, 0))
	sp := NewSpawner(7)

	for i := 0; i < 200; i++ {
		p, err := sp.Spawn(bounds, body)
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if body.Occupies(p) {
			t.Fatalf("Food spawned on snake at %v", p)
		}
		if !bounds.Contains(p) {
			t.Fatalf("Food spawned out of bounds at %v", p)
		}
	}
}

func TestSpawnerLastFreeCell(t *testing.T) {
	bounds := core.NewRect(0, 0, 2, 2)
	body := NewBody(core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1))

	p, err := NewSpawner(1).Spawn(bounds, body)
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}
	if p != core.Pt(0, 1) {
		t.Errorf("Expected the only free cell (0,1), got %v", p)
	}
}

func TestSpawnerBoardFull(t *testing.T) {
	bounds := core.NewRect(0, 0, 2, 1)
	body := NewBody(core.Pt(0, 0), core.Pt(1, 0))

	_, err := NewSpawner(1).Spawn(bounds, body)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Expected ErrBoardFull, got %v", err)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	bounds := core.NewRect(0, 0, 20, 20)
	a, b := NewSpawner(99), NewSpawner(99)

	for i := 0; i < 50; i++ {
		pa, _ := a.Spawn(bounds, nil)
		pb, _ := b.Spawn(bounds, nil)
		if pa != pb {
			t.Fatalf("Spawn %d diverged: %v vs %v", i, pa, pb)
		}
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Rules)
		wantErr bool
	}{
		{"defaults", func(r *Rules) {}, false},
		{"wraparound", func(r *Rules) { r.Wall = WallWraparound }, false},
		{"tiny board", func(r *Rules) { r.Width = 4 }, true},
		{"unknown wall", func(r *Rules) { r.Wall = "bouncy" }, true},
		{"zero speed", func(r *Rules) { r.BaseSpeed = 0 }, true},
		{"negative step", func(r *Rules) { r.SpeedStep = -1 }, true},
		{"zero points", func(r *Rules) { r.PointsPerFood = 0 }, true},
		{"level below points", func(r *Rules) { r.LevelEvery = 5 }, true},
		{"no leaderboard", func(r *Rules) { r.LeaderboardSize = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			tc.mutate(&r)
			if err := r.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
