package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Spawner places food on free cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with a deterministic seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn picks uniformly among the cells of bounds not covered by excluded.
// It fails with ErrBoardFull instead of searching forever.
func (s *Spawner) Spawn(bounds core.Rect, excluded *Body) (core.Point, error) {
	// Collect all empty cells
	free := make([]core.Point, 0, bounds.Area())
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			p := core.Pt(x, y)
			if excluded == nil || !excluded.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Point{}, ErrBoardFull
	}
	return free[s.rng.Intn(len(free))], nil
}
