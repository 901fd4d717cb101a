package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Body is the ordered list of cells the snake occupies, head first.
// A per-cell counter keeps Occupies constant time.
type Body struct {
	cells []core.Point
	occ   map[core.Point]int
}

// NewBody creates a body from cells given head first.
func NewBody(cells ...core.Point) *Body {
	b := &Body{
		cells: make([]core.Point, 0, len(cells)+8),
		occ:   make(map[core.Point]int, len(cells)+8),
	}
	for _, c := range cells {
		b.cells = append(b.cells, c)
		b.occ[c]++
	}
	return b
}

// Advance prepends head. Unless grew is set the tail is dropped, so the
// length only changes when the snake has eaten.
func (b *Body) Advance(head core.Point, grew bool) {
	b.cells = append(b.cells, core.Point{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = head
	b.occ[head]++

	if grew {
		return
	}
	tail := b.cells[len(b.cells)-1]
	b.cells = b.cells[:len(b.cells)-1]
	if b.occ[tail]--; b.occ[tail] <= 0 {
		delete(b.occ, tail)
	}
}

// Occupies reports whether p is part of the body.
func (b *Body) Occupies(p core.Point) bool {
	return b.occ[p] > 0
}

// Head returns the first cell.
func (b *Body) Head() (core.Point, error) {
	if len(b.cells) == 0 {
		return core.Point{}, ErrEmptyBody
	}
	return b.cells[0], nil
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []core.Point {
	out := make([]core.Point, len(b.cells))
	copy(out, b.cells)
	return out
}
