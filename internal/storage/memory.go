package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is a process-local Backend. It is the fallback when the configured
// database cannot be reached, and the store used by tests.
type Memory struct {
	mu      sync.Mutex
	players map[string]PlayerID // username -> id
	names   map[PlayerID]string
	scores  []ScoreEntry
	nextID  int64
	closed  bool
	now     func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		players: make(map[string]PlayerID),
		names:   make(map[PlayerID]string),
		now:     time.Now,
	}
}

// RegisterOrGetIdentity implements Backend.
func (m *Memory) RegisterOrGetIdentity(ctx context.Context, username string) (PlayerID, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx); err != nil {
		return "", err
	}

	if id, ok := m.players[name]; ok {
		return id, nil
	}
	id := PlayerID(uuid.NewString())
	m.players[name] = id
	m.names[id] = name
	return id, nil
}

// RecordScore implements Backend.
func (m *Memory) RecordScore(ctx context.Context, id PlayerID, score, level int) error {
	if score < 0 || level < 1 {
		return fmt.Errorf("storage: cannot save score: invalid score %d / level %d", score, level)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx); err != nil {
		return err
	}

	name, ok := m.names[id]
	if !ok {
		return fmt.Errorf("storage: cannot save score: unknown player %q", id)
	}

	m.nextID++
	m.scores = append(m.scores, ScoreEntry{
		ID:        m.nextID,
		PlayerID:  id,
		Username:  name,
		Score:     score,
		Level:     level,
		CreatedAt: m.now(),
	})
	return nil
}

// TopScores implements Backend. Equal scores keep insertion order.
func (m *Memory) TopScores(ctx context.Context, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx); err != nil {
		return nil, err
	}

	sorted := make([]ScoreEntry, len(m.scores))
	copy(sorted, m.scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// HighScore implements Backend.
func (m *Memory) HighScore(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx); err != nil {
		return 0, err
	}

	best := 0
	for _, s := range m.scores {
		best = max(best, s.Score)
	}
	return best, nil
}

// PlayerBest implements Backend.
func (m *Memory) PlayerBest(ctx context.Context, username string) (int, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx); err != nil {
		return 0, err
	}

	best := 0
	for _, s := range m.scores {
		if s.Username == name {
			best = max(best, s.Score)
		}
	}
	return best, nil
}

// Ping implements Backend.
func (m *Memory) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.check(ctx)
}

// Close implements Backend. Later calls fail with ErrUnavailable.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Memory) check(ctx context.Context) error {
	if m.closed {
		return fmt.Errorf("storage: %w: store closed", ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return unavailable("context", err)
	}
	return nil
}

var _ Backend = (*Memory)(nil)
