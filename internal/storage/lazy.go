package storage

import (
	"context"
	"fmt"
	"sync"
)

// Lazy is a Backend that opens its configured store on first use. A failed
// open is retried on the next call, so a database that comes up later is
// picked up without a restart. Until then every call reports ErrUnavailable.
type Lazy struct {
	cfg Config

	mu      sync.Mutex
	backend Backend
	closed  bool
}

// NewLazy returns a store that opens cfg on demand.
func NewLazy(cfg Config) *Lazy {
	return &Lazy{cfg: cfg}
}

func (l *Lazy) get(ctx context.Context) (Backend, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, fmt.Errorf("storage: %w: store closed", ErrUnavailable)
	}
	if l.backend != nil {
		return l.backend, nil
	}
	b, err := Open(ctx, l.cfg)
	if err != nil {
		return nil, unavailable("cannot open "+l.cfg.Driver+" store", err)
	}
	l.backend = b
	return b, nil
}

// RegisterOrGetIdentity implements Backend.
func (l *Lazy) RegisterOrGetIdentity(ctx context.Context, username string) (PlayerID, error) {
	b, err := l.get(ctx)
	if err != nil {
		return "", err
	}
	return b.RegisterOrGetIdentity(ctx, username)
}

// RecordScore implements Backend.
func (l *Lazy) RecordScore(ctx context.Context, id PlayerID, score, level int) error {
	b, err := l.get(ctx)
	if err != nil {
		return err
	}
	return b.RecordScore(ctx, id, score, level)
}

// TopScores implements Backend.
func (l *Lazy) TopScores(ctx context.Context, limit int) ([]ScoreEntry, error) {
	b, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return b.TopScores(ctx, limit)
}

// HighScore implements Backend.
func (l *Lazy) HighScore(ctx context.Context) (int, error) {
	b, err := l.get(ctx)
	if err != nil {
		return 0, err
	}
	return b.HighScore(ctx)
}

// PlayerBest implements Backend.
func (l *Lazy) PlayerBest(ctx context.Context, username string) (int, error) {
	b, err := l.get(ctx)
	if err != nil {
		return 0, err
	}
	return b.PlayerBest(ctx, username)
}

// Ping opens the store if needed and checks that it answers.
func (l *Lazy) Ping(ctx context.Context) error {
	b, err := l.get(ctx)
	if err != nil {
		return err
	}
	return b.Ping(ctx)
}

// Close closes the underlying store, if it was ever opened.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.backend == nil {
		return nil
	}
	err := l.backend.Close()
	l.backend = nil
	return err
}
