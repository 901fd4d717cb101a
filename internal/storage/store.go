// Package storage provides persistence for player identities and scores.
// SQLite (pure-Go modernc.org/sqlite) is the default backend; MySQL and an
// in-memory store implement the same operations.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxUsernameLen is the longest accepted username, in runes.
const MaxUsernameLen = 20

var (
	// ErrUnavailable marks failures of the persistence layer itself
	// (no connection, timeout, driver error).
	ErrUnavailable = errors.New("storage: unavailable")

	// ErrInvalidUsername is returned for empty, too long or non-printable names.
	ErrInvalidUsername = errors.New("storage: invalid username")
)

// PlayerID is the opaque identifier assigned to a username on first registration.
type PlayerID string

// ScoreEntry is a single leaderboard row.
type ScoreEntry struct {
	ID        int64
	PlayerID  PlayerID
	Username  string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Backend is the full set of operations offered by every store.
type Backend interface {
	RegisterOrGetIdentity(ctx context.Context, username string) (PlayerID, error)
	RecordScore(ctx context.Context, id PlayerID, score, level int) error
	TopScores(ctx context.Context, limit int) ([]ScoreEntry, error)
	HighScore(ctx context.Context) (int, error)
	PlayerBest(ctx context.Context, username string) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// NormalizeUsername trims surrounding whitespace and validates the result:
// 1 to MaxUsernameLen printable characters.
func NormalizeUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidUsername)
	}
	if utf8.RuneCountInString(name) > MaxUsernameLen {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidUsername, MaxUsernameLen)
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: non-printable character %q", ErrInvalidUsername, r)
		}
	}
	return name, nil
}

// unavailable wraps a driver error so callers can test it with errors.Is(err, ErrUnavailable).
func unavailable(op string, err error) error {
	return fmt.Errorf("storage: %s: %w: %w", op, ErrUnavailable, err)
}

// parseTime handles the forms drivers hand back for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	}
	return time.Time{}
}

func parseTimeString(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
	} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
