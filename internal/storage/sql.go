package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// dialect holds the statements that differ between SQL engines.
type dialect struct {
	name         string
	schema       []string
	insertPlayer string // (id, username), must ignore duplicates
}

// SQLStore is a Backend over database/sql. Queries are parameterized and
// identical across dialects except for schema and insert-or-ignore syntax.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// Driver returns the name of the underlying SQL engine.
func (s *SQLStore) Driver() string {
	return s.dialect.name
}

// Migrate creates the schema if it doesn't exist.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("storage: migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping verifies the connection is alive.
func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// RegisterOrGetIdentity returns the id for username, creating the player on
// first use. Calling it again with the same name yields the same id.
func (s *SQLStore) RegisterOrGetIdentity(ctx context.Context, username string) (PlayerID, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return "", err
	}

	if _, err := s.db.ExecContext(ctx, s.dialect.insertPlayer, uuid.NewString(), name); err != nil {
		return "", unavailable("cannot register player", err)
	}

	var id string
	err = s.db.QueryRowContext(ctx, "SELECT id FROM players WHERE username = ?", name).Scan(&id)
	if err != nil {
		return "", unavailable("cannot look up player", err)
	}
	return PlayerID(id), nil
}

// RecordScore appends a score record for the player.
func (s *SQLStore) RecordScore(ctx context.Context, id PlayerID, score, level int) error {
	if id == "" {
		return fmt.Errorf("storage: cannot save score: empty player id")
	}
	if score < 0 || level < 1 {
		return fmt.Errorf("storage: cannot save score: invalid score %d / level %d", score, level)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (player_id, score, level) VALUES (?, ?, ?)",
		string(id), score, level,
	)
	if err != nil {
		return unavailable("cannot save score", err)
	}
	return nil
}

// TopScores retrieves the best limit scores, highest first.
// Equal scores keep insertion order.
func (s *SQLStore) TopScores(ctx context.Context, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.player_id, p.username, s.score, s.level, s.created_at
		 FROM scores s
		 JOIN players p ON p.id = s.player_id
		 ORDER BY s.score DESC, s.id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, unavailable("cannot query scores", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var playerID string
		var createdAt any
		if err := rows.Scan(&e.ID, &playerID, &e.Username, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, unavailable("cannot scan row", err)
		}
		e.PlayerID = PlayerID(playerID)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("row iteration error", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *SQLStore) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores").Scan(&score); err != nil {
		return 0, unavailable("cannot query high score", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// PlayerBest returns the best score of a single player, or 0.
func (s *SQLStore) PlayerBest(ctx context.Context, username string) (int, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return 0, err
	}

	var score sql.NullInt64
	err = s.db.QueryRowContext(ctx,
		`SELECT MAX(s.score) FROM scores s
		 JOIN players p ON p.id = s.player_id
		 WHERE p.username = ?`,
		name,
	).Scan(&score)
	if err != nil {
		return 0, unavailable("cannot query player best", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// sampleScores are the demo records inserted by SeedSample.
var sampleScores = []struct{ score, level int }{
	{450, 5},
	{320, 4},
	{180, 3},
	{90, 2},
	{50, 1},
}

// SampleUsername owns the records created by SeedSample.
const SampleUsername = "test_player"

// SeedSample (re)creates the demo player with a fixed set of scores.
func (s *SQLStore) SeedSample(ctx context.Context) error {
	id, err := s.RegisterOrGetIdentity(ctx, SampleUsername)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("cannot begin transaction", err)
	}
	defer func() {
		//nolint:errcheck // No-op after a successful commit
		tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM scores WHERE player_id = ?", string(id)); err != nil {
		return unavailable("cannot clear sample scores", err)
	}
	for _, sc := range sampleScores {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO scores (player_id, score, level) VALUES (?, ?, ?)",
			string(id), sc.score, sc.level,
		); err != nil {
			return unavailable("cannot insert sample score", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("cannot commit sample scores", err)
	}
	return nil
}

// ClearScores deletes every score record. Players are kept.
func (s *SQLStore) ClearScores(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scores"); err != nil {
		return unavailable("cannot clear scores", err)
	}
	return nil
}

// IsUnavailable reports whether err came from the persistence layer rather
// than from input validation.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

var _ Backend = (*SQLStore)(nil)
