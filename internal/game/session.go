// Package game implements the snake simulation and the session state
// machine that carries a player from login through rounds, game over and
// the leaderboard. It has no terminal dependencies: the platform layer
// feeds it intents, calls Tick at the current speed and renders Snapshots.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreStore is the persistence a session needs. storage.Backend satisfies it.
type ScoreStore interface {
	RegisterOrGetIdentity(ctx context.Context, username string) (storage.PlayerID, error)
	RecordScore(ctx context.Context, id storage.PlayerID, score, level int) error
	TopScores(ctx context.Context, limit int) ([]storage.ScoreEntry, error)
}

// pinger is implemented by stores that can report connectivity up front.
type pinger interface {
	Ping(ctx context.Context) error
}

// DefaultStoreTimeout bounds each store call when Options.Timeout is zero.
const DefaultStoreTimeout = 2 * time.Second

// Options configures a Session.
type Options struct {
	Rules   Rules
	Store   ScoreStore // nil behaves like a store that is always unavailable
	Logger  *log.Logger
	Seed    int64
	Timeout time.Duration

	// Username pre-fills the login buffer.
	Username string
}

// Session is a single player's game. It is not safe for concurrent use;
// the driver owns it.
type Session struct {
	rules   Rules
	store   ScoreStore
	logger  *log.Logger
	timeout time.Duration
	spawner *Spawner

	phase       Phase
	paused      bool
	status      Status
	storeOnline bool
	wantsExit   bool

	buffer   []rune
	username string
	playerID storage.PlayerID

	body    *Body
	food    core.Point
	current core.Direction // direction of the last move
	pending core.Direction // applied at the next tick
	score   int
	level   int
	speed   int
	ticks   uint64
	round   int
	cause   Cause

	leaderboard []storage.ScoreEntry
}

// NewSession creates a session in the LOGIN phase.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("game: invalid rules: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}

	s := &Session{
		rules:   opts.Rules,
		store:   opts.Store,
		logger:  logger,
		timeout: timeout,
		spawner: NewSpawner(opts.Seed),
		phase:   PhaseLogin,
		status:  StatusNone,
		level:   1,
		speed:   opts.Rules.BaseSpeed,
	}
	s.setBuffer(opts.Username)
	s.storeOnline = s.probeStore()
	return s, nil
}

// CurrentPhase returns the phase the session is in.
func (s *Session) CurrentPhase() Phase {
	return s.phase
}

// Paused reports whether the running round is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Speed returns the current tick rate in ticks per second.
func (s *Session) Speed() int {
	return s.speed
}

// WantsExit reports whether the player asked to leave the program.
func (s *Session) WantsExit() bool {
	return s.wantsExit
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// ApplyIntent routes in through the transition table of the current phase.
// Intents the phase does not handle are ignored. The returned error is
// non-nil only for a precondition violation.
func (s *Session) ApplyIntent(in core.Intent) error {
	h, ok := dispatch[s.phase][in.Kind]
	if !ok {
		return nil
	}
	return h(s, in)
}

// Tick advances the simulation by one step. It does nothing outside the
// PLAYING phase or while paused.
func (s *Session) Tick() error {
	if s.phase != PhasePlaying || s.paused {
		return nil
	}
	s.ticks++

	s.current = s.pending
	head, err := s.body.Head()
	if err != nil {
		return err
	}

	bounds := s.rules.Bounds()
	next := head.Add(s.current)
	if !bounds.Contains(next) {
		if s.rules.Wall != WallWraparound {
			s.endRound(CauseWall)
			return nil
		}
		next = bounds.Wrap(next)
	}
	if s.body.Occupies(next) {
		s.endRound(CauseSelf)
		return nil
	}

	grew := next == s.food
	s.body.Advance(next, grew)
	if !grew {
		return nil
	}

	prev := s.score
	s.score += s.rules.PointsPerFood
	if s.score/s.rules.LevelEvery > prev/s.rules.LevelEvery {
		s.level++
		s.speed += s.rules.SpeedStep
		s.logger.Debug("level up", "level", s.level, "speed", s.speed)
	}

	if s.body.Len() >= bounds.Area() {
		s.endRound(CauseFilled)
		return nil
	}
	food, err := s.spawner.Spawn(bounds, s.body)
	if err != nil {
		return err
	}
	s.food = food
	return nil
}

// Reset starts a fresh round for the registered player: score 0, level 1,
// base speed and a one-cell snake at the centre heading right.
func (s *Session) Reset() error {
	bounds := s.rules.Bounds()
	s.body = NewBody(bounds.Center())
	s.current = core.DirRight
	s.pending = core.DirRight
	s.score = 0
	s.level = 1
	s.speed = s.rules.BaseSpeed
	s.ticks = 0
	s.paused = false
	s.cause = CauseNone
	s.status = StatusNone
	s.leaderboard = nil
	s.round++

	food, err := s.spawner.Spawn(bounds, s.body)
	if err != nil {
		return err
	}
	s.food = food
	s.setPhase(PhasePlaying)
	return nil
}

func (s *Session) setPhase(p Phase) {
	if s.phase != p {
		s.logger.Debug("phase", "from", s.phase, "to", p, "round", s.round)
	}
	s.phase = p
}

// endRound freezes score and level and submits them.
func (s *Session) endRound(cause Cause) {
	s.cause = cause
	s.paused = false
	s.setPhase(PhaseGameOver)
	s.logger.Info("round over", "player", s.username, "score", s.score, "level", s.level, "cause", cause)

	err := s.call("record score", func(ctx context.Context, st ScoreStore) error {
		return st.RecordScore(ctx, s.playerID, s.score, s.level)
	})
	if err != nil {
		s.status = StatusScoreNotSaved
		return
	}
	s.status = StatusScoreSaved
}

// call runs fn against the store with a per-call deadline. Failures are
// logged and update the connectivity flag; they never escape the session.
func (s *Session) call(op string, fn func(ctx context.Context, st ScoreStore) error) error {
	if s.store == nil {
		s.storeOnline = false
		return fmt.Errorf("game: %s: %w: no store configured", op, storage.ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := fn(ctx, s.store)
	switch {
	case err == nil:
		s.storeOnline = true
	case errors.Is(err, storage.ErrInvalidUsername):
		s.logger.Debug("store rejected input", "op", op, "err", err)
	default:
		s.storeOnline = false
		s.logger.Warn("store call failed", "op", op, "err", err)
	}
	return err
}

func (s *Session) probeStore() bool {
	if s.store == nil {
		return false
	}
	p, ok := s.store.(pinger)
	if !ok {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		s.logger.Warn("store unreachable", "err", err)
		return false
	}
	return true
}

func (s *Session) setBuffer(text string) {
	s.buffer = s.buffer[:0]
	for _, r := range strings.TrimSpace(text) {
		if len(s.buffer) >= storage.MaxUsernameLen {
			break
		}
		if unicode.IsPrint(r) {
			s.buffer = append(s.buffer, r)
		}
	}
}
