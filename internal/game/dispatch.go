package game

import (
	"context"
	"errors"
	"unicode"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type handler func(s *Session, in core.Intent) error

// dispatch is the transition table keyed by (phase, intent).
// Missing entries are no-ops.
var dispatch = map[Phase]map[core.IntentKind]handler{
	PhaseLogin: {
		core.IntentAppendChar: (*Session).appendChar,
		core.IntentBackspace:  (*Session).backspace,
		core.IntentConfirm:    (*Session).submitLogin,
		core.IntentQuit:       (*Session).requestExit,
	},
	PhasePlaying: {
		core.IntentTurnUp:      (*Session).turn,
		core.IntentTurnDown:    (*Session).turn,
		core.IntentTurnLeft:    (*Session).turn,
		core.IntentTurnRight:   (*Session).turn,
		core.IntentTogglePause: (*Session).togglePause,
		core.IntentQuit:        (*Session).quitRound,
	},
	PhaseGameOver: {
		core.IntentRestart:         (*Session).restart,
		core.IntentConfirm:         (*Session).restart,
		core.IntentViewLeaderboard: (*Session).showLeaderboard,
		core.IntentQuit:            (*Session).requestExit,
	},
	PhaseLeaderboard: {
		core.IntentRestart:         (*Session).restart,
		core.IntentConfirm:         (*Session).backToGameOver,
		core.IntentViewLeaderboard: (*Session).backToGameOver,
		core.IntentQuit:            (*Session).backToGameOver,
	},
}

func (s *Session) appendChar(in core.Intent) error {
	if !unicode.IsPrint(in.Char) || len(s.buffer) >= storage.MaxUsernameLen {
		return nil
	}
	s.buffer = append(s.buffer, in.Char)
	s.status = StatusNone
	return nil
}

func (s *Session) backspace(core.Intent) error {
	if len(s.buffer) > 0 {
		s.buffer = s.buffer[:len(s.buffer)-1]
	}
	s.status = StatusNone
	return nil
}

// submitLogin registers the typed name (or in.Text when given) and starts
// the first round. An empty name is ignored; a failed registration keeps
// the session in LOGIN with a status flag.
func (s *Session) submitLogin(in core.Intent) error {
	name := in.Text
	if name == "" {
		name = string(s.buffer)
	}
	if in.Text != "" {
		s.setBuffer(in.Text)
	}
	if isBlank(name) {
		return nil
	}

	var id storage.PlayerID
	err := s.call("register", func(ctx context.Context, st ScoreStore) error {
		var err error
		id, err = st.RegisterOrGetIdentity(ctx, name)
		return err
	})
	switch {
	case errors.Is(err, storage.ErrInvalidUsername):
		s.status = StatusInvalidUsername
		return nil
	case err != nil:
		s.status = StatusRegisterFailed
		return nil
	}

	s.username, _ = storage.NormalizeUsername(name)
	s.playerID = id
	s.logger.Info("player registered", "player", s.username, "id", id)
	return s.Reset()
}

func (s *Session) requestExit(core.Intent) error {
	s.wantsExit = true
	return nil
}

// turn buffers a direction for the next tick. Reversing onto the
// direction of the last move is rejected, however many turns arrive
// between two ticks.
func (s *Session) turn(in core.Intent) error {
	if s.paused {
		return nil
	}
	d, ok := in.Direction()
	if !ok || d.IsOpposite(s.current) {
		return nil
	}
	s.pending = d
	return nil
}

func (s *Session) togglePause(core.Intent) error {
	s.paused = !s.paused
	return nil
}

func (s *Session) quitRound(core.Intent) error {
	s.endRound(CauseQuit)
	return nil
}

func (s *Session) restart(core.Intent) error {
	return s.Reset()
}

// showLeaderboard always enters LEADERBOARD; a failed query shows an
// empty table with a status flag.
func (s *Session) showLeaderboard(core.Intent) error {
	var entries []storage.ScoreEntry
	err := s.call("top scores", func(ctx context.Context, st ScoreStore) error {
		var err error
		entries, err = st.TopScores(ctx, s.rules.LeaderboardSize)
		return err
	})
	if err != nil {
		entries = nil
		s.status = StatusLeaderboardUnavailable
	}
	if len(entries) > s.rules.LeaderboardSize {
		entries = entries[:s.rules.LeaderboardSize]
	}
	s.leaderboard = entries
	s.setPhase(PhaseLeaderboard)
	return nil
}

func (s *Session) backToGameOver(core.Intent) error {
	s.setPhase(PhaseGameOver)
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
