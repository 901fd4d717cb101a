package game

// Phase is the top-level mode of a session.
type Phase int

const (
	PhaseLogin Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseLeaderboard
)

func (p Phase) String() string {
	switch p {
	case PhaseLogin:
		return "LOGIN"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseLeaderboard:
		return "LEADERBOARD"
	default:
		return "UNKNOWN"
	}
}

// Status reports the outcome of the last persistence call to the renderer.
type Status string

const (
	StatusNone                   Status = "none"
	StatusRegisterFailed         Status = "register_failed"
	StatusInvalidUsername        Status = "invalid_username"
	StatusScoreSaved             Status = "score_saved"
	StatusScoreNotSaved          Status = "score_not_saved"
	StatusLeaderboardUnavailable Status = "leaderboard_unavailable"
)

// Message returns the line shown to the player, or "" for StatusNone.
func (s Status) Message() string {
	switch s {
	case StatusRegisterFailed:
		return "Registration failed: score database unavailable"
	case StatusInvalidUsername:
		return "Username must be 1-20 printable characters"
	case StatusScoreSaved:
		return "Score saved"
	case StatusScoreNotSaved:
		return "Score not saved: database unavailable"
	case StatusLeaderboardUnavailable:
		return "Leaderboard unavailable"
	default:
		return ""
	}
}

// IsError reports whether the status describes a failure.
func (s Status) IsError() bool {
	switch s {
	case StatusRegisterFailed, StatusInvalidUsername, StatusScoreNotSaved, StatusLeaderboardUnavailable:
		return true
	}
	return false
}

// Cause records why a round ended.
type Cause string

const (
	CauseNone   Cause = ""
	CauseWall   Cause = "wall"
	CauseSelf   Cause = "self"
	CauseQuit   Cause = "quit"
	CauseFilled Cause = "filled"
)

// Message returns a short description of the cause.
func (c Cause) Message() string {
	switch c {
	case CauseWall:
		return "Hit the wall"
	case CauseSelf:
		return "Ran into yourself"
	case CauseQuit:
		return "Round ended"
	case CauseFilled:
		return "Board filled!"
	default:
		return ""
	}
}
