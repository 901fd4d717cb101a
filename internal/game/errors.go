package game

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the parent of every fatal session error. It only
// surfaces when the simulation reaches a state the rules make impossible.
var ErrPrecondition = errors.New("game: precondition violated")

var (
	// ErrEmptyBody is returned when the head of an empty snake is requested.
	ErrEmptyBody = fmt.Errorf("%w: empty snake body", ErrPrecondition)

	// ErrBoardFull is returned when food cannot be placed anywhere.
	ErrBoardFull = fmt.Errorf("%w: no free cell for food", ErrPrecondition)
)
