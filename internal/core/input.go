package core

// IntentKind identifies a normalized user action, abstracted from physical key presses.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentTurnUp
	IntentTurnDown
	IntentTurnLeft
	IntentTurnRight
	IntentConfirm         // Enter - submit username, play again
	IntentBackspace       // Backspace - delete last username character
	IntentAppendChar      // printable key while typing a username
	IntentTogglePause     // P
	IntentRestart         // R, Space
	IntentViewLeaderboard // L, Tab
	IntentQuit            // Q, Esc
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentTurnUp:
		return "TurnUp"
	case IntentTurnDown:
		return "TurnDown"
	case IntentTurnLeft:
		return "TurnLeft"
	case IntentTurnRight:
		return "TurnRight"
	case IntentConfirm:
		return "Confirm"
	case IntentBackspace:
		return "Backspace"
	case IntentAppendChar:
		return "AppendChar"
	case IntentTogglePause:
		return "TogglePause"
	case IntentRestart:
		return "Restart"
	case IntentViewLeaderboard:
		return "ViewLeaderboard"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is a single user action. Text is only meaningful for Confirm,
// Char only for AppendChar.
type Intent struct {
	Kind IntentKind
	Text string
	Char rune
}

// Do returns a payload-free intent of the given kind.
func Do(kind IntentKind) Intent {
	return Intent{Kind: kind}
}

// Turn returns the turn intent for direction d.
func Turn(d Direction) Intent {
	switch d {
	case DirUp:
		return Intent{Kind: IntentTurnUp}
	case DirDown:
		return Intent{Kind: IntentTurnDown}
	case DirLeft:
		return Intent{Kind: IntentTurnLeft}
	case DirRight:
		return Intent{Kind: IntentTurnRight}
	}
	return Intent{}
}

// Confirm returns a confirm intent carrying optional text.
func Confirm(text string) Intent {
	return Intent{Kind: IntentConfirm, Text: text}
}

// AppendChar returns an intent that appends r to the username buffer.
func AppendChar(r rune) Intent {
	return Intent{Kind: IntentAppendChar, Char: r}
}

// Direction returns the direction carried by a turn intent.
func (i Intent) Direction() (Direction, bool) {
	switch i.Kind {
	case IntentTurnUp:
		return DirUp, true
	case IntentTurnDown:
		return DirDown, true
	case IntentTurnLeft:
		return DirLeft, true
	case IntentTurnRight:
		return DirRight, true
	}
	return 0, false
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentConfirm:
		if i.Text != "" {
			return "Confirm(" + i.Text + ")"
		}
	case IntentAppendChar:
		return "AppendChar(" + string(i.Char) + ")"
	}
	return i.Kind.String()
}

// IntentQueue accumulates intents between two simulation ticks.
// The driver drains it in arrival order right before each tick.
type IntentQueue struct {
	items []Intent
}

// Push appends an intent. IntentNone is dropped.
func (q *IntentQueue) Push(i Intent) {
	if i.Kind == IntentNone {
		return
	}
	q.items = append(q.items, i)
}

// Len returns the number of pending intents.
func (q *IntentQueue) Len() int {
	return len(q.items)
}

// Count returns the number of pending intents of the given kind.
func (q *IntentQueue) Count(kind IntentKind) int {
	n := 0
	for _, i := range q.items {
		if i.Kind == kind {
			n++
		}
	}
	return n
}

// Drain returns all pending intents and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Clear discards all pending intents.
func (q *IntentQueue) Clear() {
	q.items = nil
}
