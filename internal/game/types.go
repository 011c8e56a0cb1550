// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - CellStatus: per-letter evaluation of a submitted guess.
//   - Cell: one letter slot on the board.
//   - State/Status: session outcome (ongoing, won in N attempts, lost).
//   - Input/Action: decoded key semantics consumed by Session.Handle.

package game

// CellStatus is the evaluation result for a single board cell.
//   - NotGuessed: row not submitted yet.
//   - Correct:    letter matches the secret at this position.
//   - Present:    letter occurs in the secret at another position.
//   - Absent:     letter does not occur in the secret.
type CellStatus int

const (
	NotGuessed CellStatus = iota
	Correct
	Present
	Absent
)

func (s CellStatus) String() string {
	switch s {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "not_guessed"
	}
}

// Blank is the letter of an empty cell.
const Blank = ' '

// Cell is one letter slot.
type Cell struct {
	Letter rune
	Status CellStatus
}

// State is the coarse session state.
type State int

const (
	Ongoing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Status is the session outcome. Attempts is only meaningful when State is Won.
type Status struct {
	State    State
	Attempts int
}

// InputKind enumerates the decoded key semantics.
type InputKind int

const (
	InputChar InputKind = iota
	InputDeleteLast
	InputConfirm
	InputCancel
)

// Input is one decoded key press. Char is set for InputChar only.
type Input struct {
	Kind InputKind
	Char rune
}

// Char, DeleteLast, Confirm and Cancel build Inputs.
func Char(r rune) Input { return Input{Kind: InputChar, Char: r} }

var (
	DeleteLast = Input{Kind: InputDeleteLast}
	Confirm    = Input{Kind: InputConfirm}
	Cancel     = Input{Kind: InputCancel}
)

// Action tells the caller's loop what to do after an input was handled.
type Action int

const (
	Continue Action = iota
	Quit
)
