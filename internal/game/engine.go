// internal/game/engine.go
//
// Core game engine for a single terminal session.
// Responsibilities:
//   - Select the secret from an injected word pool and index source.
//   - Apply decoded key input to the board (type, delete, submit).
//   - Score submitted rows and track state transitions: ongoing → won/lost.
//   - Reset the whole session on confirm once the game is over.
//
// Notes:
//   - Session is not safe for concurrent use; the terminal loop owns it.
//   - Cancel quits from every state; in won/lost only Confirm (reset) and
//     Cancel are honoured.
//   - The final failing row is still scored so the board reads consistently.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

const (
	defaultRows = 6
	defaultCols = 5
)

// ErrSecretLength is returned when the selected secret does not fit the board width.
var ErrSecretLength = errors.New("game: secret length does not match board columns")

// Session owns one board, one secret and the game status.
type Session struct {
	id      string
	board   *Board
	secret  string
	status  Status
	message string

	pool   *words.Pool
	src    words.Source
	score  Scorer
	rows   int
	cols   int
	pinned string
}

// Option configures a Session.
type Option func(*Session)

// WithRows sets the number of attempts.
func WithRows(n int) Option { return func(s *Session) { s.rows = n } }

// WithCols sets the word length.
func WithCols(n int) Option { return func(s *Session) { s.cols = n } }

// WithScorer replaces the comparison algorithm.
func WithScorer(sc Scorer) Option {
	return func(s *Session) {
		if sc != nil {
			s.score = sc
		}
	}
}

// WithSecret pins the secret instead of selecting from the pool.
// Every reset reuses it.
func WithSecret(w string) Option {
	return func(s *Session) { s.pinned = strings.ToUpper(strings.TrimSpace(w)) }
}

// NewSession constructs a session, selecting its secret from pool via src.
// A nil src falls back to words.CryptoSource.
func NewSession(pool *words.Pool, src words.Source, opts ...Option) (*Session, error) {
	if pool == nil || pool.Len() == 0 {
		return nil, words.ErrEmptyPool
	}
	if src == nil {
		src = words.CryptoSource{}
	}
	s := &Session{
		pool:  pool,
		src:   src,
		score: Evaluate,
		rows:  defaultRows,
		cols:  defaultCols,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rows < 1 || s.cols < 1 {
		return nil, fmt.Errorf("game: invalid board %dx%d", s.rows, s.cols)
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards all state: fresh secret, blank board, ongoing status.
// On error the previous state is kept.
func (s *Session) Reset() error {
	secret := s.pinned
	if secret == "" {
		w, err := s.pool.Select(s.src)
		if err != nil {
			return err
		}
		secret = w
	}
	if utf8.RuneCountInString(secret) != s.cols {
		return fmt.Errorf("%w: %q has %d letters, board has %d",
			ErrSecretLength, secret, utf8.RuneCountInString(secret), s.cols)
	}

	s.id = uuid.NewString()
	s.board = NewBoard(s.rows, s.cols)
	s.secret = secret
	s.status = Status{State: Ongoing}
	s.message = ""

	log.Debug().Str("session", s.id).Int("rows", s.rows).Int("cols", s.cols).Msg("session started")
	log.Trace().Str("session", s.id).Str("secret", secret).Msg("secret selected")
	return nil
}

// Handle applies one decoded input and reports whether the loop should quit.
func (s *Session) Handle(in Input) Action {
	if in.Kind == InputCancel {
		log.Debug().Str("session", s.id).Str("state", s.status.State.String()).Msg("cancel")
		return Quit
	}

	if s.status.State != Ongoing {
		if in.Kind == InputConfirm {
			if err := s.Reset(); err != nil {
				log.Error().Err(err).Str("session", s.id).Msg("reset failed")
				s.message = "could not start a new game"
			}
		}
		return Continue
	}

	switch in.Kind {
	case InputChar:
		s.typeLetter(in.Char)
	case InputDeleteLast:
		s.deleteLast()
	case InputConfirm:
		s.submit()
	}
	return Continue
}

// typeLetter writes ch at the cursor; no-op on a full row or an untypeable rune.
func (s *Session) typeLetter(ch rune) {
	if !words.Typeable(ch) {
		return
	}
	row, col := s.board.Cursor()
	if col >= s.board.Cols() {
		return
	}
	s.board.SetLetter(row, col, ch)
	s.board.AdvanceCursor()
}

// deleteLast clears the letter before the cursor; no-op at column 0.
func (s *Session) deleteLast() {
	row, col := s.board.Cursor()
	if col < 1 {
		return
	}
	s.board.RetreatCursor()
	s.board.ClearLetter(row, col-1)
}

// submit scores the active row once it is full.
//
// State transitions:
//   - guess equals secret → Won(row+1).
//   - last row            → Lost.
//   - otherwise           → cursor moves to the next row.
func (s *Session) submit() {
	if !s.board.RowFull() {
		return
	}
	row, _ := s.board.Cursor()
	guess := s.board.RowText(row)
	s.board.CommitRowEvaluation(row, s.secret, s.score)

	ev := log.Debug().Str("session", s.id).Int("row", row).Str("guess", guess)
	switch {
	case strings.EqualFold(guess, s.secret):
		s.status = Status{State: Won, Attempts: row + 1}
		s.message = fmt.Sprintf("Solved in %d!", row+1)
		ev.Str("state", "won").Msg("guess submitted")
	case row == s.board.Rows()-1:
		s.status = Status{State: Lost}
		s.message = "Out of guesses"
		ev.Str("state", "lost").Msg("guess submitted")
	default:
		s.board.NextRow()
		ev.Str("state", "ongoing").Msg("guess submitted")
	}
}

// ID is the session identifier used in logs; it changes on every reset.
func (s *Session) ID() string { return s.id }

// Status returns the current outcome.
func (s *Session) Status() Status { return s.status }

// Secret returns the secret word, upper-cased.
func (s *Session) Secret() string { return s.secret }

// Message returns the display message ("" when none).
func (s *Session) Message() string { return s.message }

// Cursor returns the board cursor.
func (s *Session) Cursor() (row, col int) { return s.board.Cursor() }

// View is a read-only snapshot of everything a renderer needs.
type View struct {
	Status    Status
	Secret    string
	Message   string
	Cells     [][]Cell
	CursorRow int
	CursorCol int
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	v := View{
		Status:  s.status,
		Secret:  s.secret,
		Message: s.message,
		Cells:   make([][]Cell, s.board.Rows()),
	}
	for r := range v.Cells {
		v.Cells[r] = s.board.Row(r)
	}
	v.CursorRow, v.CursorCol = s.board.Cursor()
	return v
}
