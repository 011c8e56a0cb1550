// internal/game/board.go
//
// Board is a fixed rows×cols grid of cells stored flat in row-major order,
// plus the typing cursor. Invariants:
//   - 0 ≤ row < rows, 0 ≤ col ≤ cols (col == cols means the row is full).
//   - Out-of-range accessors are no-ops or report ok=false; they never panic.
//   - Row statuses are written only by CommitRowEvaluation.

package game

import (
	"strings"
	"unicode"
)

// Board holds the guessed letters and their evaluation.
type Board struct {
	rows, cols int
	cells      []Cell
	row, col   int
}

// NewBoard returns a blank board. Non-positive dimensions are clamped to 1.
func NewBoard(rows, cols int) *Board {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	b := &Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range b.cells {
		b.cells[i] = Cell{Letter: Blank, Status: NotGuessed}
	}
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Cursor returns the active (row, col).
func (b *Board) Cursor() (row, col int) { return b.row, b.col }

// RowFull reports whether the active row has all cols letters typed.
func (b *Board) RowFull() bool { return b.col == b.cols }

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row*b.cols+col], true
}

// Row returns a copy of the cells in row, or nil when out of range.
func (b *Board) Row(row int) []Cell {
	if row < 0 || row >= b.rows {
		return nil
	}
	out := make([]Cell, b.cols)
	copy(out, b.cells[row*b.cols:(row+1)*b.cols])
	return out
}

// SetLetter writes ch, upper-cased, into (row, col). The status is left untouched.
func (b *Board) SetLetter(row, col int, ch rune) {
	if !b.inBounds(row, col) {
		return
	}
	b.cells[row*b.cols+col].Letter = unicode.ToUpper(ch)
}

// ClearLetter resets the letter at (row, col) to Blank.
func (b *Board) ClearLetter(row, col int) {
	if !b.inBounds(row, col) {
		return
	}
	b.cells[row*b.cols+col].Letter = Blank
}

// AdvanceCursor moves one column right; no-op when the row is full.
func (b *Board) AdvanceCursor() {
	if b.col < b.cols {
		b.col++
	}
}

// RetreatCursor moves one column left; no-op at column 0.
func (b *Board) RetreatCursor() {
	if b.col > 0 {
		b.col--
	}
}

// NextRow moves the cursor to the start of the next row.
// It reports false, leaving the cursor alone, when already on the last row.
func (b *Board) NextRow() bool {
	if b.row >= b.rows-1 {
		return false
	}
	b.row++
	b.col = 0
	return true
}

// RowText concatenates the letters of row.
func (b *Board) RowText(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row*b.cols : (row+1)*b.cols] {
		sb.WriteRune(c.Letter)
	}
	return sb.String()
}

// CommitRowEvaluation scores row against secret and stores the statuses.
func (b *Board) CommitRowEvaluation(row int, secret string, score Scorer) {
	if row < 0 || row >= b.rows {
		return
	}
	marks := score(secret, b.RowText(row))
	for i := 0; i < b.cols && i < len(marks); i++ {
		b.cells[row*b.cols+i].Status = marks[i]
	}
}
