// internal/tui/render.go
//
// Renderer: draws a game.View onto a tcell screen. It has no game logic and
// never mutates the session.
//
// Layout (top to bottom):
//   - header:  title, optional secret, message
//   - board:   rows×cols boxes, 5 columns × 3 lines each, coloured by status
//   - status:  win/loss line with the restart hint (finished games only)
//   - footer:  key help

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

const (
	cellW  = 5
	cellH  = 3
	boardY = 2
	title  = "WORDLE"
	help   = "type letters · enter submit · backspace delete · esc quit"
)

// DrawOptions tweaks what the renderer shows.
type DrawOptions struct {
	// Reveal prints the secret in the header.
	Reveal bool
}

// StatusColor is the foreground colour used for a cell status.
func StatusColor(st game.CellStatus) tcell.Color {
	switch st {
	case game.Correct:
		return tcell.ColorGreen
	case game.Present:
		return tcell.ColorYellow
	case game.Absent:
		return tcell.ColorRed
	default:
		return tcell.ColorWhite
	}
}

// Draw renders v onto s. The caller calls s.Show.
func Draw(s tcell.Screen, v game.View, opts DrawOptions) {
	s.Clear()
	w, _ := s.Size()

	header := title
	if opts.Reveal {
		header += "  word: " + v.Secret
	}
	if v.Message != "" {
		header += "  " + v.Message
	}
	drawCentered(s, w, 0, header, tcell.StyleDefault.Bold(true))

	rows := len(v.Cells)
	cols := 0
	if rows > 0 {
		cols = len(v.Cells[0])
	}
	x0 := (w - cols*cellW) / 2
	if x0 < 0 {
		x0 = 0
	}
	for r, row := range v.Cells {
		for c, cell := range row {
			active := v.Status.State == game.Ongoing && r == v.CursorRow && c == v.CursorCol
			drawCell(s, x0+c*cellW, boardY+r*cellH, cell, active)
		}
	}

	y := boardY + rows*cellH + 1
	switch v.Status.State {
	case game.Won:
		drawCentered(s, w, y, fmt.Sprintf("You won with %d guesses, press enter to restart", v.Status.Attempts),
			tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	case game.Lost:
		drawCentered(s, w, y, fmt.Sprintf("You lost, the word was %s, press enter to restart", v.Secret),
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
	drawCentered(s, w, y+2, help, tcell.StyleDefault.Dim(true))
}

// drawCell draws one boxed letter with its top-left corner at (x, y).
func drawCell(s tcell.Screen, x, y int, cell game.Cell, active bool) {
	fg := StatusColor(cell.Status)
	border := tcell.StyleDefault.Foreground(fg)
	if active {
		border = border.Bold(true).Reverse(true)
	}
	letter := tcell.StyleDefault.Foreground(fg).Bold(cell.Status != game.NotGuessed)

	s.SetContent(x, y, '┌', nil, border)
	s.SetContent(x+cellW-1, y, '┐', nil, border)
	s.SetContent(x, y+cellH-1, '└', nil, border)
	s.SetContent(x+cellW-1, y+cellH-1, '┘', nil, border)
	for i := 1; i < cellW-1; i++ {
		s.SetContent(x+i, y, '─', nil, border)
		s.SetContent(x+i, y+cellH-1, '─', nil, border)
	}
	s.SetContent(x, y+1, '│', nil, border)
	s.SetContent(x+cellW-1, y+1, '│', nil, border)
	s.SetContent(x+1, y+1, ' ', nil, letter)
	s.SetContent(x+2, y+1, cell.Letter, nil, letter)
	s.SetContent(x+3, y+1, ' ', nil, letter)
}

// drawCentered writes text horizontally centred on line y of a w-wide screen.
func drawCentered(s tcell.Screen, w, y int, text string, style tcell.Style) {
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
