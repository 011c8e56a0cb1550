// internal/tui/keys.go
//
// Key decoding: terminal events to game input.
//   - Escape / Ctrl-C → Cancel
//   - Enter           → Confirm
//   - Backspace       → DeleteLast
//   - printable rune  → Char (filtering of untypeable runes is the session's job)
// Everything else, including resize and mouse events, is ignored.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

// Decode maps a terminal event to game input. ok is false for events the
// game does not care about (mouse, resize, unbound keys).
func Decode(ev tcell.Event) (in game.Input, ok bool) {
	k, isKey := ev.(*tcell.EventKey)
	if !isKey {
		return game.Input{}, false
	}
	switch k.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Cancel, true
	case tcell.KeyEnter:
		return game.Confirm, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.DeleteLast, true
	case tcell.KeyRune:
		return game.Char(k.Rune()), true
	}
	return game.Input{}, false
}
