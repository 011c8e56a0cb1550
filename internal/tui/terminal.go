// internal/tui/terminal.go
//
// Terminal ownership. tcell switches the tty to raw mode and the alternate
// screen on Init and restores both on Fini; Terminal wraps that pair so the
// release runs exactly once on every exit path, including panics.

package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// ErrTerminalInit reports that the screen could not be set up.
var ErrTerminalInit = errors.New("tui: terminal init failed")

// Terminal is an initialised screen that must be closed.
type Terminal struct {
	screen tcell.Screen
	once   sync.Once
}

// Open creates and initialises the process terminal.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalInit, err)
	}
	return NewTerminal(s)
}

// NewTerminal initialises s and takes ownership of it.
func NewTerminal(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalInit, err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	log.Debug().Msg("terminal acquired")
	return &Terminal{screen: s}, nil
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Close restores the terminal. Safe to call more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		t.screen.Fini()
		log.Debug().Msg("terminal restored")
	})
}

// WithTerminal acquires a terminal through open, runs fn and always releases
// the terminal afterwards. A panic in fn is re-raised after restoration so the
// stack trace lands on a sane tty.
func WithTerminal(open func() (*Terminal, error), fn func(*Terminal) error) error {
	t, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			t.Close()
			panic(r)
		}
		t.Close()
	}()
	return fn(t)
}
