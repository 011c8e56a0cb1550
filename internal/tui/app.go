// internal/tui/app.go
//
// The interactive loop: draw, block for the next event, decode, apply.
// One goroutine owns the session; there are no timers or background work.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

// EventSource yields terminal events; nil means the source is closed.
// tcell.Screen satisfies it.
type EventSource interface {
	PollEvent() tcell.Event
}

// Notifier is told when a game ends. The sound package implements it.
type Notifier interface {
	Won()
	Lost()
}

// App binds a session to a screen.
type App struct {
	Screen  tcell.Screen
	Events  EventSource // defaults to Screen
	Session *game.Session
	Options DrawOptions
	Notify  Notifier // optional
}

// Run loops until the player cancels or the event source closes.
// A tcell.EventError from the source is returned as an error.
func (a *App) Run() error {
	events := a.Events
	if events == nil {
		events = a.Screen
	}
	for {
		Draw(a.Screen, a.Session.View(), a.Options)
		a.Screen.Show()

		ev := events.PollEvent()
		switch ev := ev.(type) {
		case nil:
			log.Debug().Msg("event source closed")
			return nil
		case *tcell.EventError:
			return ev
		case *tcell.EventResize:
			a.Screen.Sync()
			continue
		}

		in, ok := Decode(ev)
		if !ok {
			continue
		}
		before := a.Session.Status().State
		if a.Session.Handle(in) == game.Quit {
			return nil
		}
		a.notify(before, a.Session.Status().State)
	}
}

func (a *App) notify(before, after game.State) {
	if before != game.Ongoing || before == after {
		return
	}
	log.Info().
		Str("session", a.Session.ID()).
		Str("state", after.String()).
		Int("attempts", a.Session.Status().Attempts).
		Msg("game over")
	if a.Notify == nil {
		return
	}
	switch after {
	case game.Won:
		a.Notify.Won()
	case game.Lost:
		a.Notify.Lost()
	}
}
