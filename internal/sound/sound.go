// Package sound plays short tones when a game is won or lost.
// Audio is best effort: if the speaker cannot be initialised the Player is
// silent and the game runs normally.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

// Player emits win/loss cues.
type Player struct {
	enabled bool
}

// New returns a Player. With enabled=false, or when the speaker fails to
// initialise, every method is a no-op.
func New(enabled bool) *Player {
	if !enabled {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, sound disabled")
		return &Player{}
	}
	return &Player{enabled: true}
}

// Enabled reports whether tones are actually played.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Won plays a rising two-note cue.
func (p *Player) Won() { p.play(660, 880) }

// Lost plays a falling two-note cue.
func (p *Player) Lost() { p.play(330, 220) }

func (p *Player) play(freqs ...float64) {
	if !p.Enabled() {
		return
	}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sampleRate, f)
		if err != nil {
			log.Debug().Err(err).Float64("freq", f).Msg("tone skipped")
			continue
		}
		notes = append(notes, beep.Take(sampleRate.N(120*time.Millisecond), tone))
	}
	speaker.Play(beep.Seq(notes...))
}

// Close releases the audio device.
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
		p.enabled = false
	}
}
