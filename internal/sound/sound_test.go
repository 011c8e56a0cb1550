package sound

import "testing"

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := New(false)
	if p.Enabled() {
		t.Fatal("disabled player reports enabled")
	}
	// must not touch the speaker
	p.Won()
	p.Lost()
	p.Close()
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	if p.Enabled() {
		t.Error("nil player reports enabled")
	}
	p.Won()
	p.Lost()
	p.Close()
}
