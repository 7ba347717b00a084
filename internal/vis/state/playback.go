package state

import "time"

// stepInterval is how long playback lingers on each placement.
const stepInterval = 600 * time.Millisecond

// PlaybackState steps through the committed placement sequence.
// Index is the number of placements currently shown, 0..Max.
type PlaybackState struct {
	Index      int
	Max        int
	Playing    bool
	lastUpdate time.Time
}

// NewPlaybackState creates playback over max placements, starting at
// the fully-placed end state.
func NewPlaybackState(max int) *PlaybackState {
	return &PlaybackState{Index: max, Max: max}
}

// TogglePlay toggles playback on/off, restarting from the beginning
// when toggled at the end.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		if p.Index >= p.Max {
			p.Index = 0
		}
	}
}

// Reset rewinds to the empty grid.
func (p *PlaybackState) Reset() {
	p.Index = 0
	p.Playing = false
}

// Advance moves playback forward when enough time has elapsed.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}
	now := time.Now()
	if now.Sub(p.lastUpdate) < stepInterval {
		return
	}
	p.lastUpdate = now
	p.Index++
	if p.Index >= p.Max {
		p.Index = p.Max
		p.Playing = false
	}
}

// StepForward advances one placement and pauses.
func (p *PlaybackState) StepForward() {
	p.Playing = false
	if p.Index < p.Max {
		p.Index++
	}
}

// StepBack rewinds one placement and pauses.
func (p *PlaybackState) StepBack() {
	p.Playing = false
	if p.Index > 0 {
		p.Index--
	}
}

// SetIndex jumps to a playback position.
func (p *PlaybackState) SetIndex(i int) {
	if i < 0 {
		i = 0
	}
	if i > p.Max {
		i = p.Max
	}
	p.Index = i
}

// Progress returns the playback position as 0-1.
func (p *PlaybackState) Progress() float64 {
	if p.Max <= 0 {
		return 1
	}
	return float64(p.Index) / float64(p.Max)
}
