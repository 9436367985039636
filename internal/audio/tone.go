// Package audio provides the tone-playback service. The game core only ever
// starts a tone sequence, silences it, or polls whether one is still
// playing; everything else is sound-card plumbing kept behind the Player
// interface.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Tone is one note of a sequence: a frequency in Hz and how long it sounds.
// A zero frequency is a rest.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Player is the audio service consumed by the game core.
type Player interface {
	// Play starts a tone sequence, replacing any sequence in progress.
	Play(seq ...Tone)
	// NoTone silences playback immediately.
	NoTone()
	// Playing reports whether a sequence is still sounding. Completion is
	// polled, never awaited.
	Playing() bool
}

// NullPlayer is a Player that makes no sound. Used for muted play and in
// tests.
type NullPlayer struct{}

func (NullPlayer) Play(...Tone)  {}
func (NullPlayer) NoTone()       {}
func (NullPlayer) Playing() bool { return false }

const sampleRate = beep.SampleRate(44100)

// BeepPlayer plays tone sequences through the speaker using square-wave
// synthesis. The mixer runs for the life of the player; a replaced or
// silenced sequence is exhausted rather than paused, so the mixer drops it
// instead of carrying it forever.
type BeepPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	current *beep.Ctrl
	playing atomic.Bool
}

// NewBeepPlayer initializes the speaker and returns a ready player.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return nil, err
	}
	p := &BeepPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts a tone sequence, cutting off any sequence in progress.
func (p *BeepPlayer) Play(seq ...Tone) {
	p.mu.Lock()
	defer p.mu.Unlock()

	streamers := make([]beep.Streamer, 0, len(seq)+1)
	for _, t := range seq {
		streamers = append(streamers, newSquareWave(t.Freq, t.Duration))
	}
	streamers = append(streamers, beep.Callback(func() {
		p.playing.Store(false)
	}))
	ctrl := &beep.Ctrl{Streamer: beep.Seq(streamers...)}

	// The speaker goroutine streams from the mixer, so swapping sequences
	// must hold the speaker lock. Exhausting the old Ctrl makes the mixer
	// drop it on the next stream call.
	speaker.Lock()
	if p.current != nil {
		p.current.Streamer = nil
	}
	p.mixer.Add(ctrl)
	p.playing.Store(true)
	speaker.Unlock()

	p.current = ctrl
}

// NoTone silences playback immediately.
func (p *BeepPlayer) NoTone() {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	if p.current != nil {
		p.current.Streamer = nil
		p.current = nil
	}
	p.playing.Store(false)
	speaker.Unlock()
}

// Playing reports whether a sequence is still sounding.
func (p *BeepPlayer) Playing() bool {
	return p.playing.Load()
}

// squareWave generates a fixed-length square wave. A zero frequency streams
// silence, giving rests between notes.
type squareWave struct {
	freq     float64
	phase    float64
	samples  int
	position int
}

func newSquareWave(freq float64, d time.Duration) beep.Streamer {
	return &squareWave{
		freq:    freq,
		samples: sampleRate.N(d),
	}
}

func (s *squareWave) Stream(out [][2]float64) (n int, ok bool) {
	for i := range out {
		if s.position >= s.samples {
			return i, i > 0
		}

		var val float64
		if s.freq > 0 {
			if s.phase < 0.5 {
				val = 0.25
			} else {
				val = -0.25
			}
			s.phase += s.freq / float64(sampleRate)
			if s.phase >= 1 {
				s.phase -= 1
			}
		}

		out[i][0] = val
		out[i][1] = val
		s.position++
	}
	return len(out), true
}

func (s *squareWave) Err() error { return nil }
