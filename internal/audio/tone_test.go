package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// testPlayer builds a player without initializing the speaker; tests pull
// samples from the mixer directly.
func testPlayer() *BeepPlayer {
	return &BeepPlayer{mixer: &beep.Mixer{}}
}

// drain pulls samples until the mixer has shed every streamer.
func drain(p *BeepPlayer) {
	buf := make([][2]float64, 512)
	for i := 0; i < 1000 && p.mixer.Len() > 0; i++ {
		p.mixer.Stream(buf)
	}
}

func TestPlayReplacesSequence(t *testing.T) {
	p := testPlayer()
	p.Play(Tone{Freq: 440, Duration: 10 * time.Millisecond})
	p.Play(Tone{Freq: 880, Duration: 10 * time.Millisecond})

	// One pull is enough for the mixer to shed the exhausted old sequence.
	buf := make([][2]float64, 64)
	p.mixer.Stream(buf)
	if n := p.mixer.Len(); n != 1 {
		t.Errorf("mixer holds %d streamers after replacement, expected 1", n)
	}
	if !p.Playing() {
		t.Error("Playing() false while the replacement sounds")
	}
}

func TestRepeatedPlayDoesNotAccumulate(t *testing.T) {
	p := testPlayer()
	buf := make([][2]float64, 64)

	for i := 0; i < 20; i++ {
		p.Play(Tone{Freq: 440, Duration: time.Second})
		p.mixer.Stream(buf)
	}
	if n := p.mixer.Len(); n != 1 {
		t.Errorf("mixer holds %d streamers after 20 interruptions, expected 1", n)
	}
}

func TestNoToneDropsSequence(t *testing.T) {
	p := testPlayer()
	p.Play(Tone{Freq: 440, Duration: time.Second})
	p.NoTone()

	if p.Playing() {
		t.Error("Playing() true after NoTone")
	}
	buf := make([][2]float64, 64)
	p.mixer.Stream(buf)
	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer holds %d streamers after NoTone, expected 0", n)
	}
}

func TestSequenceCompletionClearsPlaying(t *testing.T) {
	p := testPlayer()
	p.Play(
		Tone{Freq: 440, Duration: time.Millisecond},
		Tone{Freq: 0, Duration: time.Millisecond},
	)
	if !p.Playing() {
		t.Fatal("Playing() false right after Play")
	}

	drain(p)
	if p.Playing() {
		t.Error("Playing() true after the sequence drained")
	}
}

func TestSquareWave(t *testing.T) {
	d := 10 * time.Millisecond
	want := sampleRate.N(d)

	sw := newSquareWave(440, d)
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := sw.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v != 0.25 && v != -0.25 {
				t.Fatalf("sample %d = %v, expected ±0.25", total+i, v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d is not mono-identical", total+i)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}

	// A zero frequency is a rest: pure silence of the same length.
	rest := newSquareWave(0, d)
	n, _ := rest.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("rest sample %d = %v, expected silence", i, buf[i][0])
		}
	}
}
