package main

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipDuration = 60 * time.Millisecond
	blipVolume   = 0.25
)

// blipper plays short decaying sine tones. A failed speaker init leaves it
// silent.
type blipper struct {
	ready bool
}

func newBlipper() *blipper {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio disabled: %v", err)
		return &blipper{}
	}
	return &blipper{ready: true}
}

func (b *blipper) play(freq float64) {
	if b == nil || !b.ready {
		return
	}
	speaker.Play(newTone(freq, blipDuration))
}

func (b *blipper) close() {
	if b == nil || !b.ready {
		return
	}
	speaker.Clear()
	b.ready = false
}

// tone is a sine wave with a linear fade out.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, total: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		gain := blipVolume * (1 - float64(t.position)/float64(t.total))
		v := gain * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
