package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine from one frequency to another with a fast decay
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
	span     int
}

// NewChirpGenerator creates a chirp sweeping over 100ms
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:   sr,
		from: from,
		to:   to,
		span: sr.N(time.Millisecond * 100),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}

		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*25)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// FallingBuzzGenerator is a harmonic-rich tone falling in pitch
type FallingBuzzGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
	span     int
}

// NewFallingBuzzGenerator creates a buzz falling over 400ms
func NewFallingBuzzGenerator(sr beep.SampleRate, from, to float64) *FallingBuzzGenerator {
	return &FallingBuzzGenerator{
		sr:   sr,
		from: from,
		to:   to,
		span: sr.N(time.Millisecond * 400),
	}
}

func (g *FallingBuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from * math.Pow(g.to/g.from, progress)

		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
		p := 2 * math.Pi * g.phase

		sample := 0.3*math.Sin(p) + 0.15*math.Sin(2*p) + 0.075*math.Sin(3*p)

		// Fade in/out
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.02, 1.0) * (1.0 - progress)
		sample *= envelope * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FallingBuzzGenerator) Err() error {
	return nil
}
