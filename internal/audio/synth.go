package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Procedural stand-ins for cue files that are missing from the sound
// directory. Every generator is finite; the loop cue is looped by the
// dispatcher.

type oscillator struct {
	rate   beep.SampleRate
	pos    int
	total  int
	sample func(t float64, pos int) float64
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		t := float64(o.pos) / float64(o.rate)
		v := o.sample(t, o.pos)
		samples[i][0] = v
		samples[i][1] = v
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func synthesize(cue string, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueClean:
		// short rising splash
		return &oscillator{rate: rate, total: rate.N(250 * time.Millisecond), sample: func(t float64, _ int) float64 {
			env := math.Min(t/0.02, 1) * math.Exp(-t*10)
			return env * (0.35*(rand.Float64()*2-1) + 0.25*math.Sin(2*math.Pi*(600+1200*t)*t))
		}}
	case CueDestroy:
		// crackle with low rumble
		return &oscillator{rate: rate, total: rate.N(300 * time.Millisecond), sample: func(t float64, _ int) float64 {
			env := math.Exp(-t * 8)
			return env * (0.25*(rand.Float64()*2-1) + 0.3*math.Sin(2*math.Pi*80*t))
		}}
	case CueStageClear:
		// two-note chime, B5 then E6
		split := 0.12
		return &oscillator{rate: rate, total: rate.N(450 * time.Millisecond), sample: func(t float64, _ int) float64 {
			freq, local := 987.77, t
			if t >= split {
				freq, local = 1318.51, t-split
			}
			return 0.3 * math.Exp(-local*6) * math.Sin(2*math.Pi*freq*local)
		}}
	case CueWaterJet:
		// one second of soft hiss; the period hides the loop seam
		var last float64
		return &oscillator{rate: rate, total: rate.N(time.Second), sample: func(t float64, _ int) float64 {
			last = 0.85*last + 0.15*(rand.Float64()*2-1)
			return 0.4 * last * (0.8 + 0.2*math.Sin(2*math.Pi*3*t))
		}}
	}
	return nil
}
