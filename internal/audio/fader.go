package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// fader applies a linear gain ramp to a streamer. The speaker goroutine reads
// it while the game loop retargets it, so the state is guarded by mu.
type fader struct {
	mu        sync.Mutex
	streamer  beep.Streamer
	gain      float64
	step      float64
	remaining int
	stopAtEnd bool
	done      bool
}

func newFader(s beep.Streamer, gain float64) *fader {
	return &fader{streamer: s, gain: gain}
}

// rampTo moves the gain to target over n samples. With stop set the streamer
// ends once the ramp completes.
func (f *fader) rampTo(target float64, n int, stop bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopAtEnd = stop
	if n <= 0 {
		f.gain = target
		f.step = 0
		f.remaining = 0
		if stop {
			f.done = true
		}
		return
	}
	f.step = (target - f.gain) / float64(n)
	f.remaining = n
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return 0, false
	}

	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.remaining > 0 {
			f.gain += f.step
			f.remaining--
			if f.remaining == 0 && f.stopAtEnd {
				samples[i][0] *= f.gain
				samples[i][1] *= f.gain
				f.done = true
				return i + 1, true
			}
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

// Gain returns the current gain.
func (f *fader) Gain() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gain
}
