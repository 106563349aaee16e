package audio

import (
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultSampleRate is the rate every cue is resampled to.
const DefaultSampleRate = beep.SampleRate(44100)

// Options configures a Dispatcher.
type Options struct {
	Output       Output // nil selects NullOutput
	SampleRate   beep.SampleRate
	MasterVolume float64
	FadeIn       time.Duration
	FadeOut      time.Duration
	// Synthesize fills cues whose files are missing with procedural sounds.
	Synthesize bool
	Log        *slog.Logger
}

// Dispatcher plays one-shot cues and owns the single water-jet loop.
// It is driven from the game loop only; the output may consume streamers on
// its own goroutine.
type Dispatcher struct {
	out       Output
	rate      beep.SampleRate
	master    float64
	fadeIn    time.Duration
	fadeOut   time.Duration
	synth     bool
	log       *slog.Logger
	buffers   map[string]*beep.Buffer
	loop      *fader
	suspended bool
	closed    bool
}

func NewDispatcher(opts Options) *Dispatcher {
	if opts.Output == nil {
		opts.Output = NullOutput{}
	}
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Dispatcher{
		out:     opts.Output,
		rate:    opts.SampleRate,
		master:  opts.MasterVolume,
		fadeIn:  opts.FadeIn,
		fadeOut: opts.FadeOut,
		synth:   opts.Synthesize,
		log:     opts.Log,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Has reports whether a cue is loaded.
func (d *Dispatcher) Has(cue string) bool {
	_, ok := d.buffers[cue]
	return ok
}

// Play starts a fresh, independent playback of a one-shot cue.
// Unknown or unloaded cues are ignored.
func (d *Dispatcher) Play(cue string, volume float64) {
	if d.closed {
		return
	}
	buf, ok := d.buffers[cue]
	if !ok {
		return
	}
	d.resume()
	d.out.Play(newVolume(buf.Streamer(0, buf.Len()), volume*d.master))
}

// StartLoop fades the water-jet loop in. While a loop is playing further
// calls do nothing.
func (d *Dispatcher) StartLoop() {
	if d.closed || d.loop != nil {
		return
	}
	buf, ok := d.buffers[LoopCue]
	if !ok {
		return
	}
	d.resume()

	f := newFader(beep.Loop(-1, buf.Streamer(0, buf.Len())), 0)
	f.rampTo(d.master, d.rate.N(d.fadeIn), false)
	d.out.Play(f)
	d.loop = f
}

// StopLoop fades the loop out; the streamer ends when the fade completes.
// The dispatcher forgets the loop right away so a new one can start.
func (d *Dispatcher) StopLoop() {
	if d.loop == nil {
		return
	}
	d.loop.rampTo(0, d.rate.N(d.fadeOut), true)
	d.loop = nil
}

// Looping reports whether a loop is active.
func (d *Dispatcher) Looping() bool {
	return d.loop != nil
}

// Suspend pauses the output, e.g. when the window loses focus. The next cue
// resumes it.
func (d *Dispatcher) Suspend() {
	if d.closed || d.suspended {
		return
	}
	if err := d.out.Suspend(); err != nil {
		d.log.Warn("audio suspend failed", "err", err)
		return
	}
	d.suspended = true
}

func (d *Dispatcher) resume() {
	if !d.suspended {
		return
	}
	if err := d.out.Resume(); err != nil {
		d.log.Warn("audio resume failed", "err", err)
		return
	}
	d.suspended = false
}

// Close stops the loop and releases the output. Safe to call more than once.
func (d *Dispatcher) Close() error {
	if d.closed {
		return nil
	}
	d.StopLoop()
	d.closed = true
	return d.out.Close()
}

// newVolume scales a stream linearly; vol <= 0 silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
