package audio

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// recordingOutput keeps every streamer handed to it.
type recordingOutput struct {
	played   []beep.Streamer
	suspends int
	resumes  int
	closes   int
	failNext error
}

func (o *recordingOutput) Play(s beep.Streamer) { o.played = append(o.played, s) }
func (o *recordingOutput) Suspend() error {
	o.suspends++
	return nil
}
func (o *recordingOutput) Resume() error {
	o.resumes++
	if err := o.failNext; err != nil {
		o.failNext = nil
		return err
	}
	return nil
}
func (o *recordingOutput) Close() error {
	o.closes++
	return nil
}

// ones produces n samples of 1.0.
type ones struct{ left int }

func (s *ones) Stream(samples [][2]float64) (int, bool) {
	if s.left <= 0 {
		return 0, false
	}
	n := len(samples)
	if n > s.left {
		n = s.left
	}
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{1, 1}
	}
	s.left -= n
	return n, true
}

func (s *ones) Err() error { return nil }

const testRate = beep.SampleRate(1000)

func newTestDispatcher(out Output) *Dispatcher {
	d := NewDispatcher(Options{
		Output:       out,
		SampleRate:   testRate,
		MasterVolume: 0.5,
		FadeIn:       100 * time.Millisecond,
		FadeOut:      200 * time.Millisecond,
	})
	for _, cue := range AllCues() {
		d.buffers[cue] = d.bufferOf(&ones{left: 500}, testRate)
	}
	return d
}

func drain(t *testing.T, s beep.Streamer, max int) int {
	t.Helper()
	buf := make([][2]float64, 64)
	total := 0
	for total < max {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	return -1
}

func TestPlayUnknownCueIsIgnored(t *testing.T) {
	out := &recordingOutput{}
	d := NewDispatcher(Options{Output: out, MasterVolume: 1})
	d.Play("nope", 1)
	d.Play(CueClean, 1) // not loaded
	if len(out.played) != 0 {
		t.Fatalf("expected nothing played, got %d streamers", len(out.played))
	}
}

func TestPlayOverlapsIndependently(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)

	d.Play(CueDestroy, 0.8)
	d.Play(CueDestroy, 0.8)
	if len(out.played) != 2 {
		t.Fatalf("expected 2 independent playbacks, got %d", len(out.played))
	}

	// Draining the first must not consume the second.
	if n := drain(t, out.played[0], 10000); n != 500 {
		t.Errorf("first playback streamed %d samples, want 500", n)
	}
	if n := drain(t, out.played[1], 10000); n != 500 {
		t.Errorf("second playback streamed %d samples, want 500", n)
	}
}

func TestPlayAppliesVolumeTimesMaster(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)

	d.Play(CueClean, 0.8)
	samples := make([][2]float64, 4)
	out.played[0].Stream(samples)
	if got := samples[0][0]; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("sample = %v, want 0.4 (0.8 * master 0.5)", got)
	}
}

func TestStartLoopTwiceKeepsOneInstance(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)

	d.StartLoop()
	d.StartLoop()
	if len(out.played) != 1 {
		t.Fatalf("expected exactly one loop instance, got %d", len(out.played))
	}
	if !d.Looping() {
		t.Error("expected dispatcher to report looping")
	}
}

func TestLoopFadesInFromSilence(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)
	d.StartLoop()

	// fade-in is 100 samples at the test rate
	samples := make([][2]float64, 200)
	out.played[0].Stream(samples)
	if samples[0][0] >= 0.05 {
		t.Errorf("first sample %v should be near silence", samples[0][0])
	}
	if math.Abs(samples[150][0]-0.5) > 1e-9 {
		t.Errorf("sample after fade-in = %v, want master volume 0.5", samples[150][0])
	}
}

func TestStopLoopFadesOutThenEnds(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)
	d.StartLoop()
	loop := out.played[0]
	drain(t, loop, 200) // loops forever until stopped

	d.StopLoop()
	if d.Looping() {
		t.Error("loop flag should clear immediately on stop")
	}
	// fade-out is 200 samples
	if n := drain(t, loop, 10000); n < 0 || n > 200 {
		t.Errorf("loop streamed %d samples after stop, want it to end within the fade", n)
	}

	d.StartLoop()
	if len(out.played) != 2 {
		t.Errorf("expected a new loop after stop, got %d playbacks", len(out.played))
	}
}

func TestStopLoopWithoutLoopIsNoop(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)
	d.StopLoop()
	if len(out.played) != 0 || d.Looping() {
		t.Error("StopLoop without a loop must not touch the output")
	}
}

func TestSuspendedOutputResumesBeforeSound(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)

	d.Suspend()
	d.Suspend()
	if out.suspends != 1 {
		t.Fatalf("expected one suspend, got %d", out.suspends)
	}
	d.Play(CueClean, 1)
	d.Play(CueClean, 1)
	if out.resumes != 1 {
		t.Errorf("expected one resume before the first cue, got %d", out.resumes)
	}
	if len(out.played) != 2 {
		t.Errorf("expected both cues to play, got %d", len(out.played))
	}
}

func TestResumeFailureStillPlaysAndRetries(t *testing.T) {
	out := &recordingOutput{failNext: errors.New("device busy")}
	d := newTestDispatcher(out)
	d.Suspend()

	d.Play(CueClean, 1)
	d.StartLoop()
	if out.resumes != 2 {
		t.Errorf("expected resume to be retried, got %d attempts", out.resumes)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	out := &recordingOutput{}
	d := newTestDispatcher(out)
	d.StartLoop()

	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if out.closes != 1 {
		t.Errorf("output closed %d times, want 1", out.closes)
	}
	d.Play(CueClean, 1)
	d.StartLoop()
	if len(out.played) != 1 {
		t.Errorf("nothing should play after Close, got %d playbacks", len(out.played))
	}
}

func TestLoadSynthesizesMissingCues(t *testing.T) {
	d := NewDispatcher(Options{SampleRate: testRate, Synthesize: true})
	if err := d.Load(context.Background(), t.TempDir()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, cue := range AllCues() {
		if !d.Has(cue) {
			t.Errorf("cue %s was not synthesized", cue)
		}
	}
}

func TestLoadWithoutSynthesisLeavesCuesSilent(t *testing.T) {
	out := &recordingOutput{}
	d := NewDispatcher(Options{Output: out, SampleRate: testRate})
	if err := d.Load(context.Background(), ""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	d.Play(CueClean, 1)
	d.StartLoop()
	if len(out.played) != 0 {
		t.Errorf("expected silence, got %d playbacks", len(out.played))
	}
}

func TestLoadDecodesAndResamplesWav(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "clean.wav"))
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 500, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, &ones{left: 250}, format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	d := NewDispatcher(Options{SampleRate: testRate})
	if err := d.Load(context.Background(), dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	buf, ok := d.buffers[CueClean]
	if !ok {
		t.Fatal("clean cue not loaded")
	}
	// 250 samples at 500 Hz is half a second, so about 500 samples at 1 kHz.
	if n := buf.Len(); n < 480 || n > 520 {
		t.Errorf("resampled length = %d, want about 500", n)
	}
	if d.Has(CueDestroy) {
		t.Error("destroy has no file and synthesis is off")
	}
}

func TestLoadHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewDispatcher(Options{SampleRate: testRate, Synthesize: true})
	if err := d.Load(ctx, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Errorf("Load with cancelled context = %v, want context.Canceled", err)
	}
}
