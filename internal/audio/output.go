package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is where the dispatcher sends finished streamers.
type Output interface {
	Play(s beep.Streamer)
	Suspend() error
	Resume() error
	Close() error
}

// speakerOutput plays through the beep speaker. The speaker owns its own
// mixer goroutine and drops streamers once they are drained.
type speakerOutput struct{}

// OpenSpeaker initializes the audio device at the given rate.
func OpenSpeaker(rate beep.SampleRate) (Output, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return speakerOutput{}, nil
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Suspend() error       { return speaker.Suspend() }
func (speakerOutput) Resume() error        { return speaker.Resume() }

func (speakerOutput) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// NullOutput discards everything. Used when no audio device is available.
type NullOutput struct{}

func (NullOutput) Play(beep.Streamer) {}
func (NullOutput) Suspend() error     { return nil }
func (NullOutput) Resume() error      { return nil }
func (NullOutput) Close() error       { return nil }
