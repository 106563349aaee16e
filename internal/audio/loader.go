package audio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
	"golang.org/x/sync/errgroup"
)

// Load decodes every cue from dir in parallel and keeps them in memory.
// A cue that cannot be loaded is logged and, when synthesis is enabled,
// replaced by a procedural sound; otherwise it stays silent. Only context
// cancellation is returned as an error.
func (d *Dispatcher) Load(ctx context.Context, dir string) error {
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, cue := range AllCues() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := d.loadCue(dir, cue)
			if err != nil {
				d.log.Warn("failed to load sound", "cue", cue, "dir", dir, "err", err)
				if !d.synth {
					return nil
				}
				buf = d.bufferOf(synthesize(cue, d.rate), d.rate)
				d.log.Debug("using synthesized sound", "cue", cue)
			}
			mu.Lock()
			d.buffers[cue] = buf
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (d *Dispatcher) loadCue(dir, cue string) (*beep.Buffer, error) {
	if dir == "" {
		return nil, errors.New("no sound directory")
	}
	base := cueFiles[cue]
	for _, ext := range cueExtensions {
		path := filepath.Join(dir, base+ext)
		buf, err := d.decodeFile(path, ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return buf, nil
	}
	return nil, fmt.Errorf("no %s file in %s: %w", base, dir, fs.ErrNotExist)
}

func (d *Dispatcher) decodeFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != d.rate {
		src = beep.Resample(4, format.SampleRate, d.rate, stream)
	}
	buf := d.bufferOf(src, d.rate)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (d *Dispatcher) bufferOf(s beep.Streamer, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
