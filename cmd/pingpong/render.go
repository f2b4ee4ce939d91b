package main

import (
	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/signal"
	"github.com/cwbudde/algo-pingpong/host"
)

// makeSource generates the stereo input. Impulses and clicks enter on the
// left only so the ping-pong bounce is audible.
func makeSource(cfg config) ([][]float32, error) {
	g := signal.NewGenerator([]core.ProcessorOption{
		core.WithSampleRate(cfg.sampleRate),
		core.WithBlockSize(cfg.blockSize),
	})
	frames := max(g.Frames(cfg.seconds), 1)

	var (
		mono []float32
		err  error
	)
	switch cfg.source {
	case "click":
		bpm := cfg.bpm
		if bpm <= 0 {
			bpm = 60
		}
		mono, err = g.ClickTrack(bpm, signal.DefaultClickMs, frames)
	case "noise":
		mono, err = g.WhiteNoise(0.5, frames)
	case "sine":
		mono, err = g.Sine(440, 0.5, frames)
	default:
		mono, err = g.Impulse(frames, 0)
	}
	if err != nil {
		return nil, err
	}

	switch cfg.source {
	case "impulse", "click":
		return signal.Stereo(mono, 1, 0), nil
	default:
		return signal.Stereo(mono, 1, 1), nil
	}
}

// render processes a copy of input block by block and returns it.
func render(a *host.Adapter, input [][]float32, blockSize int) [][]float32 {
	frames := core.Frames(input)
	out := core.NewBlock(len(input), frames)
	for ch := range input {
		copy(out[ch], input[ch])
	}

	block := make([][]float32, len(out))
	for start := 0; start < frames; start += blockSize {
		end := min(start+blockSize, frames)
		a.Process(core.Slice(block, out, start, end))
	}
	return out
}
