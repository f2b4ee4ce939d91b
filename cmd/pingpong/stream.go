package main

import (
	"encoding/binary"
	"io"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/signal"
	"github.com/cwbudde/algo-pingpong/host"
)

// streamer is an io.Reader of interleaved little-endian float32 stereo
// frames. Each Read pulls the next input frames through the adapter in
// blocks of at most blockSize; after the input runs out it keeps feeding
// silence until the delay tail has died away, then returns io.EOF.
type streamer struct {
	adapter *host.Adapter
	input   [][]float32
	pos     int
	tail    int

	block [][]float32
	view  [][]float32
	inter []float32

	played atomic.Int64
}

func newStreamer(a *host.Adapter, input [][]float32, blockSize int) *streamer {
	return &streamer{
		adapter: a,
		input:   input,
		tail:    a.Engine().TailSamples(),
		block:   core.NewBlock(2, blockSize),
		view:    make([][]float32, 2),
		inter:   make([]float32, 2*blockSize),
	}
}

func (s *streamer) remaining() int {
	return core.Frames(s.input) + s.tail - s.pos
}

func (s *streamer) Read(p []byte) (int, error) {
	const frameBytes = 8

	left := s.remaining()
	if left <= 0 {
		return 0, io.EOF
	}

	frames := min(len(p)/frameBytes, left)
	n := 0
	for done := 0; done < frames; {
		count := min(frames-done, len(s.block[0]))
		block := core.Slice(s.view, s.block, 0, count)
		s.fill(block)
		s.adapter.Process(block)

		interleaved := s.inter[:2*count]
		if _, err := signal.Interleave(interleaved, block); err != nil {
			return n, err
		}
		for _, v := range interleaved {
			binary.LittleEndian.PutUint32(p[n:], math.Float32bits(v))
			n += 4
		}

		s.pos += count
		done += count
	}
	s.played.Add(int64(frames))
	return n, nil
}

// fill copies the next input frames into block, padding with silence.
func (s *streamer) fill(block [][]float32) {
	total := core.Frames(s.input)
	for ch := range block {
		dst := block[ch]
		copied := 0
		if s.pos < total {
			copied = copy(dst, s.input[ch][s.pos:total])
		}
		clear(dst[copied:])
	}
}

// Played returns the number of frames handed to the audio device.
func (s *streamer) Played() int64 { return s.played.Load() }
