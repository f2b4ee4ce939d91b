package delay

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned for non-positive channel counts or capacities.
var ErrInvalidSize = errors.New("delay: invalid buffer size")

// Buffer is a fixed-capacity circular sample store with one lane per channel.
// All lanes share the same capacity so that a single cursor keeps channels
// time-aligned. Indices passed to Read and Write may be any integer; they are
// reduced modulo the capacity.
type Buffer struct {
	lanes    [][]float32
	capacity int
}

// New returns a zero-filled buffer with the given channel count and capacity.
func New(channels, capacity int) (*Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidSize, channels)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be > 0: %d", ErrInvalidSize, capacity)
	}

	b := &Buffer{}
	b.allocate(channels, capacity)
	return b, nil
}

// NewForDuration returns a buffer large enough to hold maxSeconds of audio
// at sampleRate, i.e. ceil(sampleRate*maxSeconds) samples per channel.
func NewForDuration(channels int, sampleRate, maxSeconds float64) (*Buffer, error) {
	capacity, err := CapacityFor(sampleRate, maxSeconds)
	if err != nil {
		return nil, err
	}
	return New(channels, capacity)
}

// CapacityFor returns ceil(sampleRate*maxSeconds).
func CapacityFor(sampleRate, maxSeconds float64) (int, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidSize, sampleRate)
	}
	if maxSeconds <= 0 || math.IsNaN(maxSeconds) || math.IsInf(maxSeconds, 0) {
		return 0, fmt.Errorf("%w: max delay must be > 0: %f", ErrInvalidSize, maxSeconds)
	}

	n := math.Ceil(sampleRate * maxSeconds)
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: capacity overflows: %.0f samples", ErrInvalidSize, n)
	}
	return int(n), nil
}

// Capacity returns the number of samples per channel.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Channels returns the number of lanes.
func (b *Buffer) Channels() int {
	return len(b.lanes)
}

// Wrap reduces index into [0, Capacity()).
func (b *Buffer) Wrap(index int) int {
	if uint(index) < uint(b.capacity) {
		return index
	}
	return ((index % b.capacity) + b.capacity) % b.capacity
}

// Write stores v at index mod capacity on channel ch.
func (b *Buffer) Write(ch, index int, v float32) {
	b.lanes[ch][b.Wrap(index)] = v
}

// Read returns the sample at index mod capacity on channel ch.
func (b *Buffer) Read(ch, index int) float32 {
	return b.lanes[ch][b.Wrap(index)]
}

// Resize reallocates every lane to capacity samples. Prior contents are
// discarded, the new lanes read as silence.
func (b *Buffer) Resize(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be > 0: %d", ErrInvalidSize, capacity)
	}
	if capacity == b.capacity {
		b.Clear()
		return nil
	}
	b.allocate(len(b.lanes), capacity)
	return nil
}

// Clear zero-fills every lane.
func (b *Buffer) Clear() {
	for _, lane := range b.lanes {
		clear(lane)
	}
}

// allocate uses one backing array so lanes stay contiguous in memory.
func (b *Buffer) allocate(channels, capacity int) {
	backing := make([]float32, channels*capacity)
	lanes := make([][]float32, channels)
	for ch := range lanes {
		lanes[ch] = backing[ch*capacity : (ch+1)*capacity : (ch+1)*capacity]
	}
	b.lanes = lanes
	b.capacity = capacity
}
