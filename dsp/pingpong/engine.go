package pingpong

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/delay"
)

// MaxCapacity bounds the per-channel delay buffer allocated by Prepare.
const MaxCapacity = 1 << 24

// ErrPrepare wraps every failure reported by Prepare.
var ErrPrepare = errors.New("pingpong: prepare failed")

// tailThreshold is the repeat level (-60 dB) below which the tail is
// considered silent.
const tailThreshold = 0.001

// TempoInfo is the transport state a host reports for one block.
type TempoInfo struct {
	BPM   float64
	Valid bool
}

// NoTempo is passed by hosts without transport information.
var NoTempo = TempoInfo{}

// Engine is a stereo feedback delay with optional ping-pong cross-feedback
// and tempo-synced delay time.
//
// Prepare, Release and Reset must not run concurrently with Process.
// Parameters may be changed from any goroutine at any time through
// SetParameter or Parameters(); Process reads them once per block.
type Engine struct {
	params *Params
	cfg    engineConfig

	buf          *delay.Buffer
	sampleRate   float64
	maxBlockSize int
	cursor       int
	delaySamples int
	prepared     bool
}

// New creates an unprepared engine. Call Prepare before processing.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Engine{
		params: NewParams(cfg.defaults),
		cfg:    cfg,
	}, nil
}

// Prepare sizes the delay buffer for the configured maximum delay at
// sampleRate, zero-fills it and resets the write cursor. It is the only
// operation that allocates.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrPrepare, sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: max block size must be > 0: %d", ErrPrepare, maxBlockSize)
	}

	capacity, err := delay.CapacityFor(sampleRate, e.cfg.maxDelaySeconds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPrepare, err)
	}
	if capacity > MaxCapacity {
		return fmt.Errorf("%w: buffer of %d samples exceeds %d", ErrPrepare, capacity, MaxCapacity)
	}

	if e.buf == nil {
		e.buf, err = delay.New(2, capacity)
	} else {
		err = e.buf.Resize(capacity)
	}
	if err != nil {
		e.prepared = false
		return fmt.Errorf("%w: %w", ErrPrepare, err)
	}

	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.cursor = 0
	e.delaySamples = DelaySamples(ResolveDelayMs(e.params.Snapshot()), sampleRate, capacity)
	e.prepared = true
	return nil
}

// Release ends processing. The buffer is kept for the next Prepare; Process
// passes audio through untouched until then.
func (e *Engine) Release() {
	e.prepared = false
}

// Reset clears the delay history and the write cursor without reallocating.
func (e *Engine) Reset() {
	if e.buf != nil {
		e.buf.Clear()
	}
	e.cursor = 0
}

// SetParameter assigns a plain value to a control parameter. It is safe to
// call concurrently with Process.
func (e *Engine) SetParameter(id ParamID, value float64) error {
	return e.params.Set(id, value)
}

// Parameters returns the live parameter state.
func (e *Engine) Parameters() *Params {
	return e.params
}

// Process runs one block in place. block holds one slice per channel; only
// channels 0 and 1 are processed, over the length of the shorter one.
// Blocks with fewer than two channels, and any call outside
// Prepare/Release, pass through unchanged. Process never allocates, locks
// or blocks.
func (e *Engine) Process(block [][]float32, t TempoInfo) {
	if !e.prepared || len(block) < 2 {
		return
	}
	if t.Valid {
		e.params.SetTempo(t.BPM)
	}

	s := e.params.Snapshot()
	e.delaySamples = DelaySamples(ResolveDelayMs(s), e.sampleRate, e.buf.Capacity())

	n := min(len(block[0]), len(block[1]))
	if n == 0 {
		return
	}
	left, right := block[0][:n], block[1][:n]

	k := kernel{
		feedback: float32(s.Feedback),
		wet:      float32(s.DryWet),
		dry:      float32(1 - s.DryWet),
	}
	if s.PingPong {
		k.pingPong(e.buf, left, right, e.cursor, e.delaySamples)
	} else {
		k.independent(e.buf, left, right, e.cursor, e.delaySamples)
	}

	e.cursor = e.buf.Wrap(e.cursor + n)
}

// Prepared reports whether Process is active.
func (e *Engine) Prepared() bool { return e.prepared }

// SampleRate returns the sample rate of the last successful Prepare.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MaxBlockSize returns the block size negotiated by the last Prepare.
func (e *Engine) MaxBlockSize() int { return e.maxBlockSize }

// Capacity returns the per-channel delay buffer length, 0 before Prepare.
func (e *Engine) Capacity() int {
	if e.buf == nil {
		return 0
	}
	return e.buf.Capacity()
}

// Cursor returns the write position of the next block.
func (e *Engine) Cursor() int { return e.cursor }

// CurrentDelaySamples returns the offset used by the last processed block
// (or resolved by Prepare).
func (e *Engine) CurrentDelaySamples() int { return e.delaySamples }

// LatencySamples reports the processing latency, which is zero: the dry
// signal is never delayed.
func (e *Engine) LatencySamples() int { return 0 }

// TailSamples estimates how long repeats stay above -60 dB after the input
// falls silent, from the current parameters. It is capped at 16 buffer
// lengths.
func (e *Engine) TailSamples() int {
	if !e.prepared {
		return 0
	}

	s := e.params.Snapshot()
	capacity := e.buf.Capacity()
	d := DelaySamples(ResolveDelayMs(s), e.sampleRate, capacity)
	limit := capacity * 16

	repeats := 1
	if s.Feedback > 0 {
		repeats += int(math.Ceil(math.Log(tailThreshold) / math.Log(s.Feedback)))
	}
	if d > 0 && repeats > limit/d {
		return limit
	}
	return core.ClampInt(d*repeats, 0, limit)
}
