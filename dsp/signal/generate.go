package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// ErrInvalidLength is returned for non-positive signal lengths.
var ErrInvalidLength = errors.New("signal: length must be > 0")

const (
	clickFreqHz = 1000.0
	// DefaultClickMs is the burst length used by ClickTrack when clickMs <= 0.
	DefaultClickMs = 5.0
)

// Generator creates deterministic mono test signals at a fixed sample rate.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator from processor options and
// signal-specific options.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Frames converts a duration in seconds to a frame count at the generator
// sample rate.
func (g *Generator) Frames(seconds float64) int {
	if seconds <= 0 || !core.IsFinite(seconds) {
		return 0
	}
	return int(math.Round(seconds * g.cfg.SampleRate))
}

// Impulse returns frames samples of silence with a unit sample at pos.
func (g *Generator) Impulse(frames, pos int) ([]float32, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, frames)
	}
	if pos < 0 || pos >= frames {
		return nil, fmt.Errorf("signal: impulse position %d outside [0, %d)", pos, frames)
	}
	out := make([]float32, frames)
	out[pos] = 1
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, frames int) ([]float32, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, frames)
	}
	out := make([]float32, frames)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, frames int) ([]float32, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, frames)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float32, frames)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out, nil
}

// ClickTrack places a short decaying 1 kHz burst on every beat at bpm.
// Beats land on round(n * 60/bpm * sampleRate).
func (g *Generator) ClickTrack(bpm, clickMs float64, frames int) ([]float32, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, frames)
	}
	if !tempo.ValidBPM(bpm) {
		return nil, fmt.Errorf("signal: invalid tempo %f", bpm)
	}
	if clickMs <= 0 || !core.IsFinite(clickMs) {
		clickMs = DefaultClickMs
	}

	beat := tempo.BeatLengthMs(bpm) / 1000 * g.cfg.SampleRate
	clickLen := max(int(math.Round(clickMs/1000*g.cfg.SampleRate)), 1)
	step := 2 * math.Pi * clickFreqHz / g.cfg.SampleRate

	out := make([]float32, frames)
	for n := 0; ; n++ {
		start := int(math.Round(float64(n) * beat))
		if start >= frames {
			break
		}
		end := min(start+clickLen, frames)
		for i := start; i < end; i++ {
			k := float64(i - start)
			env := 1 - k/float64(clickLen)
			out[i] = float32(env * math.Cos(step*k))
		}
	}
	return out, nil
}

// Stereo spreads a mono signal to two channels with per-channel gains.
func Stereo(mono []float32, leftGain, rightGain float32) [][]float32 {
	block := core.NewBlock(2, len(mono))
	for i, v := range mono {
		block[0][i] = v * leftGain
		block[1][i] = v * rightGain
	}
	return block
}

// Normalize scales data in place to the target peak amplitude. Silent input
// is left untouched.
func Normalize(data []float32, targetPeak float64) error {
	if targetPeak < 0 {
		return fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(float64(v)); av > maxAbs {
			maxAbs = av
		}
	}
	if maxAbs == 0 {
		return nil
	}

	scale := float32(targetPeak / maxAbs)
	for i := range data {
		data[i] *= scale
	}
	return nil
}
