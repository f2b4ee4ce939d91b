package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Stereo returns a two-channel block holding copies of left and right.
func Stereo(left, right []float32) [][]float32 {
	return [][]float32{
		append([]float32(nil), left...),
		append([]float32(nil), right...),
	}
}

// Silence returns a channels x frames block of zeros.
func Silence(channels, frames int) [][]float32 {
	block := make([][]float32, channels)
	for ch := range block {
		block[ch] = make([]float32, frames)
	}
	return block
}

// Blocks splits a planar signal into consecutive blocks of at most size
// frames. The returned blocks alias signal.
func Blocks(signal [][]float32, size int) [][][]float32 {
	if len(signal) == 0 || size <= 0 {
		return nil
	}
	total := len(signal[0])
	var out [][][]float32
	for start := 0; start < total; start += size {
		end := min(start+size, total)
		block := make([][]float32, len(signal))
		for ch := range signal {
			block[ch] = signal[ch][start:end]
		}
		out = append(out, block)
	}
	return out
}
