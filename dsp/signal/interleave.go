package signal

import "fmt"

// Interleave writes the planar block into dst as frame-interleaved samples
// and returns the number of frames written. dst must hold
// len(block)*frames values.
func Interleave(dst []float32, block [][]float32) (int, error) {
	channels := len(block)
	if channels == 0 {
		return 0, nil
	}
	frames := len(block[0])
	for ch := 1; ch < channels; ch++ {
		frames = min(frames, len(block[ch]))
	}
	if len(dst) < channels*frames {
		return 0, fmt.Errorf("signal: interleave needs %d samples, got %d", channels*frames, len(dst))
	}

	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := range block {
			dst[base+ch] = block[ch][i]
		}
	}
	return frames, nil
}

// Deinterleave splits frame-interleaved src into the planar block and
// returns the number of frames read. Trailing partial frames are ignored.
func Deinterleave(block [][]float32, src []float32) (int, error) {
	channels := len(block)
	if channels == 0 {
		return 0, nil
	}
	frames := len(src) / channels
	for ch := range block {
		if len(block[ch]) < frames {
			return 0, fmt.Errorf("signal: channel %d holds %d frames, need %d", ch, len(block[ch]), frames)
		}
	}

	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := range block {
			block[ch][i] = src[base+ch]
		}
	}
	return frames, nil
}
