package core

// NewBlock allocates a planar block of channels x frames samples backed by a
// single array.
func NewBlock(channels, frames int) [][]float32 {
	if channels <= 0 || frames < 0 {
		return nil
	}
	backing := make([]float32, channels*frames)
	block := make([][]float32, channels)
	for ch := range block {
		block[ch] = backing[ch*frames : (ch+1)*frames : (ch+1)*frames]
	}
	return block
}

// Frames returns the number of frames every channel of block can supply,
// i.e. the shortest channel length.
func Frames(block [][]float32) int {
	if len(block) == 0 {
		return 0
	}
	n := len(block[0])
	for _, ch := range block[1:] {
		if len(ch) < n {
			n = len(ch)
		}
	}
	return n
}

// Slice returns views of block restricted to frames [start, end). The
// returned outer slice reuses dst when it has enough capacity.
func Slice(dst, block [][]float32, start, end int) [][]float32 {
	dst = dst[:0]
	for _, ch := range block {
		dst = append(dst, ch[start:end])
	}
	return dst
}

// ToFloat64 widens src into dst and returns the number of converted samples.
func ToFloat64(dst []float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = float64(src[i])
	}
	return n
}
