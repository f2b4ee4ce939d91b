package pingpong

import (
	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/delay"
)

// kernel holds the per-block gains of the mixing loops.
type kernel struct {
	feedback float32
	dry      float32
	wet      float32
}

// independent runs two separate feedback delays:
//
//	write(c, w+i, in[c][i] + delayed[c]*feedback)
//	out[c][i] = in[c][i]*dry + delayed[c]*wet
func (k kernel) independent(buf *delay.Buffer, left, right []float32, cursor, d int) {
	capacity := buf.Capacity()
	w := buf.Wrap(cursor)
	r := buf.Wrap(cursor - d)

	for i := range left {
		inL, inR := left[i], right[i]
		delayedL := buf.Read(0, r)
		delayedR := buf.Read(1, r)

		buf.Write(0, w, inL+core.FlushDenormals32(delayedL*k.feedback))
		buf.Write(1, w, inR+core.FlushDenormals32(delayedR*k.feedback))

		left[i] = inL*k.dry + delayedL*k.wet
		right[i] = inR*k.dry + delayedR*k.wet

		if w++; w == capacity {
			w = 0
		}
		if r++; r == capacity {
			r = 0
		}
	}
}

// pingPong crosses the feedback paths. The left lane receives the input plus
// the fed-back right signal, the right lane receives only the fed-back left
// signal, so repeats bounce between the channels:
//
//	write(L, w+i, inL[i] + delayedR*feedback)
//	write(R, w+i, delayedL*feedback)
func (k kernel) pingPong(buf *delay.Buffer, left, right []float32, cursor, d int) {
	capacity := buf.Capacity()
	w := buf.Wrap(cursor)
	r := buf.Wrap(cursor - d)

	for i := range left {
		inL, inR := left[i], right[i]
		delayedL := buf.Read(0, r)
		delayedR := buf.Read(1, r)

		buf.Write(0, w, inL+core.FlushDenormals32(delayedR*k.feedback))
		buf.Write(1, w, core.FlushDenormals32(delayedL*k.feedback))

		left[i] = inL*k.dry + delayedL*k.wet
		right[i] = inR*k.dry + delayedR*k.wet

		if w++; w == capacity {
			w = 0
		}
		if r++; r == capacity {
			r = 0
		}
	}
}
