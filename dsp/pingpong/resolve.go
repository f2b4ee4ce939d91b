package pingpong

import (
	"math"

	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// ResolveDelayMs returns the effective delay time of s in milliseconds: the
// tempo-synced value while SyncToTempo is set, the manual delay time
// otherwise.
func ResolveDelayMs(s Snapshot) float64 {
	if s.SyncToTempo {
		return tempo.DelayMs(s.BPM, s.Division)
	}
	return s.DelayTimeMs
}

// DelaySamples converts ms to a whole-sample offset at sampleRate, rounded
// to the nearest sample and clamped to [0, capacity-1]. A non-positive
// capacity yields 0.
func DelaySamples(ms, sampleRate float64, capacity int) int {
	if capacity <= 0 {
		return 0
	}

	samples := math.Round(ms / 1000 * sampleRate)
	switch {
	case !(samples > 0):
		// also catches NaN
		return 0
	case samples > float64(capacity-1):
		return capacity - 1
	}
	return int(samples)
}
