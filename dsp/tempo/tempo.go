package tempo

import "math"

// DefaultBPM is assumed until a host reports a valid tempo.
const DefaultBPM = 120.0

// ValidBPM reports whether bpm is a usable tempo (finite and > 0).
func ValidBPM(bpm float64) bool {
	return bpm > 0 && !math.IsInf(bpm, 0)
}

// BeatLengthMs returns the length of one quarter-note beat in milliseconds.
// An invalid bpm falls back to DefaultBPM.
func BeatLengthMs(bpm float64) float64 {
	if !ValidBPM(bpm) {
		bpm = DefaultBPM
	}
	return 60000 / bpm
}

// DelayMs returns the delay time in milliseconds for division d at bpm.
func DelayMs(bpm float64, d Division) float64 {
	return BeatLengthMs(bpm) * d.Multiplier()
}
