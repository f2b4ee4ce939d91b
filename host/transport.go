package host

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// Transport reports the host tempo. ok is false when the host has no
// transport or reports an unusable tempo. Implementations are polled from
// the audio goroutine and must not block.
type Transport interface {
	Tempo() (bpm float64, ok bool)
}

// NoTransport is a host without tempo information.
type NoTransport struct{}

// Tempo always reports no tempo.
func (NoTransport) Tempo() (float64, bool) { return 0, false }

// FixedTransport reports a constant tempo.
type FixedTransport float64

// Tempo returns the fixed BPM.
func (f FixedTransport) Tempo() (float64, bool) {
	bpm := float64(f)
	return bpm, tempo.ValidBPM(bpm)
}

// ManualTransport is a tempo that a control goroutine can change while the
// audio goroutine polls it. The zero value reports no tempo.
type ManualTransport struct {
	bpm atomic.Uint64 // float64 bits
}

// SetTempo publishes a new tempo. Invalid values make Tempo report !ok.
func (m *ManualTransport) SetTempo(bpm float64) {
	m.bpm.Store(math.Float64bits(bpm))
}

// Stop withdraws the tempo.
func (m *ManualTransport) Stop() {
	m.bpm.Store(0)
}

// Tempo returns the last published tempo.
func (m *ManualTransport) Tempo() (float64, bool) {
	bpm := math.Float64frombits(m.bpm.Load())
	return bpm, tempo.ValidBPM(bpm)
}
