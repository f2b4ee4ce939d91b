// Package level summarises the amplitude of rendered audio: peak, RMS, DC
// offset and the number of samples at or beyond full scale.
package level

import "math"

// Stats holds level statistics of one channel.
type Stats struct {
	Length  int
	DC      float64 // mean
	RMS     float64
	RMSDB   float64
	Peak    float64 // max |x|
	PeakDB  float64
	PeakPos int
	CrestDB float64 // peak / RMS in dB, 0 for silence
	Clipped int     // samples with |x| >= 1
}

func ampToDB(v float64) float64 {
	if v == 0 {
		return math.Inf(-1)
	}
	return 20 * mathLog10(math.Abs(v))
}

// Calculate computes the statistics of x in one pass.
func Calculate(x []float32) Stats {
	var m Meter
	m.Update(x)
	return m.Result()
}

// Meter accumulates Stats across consecutive blocks. The zero value is
// ready to use. Results match Calculate over the concatenated input.
type Meter struct {
	n       int
	sum     float64
	sumSq   float64
	peak    float64
	peakPos int
	clipped int
}

// Update adds a block of samples.
func (m *Meter) Update(x []float32) {
	for _, s := range x {
		v := float64(s)
		m.sum += v
		m.sumSq += v * v
		a := math.Abs(v)
		if a > m.peak {
			m.peak = a
			m.peakPos = m.n
		}
		if a >= 1 {
			m.clipped++
		}
		m.n++
	}
}

// Result returns the statistics of everything passed to Update.
func (m *Meter) Result() Stats {
	if m.n == 0 {
		return Stats{
			RMSDB:  math.Inf(-1),
			PeakDB: math.Inf(-1),
		}
	}

	nf := float64(m.n)
	rms := mathSqrt(m.sumSq / nf)
	s := Stats{
		Length:  m.n,
		DC:      m.sum / nf,
		RMS:     rms,
		RMSDB:   ampToDB(rms),
		Peak:    m.peak,
		PeakDB:  ampToDB(m.peak),
		PeakPos: m.peakPos,
		Clipped: m.clipped,
	}
	if rms > 0 {
		s.CrestDB = ampToDB(m.peak / rms)
	}
	return s
}

// Reset clears the accumulated data.
func (m *Meter) Reset() {
	*m = Meter{}
}
