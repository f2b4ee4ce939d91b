package echo

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrNoTail is returned when the response does not decay through the
// requested level range.
var ErrNoTail = errors.New("echo: response does not decay far enough")

// schroederFloorDB is reported where no energy remains.
const schroederFloorDB = -200.0

// SchroederCurve returns the backward-integrated energy of ir in dB
// relative to its total energy:
//
//	S(i) = 10*log10( sum(ir[i:]^2) / sum(ir^2) )
//
// For a feedback delay the curve is a staircase that drops by
// 10*log10(feedback^2) at every repeat.
func SchroederCurve(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(ir)
	curve := make([]float64, n)
	vecmath.MulBlock(curve, ir, ir)
	var cum float64
	for i := n - 1; i >= 0; i-- {
		cum += curve[i]
		curve[i] = cum
	}

	total := curve[0]
	if total <= 0 {
		return nil, fmt.Errorf("%w: silent input", ErrNoTail)
	}
	for i, e := range curve {
		if ratio := e / total; ratio > 0 {
			curve[i] = 10 * math.Log10(ratio)
		} else {
			curve[i] = schroederFloorDB
		}
	}
	return curve, nil
}

// DecayTime fits a line to the Schroeder curve of ir between startDB and
// endDB (both negative, startDB > endDB) and extrapolates it to -60 dB.
// The result is in seconds.
func DecayTime(ir []float64, sampleRate, startDB, endDB float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return 0, fmt.Errorf("echo: sample rate must be > 0: %f", sampleRate)
	}
	if !(startDB > endDB) {
		return 0, fmt.Errorf("echo: start level %g dB must lie above end level %g dB", startDB, endDB)
	}

	curve, err := SchroederCurve(ir)
	if err != nil {
		return 0, err
	}

	start, end := -1, -1
	for i, v := range curve {
		if start < 0 && v <= startDB {
			start = i
		}
		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}
	if start < 0 || end <= start {
		return 0, fmt.Errorf("%w: [%g, %g] dB", ErrNoTail, startDB, endDB)
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := start; i <= end; i++ {
		x := float64(i - start)
		y := curve[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}
	n := float64(end - start + 1)
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, fmt.Errorf("%w: [%g, %g] dB", ErrNoTail, startDB, endDB)
	}

	slope := (n*sumXY - sumX*sumY) / denom // dB per sample
	if slope >= 0 {
		return 0, fmt.Errorf("%w: curve does not fall", ErrNoTail)
	}
	return -60 / (slope * sampleRate), nil
}

// T60 estimates the time for the repeats to fall by 60 dB from the -5 to
// -35 dB part of the decay.
func T60(ir []float64, sampleRate float64) (float64, error) {
	return DecayTime(ir, sampleRate, -5, -35)
}
