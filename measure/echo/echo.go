package echo

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by echo analysis functions.
var (
	ErrEmptyInput   = errors.New("echo: input is empty")
	ErrInvalidDelay = errors.New("echo: delay must be > 0")
	ErrInvalidLag   = errors.New("echo: invalid lag range")
	ErrNoDecay      = errors.New("echo: need at least two non-zero cycle energies")
)

// EstimateDelay returns the lag in [minLag, maxLag] at which sig best
// matches ref, i.e. the k maximising sum(sig[n+k] * ref[n]). Pass minLag > 0
// to skip the dry component of a mixed signal.
func EstimateDelay(ref, sig []float64, minLag, maxLag int) (int, error) {
	if len(ref) == 0 || len(sig) == 0 {
		return 0, ErrEmptyInput
	}
	if minLag < 0 || maxLag < minLag {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidLag, minLag, maxLag)
	}
	maxLag = min(maxLag, len(sig)-1)
	if maxLag < minLag {
		return 0, fmt.Errorf("%w: signal shorter than min lag %d", ErrInvalidLag, minLag)
	}

	corr, err := crossCorrelate(ref, sig)
	if err != nil {
		return 0, err
	}

	best := minLag
	for k := minLag + 1; k <= maxLag; k++ {
		if corr[k] > corr[best] {
			best = k
		}
	}
	return best, nil
}

// crossCorrelate returns r[k] = sum(sig[n+k] * ref[n]) for k >= 0, computed
// as IFFT(FFT(sig) * conj(FFT(ref))). Only the non-negative lags are valid
// in the returned slice, which has length len(sig).
func crossCorrelate(ref, sig []float64) ([]float64, error) {
	fftSize := nextPowerOf2(len(ref) + len(sig) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("echo: failed to create FFT plan: %w", err)
	}

	refPadded := make([]complex128, fftSize)
	sigPadded := make([]complex128, fftSize)
	for i, v := range ref {
		refPadded[i] = complex(v, 0)
	}
	for i, v := range sig {
		sigPadded[i] = complex(v, 0)
	}

	refFreq := make([]complex128, fftSize)
	sigFreq := make([]complex128, fftSize)
	if err := plan.Forward(refFreq, refPadded); err != nil {
		return nil, fmt.Errorf("echo: forward FFT failed: %w", err)
	}
	if err := plan.Forward(sigFreq, sigPadded); err != nil {
		return nil, fmt.Errorf("echo: forward FFT failed: %w", err)
	}

	for i := range sigFreq {
		r := refFreq[i]
		sigFreq[i] *= complex(real(r), -imag(r))
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, sigFreq); err != nil {
		return nil, fmt.Errorf("echo: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(sig))
	for k := range out {
		out[k] = real(timeDomain[k])
	}
	return out, nil
}

// CycleEnergies returns the energy of signal in a window of length delay
// centred on each repeat k*delay, for k = 1..cycles. Windows that fall past
// the end of signal contribute zero.
func CycleEnergies(signal []float64, delay, cycles int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if delay <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDelay, delay)
	}
	if cycles <= 0 {
		return nil, fmt.Errorf("echo: cycles must be > 0: %d", cycles)
	}

	energies := make([]float64, cycles)
	squares := make([]float64, delay)
	half := delay / 2

	for k := 1; k <= cycles; k++ {
		start := max(k*delay-half, 0)
		end := min(start+delay, len(signal))
		if start >= end {
			break
		}
		seg := signal[start:end]
		sq := squares[:len(seg)]
		vecmath.MulBlock(sq, seg, seg)

		var sum float64
		for _, v := range sq {
			sum += v
		}
		energies[k-1] = sum
	}
	return energies, nil
}

// DecayRatio returns the geometric mean of consecutive energy ratios over
// the leading run of non-zero energies.
func DecayRatio(energies []float64) (float64, error) {
	n := 0
	for n < len(energies) && energies[n] > 0 {
		n++
	}
	if n < 2 {
		return 0, ErrNoDecay
	}
	return math.Pow(energies[n-1]/energies[0], 1/float64(n-1)), nil
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	p := 0.0
	for _, v := range signal {
		if a := math.Abs(v); a > p {
			p = a
		}
	}
	return p
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
