package echo

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// makeRepeats builds an impulse train with a repeat every delay samples,
// each scaled by feedback relative to the previous one.
func makeRepeats(length, delay int, feedback float64) []float64 {
	out := make([]float64, length)
	amp := 1.0
	for i := delay; i < length; i += delay {
		out[i] = amp
		amp *= feedback
	}
	return out
}

func noise(seed int64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

func TestEstimateDelay(t *testing.T) {
	ref := noise(1, 2000)
	for _, lag := range []int{0, 1, 37, 480, 1500} {
		sig := make([]float64, len(ref))
		copy(sig[lag:], ref)

		got, err := EstimateDelay(ref, sig, 0, len(sig)-1)
		if err != nil {
			t.Fatalf("lag %d: %v", lag, err)
		}
		if got != lag {
			t.Fatalf("EstimateDelay = %d want %d", got, lag)
		}
	}
}

func TestEstimateDelaySkipsDryComponent(t *testing.T) {
	ref := noise(2, 4096)
	sig := make([]float64, len(ref))
	for i := range sig {
		sig[i] = 0.7 * ref[i]
		if i >= 250 {
			sig[i] += 0.3 * ref[i-250]
		}
	}

	got, err := EstimateDelay(ref, sig, 0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("with minLag 0 the dry peak should win, got %d", got)
	}

	got, err = EstimateDelay(ref, sig, 1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if got != 250 {
		t.Fatalf("EstimateDelay = %d want 250", got)
	}
}

func TestEstimateDelayValidation(t *testing.T) {
	if _, err := EstimateDelay(nil, []float64{1}, 0, 1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty ref error = %v", err)
	}
	if _, err := EstimateDelay([]float64{1}, []float64{1}, 3, 1); !errors.Is(err, ErrInvalidLag) {
		t.Fatalf("inverted range error = %v", err)
	}
	if _, err := EstimateDelay([]float64{1}, []float64{1, 2}, 5, 10); !errors.Is(err, ErrInvalidLag) {
		t.Fatalf("short signal error = %v", err)
	}
}

func TestCycleEnergiesGeometric(t *testing.T) {
	const (
		delay    = 50
		feedback = 0.6
	)
	sig := makeRepeats(1000, delay, feedback)

	energies, err := CycleEnergies(sig, delay, 10)
	if err != nil {
		t.Fatal(err)
	}
	for k, e := range energies {
		want := math.Pow(feedback, 2*float64(k))
		if math.Abs(e-want) > 1e-12 {
			t.Fatalf("cycle %d energy = %v want %v", k+1, e, want)
		}
	}

	ratio, err := DecayRatio(energies)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ratio-feedback*feedback) > 1e-12 {
		t.Fatalf("DecayRatio = %v want %v", ratio, feedback*feedback)
	}
}

func TestCycleEnergiesPastEnd(t *testing.T) {
	sig := makeRepeats(120, 40, 0.5)
	energies, err := CycleEnergies(sig, 40, 6)
	if err != nil {
		t.Fatal(err)
	}
	if energies[0] != 1 || energies[1] != 0.25 {
		t.Fatalf("energies = %v", energies)
	}
	for _, e := range energies[3:] {
		if e != 0 {
			t.Fatalf("window past the end has energy %v", e)
		}
	}
}

func TestCycleEnergiesValidation(t *testing.T) {
	if _, err := CycleEnergies(nil, 10, 2); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty error = %v", err)
	}
	if _, err := CycleEnergies([]float64{1}, 0, 2); !errors.Is(err, ErrInvalidDelay) {
		t.Fatalf("zero delay error = %v", err)
	}
	if _, err := CycleEnergies([]float64{1}, 4, 0); err == nil {
		t.Fatal("expected error for zero cycles")
	}
}

func TestDecayRatioNeedsTwoCycles(t *testing.T) {
	if _, err := DecayRatio([]float64{1}); !errors.Is(err, ErrNoDecay) {
		t.Fatalf("single cycle error = %v", err)
	}
	if _, err := DecayRatio([]float64{0, 1, 1}); !errors.Is(err, ErrNoDecay) {
		t.Fatalf("leading zero error = %v", err)
	}
	ratio, err := DecayRatio([]float64{1, 0.5, 0, 3})
	if err != nil || ratio != 0.5 {
		t.Fatalf("DecayRatio = %v, %v want 0.5 over the leading run", ratio, err)
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float64{0.1, -0.9, 0.3}); got != 0.9 {
		t.Fatalf("Peak = %v want 0.9", got)
	}
}
