package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
	"github.com/cwbudde/algo-pingpong/measure/echo"
)

const (
	analyzeCycles = 8
	// maxAnalyzeSeconds bounds the rendered impulse response.
	maxAnalyzeSeconds = 30
)

type report struct {
	expectedSamples int
	expectedMs      float64
	measuredSamples int
	energyRatio     float64
	hasDecay        bool
	feedback        float64
	tailSamples     int
	t60             float64
	hasT60          bool
}

// measureImpulse renders a wet-only impulse response for cfg and measures
// it. Both channels are summed so ping-pong and independent modes show the
// same repeat spacing.
func measureImpulse(cfg config) (report, error) {
	cfg.mix = 1
	a, err := newAdapter(cfg)
	if err != nil {
		return report{}, err
	}

	snap := a.Engine().Parameters().Snapshot()
	r := report{
		expectedMs: pingpong.ResolveDelayMs(snap),
		feedback:   snap.Feedback,
	}
	r.expectedSamples = pingpong.DelaySamples(r.expectedMs, cfg.sampleRate, a.Engine().Capacity())
	if r.expectedSamples < 1 {
		return report{}, fmt.Errorf("delay of %.2f ms is shorter than one sample", r.expectedMs)
	}

	d := r.expectedSamples
	r.tailSamples = a.Engine().TailSamples()
	short := d*(analyzeCycles+1) + d/2 + 1
	frames := max(short, min(r.tailSamples+d, int(maxAnalyzeSeconds*cfg.sampleRate)))

	input := core.NewBlock(2, frames)
	input[0][0] = 1
	out := render(a, input, cfg.blockSize)

	ref := make([]float64, short)
	ref[0] = 1
	sum := make([]float64, frames)
	for i := range sum {
		sum[i] = float64(out[0][i]) + float64(out[1][i])
	}

	r.measuredSamples, err = echo.EstimateDelay(ref, sum[:short], 1, 2*d)
	if err != nil {
		return report{}, err
	}
	energies, err := echo.CycleEnergies(sum, r.measuredSamples, analyzeCycles)
	if err != nil {
		return report{}, err
	}
	r.energyRatio, err = echo.DecayRatio(energies)
	switch {
	case err == nil:
		r.hasDecay = true
	case errors.Is(err, echo.ErrNoDecay):
	default:
		return report{}, err
	}

	r.t60, err = echo.T60(sum, cfg.sampleRate)
	switch {
	case err == nil:
		r.hasT60 = true
	case errors.Is(err, echo.ErrNoTail):
	default:
		return report{}, err
	}
	return r, nil
}

func analyze(w io.Writer, cfg config) error {
	r, err := measureImpulse(cfg)
	if err != nil {
		return err
	}

	ratio := "n/a"
	if r.hasDecay {
		ratio = fmt.Sprintf("%.4f (%.1f dB)", r.energyRatio, core.LinearToDB(r.energyRatio)/2)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Resolved delay\t%.2f ms\t%d samples\n", r.expectedMs, r.expectedSamples)
	fmt.Fprintf(tw, "Measured delay\t%.2f ms\t%d samples\n", float64(r.measuredSamples)/cfg.sampleRate*1000, r.measuredSamples)
	fmt.Fprintf(tw, "Energy ratio per repeat\t%s\texpected %.4f\n", ratio, r.feedback*r.feedback)
	measured := "n/a"
	if r.hasT60 {
		measured = fmt.Sprintf("%.2f s", r.t60)
	}
	fmt.Fprintf(tw, "Tail to -60 dB\t%.2f s\t%d samples\n", float64(r.tailSamples)/cfg.sampleRate, r.tailSamples)
	fmt.Fprintf(tw, "Measured T60\t%s\t\n", measured)
	return tw.Flush()
}
