// Package echo measures the repeats produced by a feedback delay.
//
// The analysis works offline on float64 signals:
//
//   - EstimateDelay finds the lag between a reference and a delayed signal
//     from the peak of their FFT cross-correlation.
//   - CycleEnergies sums the energy around every repeat of a known delay.
//   - DecayRatio reduces those energies to the per-cycle energy ratio; a
//     delay with feedback f decays by f in amplitude and f² in energy.
//   - T60 fits the Schroeder energy decay and extrapolates it to -60 dB.
//
// # Usage
//
//	lag, err := echo.EstimateDelay(dry, wet, 1, maxLag)
//	energies, err := echo.CycleEnergies(wet, lag, 8)
//	ratio, err := echo.DecayRatio(energies) // ≈ feedback²
package echo
