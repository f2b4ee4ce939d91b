// Package signal generates deterministic test material (impulses, click
// tracks, noise, sines) and converts between planar and interleaved
// sample layouts.
package signal
