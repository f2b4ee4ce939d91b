// Package core holds small numeric and block helpers shared by the DSP
// packages, plus the functional options used to describe a processing
// configuration.
package core
