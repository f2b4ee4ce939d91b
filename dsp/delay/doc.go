// Package delay provides the circular sample storage behind echo effects.
//
// A Buffer holds one lane per channel, all of the same capacity. Reads and
// writes take arbitrary (including negative) indices and reduce them modulo
// the capacity, so a reader can address positions behind a shared write
// cursor without bounds bookkeeping.
package delay
