// Package tempo converts host tempo and musical note divisions into delay
// times.
//
// A quarter-note beat lasts 60000/BPM milliseconds; each Division scales
// that beat:
//
//	quarter            1
//	eighth             1/2
//	eighth-triplet     1/3
//	sixteenth          1/4
//	sixteenth-triplet  1/6
//
// Hosts that do not report a tempo keep the last valid one (DefaultBPM
// until the first report).
package tempo
