// Package host connects a pingpong.Engine to the outside world the way a
// plugin wrapper would: a parameter store with ranges, display strings and
// change listeners, a transport that reports tempo, and an Adapter that
// drives the engine one block at a time.
//
// The Store belongs to the control side and may lock. Adapter.Process is
// the audio side and never does.
package host
