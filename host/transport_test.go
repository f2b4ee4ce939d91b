package host

import (
	"math"
	"testing"
)

func TestTransports(t *testing.T) {
	if _, ok := (NoTransport{}).Tempo(); ok {
		t.Fatal("NoTransport reported a tempo")
	}
	if bpm, ok := FixedTransport(128).Tempo(); !ok || bpm != 128 {
		t.Fatalf("FixedTransport = %v, %v", bpm, ok)
	}
	if _, ok := FixedTransport(0).Tempo(); ok {
		t.Fatal("zero fixed tempo reported valid")
	}

	var m ManualTransport
	if _, ok := m.Tempo(); ok {
		t.Fatal("zero ManualTransport reported a tempo")
	}
	m.SetTempo(95)
	if bpm, ok := m.Tempo(); !ok || bpm != 95 {
		t.Fatalf("ManualTransport = %v, %v", bpm, ok)
	}
	m.SetTempo(math.Inf(1))
	if _, ok := m.Tempo(); ok {
		t.Fatal("infinite tempo reported valid")
	}
	m.SetTempo(140)
	m.Stop()
	if _, ok := m.Tempo(); ok {
		t.Fatal("stopped transport reported a tempo")
	}
}
