package level

import (
	"math"
	"testing"
)

func TestCalculateSquare(t *testing.T) {
	s := Calculate([]float32{0.5, -0.5, 0.5, -0.5})
	if s.Length != 4 || s.DC != 0 {
		t.Fatalf("length/dc = %d/%v", s.Length, s.DC)
	}
	if s.RMS != 0.5 || s.Peak != 0.5 || s.PeakPos != 0 {
		t.Fatalf("rms/peak = %v/%v at %d", s.RMS, s.Peak, s.PeakPos)
	}
	if math.Abs(s.PeakDB-(-6.0206)) > 1e-3 {
		t.Fatalf("PeakDB = %v", s.PeakDB)
	}
	if s.CrestDB != 0 {
		t.Fatalf("square crest = %v dB want 0", s.CrestDB)
	}
}

func TestCalculateClipping(t *testing.T) {
	s := Calculate([]float32{0.1, 1, -1.5, 0.99})
	if s.Clipped != 2 {
		t.Fatalf("Clipped = %d want 2", s.Clipped)
	}
	if s.Peak != 1.5 || s.PeakPos != 2 {
		t.Fatalf("peak %v at %d", s.Peak, s.PeakPos)
	}
}

func TestEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || !math.IsInf(s.PeakDB, -1) || !math.IsInf(s.RMSDB, -1) {
		t.Fatalf("empty stats = %+v", s)
	}

	silent := Calculate(make([]float32, 8))
	if silent.CrestDB != 0 || !math.IsInf(silent.PeakDB, -1) {
		t.Fatalf("silent stats = %+v", silent)
	}
}

func TestMeterMatchesCalculate(t *testing.T) {
	x := []float32{0.3, -0.7, 0.2, 0.9, -0.1, 0.4, -0.8}
	want := Calculate(x)

	var m Meter
	m.Update(x[:3])
	m.Update(x[3:5])
	m.Update(x[5:])
	if got := m.Result(); got != want {
		t.Fatalf("Meter = %+v want %+v", got, want)
	}

	m.Reset()
	if m.Result().Length != 0 {
		t.Fatal("Reset kept data")
	}
}
