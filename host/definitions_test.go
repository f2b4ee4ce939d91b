package host

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
)

func TestDefinitionsOrder(t *testing.T) {
	defs := Definitions()
	if len(defs) != pingpong.NumParams() {
		t.Fatalf("len = %d, want %d", len(defs), pingpong.NumParams())
	}
	for i, def := range defs {
		if def.ID != pingpong.ParamID(i) {
			t.Fatalf("defs[%d].ID = %v", i, def.ID)
		}
		if def.Format == nil || def.Parse == nil {
			t.Fatalf("%s has no formatter", def.Name)
		}
		if def.Default < def.Min || def.Default > def.Max {
			t.Fatalf("%s default %v outside [%v, %v]", def.Name, def.Default, def.Min, def.Max)
		}
	}

	defs[0].Name = "changed"
	if d, _ := Lookup(pingpong.ParamDelayTime); d.Name == "changed" {
		t.Fatal("Definitions() returned the shared table")
	}
	if _, ok := Lookup(pingpong.ParamID(17)); ok {
		t.Fatal("Lookup accepted an unknown id")
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	tests := []struct {
		id    pingpong.ParamID
		plain float64
		norm  float64
	}{
		{id: pingpong.ParamDelayTime, plain: 10, norm: 0},
		{id: pingpong.ParamDelayTime, plain: 3000, norm: 1},
		{id: pingpong.ParamFeedback, plain: 0.495, norm: 0.5},
		{id: pingpong.ParamDivision, plain: 2, norm: 0.5},
		{id: pingpong.ParamPingPong, plain: 1, norm: 1},
	}

	for _, tt := range tests {
		def, _ := Lookup(tt.id)
		if got := def.Normalize(tt.plain); math.Abs(got-tt.norm) > 1e-12 {
			t.Fatalf("%s Normalize(%v) = %v want %v", def.Name, tt.plain, got, tt.norm)
		}
		if got := def.Denormalize(tt.norm); math.Abs(got-tt.plain) > 1e-9 {
			t.Fatalf("%s Denormalize(%v) = %v want %v", def.Name, tt.norm, got, tt.plain)
		}
	}
}

func TestClampSnapsSteps(t *testing.T) {
	div, _ := Lookup(pingpong.ParamDivision)
	if got := div.Clamp(2.6); got != 3 {
		t.Fatalf("Clamp(2.6) = %v want 3", got)
	}
	if got := div.Denormalize(0.3); got != 1 {
		t.Fatalf("Denormalize(0.3) = %v want 1", got)
	}

	sw, _ := Lookup(pingpong.ParamSyncToTempo)
	if got := sw.Clamp(0.4); got != 0 {
		t.Fatalf("switch Clamp(0.4) = %v want 0", got)
	}

	fb, _ := Lookup(pingpong.ParamFeedback)
	if got := fb.Clamp(5); got != pingpong.MaxFeedback {
		t.Fatalf("feedback Clamp(5) = %v", got)
	}
}
