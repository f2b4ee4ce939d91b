package pingpong

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// Parameter ranges in plain units.
const (
	MinDelayTimeMs = 10.0
	MaxDelayTimeMs = 3000.0
	MinFeedback    = 0.0
	MaxFeedback    = 0.99
	MinDryWet      = 0.0
	MaxDryWet      = 1.0

	DefaultDelayTimeMs = 500.0
	DefaultFeedback    = 0.5
	DefaultDryWet      = 0.5
)

// ParamID identifies one control parameter.
type ParamID int

// Control parameters.
const (
	ParamDelayTime ParamID = iota
	ParamFeedback
	ParamDryWet
	ParamPingPong
	ParamSyncToTempo
	ParamDivision

	numParams
)

var paramNames = [numParams]string{
	ParamDelayTime:   "delayTime",
	ParamFeedback:    "feedback",
	ParamDryWet:      "dryWet",
	ParamPingPong:    "pingPong",
	ParamSyncToTempo: "syncToTempo",
	ParamDivision:    "noteDivision",
}

// NumParams returns the number of control parameters.
func NumParams() int { return int(numParams) }

// String returns the parameter's identifier string.
func (id ParamID) String() string {
	if id < 0 || id >= numParams {
		return fmt.Sprintf("ParamID(%d)", int(id))
	}
	return paramNames[id]
}

// ParseParamID looks a parameter up by its identifier string.
func ParseParamID(name string) (ParamID, error) {
	for i, n := range paramNames {
		if n == name {
			return ParamID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// Errors returned by parameter setters.
var (
	ErrUnknownParam = errors.New("pingpong: unknown parameter")
	ErrInvalidValue = errors.New("pingpong: parameter value must be finite")
)

// Snapshot is a plain copy of every parameter, taken once per block.
type Snapshot struct {
	DelayTimeMs float64
	Feedback    float64
	DryWet      float64
	PingPong    bool
	SyncToTempo bool
	Division    tempo.Division
	BPM         float64
}

// DefaultSnapshot returns the parameter values of a fresh instance.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		DelayTimeMs: DefaultDelayTimeMs,
		Feedback:    DefaultFeedback,
		DryWet:      DefaultDryWet,
		Division:    tempo.DefaultDivision,
		BPM:         tempo.DefaultBPM,
	}
}

// Params is the live parameter state. Every field is an independent atomic,
// so one control goroutine may write while the processing goroutine reads
// without locks. Cross-field consistency is not guaranteed within a block;
// a change may take effect one block late.
type Params struct {
	delayTime atomic.Uint64 // float64 bits
	feedback  atomic.Uint64
	dryWet    atomic.Uint64
	bpm       atomic.Uint64
	pingPong  atomic.Bool
	sync      atomic.Bool
	division  atomic.Int32
}

// NewParams returns parameter state initialised from s (clamped to range).
func NewParams(s Snapshot) *Params {
	p := &Params{}
	p.Load(s)
	return p
}

// Load stores every field of s, clamping values to their ranges.
func (p *Params) Load(s Snapshot) {
	p.SetDelayTime(s.DelayTimeMs)
	p.SetFeedback(s.Feedback)
	p.SetDryWet(s.DryWet)
	p.pingPong.Store(s.PingPong)
	p.sync.Store(s.SyncToTempo)
	p.SetDivision(s.Division)
	if !p.SetTempo(s.BPM) && p.BPM() == 0 {
		storeFloat(&p.bpm, tempo.DefaultBPM)
	}
}

// Set assigns a plain value to the parameter id. Continuous values are
// clamped to their range, booleans are true for values >= 0.5 and the
// division is rounded to the nearest index.
func (p *Params) Set(id ParamID, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: %s = NaN", ErrInvalidValue, id)
	}

	switch id {
	case ParamDelayTime:
		p.SetDelayTime(value)
	case ParamFeedback:
		p.SetFeedback(value)
	case ParamDryWet:
		p.SetDryWet(value)
	case ParamPingPong:
		p.SetPingPong(value >= 0.5)
	case ParamSyncToTempo:
		p.SetSyncToTempo(value >= 0.5)
	case ParamDivision:
		p.SetDivision(tempo.DivisionFromIndex(int(math.Round(core.Clamp(value, -1, float64(tempo.NumDivisions()))))))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, id)
	}
	return nil
}

// Get returns the plain value of the parameter id.
func (p *Params) Get(id ParamID) (float64, error) {
	switch id {
	case ParamDelayTime:
		return p.DelayTime(), nil
	case ParamFeedback:
		return p.Feedback(), nil
	case ParamDryWet:
		return p.DryWet(), nil
	case ParamPingPong:
		return boolValue(p.PingPong()), nil
	case ParamSyncToTempo:
		return boolValue(p.SyncToTempo()), nil
	case ParamDivision:
		return float64(p.Division()), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownParam, id)
}

// SetDelayTime sets the manual delay time in milliseconds, clamped to
// [MinDelayTimeMs, MaxDelayTimeMs].
func (p *Params) SetDelayTime(ms float64) {
	if math.IsNaN(ms) {
		return
	}
	storeFloat(&p.delayTime, core.Clamp(ms, MinDelayTimeMs, MaxDelayTimeMs))
}

// SetFeedback sets the feedback gain, clamped to [0, 0.99].
func (p *Params) SetFeedback(f float64) {
	if math.IsNaN(f) {
		return
	}
	storeFloat(&p.feedback, core.Clamp(f, MinFeedback, MaxFeedback))
}

// SetDryWet sets the wet share of the output, clamped to [0, 1].
func (p *Params) SetDryWet(mix float64) {
	if math.IsNaN(mix) {
		return
	}
	storeFloat(&p.dryWet, core.Clamp(mix, MinDryWet, MaxDryWet))
}

// SetPingPong enables or disables cross-channel feedback.
func (p *Params) SetPingPong(on bool) { p.pingPong.Store(on) }

// SetSyncToTempo enables or disables tempo-synced delay time.
func (p *Params) SetSyncToTempo(on bool) { p.sync.Store(on) }

// SetDivision selects the note division used while synced. Invalid values
// select the default division.
func (p *Params) SetDivision(d tempo.Division) {
	if !d.Valid() {
		d = tempo.DefaultDivision
	}
	p.division.Store(int32(d))
}

// SetTempo records bpm if it is valid and reports whether it was stored.
// An invalid tempo leaves the last known one in place.
func (p *Params) SetTempo(bpm float64) bool {
	if !tempo.ValidBPM(bpm) {
		return false
	}
	storeFloat(&p.bpm, bpm)
	return true
}

// DelayTime returns the manual delay time in milliseconds.
func (p *Params) DelayTime() float64 { return loadFloat(&p.delayTime) }

// Feedback returns the feedback gain.
func (p *Params) Feedback() float64 { return loadFloat(&p.feedback) }

// DryWet returns the wet share of the output.
func (p *Params) DryWet() float64 { return loadFloat(&p.dryWet) }

// PingPong reports whether cross-channel feedback is enabled.
func (p *Params) PingPong() bool { return p.pingPong.Load() }

// SyncToTempo reports whether the delay time follows the host tempo.
func (p *Params) SyncToTempo() bool { return p.sync.Load() }

// Division returns the selected note division.
func (p *Params) Division() tempo.Division { return tempo.Division(p.division.Load()) }

// BPM returns the last valid tempo.
func (p *Params) BPM() float64 { return loadFloat(&p.bpm) }

// Snapshot reads every field once. It does not allocate.
func (p *Params) Snapshot() Snapshot {
	return Snapshot{
		DelayTimeMs: p.DelayTime(),
		Feedback:    p.Feedback(),
		DryWet:      p.DryWet(),
		PingPong:    p.PingPong(),
		SyncToTempo: p.SyncToTempo(),
		Division:    p.Division(),
		BPM:         p.BPM(),
	}
}

func storeFloat(v *atomic.Uint64, f float64) {
	v.Store(math.Float64bits(f))
}

func loadFloat(v *atomic.Uint64) float64 {
	return math.Float64frombits(v.Load())
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
