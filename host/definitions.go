package host

import (
	"math"

	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// Definition describes one automatable parameter in plain units.
type Definition struct {
	ID        pingpong.ParamID
	Name      string
	ShortName string
	Unit      string
	Min       float64
	Max       float64
	Default   float64
	// Steps is the number of discrete steps above Min, 0 for continuous
	// parameters.
	Steps int

	Format func(plain float64) string
	Parse  func(text string) (float64, error)
}

var definitions = []Definition{
	{
		ID:        pingpong.ParamDelayTime,
		Name:      "Delay Time",
		ShortName: "Time",
		Unit:      "ms",
		Min:       pingpong.MinDelayTimeMs,
		Max:       pingpong.MaxDelayTimeMs,
		Default:   pingpong.DefaultDelayTimeMs,
		Format:    TimeFormatter,
		Parse:     TimeParser,
	},
	{
		ID:        pingpong.ParamFeedback,
		Name:      "Feedback",
		ShortName: "Fdbk",
		Unit:      "%",
		Min:       pingpong.MinFeedback,
		Max:       pingpong.MaxFeedback,
		Default:   pingpong.DefaultFeedback,
		Format:    PercentFormatter,
		Parse:     PercentParser,
	},
	{
		ID:        pingpong.ParamDryWet,
		Name:      "Dry/Wet",
		ShortName: "Mix",
		Unit:      "%",
		Min:       pingpong.MinDryWet,
		Max:       pingpong.MaxDryWet,
		Default:   pingpong.DefaultDryWet,
		Format:    PercentFormatter,
		Parse:     PercentParser,
	},
	{
		ID:        pingpong.ParamPingPong,
		Name:      "Ping-Pong",
		ShortName: "PP",
		Max:       1,
		Steps:     1,
		Format:    OnOffFormatter,
		Parse:     OnOffParser,
	},
	{
		ID:        pingpong.ParamSyncToTempo,
		Name:      "Tempo Sync",
		ShortName: "Sync",
		Max:       1,
		Steps:     1,
		Format:    OnOffFormatter,
		Parse:     OnOffParser,
	},
	{
		ID:        pingpong.ParamDivision,
		Name:      "Note Division",
		ShortName: "Div",
		Max:       float64(tempo.NumDivisions() - 1),
		Default:   float64(tempo.DefaultDivision),
		Steps:     tempo.NumDivisions() - 1,
		Format:    DivisionFormatter,
		Parse:     DivisionParser,
	},
}

// Definitions returns the parameter table in ParamID order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition of id.
func Lookup(id pingpong.ParamID) (Definition, bool) {
	if id < 0 || int(id) >= len(definitions) {
		return Definition{}, false
	}
	return definitions[id], true
}

// Clamp limits plain to the parameter range and snaps stepped parameters to
// the nearest step.
func (d Definition) Clamp(plain float64) float64 {
	if plain < d.Min {
		plain = d.Min
	} else if plain > d.Max {
		plain = d.Max
	}
	if d.Steps > 0 {
		step := (d.Max - d.Min) / float64(d.Steps)
		plain = d.Min + math.Round((plain-d.Min)/step)*step
	}
	return plain
}

// Normalize converts a plain value to [0, 1].
func (d Definition) Normalize(plain float64) float64 {
	if d.Max <= d.Min {
		return 0
	}
	return (d.Clamp(plain) - d.Min) / (d.Max - d.Min)
}

// Denormalize converts a [0, 1] value to plain units.
func (d Definition) Denormalize(normalized float64) float64 {
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	return d.Clamp(d.Min + normalized*(d.Max-d.Min))
}
