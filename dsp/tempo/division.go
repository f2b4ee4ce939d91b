package tempo

import (
	"fmt"
	"strings"
)

// Division is a musical note value that a synced delay repeats on.
type Division int

// Note divisions, in parameter-index order.
const (
	Quarter Division = iota
	Eighth
	EighthTriplet
	Sixteenth
	SixteenthTriplet

	numDivisions
)

// DefaultDivision is the division selected on a fresh instance.
const DefaultDivision = Eighth

var divisionInfo = [numDivisions]struct {
	name       string
	label      string
	multiplier float64
}{
	Quarter:          {name: "quarter", label: "1/4", multiplier: 1},
	Eighth:           {name: "eighth", label: "1/8", multiplier: 1.0 / 2},
	EighthTriplet:    {name: "eighth-triplet", label: "1/8T", multiplier: 1.0 / 3},
	Sixteenth:        {name: "sixteenth", label: "1/16", multiplier: 1.0 / 4},
	SixteenthTriplet: {name: "sixteenth-triplet", label: "1/16T", multiplier: 1.0 / 6},
}

// Divisions returns all divisions in index order.
func Divisions() []Division {
	out := make([]Division, numDivisions)
	for i := range out {
		out[i] = Division(i)
	}
	return out
}

// NumDivisions returns the number of selectable divisions.
func NumDivisions() int { return int(numDivisions) }

// Valid reports whether d is one of the defined divisions.
func (d Division) Valid() bool {
	return d >= 0 && d < numDivisions
}

// Multiplier returns the fraction of a quarter-note beat covered by d.
// Invalid divisions report the default division's multiplier.
func (d Division) Multiplier() float64 {
	if !d.Valid() {
		d = DefaultDivision
	}
	return divisionInfo[d].multiplier
}

// String returns the canonical lower-case name, e.g. "eighth-triplet".
func (d Division) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Division(%d)", int(d))
	}
	return divisionInfo[d].name
}

// Label returns the short note-value label, e.g. "1/8T".
func (d Division) Label() string {
	if !d.Valid() {
		return "?"
	}
	return divisionInfo[d].label
}

// DivisionFromIndex maps a parameter index to a division. Out-of-range
// indices are clamped to the nearest end of the list.
func DivisionFromIndex(i int) Division {
	if i < 0 {
		return Quarter
	}
	if i >= int(numDivisions) {
		return numDivisions - 1
	}
	return Division(i)
}

// ParseDivision accepts a canonical name ("sixteenth"), a label ("1/16")
// or a few common spellings ("8t", "16th").
func ParseDivision(s string) (Division, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, info := range divisionInfo {
		if key == info.name || key == strings.ToLower(info.label) {
			return Division(i), nil
		}
	}

	switch key {
	case "4", "4th", "q":
		return Quarter, nil
	case "8", "8th":
		return Eighth, nil
	case "8t", "8th-triplet":
		return EighthTriplet, nil
	case "16", "16th":
		return Sixteenth, nil
	case "16t", "16th-triplet":
		return SixteenthTriplet, nil
	}
	return 0, fmt.Errorf("tempo: unknown note division: %q", s)
}
