package key

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/util"
)

// Mode is one of the seven diatonic modes. Major and Ionian, Minor and
// Aeolian share a step pattern but keep their own names.
type Mode int

const (
	Major Mode = iota
	Minor
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

// StepPattern is two octaves of semitone steps.
type StepPattern [14]int

var heptatonic = StepPattern{2, 2, 1, 2, 2, 2, 1, 2, 2, 1, 2, 2, 2, 1}

// rotation of the major scale each mode starts on
var modeRotation = map[Mode]int{
	Major:      0,
	Ionian:     0,
	Dorian:     1,
	Phrygian:   2,
	Lydian:     3,
	Mixolydian: 4,
	Minor:      5,
	Aeolian:    5,
	Locrian:    6,
}

var modeNames = map[Mode]string{
	Major:      "major",
	Minor:      "minor",
	Ionian:     "ionian",
	Dorian:     "dorian",
	Phrygian:   "phrygian",
	Lydian:     "lydian",
	Mixolydian: "mixolydian",
	Aeolian:    "aeolian",
	Locrian:    "locrian",
}

// Modes lists every mode by name.
var Modes = map[string]Mode{
	"major":      Major,
	"minor":      Minor,
	"ionian":     Ionian,
	"dorian":     Dorian,
	"phrygian":   Phrygian,
	"lydian":     Lydian,
	"mixolydian": Mixolydian,
	"aeolian":    Aeolian,
	"locrian":    Locrian,
}

func (m Mode) StepPattern() StepPattern {
	var p StepPattern
	shift := modeRotation[m]
	for i := range p {
		p[i] = heptatonic[(i+shift)%7]
	}
	return p
}

// IsMajor reports major or ionian.
func (m Mode) IsMajor() bool {
	return m == Major || m == Ionian
}

// IsMinor reports minor or aeolian, the only modes with submodes.
func (m Mode) IsMinor() bool {
	return m == Minor || m == Aeolian
}

// canonical folds the mode aliases together for comparison.
func (m Mode) canonical() Mode {
	switch m {
	case Ionian:
		return Major
	case Aeolian:
		return Minor
	}
	return m
}

func (m Mode) String() string {
	return modeNames[m]
}

func ParseMode(notation string) (Mode, error) {
	m, ok := Modes[strings.ToLower(notation)]
	if !ok {
		return Major, fmt.Errorf("%w: '%s' is not a mode (expected one of %s)", model.ErrMalformedNotation, notation, strings.Join(util.GetKeys(Modes), ", "))
	}
	return m, nil
}

// Submode distinguishes the natural, harmonic and melodic minor. Every
// other mode has submode None.
type Submode int

const (
	None Submode = iota
	Natural
	Harmonic
	Melodic
)

var submodePatterns = map[Submode]StepPattern{
	None:     {},
	Natural:  {},
	Harmonic: {0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 1, -1},
	Melodic:  {0, 0, 0, 0, 1, 0, -1, 0, 0, 0, 0, 1, 0, -1},
}

var submodeNames = map[Submode]string{
	None:     "",
	Natural:  "natural",
	Harmonic: "harmonic",
	Melodic:  "melodic",
}

// StepPattern is the change the submode applies to the natural minor steps.
func (s Submode) StepPattern() StepPattern {
	return submodePatterns[s]
}

func (s Submode) String() string {
	return submodeNames[s]
}

func ParseSubmode(notation string) (Submode, error) {
	switch strings.ToLower(notation) {
	case "natural":
		return Natural, nil
	case "harmonic":
		return Harmonic, nil
	case "melodic":
		return Melodic, nil
	}
	return None, fmt.Errorf("%w: '%s' is not a submode", model.ErrMalformedNotation, notation)
}
