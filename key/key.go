package key

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
)

// Key is a tonic with a mode. The submode is None unless the mode is minor
// or aeolian, in which case it is one of Natural, Harmonic or Melodic.
type Key struct {
	tonic   note.Note
	mode    Mode
	submode Submode
}

var keyRegex = regexp.MustCompile(`^(?P<tonic>` + note.Pattern + `)\s*(?P<mode>.*)$`)

// New validates the mode and submode combination. A minor key given None
// defaults to the natural minor.
func New(tonic note.Note, mode Mode, submode Submode) (Key, error) {
	if _, ok := modeNames[mode]; !ok {
		return Key{}, fmt.Errorf("%w: unknown mode %d", model.ErrMalformedNotation, int(mode))
	}
	if _, ok := submodeNames[submode]; !ok {
		return Key{}, fmt.Errorf("%w: unknown submode %d", model.ErrMalformedNotation, int(submode))
	}
	if !mode.IsMinor() {
		if submode != None {
			return Key{}, fmt.Errorf("%w: '%s' does not have any submodes", model.ErrModeMismatch, mode)
		}
		return Key{tonic: tonic, mode: mode}, nil
	}
	if submode == None {
		submode = Natural
	}
	return Key{tonic: tonic, mode: mode, submode: submode}, nil
}

// Parse reads keys such as "C", "Cm", "D dorian", "e minor" or
// "F# harmonic minor".
func Parse(notation string) (Key, error) {
	m := keyRegex.FindStringSubmatch(notation)
	if m == nil {
		return Key{}, fmt.Errorf("%w: '%s' could not be parsed as a key", model.ErrMalformedNotation, notation)
	}
	tonic, err := note.Parse(m[keyRegex.SubexpIndex("tonic")])
	if err != nil {
		return Key{}, err
	}
	mode, submode, err := parseModeClause(m[keyRegex.SubexpIndex("mode")])
	if err != nil {
		return Key{}, fmt.Errorf("parsing key '%s': %w", notation, err)
	}
	return New(tonic, mode, submode)
}

func parseModeClause(clause string) (Mode, Submode, error) {
	switch strings.TrimSpace(clause) {
	case "":
		return Major, None, nil
	case "m":
		return Minor, None, nil
	}
	fields := strings.Fields(clause)
	switch len(fields) {
	case 1:
		mode, err := ParseMode(fields[0])
		return mode, None, err
	case 2:
		submode, err := ParseSubmode(fields[0])
		if err != nil {
			return Major, None, err
		}
		mode, err := ParseMode(fields[1])
		if err != nil {
			return Major, None, err
		}
		if !mode.IsMinor() {
			return Major, None, fmt.Errorf("%w: only minor keys have a submode", model.ErrModeMismatch)
		}
		return mode, submode, nil
	}
	return Major, None, fmt.Errorf("%w: '%s' is not a mode", model.ErrMalformedNotation, clause)
}

// MustParse is like Parse but panics on error.
func MustParse(notation string) Key {
	k, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) Tonic() note.Note {
	return k.tonic
}

func (k Key) Mode() Mode {
	return k.mode
}

func (k Key) Submode() Submode {
	return k.submode
}

// StepPattern is the mode's steps with the submode changes applied.
func (k Key) StepPattern() StepPattern {
	p := k.mode.StepPattern()
	delta := k.submode.StepPattern()
	for i := range p {
		p[i] += delta[i]
	}
	return p
}

func (k Key) WithTonic(tonic note.Note) Key {
	k.tonic = tonic
	return k
}

func (k Key) WithMode(mode Mode, submode Submode) (Key, error) {
	return New(k.tonic, mode, submode)
}

func (k Key) Transpose(semitones, letters int) (Key, error) {
	tonic, err := k.tonic.Transpose(semitones, letters)
	if err != nil {
		return Key{}, err
	}
	return k.WithTonic(tonic), nil
}

func (k Key) TransposeSimple(semitones int, useFlats bool) Key {
	return k.WithTonic(k.tonic.TransposeSimple(semitones, useFlats))
}

// RelativeMajor returns the major key sharing this minor key's notes.
func (k Key) RelativeMajor() (Key, error) {
	if !k.mode.IsMinor() {
		return Key{}, fmt.Errorf("%w: '%s' is not minor", model.ErrModeMismatch, k)
	}
	tonic, err := k.tonic.Transpose(3, 2)
	if err != nil {
		return Key{}, err
	}
	return New(tonic, Major, None)
}

// RelativeMinor returns the minor key sharing this major key's notes, with
// the given submode. None means natural.
func (k Key) RelativeMinor(submode Submode) (Key, error) {
	if !k.mode.IsMajor() {
		return Key{}, fmt.Errorf("%w: '%s' is not major", model.ErrModeMismatch, k)
	}
	tonic, err := k.tonic.Transpose(-3, -2)
	if err != nil {
		return Key{}, err
	}
	return New(tonic, Minor, submode)
}

// Equal treats major as ionian and minor as aeolian.
func (k Key) Equal(other Key) bool {
	return k.tonic == other.tonic &&
		k.mode.canonical() == other.mode.canonical() &&
		k.submode == other.submode
}

func (k Key) String() string {
	if k.submode == None {
		return fmt.Sprintf("%s %s", k.tonic, k.mode)
	}
	return fmt.Sprintf("%s %s %s", k.tonic, k.submode, k.mode)
}
