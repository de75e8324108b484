package scale

import (
	"fmt"

	"github.com/jsphweid/chordparser/key"
	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
)

// Length is the number of notes in a scale: two octaves plus the return to
// the tonic.
const Length = 15

// MaxExtendedDegree is the highest degree NoteAt looks up (the 13th).
const MaxExtendedDegree = 13

// majorSteps are the natural major steps from each degree to the next.
var majorSteps = key.Major.StepPattern()

// Scale is the view of a Key as notes and scale degrees. Everything is
// derived when the Scale is created.
type Scale struct {
	key     key.Key
	notes   []note.Note
	degrees []Degree
	major   []note.Note
}

func New(k key.Key) (Scale, error) {
	notes, err := walk(k.Tonic(), k.StepPattern())
	if err != nil {
		return Scale{}, fmt.Errorf("building %s scale: %w", k, err)
	}
	degrees, err := degreesOf(k.StepPattern())
	if err != nil {
		return Scale{}, fmt.Errorf("building %s scale degrees: %w", k, err)
	}
	major := notes
	if !k.Mode().IsMajor() {
		major, err = walk(k.Tonic(), majorSteps)
		if err != nil {
			return Scale{}, fmt.Errorf("building major scale of %s: %w", k.Tonic(), err)
		}
	}
	return Scale{key: k, notes: notes, degrees: degrees, major: major}, nil
}

// MajorOf is the major scale with the given tonic.
func MajorOf(tonic note.Note) (Scale, error) {
	k, err := key.New(tonic, key.Major, key.None)
	if err != nil {
		return Scale{}, err
	}
	return New(k)
}

// walk spells the scale by moving one letter up per step.
func walk(tonic note.Note, steps key.StepPattern) ([]note.Note, error) {
	notes := make([]note.Note, 0, Length)
	notes = append(notes, tonic)
	for _, step := range steps {
		next, err := notes[len(notes)-1].Transpose(step, 1)
		if err != nil {
			return nil, err
		}
		notes = append(notes, next)
	}
	return notes, nil
}

func degreesOf(steps key.StepPattern) ([]Degree, error) {
	degrees := make([]Degree, 0, Length)
	degrees = append(degrees, Degree{degree: 1})
	for _, step := range steps {
		prev := degrees[len(degrees)-1]
		reference := majorSteps[prev.degree-1]
		symbol, err := note.SymbolFromSteps(step - reference + prev.symbol.Steps())
		if err != nil {
			return nil, err
		}
		degrees = append(degrees, Degree{degree: prev.degree%7 + 1, symbol: symbol})
	}
	return degrees, nil
}

func (s Scale) Key() key.Key {
	return s.key
}

// Notes returns a copy of the scale's notes.
func (s Scale) Notes() []note.Note {
	return append([]note.Note(nil), s.notes...)
}

// Degrees returns the scale degree of each note in Notes.
func (s Scale) Degrees() []Degree {
	return append([]Degree(nil), s.degrees...)
}

// NoteFromDegree reads the degree off the major scale of the same tonic and
// applies the degree's accidental.
func (s Scale) NoteFromDegree(d Degree) (note.Note, error) {
	if d.degree < 1 || d.degree > 7 {
		return note.Note{}, fmt.Errorf("%w: %d is not between 1 and 7", model.ErrInvalidDegree, d.degree)
	}
	return s.major[d.degree-1].ShiftSymbol(d.symbol.Steps())
}

// NoteAt is the natural major note at degree 1 to 13, for chord
// extensions and added notes.
func (s Scale) NoteAt(degree int) (note.Note, error) {
	if degree < 1 || degree > MaxExtendedDegree {
		return note.Note{}, fmt.Errorf("%w: %d is not between 1 and %d", model.ErrInvalidDegree, degree, MaxExtendedDegree)
	}
	return s.major[degree-1], nil
}

// DegreeFromNote finds the degree whose letter matches the note and
// measures the note's displacement from the major scale.
func (s Scale) DegreeFromNote(n note.Note) (Degree, error) {
	for i, m := range s.major[:7] {
		if m.Letter() != n.Letter() {
			continue
		}
		shift := note.SemitoneDisplacements(m, n)[0]
		symbol, err := note.SymbolFromSteps(shift)
		if err != nil {
			return Degree{}, fmt.Errorf("scale degree of %s in %s: %w", n, s.key, err)
		}
		return Degree{degree: i + 1, symbol: symbol}, nil
	}
	// every letter appears in the first seven notes
	panic("unreachable: letter missing from diatonic scale")
}

func (s Scale) Transpose(semitones, letters int) (Scale, error) {
	k, err := s.key.Transpose(semitones, letters)
	if err != nil {
		return Scale{}, err
	}
	return New(k)
}

func (s Scale) TransposeSimple(semitones int, useFlats bool) (Scale, error) {
	return New(s.key.TransposeSimple(semitones, useFlats))
}

// Equal compares the underlying keys.
func (s Scale) Equal(other Scale) bool {
	return s.key.Equal(other.key)
}

func (s Scale) String() string {
	return fmt.Sprintf("%s scale", s.key)
}
