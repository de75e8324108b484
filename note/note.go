package note

import (
	"fmt"
	"regexp"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/util"
)

// Note is a letter with an accidental. Notes compare structurally, so C♯
// and D♭ are different notes. All methods return new values.
type Note struct {
	letter Letter
	symbol Symbol
}

// Pattern matches a note: a letter in either case plus one optional
// accidental.
const Pattern = `[a-gA-G](?:` + SymbolPattern + `)?`

var noteRegex = regexp.MustCompile(`^(?P<letter>[a-gA-G])(?P<symbol>` + SymbolPattern + `)?$`)

var sharpSpellings = [12]Note{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

var flatSpellings = [12]Note{
	{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat}, {E, Natural}, {F, Natural},
	{G, Flat}, {G, Natural}, {A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
}

func New(letter Letter, symbol Symbol) (Note, error) {
	if letter < C || letter > B {
		return Note{}, fmt.Errorf("%w: letter %d", model.ErrMalformedNotation, int(letter))
	}
	if !symbol.Valid() {
		return Note{}, fmt.Errorf("%w: %d semitones", model.ErrUnrepresentableAccidental, int(symbol))
	}
	return Note{letter: letter, symbol: symbol}, nil
}

// Parse reads a note such as "C", "eb", "F##" or "B♭".
func Parse(notation string) (Note, error) {
	m := noteRegex.FindStringSubmatch(notation)
	if m == nil {
		return Note{}, fmt.Errorf("%w: '%s' could not be parsed as a note", model.ErrMalformedNotation, notation)
	}
	letter, err := ParseLetter(m[noteRegex.SubexpIndex("letter")])
	if err != nil {
		return Note{}, err
	}
	symbol, err := ParseSymbol(m[noteRegex.SubexpIndex("symbol")])
	if err != nil {
		return Note{}, err
	}
	return Note{letter: letter, symbol: symbol}, nil
}

// MustParse is like Parse but panics on malformed notation. It is meant for
// literals.
func MustParse(notation string) Note {
	n, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Note) Letter() Letter {
	return n.letter
}

func (n Note) Symbol() Symbol {
	return n.symbol
}

// Steps is the pitch class of the note, C = 0.
func (n Note) Steps() int {
	return util.Mod(n.letter.Steps()+n.symbol.Steps(), 12)
}

// ShiftSymbol changes only the accidental.
func (n Note) ShiftSymbol(steps int) (Note, error) {
	s, err := n.symbol.Shift(steps)
	if err != nil {
		return Note{}, fmt.Errorf("shifting %s by %d: %w", n, steps, err)
	}
	return Note{letter: n.letter, symbol: s}, nil
}

// Transpose moves the note by an interval given both in semitones and in
// letters, so that the result keeps a diatonic spelling: C transposed by
// (3, 2) is E♭, never D♯.
func (n Note) Transpose(semitones, letters int) (Note, error) {
	target := n.Steps() + semitones
	letter := n.letter.Shift(letters)
	diff := util.Fold(target-letter.Steps(), 12)
	s, err := SymbolFromSteps(diff)
	if err != nil {
		return Note{}, fmt.Errorf("transposing %s by (%d, %d): %w", n, semitones, letters, err)
	}
	return Note{letter: letter, symbol: s}, nil
}

// TransposeSimple moves the note by semitones and respells it from a fixed
// table of sharps, or flats when useFlats is set.
func (n Note) TransposeSimple(semitones int, useFlats bool) Note {
	idx := util.Mod(n.Steps()+semitones, 12)
	if useFlats {
		return flatSpellings[idx]
	}
	return sharpSpellings[idx]
}

func (n Note) String() string {
	return n.letter.String() + n.symbol.String()
}
