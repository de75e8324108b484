package note

import (
	"fmt"

	"github.com/jsphweid/chordparser/model"
)

// Symbol is an accidental, stored as its semitone offset from natural.
type Symbol int

const (
	DoubleFlat  Symbol = -2
	Flat        Symbol = -1
	Natural     Symbol = 0
	Sharp       Symbol = 1
	DoubleSharp Symbol = 2
)

const (
	FlatGlyph        = "♭"
	SharpGlyph       = "♯"
	DoubleFlatGlyph  = "\U0001D12B"
	DoubleSharpGlyph = "\U0001D12A"
)

var symbolGlyphs = map[Symbol]string{
	DoubleFlat:  DoubleFlatGlyph,
	Flat:        FlatGlyph,
	Natural:     "",
	Sharp:       SharpGlyph,
	DoubleSharp: DoubleSharpGlyph,
}

var symbolNotations = map[string]Symbol{
	"":               Natural,
	"b":              Flat,
	"bb":             DoubleFlat,
	"#":              Sharp,
	"##":             DoubleSharp,
	FlatGlyph:        Flat,
	DoubleFlatGlyph:  DoubleFlat,
	SharpGlyph:       Sharp,
	DoubleSharpGlyph: DoubleSharp,
}

// SymbolPattern matches a single accidental token. Longer ASCII forms come
// first so that "bb" is not read as two flats.
const SymbolPattern = `\x{266D}|\x{266F}|\x{1D12B}|\x{1D12A}|bb|##|b|#`

func (s Symbol) Valid() bool {
	return s >= DoubleFlat && s <= DoubleSharp
}

// Steps is the semitone offset of the accidental.
func (s Symbol) Steps() int {
	return int(s)
}

// Shift raises (positive) or lowers (negative) the accidental.
func (s Symbol) Shift(steps int) (Symbol, error) {
	return SymbolFromSteps(int(s) + steps)
}

// IsFlat reports whether the accidental lowers the pitch.
func (s Symbol) IsFlat() bool {
	return s < Natural
}

func (s Symbol) String() string {
	return symbolGlyphs[s]
}

// SymbolFromSteps returns the accidental for a semitone offset.
func SymbolFromSteps(steps int) (Symbol, error) {
	s := Symbol(steps)
	if !s.Valid() {
		return Natural, fmt.Errorf("%w: %d semitones", model.ErrUnrepresentableAccidental, steps)
	}
	return s, nil
}

// ParseSymbol accepts b, bb, #, ## or their unicode glyphs. The empty
// string is natural.
func ParseSymbol(notation string) (Symbol, error) {
	s, ok := symbolNotations[notation]
	if !ok {
		return Natural, fmt.Errorf("%w: '%s' is not an accidental", model.ErrMalformedNotation, notation)
	}
	return s, nil
}
