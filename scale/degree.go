package scale

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
)

// Degree is a position in a diatonic scale, 1 to 7, with an accidental
// relative to the major scale of the same tonic: ♭3 is a minor third in any
// mode.
type Degree struct {
	degree int
	symbol note.Symbol
}

var degreeRegex = regexp.MustCompile(`^(?P<symbol>` + note.SymbolPattern + `)?(?P<degree>[1-7])$`)

func NewDegree(degree int, symbol note.Symbol) (Degree, error) {
	if degree < 1 || degree > 7 {
		return Degree{}, fmt.Errorf("%w: %d is not between 1 and 7", model.ErrInvalidDegree, degree)
	}
	if !symbol.Valid() {
		return Degree{}, fmt.Errorf("%w: %d semitones", model.ErrUnrepresentableAccidental, int(symbol))
	}
	return Degree{degree: degree, symbol: symbol}, nil
}

// ParseDegree reads notation such as "5", "b3" or "#4".
func ParseDegree(notation string) (Degree, error) {
	m := degreeRegex.FindStringSubmatch(notation)
	if m == nil {
		return Degree{}, fmt.Errorf("%w: '%s' could not be parsed as a scale degree", model.ErrMalformedNotation, notation)
	}
	symbol, err := note.ParseSymbol(m[degreeRegex.SubexpIndex("symbol")])
	if err != nil {
		return Degree{}, err
	}
	degree, _ := strconv.Atoi(m[degreeRegex.SubexpIndex("degree")])
	return Degree{degree: degree, symbol: symbol}, nil
}

func MustParseDegree(notation string) Degree {
	d, err := ParseDegree(notation)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Degree) Degree() int {
	return d.degree
}

func (d Degree) Symbol() note.Symbol {
	return d.symbol
}

func (d Degree) ShiftSymbol(steps int) (Degree, error) {
	s, err := d.symbol.Shift(steps)
	if err != nil {
		return Degree{}, fmt.Errorf("shifting degree %s by %d: %w", d, steps, err)
	}
	return Degree{degree: d.degree, symbol: s}, nil
}

func (d Degree) String() string {
	return d.symbol.String() + strconv.Itoa(d.degree)
}
