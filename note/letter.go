package note

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/util"
)

// Letter is a note name, ordered along the natural scale from C.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

const letterNames = "CDEFGAB"

// Index is the position of the letter on the 7-letter wheel.
func (l Letter) Index() int {
	return int(l)
}

// Steps is the number of semitones above C.
func (l Letter) Steps() int {
	return letterSteps[l]
}

// Shift moves the letter along the wheel, wrapping around.
func (l Letter) Shift(letters int) Letter {
	return Letter(util.Mod(int(l)+letters, 7))
}

func (l Letter) String() string {
	return letterNames[l : l+1]
}

// ParseLetter accepts a single letter a-g, in either case.
func ParseLetter(notation string) (Letter, error) {
	if len(notation) != 1 {
		return C, fmt.Errorf("%w: '%s' is not a note letter", model.ErrMalformedNotation, notation)
	}
	idx := strings.Index(letterNames, strings.ToUpper(notation))
	if idx < 0 {
		return C, fmt.Errorf("%w: '%s' is not a note letter", model.ErrMalformedNotation, notation)
	}
	return Letter(idx), nil
}
