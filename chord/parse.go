package chord

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/jsphweid/chordparser/quality"
)

var (
	rootRegex  = regexp.MustCompile(`^` + note.Pattern)
	addedRegex = regexp.MustCompile(`^\s*(?:add)?(?P<symbol>` + note.SymbolPattern + `)?(?P<degree>2|4|6|9|11|13)`)
	bassRegex  = regexp.MustCompile(`^\s*/\s*(?P<bass>` + note.Pattern + `)\s*$`)
)

// Parse reads chord notation such as "C", "F#m7", "Ebmaj9add#11/Bb" or
// "Dsus2add4". A lowercase root with no other quality is minor.
func Parse(notation string) (Chord, error) {
	trimmed := strings.TrimSpace(notation)
	malformed := func(reason string) error {
		return fmt.Errorf("%w: '%s' %s", model.ErrMalformedNotation, notation, reason)
	}

	loc := rootRegex.FindStringIndex(trimmed)
	if loc == nil {
		return Chord{}, malformed("does not start with a note")
	}
	root, err := note.Parse(trimmed[:loc[1]])
	if err != nil {
		return Chord{}, err
	}
	first, _ := utf8.DecodeRuneInString(trimmed)

	q, rest, err := quality.Scan(trimmed[loc[1]:], unicode.IsUpper(first))
	if err != nil {
		return Chord{}, fmt.Errorf("parsing chord '%s': %w", notation, err)
	}

	q, added, rest, err := scanSuffix(q, rest)
	if err != nil {
		return Chord{}, fmt.Errorf("parsing chord '%s': %w", notation, err)
	}

	var bass *note.Note
	if strings.TrimSpace(rest) != "" {
		m := bassRegex.FindStringSubmatch(rest)
		if m == nil {
			return Chord{}, malformed(fmt.Sprintf("has unreadable '%s'", strings.TrimSpace(rest)))
		}
		b, err := note.Parse(m[bassRegex.SubexpIndex("bass")])
		if err != nil {
			return Chord{}, err
		}
		bass = &b
	}

	c, err := New(root, q, added, bass)
	if err != nil {
		return Chord{}, fmt.Errorf("parsing chord '%s': %w", notation, err)
	}
	c.input = notation
	return c, nil
}

// MustParse is like Parse but panics on error.
func MustParse(notation string) Chord {
	c, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return c
}

// scanAdded reads added note tokens from the start of s until one does
// not match.
func scanAdded(s string) ([]Added, string, error) {
	var added []Added
	for {
		m := addedRegex.FindStringSubmatchIndex(s)
		if m == nil {
			return added, s, nil
		}
		a, err := addedFromMatch(s, m)
		if err != nil {
			return nil, s, err
		}
		added = append(added, a)
		s = s[m[1]:]
	}
}

// scanSuffix reads added notes and at most one suspension in any order,
// so "Cadd9sus4" is the same chord as "Csus4add9".
func scanSuffix(q quality.Quality, s string) (quality.Quality, []Added, string, error) {
	var added []Added
	for {
		more, rest, err := scanAdded(s)
		if err != nil {
			return q, nil, s, err
		}
		added = append(added, more...)
		sus, ok, rest := quality.ScanSus(rest)
		if !ok {
			return q, added, rest, nil
		}
		if q, err = q.Suspend(sus); err != nil {
			return q, nil, s, err
		}
		s = rest
	}
}

func addedFromMatch(s string, m []int) (Added, error) {
	symbol := ""
	if idx := addedRegex.SubexpIndex("symbol"); m[2*idx] >= 0 {
		symbol = s[m[2*idx]:m[2*idx+1]]
	}
	sym, err := note.ParseSymbol(symbol)
	if err != nil {
		return Added{}, err
	}
	idx := addedRegex.SubexpIndex("degree")
	degree, _ := strconv.Atoi(s[m[2*idx]:m[2*idx+1]])
	return Added{Symbol: sym, Degree: degree}, nil
}

// ParseAdded reads a list of added notes such as "add9", "b6" or
// "add2#11". The whole string must be consumed.
func ParseAdded(notation string) ([]Added, error) {
	added, rest, err := scanAdded(notation)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" || len(added) == 0 {
		return nil, fmt.Errorf("%w: '%s' could not be parsed as added notes", model.ErrMalformedNotation, notation)
	}
	return normalizeAdded(added)
}
