package quality

import (
	"fmt"
	"regexp"

	"github.com/jsphweid/chordparser/model"
)

const (
	flatPattern  = `\x{266D}|\x{1D12B}|bb|b`
	sharpPattern = `\x{266F}|\x{1D12A}|##|#`
	majorPattern = `Maj|Ma|M|maj|\x{0394}`
	minorPattern = `min|m|-`
	dimPattern   = `dim|o|\x{00B0}`
	augPattern   = `aug|\+`
)

// Prefix is the quality word written before an extension degree.
type Prefix int

const (
	NoPrefix Prefix = iota
	MinorMajorPrefix
	AugmentedMajorPrefix
	AugmentedPrefix
	DiminishedPrefix
	HalfDiminishedPrefix
	MajorPrefix
	MinorPrefix
	DominantPrefix
)

// The order matters: the first alternative that matches wins, so "mM7"
// is a minor major seventh and not a minor chord followed by "M7".
var prefixPatterns = []struct {
	prefix  Prefix
	pattern string
}{
	{MinorMajorPrefix, `(?:` + minorPattern + `)(?:` + majorPattern + `)`},
	{AugmentedMajorPrefix, `(?:` + augPattern + `)(?:` + majorPattern + `)`},
	{AugmentedPrefix, augPattern},
	{DiminishedPrefix, dimPattern},
	{HalfDiminishedPrefix, `\x{00F8}|\x{00D8}`},
	{MajorPrefix, majorPattern},
	{MinorPrefix, minorPattern},
	{DominantPrefix, `dom`},
}

// Token is one of PowerToken, ExtendedToken, TriadToken or EmptyToken.
type Token interface {
	token()
}

// PowerToken is the "5" of a power chord.
type PowerToken struct{}

// ExtendedToken is an optional prefix, an optional flat and an extension
// degree of 7, 9, 11 or 13.
type ExtendedToken struct {
	Prefix Prefix
	Flat   bool
	Degree int
}

// TriadToken names a triad without extension. Its Prefix is one of
// AugmentedPrefix, DiminishedPrefix, MajorPrefix or MinorPrefix.
type TriadToken struct {
	Prefix Prefix
}

// EmptyToken is a quality that is not written at all.
type EmptyToken struct{}

func (PowerToken) token()    {}
func (ExtendedToken) token() {}
func (TriadToken) token()    {}
func (EmptyToken) token()    {}

var (
	powerRegex    = regexp.MustCompile(`^5`)
	extendedRegex = regexp.MustCompile(`^(?P<prefix>` + prefixGroups() + `)?(?P<flat>` + flatPattern + `)?(?P<degree>7|9|11|13)`)
	triadRegex    = regexp.MustCompile(`^(?:(?P<aug>` + augPattern + `)|(?P<dim>` + dimPattern + `)|(?P<major>` + majorPattern + `)|(?P<minor>` + minorPattern + `))`)
	alt5Regex     = regexp.MustCompile(`^\(?(?:(?P<flat>` + dimPattern + `|` + flatPattern + `)|(?P<sharp>` + augPattern + `|` + sharpPattern + `))5\)?`)
	susRegex      = regexp.MustCompile(`^\s*sus(?P<degree>2|4)?`)
)

var triadGroups = []struct {
	group  string
	prefix Prefix
}{
	{"aug", AugmentedPrefix},
	{"dim", DiminishedPrefix},
	{"major", MajorPrefix},
	{"minor", MinorPrefix},
}

var extensionDegrees = map[string]int{"7": 7, "9": 9, "11": 11, "13": 13}

func prefixGroups() string {
	res := ""
	for i, p := range prefixPatterns {
		if i > 0 {
			res += "|"
		}
		res += fmt.Sprintf("(?P<p%d>%s)", p.prefix, p.pattern)
	}
	return res
}

// ScanToken reads the leading quality token of s and returns the rest.
func ScanToken(s string) (Token, string) {
	if loc := powerRegex.FindStringIndex(s); loc != nil {
		return PowerToken{}, s[loc[1]:]
	}
	if m := extendedRegex.FindStringSubmatchIndex(s); m != nil {
		tok := ExtendedToken{}
		for _, p := range prefixPatterns {
			if idx := extendedRegex.SubexpIndex(fmt.Sprintf("p%d", p.prefix)); m[2*idx] >= 0 {
				tok.Prefix = p.prefix
				break
			}
		}
		flat := extendedRegex.SubexpIndex("flat")
		tok.Flat = m[2*flat] >= 0
		degree := extendedRegex.SubexpIndex("degree")
		tok.Degree = extensionDegrees[s[m[2*degree]:m[2*degree+1]]]
		return tok, s[m[1]:]
	}
	if m := triadRegex.FindStringSubmatchIndex(s); m != nil {
		for _, g := range triadGroups {
			if idx := triadRegex.SubexpIndex(g.group); m[2*idx] >= 0 {
				return TriadToken{Prefix: g.prefix}, s[m[1]:]
			}
		}
	}
	return EmptyToken{}, s
}

// scanAlt5 reads an altered fifth such as "b5", "#5", "(dim5)" or "+5" and
// returns -1, 0 or 1.
func scanAlt5(s string) (int, string) {
	m := alt5Regex.FindStringSubmatchIndex(s)
	if m == nil {
		return 0, s
	}
	if idx := alt5Regex.SubexpIndex("flat"); m[2*idx] >= 0 {
		return -1, s[m[1]:]
	}
	return 1, s[m[1]:]
}

// ScanSus reads "sus", "sus2" or "sus4" from the start of s, skipping
// leading space. A bare "sus" is sus4.
func ScanSus(s string) (Value, bool, string) {
	m := susRegex.FindStringSubmatchIndex(s)
	if m == nil {
		return 0, false, s
	}
	idx := susRegex.SubexpIndex("degree")
	if m[2*idx] >= 0 && s[m[2*idx]:m[2*idx+1]] == "2" {
		return Sus2, true, s[m[1]:]
	}
	return Sus4, true, s[m[1]:]
}

// Scan reads a quality from the start of s and returns the unread rest.
// upper is whether the chord's root was written in uppercase: without an
// explicit quality, lowercase roots are minor.
func Scan(s string, upper bool) (Quality, string, error) {
	tok, rest := ScanToken(s)
	alt5, rest := scanAlt5(rest)
	sus, isSus, rest := ScanSus(rest)
	consumed := s[:len(s)-len(rest)]

	value, ext, flatExt, err := resolve(tok, upper)
	if err != nil {
		return Quality{}, rest, fmt.Errorf("parsing quality '%s': %w", consumed, err)
	}
	if alt5 != 0 {
		if isSus {
			return Quality{}, rest, fmt.Errorf("%w: '%s' cannot alter the fifth of a sus chord", model.ErrMalformedNotation, consumed)
		}
		value, err = alterFifth(value, ext, alt5)
		if err != nil {
			return Quality{}, rest, fmt.Errorf("parsing quality '%s': %w", consumed, err)
		}
	}
	if isSus && value == Power {
		return Quality{}, rest, fmt.Errorf("%w: '%s' cannot suspend a power chord", model.ErrMalformedNotation, consumed)
	}
	q, err := New(value, ext, flatExt)
	if err == nil && isSus {
		q, err = q.Suspend(sus)
	}
	if err != nil {
		return Quality{}, rest, fmt.Errorf("parsing quality '%s': %w", consumed, err)
	}
	return q, rest, nil
}

func resolve(tok Token, upper bool) (Value, Extension, bool, error) {
	switch t := tok.(type) {
	case PowerToken:
		return Power, NoExtension, false, nil
	case ExtendedToken:
		return resolveExtended(t, upper)
	case TriadToken:
		switch t.Prefix {
		case AugmentedPrefix:
			return Augmented, NoExtension, false, nil
		case DiminishedPrefix:
			return Diminished, NoExtension, false, nil
		case MajorPrefix:
			return Major, NoExtension, false, nil
		}
		return Minor, NoExtension, false, nil
	}
	if upper {
		return Major, NoExtension, false, nil
	}
	return Minor, NoExtension, false, nil
}

func resolveExtended(t ExtendedToken, upper bool) (Value, Extension, bool, error) {
	var value Value
	switch t.Prefix {
	case NoPrefix:
		value = Minor
		if upper {
			value = Dominant
		}
	case MinorMajorPrefix, MinorPrefix:
		value = Minor
	case AugmentedMajorPrefix, AugmentedPrefix:
		value = Augmented
	case DiminishedPrefix:
		value = Diminished
	case HalfDiminishedPrefix:
		value = HalfDiminished
	case MajorPrefix:
		value = Major
	case DominantPrefix:
		value = Dominant
	}

	ext := map[int]Extension{7: Seventh, 9: Ninth, 11: Eleventh, 13: Thirteenth}[t.Degree]
	switch t.Prefix {
	case MinorMajorPrefix, AugmentedMajorPrefix, MajorPrefix:
		ext += MajorSeventh - Seventh
	case DiminishedPrefix:
		if t.Degree != 7 {
			return 0, 0, false, fmt.Errorf("%w: diminished chords can only be diminished sevenths", model.ErrQualityConflict)
		}
		ext = DiminishedSeventh
	}
	return value, ext, t.Flat, nil
}

// alterFifth reclassifies a quality whose fifth is raised (1) or lowered
// (-1).
func alterFifth(value Value, ext Extension, alt5 int) (Value, error) {
	if alt5 > 0 {
		switch value {
		case Major, Dominant, Augmented:
			return Augmented, nil
		}
	} else {
		switch value {
		case Minor:
			// "m(b5)" is a diminished triad; half-diminished needs a seventh.
			if ext == NoExtension {
				return Diminished, nil
			}
			return HalfDiminished, nil
		case Diminished, HalfDiminished:
			return value, nil
		}
	}
	return value, fmt.Errorf("%w: the fifth of a %s chord cannot be altered that way", model.ErrMalformedNotation, value)
}

// ParseForRoot reads a complete quality notation. upper is whether the
// chord's root is uppercase.
func ParseForRoot(notation string, upper bool) (Quality, error) {
	q, rest, err := Scan(notation, upper)
	if err != nil {
		return Quality{}, err
	}
	if rest != "" {
		return Quality{}, fmt.Errorf("%w: '%s' could not be parsed as a quality", model.ErrMalformedNotation, notation)
	}
	return q, nil
}

// Parse reads a quality notation such as "m7", "maj9", "sus2" or "m7b5",
// assuming an uppercase root.
func Parse(notation string) (Quality, error) {
	return ParseForRoot(notation, true)
}

// MustParse is like Parse but panics on error.
func MustParse(notation string) Quality {
	q, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return q
}
