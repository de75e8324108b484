package quality

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordparser/key"
	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/jsphweid/chordparser/util"
)

// Value is the base quality of a chord: its triad, or its dyad for power
// chords.
type Value int

const (
	Major Value = iota
	Minor
	Diminished
	Augmented
	Dominant
	HalfDiminished
	Sus2
	Sus4
	Power
)

var valueNames = map[Value]string{
	Major:          "major",
	Minor:          "minor",
	Diminished:     "diminished",
	Augmented:      "augmented",
	Dominant:       "dominant",
	HalfDiminished: "half-diminished",
	Sus2:           "sus2",
	Sus4:           "sus4",
	Power:          "power",
}

func (v Value) String() string {
	return valueNames[v]
}

func (v Value) isSus() bool {
	return v == Sus2 || v == Sus4
}

// Extension is the stack of thirds above the base triad.
type Extension int

const (
	NoExtension Extension = iota
	Seventh
	Ninth
	Eleventh
	Thirteenth
	MajorSeventh
	MajorNinth
	MajorEleventh
	MajorThirteenth
	DiminishedSeventh
)

var extensionNames = map[Extension]string{
	NoExtension:       "",
	Seventh:           "seventh",
	Ninth:             "ninth",
	Eleventh:          "eleventh",
	Thirteenth:        "thirteenth",
	MajorSeventh:      "major seventh",
	MajorNinth:        "major ninth",
	MajorEleventh:     "major eleventh",
	MajorThirteenth:   "major thirteenth",
	DiminishedSeventh: "diminished seventh",
}

func (e Extension) String() string {
	return extensionNames[e]
}

// IsMajor reports whether the seventh of the extension is a major seventh.
func (e Extension) IsMajor() bool {
	return e >= MajorSeventh && e <= MajorThirteenth
}

// IsSeventh reports whether the extension stops at the seventh.
func (e Extension) IsSeventh() bool {
	return e == Seventh || e == MajorSeventh || e == DiminishedSeventh
}

// extensionOffsets are the semitones of each extension tone above the root.
var extensionOffsets = map[Extension][]int{
	Seventh:           {10},
	Ninth:             {10, 14},
	Eleventh:          {10, 14, 17},
	Thirteenth:        {10, 14, 17, 21},
	MajorSeventh:      {11},
	MajorNinth:        {11, 14},
	MajorEleventh:     {11, 14, 17},
	MajorThirteenth:   {11, 14, 17, 21},
	DiminishedSeventh: {9},
}

var baseIntervals = map[Value][]int{
	Power:          {7},
	Major:          {4, 3},
	Minor:          {3, 4},
	Diminished:     {3, 3},
	Augmented:      {4, 4},
	Dominant:       {4, 3},
	HalfDiminished: {3, 3},
	Sus2:           {2, 5},
	Sus4:           {5, 2},
}

var baseDegrees = map[Value][]int{
	Power: {1, 5},
	Sus2:  {1, 2, 5},
	Sus4:  {1, 4, 5},
}

var triadDegrees = []int{1, 3, 5}

var shortValues = map[Value]string{
	Power:          "5",
	Major:          "",
	Minor:          "m",
	Diminished:     "dim",
	Augmented:      "aug",
	Dominant:       "",
	HalfDiminished: "m",
	Sus2:           "sus2",
	Sus4:           "sus",
}

var shortExtensions = map[Extension]string{
	Seventh:           "7",
	Ninth:             "9",
	Eleventh:          "11",
	Thirteenth:        "13",
	MajorSeventh:      "maj7",
	MajorNinth:        "maj9",
	MajorEleventh:     "maj11",
	MajorThirteenth:   "maj13",
	DiminishedSeventh: "7",
}

// Quality is a chord quality: a base value, an optional extension and
// whether the highest extension tone is flattened. The zero value is a
// major triad. Qualities are comparable with ==.
type Quality struct {
	value   Value
	ext     Extension
	flatExt bool
}

// New validates the combination and returns ErrQualityConflict if the
// parts cannot describe one chord.
func New(value Value, ext Extension, flatExt bool) (Quality, error) {
	if _, ok := valueNames[value]; !ok {
		return Quality{}, fmt.Errorf("%w: unknown quality value %d", model.ErrMalformedNotation, int(value))
	}
	if _, ok := extensionNames[ext]; !ok {
		return Quality{}, fmt.Errorf("%w: unknown extension %d", model.ErrMalformedNotation, int(ext))
	}
	q := Quality{value: value, ext: ext, flatExt: flatExt}
	if err := q.check(); err != nil {
		return Quality{}, err
	}
	return q, nil
}

// MustNew is like New but panics on a conflicting combination.
func MustNew(value Value, ext Extension, flatExt bool) Quality {
	q, err := New(value, ext, flatExt)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quality) check() error {
	conflict := func(reason string) error {
		return fmt.Errorf("%w: %s", model.ErrQualityConflict, reason)
	}
	if q.ext == NoExtension {
		switch {
		case q.flatExt:
			return conflict("a flat extension needs an extension")
		case q.value == Dominant || q.value == HalfDiminished:
			return conflict(fmt.Sprintf("%s chords need an extension", q.value))
		}
		return nil
	}
	switch {
	case q.value == Power:
		return conflict("power chords cannot be extended")
	case q.value == Major && !q.ext.IsMajor():
		return conflict("major chords take only major extensions")
	case q.value == Dominant && (q.ext.IsMajor() || q.ext == DiminishedSeventh):
		return conflict("dominant chords take only dominant extensions")
	case (q.value == Diminished) != (q.ext == DiminishedSeventh):
		return conflict("diminished chords can only be diminished sevenths")
	case q.flatExt && q.ext.IsSeventh():
		return conflict("a seventh cannot be a flat extension")
	}
	return nil
}

// Suspend replaces the third with the second (Sus2) or fourth (Sus4),
// keeping the extension. Only chords with a perfect fifth that are not
// already suspended can be suspended.
func (q Quality) Suspend(sus Value) (Quality, error) {
	switch {
	case sus != Sus2 && sus != Sus4:
		return Quality{}, fmt.Errorf("%w: %s is not a suspension", model.ErrMalformedNotation, sus)
	case q.value == Sus2 || q.value == Sus4:
		return Quality{}, fmt.Errorf("%w: %s chord is already suspended", model.ErrMalformedNotation, q.value)
	case q.value == Power || q.value == Diminished || q.value == HalfDiminished || q.value == Augmented:
		return Quality{}, fmt.Errorf("%w: cannot suspend a %s chord", model.ErrQualityConflict, q.value)
	}
	return New(sus, q.ext, q.flatExt)
}

func (q Quality) Value() Value {
	return q.value
}

func (q Quality) Extension() Extension {
	return q.ext
}

func (q Quality) FlatExtension() bool {
	return q.flatExt
}

// BaseIntervals are the semitones between consecutive tones of the base
// triad (or dyad).
func (q Quality) BaseIntervals() []int {
	return append([]int(nil), baseIntervals[q.value]...)
}

// BaseDegrees are the scale degrees of the base triad.
func (q Quality) BaseDegrees() []int {
	if d, ok := baseDegrees[q.value]; ok {
		return append([]int(nil), d...)
	}
	return append([]int(nil), triadDegrees...)
}

// Intervals are the semitones between consecutive chord tones, extension
// included.
func (q Quality) Intervals() []int {
	intervals := q.BaseIntervals()
	for _, offset := range extensionOffsets[q.ext] {
		intervals = append(intervals, offset-util.Sum(intervals))
	}
	if q.flatExt {
		intervals[len(intervals)-1]--
	}
	return intervals
}

// Degrees are the scale degrees of the chord tones, extension included.
func (q Quality) Degrees() []int {
	degrees := q.BaseDegrees()
	for i := range extensionOffsets[q.ext] {
		degrees = append(degrees, 7+2*i)
	}
	return degrees
}

// Symbols are the accidentals of each chord tone measured against the
// major scale of the root.
func (q Quality) Symbols() []note.Symbol {
	intervals := q.Intervals()
	degrees := q.Degrees()
	major := key.Major.StepPattern()
	symbols := make([]note.Symbol, 0, len(degrees))
	symbols = append(symbols, note.Natural)
	for i := range intervals {
		actual := util.Sum(intervals[:i+1])
		natural := util.Sum(major[:degrees[i+1]-1])
		// every combination New accepts stays within a double accidental
		symbols = append(symbols, note.Symbol(actual-natural))
	}
	return symbols
}

// BaseSymbols are the accidentals of the base triad (or dyad).
func (q Quality) BaseSymbols() []note.Symbol {
	return q.Symbols()[:len(q.BaseDegrees())]
}

// String is the short notation that follows the root in a chord symbol.
func (q Quality) String() string {
	base := shortValues[q.value]
	if q.ext == NoExtension {
		return base
	}
	ext := shortExtensions[q.ext]
	if q.flatExt {
		if len(ext) < 3 {
			ext = note.FlatGlyph + ext
		} else {
			ext = ext[:3] + note.FlatGlyph + ext[3:]
		}
	}
	prefix := "dom"
	switch q.value {
	case HalfDiminished:
		ext += note.FlatGlyph + "5"
	case Augmented:
		base = ""
		prefix = "aug"
		ext += note.SharpGlyph + "5"
	}
	short := base + ext
	if q.value.isSus() {
		short = ext + base
	}
	// a leading flat would be read as part of the root
	if strings.HasPrefix(short, note.FlatGlyph) {
		short = prefix + short
	}
	return short
}

// Name is the long form, such as "minor major seventh" or
// "dominant flat ninth".
func (q Quality) Name() string {
	if q.ext == NoExtension {
		return q.value.String()
	}
	name := q.value.String() + " " + q.ext.String()
	if q.value == Major || q.value == Diminished {
		name = q.ext.String()
	}
	if !q.flatExt {
		return name
	}
	words := strings.Fields(name)
	last := len(words) - 1
	words = append(words[:last], "flat", words[last])
	return strings.Join(words, " ")
}
