package chord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/jsphweid/chordparser/quality"
	"github.com/jsphweid/chordparser/scale"
	"golang.org/x/exp/slices"
)

// Added is a note added on top of the chord's quality, written as an
// accidental and a degree of the root's major scale: ♭6, 9, ♯11.
type Added struct {
	Symbol note.Symbol
	Degree int
}

func (a Added) String() string {
	return a.Symbol.String() + strconv.Itoa(a.Degree)
}

func (a Added) validate() error {
	if a.Degree < 2 || a.Degree > scale.MaxExtendedDegree {
		return fmt.Errorf("%w: added degree %d is not between 2 and %d", model.ErrInvalidDegree, a.Degree, scale.MaxExtendedDegree)
	}
	if !a.Symbol.Valid() {
		return fmt.Errorf("%w: %d semitones", model.ErrUnrepresentableAccidental, int(a.Symbol))
	}
	return nil
}

// Chord is a root, a quality, added notes and an optional bass note, with
// everything derived from them computed when the chord is built. Chords
// are values: every method that changes a chord returns a new one.
type Chord struct {
	root    note.Note
	quality quality.Quality
	added   []Added
	bass    note.Note
	hasBass bool
	input   string

	baseNotes []note.Note
	notes     []note.Note
	degrees   []int
	symbols   []note.Symbol
	intervals []int
	inversion int
	notation  string
}

// New builds a chord. bass may be nil. Added notes are sorted by degree
// and duplicates are dropped.
func New(root note.Note, q quality.Quality, added []Added, bass *note.Note) (Chord, error) {
	c := Chord{root: root, quality: q}
	if bass != nil {
		c.bass = *bass
		c.hasBass = true
	}
	var err error
	if c.added, err = normalizeAdded(added); err != nil {
		return Chord{}, err
	}
	if err := c.build(); err != nil {
		return Chord{}, err
	}
	c.input = c.notation
	return c, nil
}

func normalizeAdded(added []Added) ([]Added, error) {
	res := make([]Added, 0, len(added))
	for _, a := range added {
		if err := a.validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(res, a) {
			res = append(res, a)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Degree != res[j].Degree {
			return res[i].Degree < res[j].Degree
		}
		return res[i].Symbol < res[j].Symbol
	})
	return res, nil
}

func (c *Chord) build() error {
	intervals := c.quality.Intervals()
	degrees := c.quality.Degrees()

	notes := make([]note.Note, 0, len(degrees)+len(c.added)+1)
	notes = append(notes, c.root)
	for i, step := range intervals {
		next, err := notes[i].Transpose(step, degrees[i+1]-degrees[i])
		if err != nil {
			return fmt.Errorf("building %s%s: %w", c.root, c.quality, err)
		}
		notes = append(notes, next)
	}
	c.baseNotes = slices.Clone(notes)
	c.notes = notes
	c.degrees = degrees
	c.symbols = c.quality.Symbols()
	c.inversion = 0

	if len(c.added) > 0 || c.hasBass {
		major, err := scale.MajorOf(c.root)
		if err != nil {
			return fmt.Errorf("building %s%s: %w", c.root, c.quality, err)
		}
		if err := c.buildAdded(major); err != nil {
			return err
		}
		if err := c.buildBass(major); err != nil {
			return err
		}
	}

	c.intervals = note.SemitoneIntervals(c.notes...)
	c.notation = c.render()
	return nil
}

// buildAdded puts each added note right after the highest chord tone below
// its degree.
func (c *Chord) buildAdded(major scale.Scale) error {
	for _, a := range c.added {
		pos := 0
		for i, d := range c.degrees {
			if d < a.Degree {
				pos = i
			}
		}
		pos++
		n, err := major.NoteAt(a.Degree)
		if err != nil {
			return err
		}
		if n, err = n.ShiftSymbol(a.Symbol.Steps()); err != nil {
			return fmt.Errorf("adding %s to %s: %w", a, c.root, err)
		}
		c.notes = slices.Insert(c.notes, pos, n)
		c.degrees = slices.Insert(c.degrees, pos, a.Degree)
		c.symbols = slices.Insert(c.symbols, pos, a.Symbol)
	}
	return nil
}

// buildBass moves a bass that is already a chord tone to the front and
// records the inversion. Any other bass is put in front with its degree in
// the root's major scale.
func (c *Chord) buildBass(major scale.Scale) error {
	if !c.hasBass {
		return nil
	}
	if idx := slices.Index(c.notes, c.bass); idx >= 0 {
		degree, symbol := c.degrees[idx], c.symbols[idx]
		c.notes = slices.Insert(slices.Delete(c.notes, idx, idx+1), 0, c.bass)
		c.degrees = slices.Insert(slices.Delete(c.degrees, idx, idx+1), 0, degree)
		c.symbols = slices.Insert(slices.Delete(c.symbols, idx, idx+1), 0, symbol)
		c.inversion = degree
		return nil
	}
	d, err := major.DegreeFromNote(c.bass)
	if err != nil {
		return fmt.Errorf("placing bass %s under %s: %w", c.bass, c.root, err)
	}
	c.notes = slices.Insert(c.notes, 0, c.bass)
	c.degrees = slices.Insert(c.degrees, 0, d.Degree())
	c.symbols = slices.Insert(c.symbols, 0, d.Symbol())
	return nil
}

func (c Chord) render() string {
	var b strings.Builder
	short := c.quality.String()
	b.WriteString(c.root.String())
	b.WriteString(short)
	for i, a := range c.added {
		if c.needsAddPrefix(a, i == 0, short) {
			b.WriteString("add")
		}
		b.WriteString(a.String())
	}
	if c.hasBass {
		b.WriteString("/")
		b.WriteString(c.bass.String())
	}
	return b.String()
}

// needsAddPrefix decides whether an added note must be written as "addX"
// for the notation to read back as the same chord.
func (c Chord) needsAddPrefix(a Added, first bool, short string) bool {
	switch {
	case a.Symbol == note.Natural:
		return true
	case !first:
		return false
	case short == "":
		// C♭9 would read as a C♭ chord
		return true
	}
	// Cm♭9 would read as a minor flat ninth
	return a.Symbol.IsFlat() && c.quality.Extension() == quality.NoExtension && a.Degree >= 7
}

func (c Chord) Root() note.Note {
	return c.root
}

func (c Chord) Quality() quality.Quality {
	return c.quality
}

func (c Chord) Added() []Added {
	return slices.Clone(c.added)
}

// Bass returns the bass note and whether the chord has one.
func (c Chord) Bass() (note.Note, bool) {
	return c.bass, c.hasBass
}

// Input is the notation the chord was parsed from, or its canonical
// notation if it was built directly.
func (c Chord) Input() string {
	return c.input
}

// BaseNotes are the notes of the quality alone, without added notes or
// bass.
func (c Chord) BaseNotes() []note.Note {
	return slices.Clone(c.baseNotes)
}

// Notes are all notes of the chord, bass first.
func (c Chord) Notes() []note.Note {
	return slices.Clone(c.notes)
}

// Degrees are the degrees of Notes in the root's major scale.
func (c Chord) Degrees() []int {
	return slices.Clone(c.degrees)
}

// Symbols are the accidentals of Degrees.
func (c Chord) Symbols() []note.Symbol {
	return slices.Clone(c.symbols)
}

// Intervals are the upward semitones between consecutive Notes.
func (c Chord) Intervals() []int {
	return slices.Clone(c.intervals)
}

// Inversion is the degree of the chord tone in the bass, if the bass is a
// chord tone.
func (c Chord) Inversion() (int, bool) {
	return c.inversion, c.inversion != 0
}

func (c Chord) String() string {
	return c.notation
}

// Equal compares what the chord is made of, not how it was written:
// Dsus and Dsus4 are equal.
func (c Chord) Equal(other Chord) bool {
	return c.root == other.root &&
		c.quality == other.quality &&
		slices.Equal(c.added, other.added) &&
		c.hasBass == other.hasBass &&
		c.bass == other.bass
}
