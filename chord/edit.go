package chord

import (
	"fmt"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/jsphweid/chordparser/quality"
	"github.com/jsphweid/chordparser/scale"
	"golang.org/x/exp/slices"
)

func (c Chord) bassPtr() *note.Note {
	if !c.hasBass {
		return nil
	}
	b := c.bass
	return &b
}

// Transpose moves the root and the bass by the same interval, given in
// semitones and letters.
func (c Chord) Transpose(semitones, letters int) (Chord, error) {
	root, err := c.root.Transpose(semitones, letters)
	if err != nil {
		return Chord{}, fmt.Errorf("transposing %s: %w", c, err)
	}
	bass := c.bassPtr()
	if bass != nil {
		moved, err := bass.Transpose(semitones, letters)
		if err != nil {
			return Chord{}, fmt.Errorf("transposing %s: %w", c, err)
		}
		bass = &moved
	}
	return New(root, c.quality, c.added, bass)
}

// TransposeSimple moves the root by semitones, spelling it with sharps or
// flats. The bass follows by the exact interval the root moved, so C/E up
// one semitone with flats is D♭/F.
func (c Chord) TransposeSimple(semitones int, useFlats bool) (Chord, error) {
	root := c.root.TransposeSimple(semitones, useFlats)
	bass := c.bassPtr()
	if bass != nil {
		steps := note.SemitoneIntervals(c.root, root)[0]
		letters := note.LetterIntervals(c.root, root)[0]
		moved, err := bass.Transpose(steps, letters)
		if err != nil {
			return Chord{}, fmt.Errorf("transposing %s: %w", c, err)
		}
		bass = &moved
	}
	return New(root, c.quality, c.added, bass)
}

func (c Chord) WithRoot(root note.Note) (Chord, error) {
	return New(root, c.quality, c.added, c.bassPtr())
}

func (c Chord) WithQuality(q quality.Quality) (Chord, error) {
	return New(c.root, q, c.added, c.bassPtr())
}

// WithAdded adds notes to the chord. Notes already present are ignored.
func (c Chord) WithAdded(added ...Added) (Chord, error) {
	all := append(slices.Clone(c.added), added...)
	return New(c.root, c.quality, all, c.bassPtr())
}

// WithoutAdded removes added notes. Removing a note the chord does not
// have returns ErrAddedNoteMissing.
func (c Chord) WithoutAdded(removed ...Added) (Chord, error) {
	remaining := slices.Clone(c.added)
	for _, a := range removed {
		idx := slices.Index(remaining, a)
		if idx < 0 {
			return Chord{}, fmt.Errorf("%w: %s has no added %s", model.ErrAddedNoteMissing, c, a)
		}
		remaining = slices.Delete(remaining, idx, idx+1)
	}
	return New(c.root, c.quality, remaining, c.bassPtr())
}

func (c Chord) WithoutAllAdded() (Chord, error) {
	return New(c.root, c.quality, nil, c.bassPtr())
}

func (c Chord) WithBass(bass note.Note) (Chord, error) {
	return New(c.root, c.quality, c.added, &bass)
}

func (c Chord) WithoutBass() (Chord, error) {
	return New(c.root, c.quality, c.added, nil)
}

var triadQualities = map[[2]int]quality.Value{
	{4, 3}: quality.Major,
	{3, 4}: quality.Minor,
	{3, 3}: quality.Diminished,
	{4, 4}: quality.Augmented,
}

// Diatonic is the triad built on a degree (1 to 7) of the scale from the
// scale's own notes.
func Diatonic(s scale.Scale, degree int) (Chord, error) {
	if degree < 1 || degree > 7 {
		return Chord{}, fmt.Errorf("%w: %d is not between 1 and 7", model.ErrInvalidDegree, degree)
	}
	notes := s.Notes()
	triad := note.SemitoneIntervals(notes[degree-1], notes[degree+1], notes[degree+3])
	value, ok := triadQualities[[2]int{triad[0], triad[1]}]
	if !ok {
		return Chord{}, fmt.Errorf("%w: degree %d of %s is not a tertian triad", model.ErrModeMismatch, degree, s)
	}
	q, err := quality.New(value, quality.NoExtension, false)
	if err != nil {
		return Chord{}, err
	}
	return New(notes[degree-1], q, nil, nil)
}
