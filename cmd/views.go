package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/chordparser/chord"
	"github.com/jsphweid/chordparser/key"
	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/jsphweid/chordparser/scale"
)

func noteNames(notes []note.Note) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.String())
	}
	return res
}

func chordView(c chord.Chord) model.ChordView {
	v := model.ChordView{
		Notation:  c.String(),
		Input:     c.Input(),
		Root:      c.Root().String(),
		Quality:   c.Quality().Name(),
		Added:     []string{},
		Notes:     noteNames(c.Notes()),
		Degrees:   c.Degrees(),
		Symbols:   []string{},
		Intervals: c.Intervals(),
	}
	for _, a := range c.Added() {
		v.Added = append(v.Added, a.String())
	}
	for _, s := range c.Symbols() {
		v.Symbols = append(v.Symbols, s.String())
	}
	if bass, ok := c.Bass(); ok {
		v.Bass = bass.String()
	}
	if inversion, ok := c.Inversion(); ok {
		v.Inversion = &inversion
	}
	return v
}

func keyView(k key.Key) (model.KeyView, error) {
	s, err := scale.New(k)
	if err != nil {
		return model.KeyView{}, err
	}
	steps := k.StepPattern()
	v := model.KeyView{
		Key:     k.String(),
		Tonic:   k.Tonic().String(),
		Mode:    k.Mode().String(),
		Submode: k.Submode().String(),
		Notes:   noteNames(s.Notes()[:8]),
		Steps:   steps[:7],
	}
	for _, d := range s.Degrees()[:8] {
		v.Degrees = append(v.Degrees, d.String())
	}
	for degree := 1; degree <= 7; degree++ {
		c, err := chord.Diatonic(s, degree)
		if err != nil {
			return model.KeyView{}, err
		}
		v.Diatonic = append(v.Diatonic, c.String())
	}

	var relative key.Key
	switch {
	case k.Mode().IsMinor():
		relative, err = k.RelativeMajor()
	case k.Mode().IsMajor():
		relative, err = k.RelativeMinor(key.None)
	default:
		return v, nil
	}
	// a relative that cannot be spelled is left out
	if err == nil {
		v.Relative = relative.String()
	}
	return v, nil
}

func joinInts(nums []int) string {
	parts := make([]string, 0, len(nums))
	for _, n := range nums {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, " ")
}

func printChord(w io.Writer, v model.ChordView) {
	fmt.Fprintln(w, v.Notation)
	fmt.Fprintf(w, "  quality:   %s\n", v.Quality)
	fmt.Fprintf(w, "  notes:     %s\n", strings.Join(v.Notes, " "))
	fmt.Fprintf(w, "  degrees:   %s\n", joinInts(v.Degrees))
	fmt.Fprintf(w, "  intervals: %s\n", joinInts(v.Intervals))
	if v.Inversion != nil {
		fmt.Fprintf(w, "  inversion: %d\n", *v.Inversion)
	}
}

func printKey(w io.Writer, v model.KeyView) {
	fmt.Fprintln(w, v.Key)
	fmt.Fprintf(w, "  notes:    %s\n", strings.Join(v.Notes, " "))
	fmt.Fprintf(w, "  degrees:  %s\n", strings.Join(v.Degrees, " "))
	fmt.Fprintf(w, "  steps:    %s\n", joinInts(v.Steps))
	fmt.Fprintf(w, "  diatonic: %s\n", strings.Join(v.Diatonic, " "))
	if v.Relative != "" {
		fmt.Fprintf(w, "  relative: %s\n", v.Relative)
	}
}
