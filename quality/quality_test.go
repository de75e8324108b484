package quality

import (
	"testing"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalsAndDegrees(t *testing.T) {
	cases := []struct {
		name      string
		quality   Quality
		intervals []int
		degrees   []int
	}{
		{"power", MustNew(Power, NoExtension, false), []int{7}, []int{1, 5}},
		{"major triad", MustNew(Major, NoExtension, false), []int{4, 3}, []int{1, 3, 5}},
		{"dominant seventh", MustNew(Dominant, Seventh, false), []int{4, 3, 3}, []int{1, 3, 5, 7}},
		{"sus2 major ninth", MustNew(Sus2, MajorNinth, false), []int{2, 5, 4, 3}, []int{1, 2, 5, 7, 9}},
		{"diminished seventh", MustNew(Diminished, DiminishedSeventh, false), []int{3, 3, 3}, []int{1, 3, 5, 7}},
		{"half-diminished seventh", MustNew(HalfDiminished, Seventh, false), []int{3, 3, 4}, []int{1, 3, 5, 7}},
		{"minor flat ninth", MustNew(Minor, Ninth, true), []int{3, 4, 3, 3}, []int{1, 3, 5, 7, 9}},
		{"major thirteenth", MustNew(Major, MajorThirteenth, false), []int{4, 3, 4, 3, 3, 4}, []int{1, 3, 5, 7, 9, 11, 13}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.intervals, c.quality.Intervals())
			assert.Equal(t, c.degrees, c.quality.Degrees())
		})
	}
}

func TestSymbols(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		[]note.Symbol{note.Natural, note.Flat, note.Flat, note.DoubleFlat},
		MustNew(Diminished, DiminishedSeventh, false).Symbols(),
	)
	assert.Equal(
		[]note.Symbol{note.Natural, note.Natural, note.Natural, note.Flat, note.Flat},
		MustNew(Dominant, Ninth, true).Symbols(),
	)
	assert.Equal(
		[]note.Symbol{note.Natural, note.Natural, note.Sharp, note.Natural},
		MustNew(Augmented, MajorSeventh, false).Symbols(),
	)
	assert.Equal(
		[]note.Symbol{note.Natural, note.Natural},
		MustNew(Power, NoExtension, false).BaseSymbols(),
	)
	assert.Equal(
		[]note.Symbol{note.Natural, note.Flat, note.Flat},
		MustNew(HalfDiminished, Eleventh, false).BaseSymbols(),
	)
}

func TestShortForm(t *testing.T) {
	cases := []struct {
		quality Quality
		want    string
	}{
		{MustNew(Power, NoExtension, false), "5"},
		{MustNew(Major, NoExtension, false), ""},
		{MustNew(Minor, NoExtension, false), "m"},
		{MustNew(Minor, Ninth, true), "m♭9"},
		{MustNew(HalfDiminished, Eleventh, false), "m11♭5"},
		{MustNew(Sus4, Seventh, false), "7sus"},
		{MustNew(Sus2, MajorNinth, false), "maj9sus2"},
		{MustNew(Major, MajorNinth, true), "maj♭9"},
		{MustNew(Augmented, NoExtension, false), "aug"},
		{MustNew(Augmented, MajorEleventh, false), "maj11♯5"},
		{MustNew(Augmented, Ninth, true), "aug♭9♯5"},
		{MustNew(Diminished, DiminishedSeventh, false), "dim7"},
		{MustNew(Dominant, Ninth, true), "dom♭9"},
		{MustNew(Sus4, Thirteenth, true), "dom♭13sus"},
	}
	for _, c := range cases {
		t.Run(c.quality.Name(), func(t *testing.T) {
			assert.Equal(t, c.want, c.quality.String())
		})
	}
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("minor major seventh", MustNew(Minor, MajorSeventh, false).Name())
	assert.Equal("dominant flat ninth", MustNew(Dominant, Ninth, true).Name())
	assert.Equal("major flat ninth", MustNew(Major, MajorNinth, true).Name())
	assert.Equal("diminished seventh", MustNew(Diminished, DiminishedSeventh, false).Name())
	assert.Equal("sus4", MustNew(Sus4, NoExtension, false).Name())
	assert.Equal("half-diminished seventh", MustNew(HalfDiminished, Seventh, false).Name())
}

func TestConflicts(t *testing.T) {
	cases := []struct {
		name    string
		value   Value
		ext     Extension
		flatExt bool
	}{
		{"major with dominant extension", Major, Seventh, false},
		{"diminished ninth", Diminished, Ninth, false},
		{"minor diminished seventh", Minor, DiminishedSeventh, false},
		{"flat seventh", Minor, Seventh, true},
		{"flat without extension", Major, NoExtension, true},
		{"dominant triad", Dominant, NoExtension, false},
		{"half-diminished triad", HalfDiminished, NoExtension, false},
		{"dominant major seventh", Dominant, MajorSeventh, false},
		{"extended power chord", Power, Ninth, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.value, c.ext, c.flatExt)
			assert.ErrorIs(t, err, model.ErrQualityConflict)
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		notation string
		want     Quality
	}{
		{"", MustNew(Major, NoExtension, false)},
		{"5", MustNew(Power, NoExtension, false)},
		{"7", MustNew(Dominant, Seventh, false)},
		{"m9", MustNew(Minor, Ninth, false)},
		{"min11", MustNew(Minor, Eleventh, false)},
		{"-7", MustNew(Minor, Seventh, false)},
		{"mM7", MustNew(Minor, MajorSeventh, false)},
		{"mΔ9", MustNew(Minor, MajorNinth, false)},
		{"augmaj7", MustNew(Augmented, MajorSeventh, false)},
		{"maj7#5", MustNew(Augmented, MajorSeventh, false)},
		{"7#5", MustNew(Augmented, Seventh, false)},
		{"aug7", MustNew(Augmented, Seventh, false)},
		{"m7b5", MustNew(HalfDiminished, Seventh, false)},
		{"ø7", MustNew(HalfDiminished, Seventh, false)},
		{"mb5", MustNew(Diminished, NoExtension, false)},
		{"m(b5)", MustNew(Diminished, NoExtension, false)},
		{"majb9", MustNew(Major, MajorNinth, true)},
		{"dim7", MustNew(Diminished, DiminishedSeventh, false)},
		{"o7", MustNew(Diminished, DiminishedSeventh, false)},
		{"°", MustNew(Diminished, NoExtension, false)},
		{"+", MustNew(Augmented, NoExtension, false)},
		{"M", MustNew(Major, NoExtension, false)},
		{"sus", MustNew(Sus4, NoExtension, false)},
		{"sus2", MustNew(Sus2, NoExtension, false)},
		{"7sus4", MustNew(Sus4, Seventh, false)},
		{"maj9sus2", MustNew(Sus2, MajorNinth, false)},
		{"b9", MustNew(Dominant, Ninth, true)},
		{"dom♭9", MustNew(Dominant, Ninth, true)},
		{"aug♭9♯5", MustNew(Augmented, Ninth, true)},
	}
	for _, c := range cases {
		t.Run(c.notation, func(t *testing.T) {
			q, err := Parse(c.notation)
			require.NoError(t, err)
			assert.Equal(t, c.want, q)
		})
	}
}

func TestParseLowercaseRoot(t *testing.T) {
	assert := assert.New(t)

	q, err := ParseForRoot("7", false)
	assert.NoError(err)
	assert.Equal(MustNew(Minor, Seventh, false), q)

	q, err = ParseForRoot("", false)
	assert.NoError(err)
	assert.Equal(MustNew(Minor, NoExtension, false), q)

	q, err = ParseForRoot("b5", false)
	assert.NoError(err)
	assert.Equal(MustNew(Diminished, NoExtension, false), q)

	q, err = ParseForRoot("#5", true)
	assert.NoError(err)
	assert.Equal(MustNew(Augmented, NoExtension, false), q)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		notation string
		err      error
	}{
		{"7b5", model.ErrMalformedNotation},
		{"5#5", model.ErrMalformedNotation},
		{"susb5", model.ErrMalformedNotation},
		{"m7add", model.ErrMalformedNotation},
		{"xyz", model.ErrMalformedNotation},
		{"dim9", model.ErrQualityConflict},
		{"b7", model.ErrQualityConflict},
		{"5sus", model.ErrMalformedNotation},
		{"augsus", model.ErrQualityConflict},
		{"dim7sus2", model.ErrQualityConflict},
	}
	for _, c := range cases {
		t.Run(c.notation, func(t *testing.T) {
			_, err := Parse(c.notation)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestSuspend(t *testing.T) {
	assert := assert.New(t)

	q, err := MustNew(Dominant, Thirteenth, true).Suspend(Sus4)
	assert.NoError(err)
	assert.Equal(MustNew(Sus4, Thirteenth, true), q)

	q, err = MustNew(Minor, NoExtension, false).Suspend(Sus2)
	assert.NoError(err)
	assert.Equal(MustNew(Sus2, NoExtension, false), q)

	_, err = MustNew(Sus2, NoExtension, false).Suspend(Sus4)
	assert.ErrorIs(err, model.ErrMalformedNotation)

	_, err = MustNew(HalfDiminished, Seventh, false).Suspend(Sus4)
	assert.ErrorIs(err, model.ErrQualityConflict)

	_, err = MustNew(Major, NoExtension, false).Suspend(Minor)
	assert.ErrorIs(err, model.ErrMalformedNotation)
}

func TestScanSus(t *testing.T) {
	v, ok, rest := ScanSus(" sus2/G")
	assert.True(t, ok)
	assert.Equal(t, Sus2, v)
	assert.Equal(t, "/G", rest)

	v, ok, _ = ScanSus("sus")
	assert.True(t, ok)
	assert.Equal(t, Sus4, v)

	_, ok, rest = ScanSus("add9")
	assert.False(t, ok)
	assert.Equal(t, "add9", rest)
}

func TestScanLeavesRest(t *testing.T) {
	q, rest, err := Scan("m7add9/G", true)
	require.NoError(t, err)
	assert.Equal(t, MustNew(Minor, Seventh, false), q)
	assert.Equal(t, "add9/G", rest)

	q, rest, err = Scan("add9", true)
	require.NoError(t, err)
	assert.Equal(t, MustNew(Major, NoExtension, false), q)
	assert.Equal(t, "add9", rest)
}

func TestScanToken(t *testing.T) {
	tok, rest := ScanToken("mM9sus")
	assert.Equal(t, ExtendedToken{Prefix: MinorMajorPrefix, Degree: 9}, tok)
	assert.Equal(t, "sus", rest)

	tok, _ = ScanToken("5")
	assert.Equal(t, PowerToken{}, tok)

	tok, rest = ScanToken("dim/E")
	assert.Equal(t, TriadToken{Prefix: DiminishedPrefix}, tok)
	assert.Equal(t, "/E", rest)

	tok, rest = ScanToken("/E")
	assert.Equal(t, EmptyToken{}, tok)
	assert.Equal(t, "/E", rest)
}

func TestShortFormRoundTrip(t *testing.T) {
	values := []Value{Major, Minor, Diminished, Augmented, Dominant, HalfDiminished, Sus2, Sus4, Power}
	exts := []Extension{NoExtension, Seventh, Ninth, Eleventh, Thirteenth, MajorSeventh, MajorNinth, MajorEleventh, MajorThirteenth, DiminishedSeventh}
	for _, v := range values {
		for _, e := range exts {
			for _, flat := range []bool{false, true} {
				q, err := New(v, e, flat)
				if err != nil {
					continue
				}
				back, err := Parse(q.String())
				require.NoError(t, err, "%s (%q)", q.Name(), q.String())
				assert.Equal(t, q, back, "%s (%q)", q.Name(), q.String())
			}
		}
	}
}
