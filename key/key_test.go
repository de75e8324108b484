package key

import (
	"testing"

	"github.com/jsphweid/chordparser/model"
	"github.com/jsphweid/chordparser/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		notation string
		tonic    string
		mode     Mode
		submode  Submode
	}{
		{"C", "C", Major, None},
		{"Cm", "C", Minor, Natural},
		{"Bbm", "Bb", Minor, Natural},
		{"C major", "C", Major, None},
		{"D dorian", "D", Dorian, None},
		{"e MINOR", "E", Minor, Natural},
		{"F# harmonic minor", "F#", Minor, Harmonic},
		{"A melodic aeolian", "A", Aeolian, Melodic},
		{"Cb locrian", "Cb", Locrian, None},
	}
	for _, c := range cases {
		t.Run(c.notation, func(t *testing.T) {
			k, err := Parse(c.notation)
			require.NoError(t, err)
			assert.Equal(t, note.MustParse(c.tonic), k.Tonic())
			assert.Equal(t, c.mode, k.Mode())
			assert.Equal(t, c.submode, k.Submode())
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	_, err := Parse("H major")
	assert.ErrorIs(t, err, model.ErrMalformedNotation)

	_, err = Parse("C ionia")
	assert.ErrorIs(t, err, model.ErrMalformedNotation)

	_, err = Parse("C nothing minor")
	assert.ErrorIs(t, err, model.ErrMalformedNotation)

	_, err = Parse("C harmonic major")
	assert.ErrorIs(t, err, model.ErrModeMismatch)

	_, err = Parse("C very harmonic minor")
	assert.ErrorIs(t, err, model.ErrMalformedNotation)
}

func TestNewKeySubmodeRules(t *testing.T) {
	c := note.MustParse("C")

	k, err := New(c, Minor, None)
	require.NoError(t, err)
	assert.Equal(t, Natural, k.Submode())

	k, err = New(c, Aeolian, Melodic)
	require.NoError(t, err)
	assert.Equal(t, Melodic, k.Submode())

	_, err = New(c, Major, Harmonic)
	assert.ErrorIs(t, err, model.ErrModeMismatch)

	_, err = New(c, Dorian, Natural)
	assert.ErrorIs(t, err, model.ErrModeMismatch)
}

func TestStepPattern(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(StepPattern{2, 1, 2, 2, 1, 3, 1, 2, 1, 2, 2, 1, 3, 1}, MustParse("C harmonic minor").StepPattern())
	assert.Equal(StepPattern{2, 1, 2, 2, 2, 2, 1, 2, 1, 2, 2, 2, 2, 1}, MustParse("C melodic minor").StepPattern())
	assert.Equal(StepPattern{2, 2, 1, 2, 2, 2, 1, 2, 2, 1, 2, 2, 2, 1}, MustParse("C").StepPattern())
	assert.Equal(StepPattern{2, 1, 2, 2, 2, 1, 2, 2, 1, 2, 2, 2, 1, 2}, MustParse("D dorian").StepPattern())
	assert.Equal(StepPattern{1, 2, 2, 1, 2, 2, 2, 1, 2, 2, 1, 2, 2, 2}, MustParse("B locrian").StepPattern())
}

func TestKeyEquality(t *testing.T) {
	assert := assert.New(t)
	assert.True(MustParse("E major").Equal(MustParse("E ionian")))
	assert.True(MustParse("F minor").Equal(MustParse("F aeolian")))
	assert.True(MustParse("D minor").Equal(MustParse("D natural minor")))
	assert.False(MustParse("D minor").Equal(MustParse("D harmonic minor")))
	assert.False(MustParse("C major").Equal(MustParse("C# major")))
	assert.False(MustParse("C dorian").Equal(MustParse("C minor")))
}

func TestKeyString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C major", MustParse("C").String())
	assert.Equal("E♭ natural minor", MustParse("Ebm").String())
	assert.Equal("F♯ harmonic minor", MustParse("F# harmonic minor").String())
	assert.Equal("D dorian", MustParse("D dorian").String())
}

func TestRelativeMajor(t *testing.T) {
	cases := []struct {
		from string
		want string
	}{
		{"C minor", "Eb major"},
		{"F aeolian", "Ab major"},
		{"B harmonic minor", "D major"},
	}
	for _, c := range cases {
		t.Run(c.from, func(t *testing.T) {
			got, err := MustParse(c.from).RelativeMajor()
			require.NoError(t, err)
			assert.True(t, MustParse(c.want).Equal(got), "got %s", got)
		})
	}

	_, err := MustParse("C dorian").RelativeMajor()
	assert.ErrorIs(t, err, model.ErrModeMismatch)
}

func TestRelativeMinor(t *testing.T) {
	got, err := MustParse("D major").RelativeMinor(None)
	require.NoError(t, err)
	assert.Equal(t, "B natural minor", got.String())

	got, err = MustParse("A major").RelativeMinor(Harmonic)
	require.NoError(t, err)
	assert.True(t, MustParse("F# harmonic minor").Equal(got))

	got, err = MustParse("Fb ionian").RelativeMinor(Natural)
	require.NoError(t, err)
	assert.True(t, MustParse("Db minor").Equal(got))

	_, err = MustParse("C dorian").RelativeMinor(None)
	assert.ErrorIs(t, err, model.ErrModeMismatch)
}

func TestWithModeAndTranspose(t *testing.T) {
	k := MustParse("C dorian")

	changed, err := k.WithTonic(note.MustParse("D")).WithMode(Minor, Harmonic)
	require.NoError(t, err)
	assert.True(t, MustParse("D harmonic minor").Equal(changed))
	assert.Equal(t, "C dorian", k.String())

	moved, err := MustParse("C").Transpose(6, 3)
	require.NoError(t, err)
	assert.Equal(t, "F♯ major", moved.String())

	assert.Equal(t, "A♭ natural minor", MustParse("Cm").TransposeSimple(8, true).String())
}
