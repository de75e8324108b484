package cmd

import (
	"encoding/json"
	"testing"

	"github.com/jsphweid/chordparser/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordCommand(t *testing.T) {
	out, err := execute(t, "chord", "Cmaj7/G")
	require.NoError(t, err)
	assert.Equal(t, "Cmaj7/G\n"+
		"  quality:   major seventh\n"+
		"  notes:     G C E B\n"+
		"  degrees:   5 1 3 7\n"+
		"  intervals: 5 4 7\n"+
		"  inversion: 5\n", out)
}

func TestChordCommandJSON(t *testing.T) {
	out, err := execute(t, "chord", "--json", "Cm7b5", "Dsus2")
	require.NoError(t, err)

	var views []model.ChordView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Cm7♭5", views[0].Notation)
	assert.Equal(t, "half-diminished seventh", views[0].Quality)
	assert.Equal(t, []string{"D", "E", "A"}, views[1].Notes)
	assert.Nil(t, views[1].Inversion)
}

func TestChordCommandRejectsBadNotation(t *testing.T) {
	_, err := execute(t, "chord", "C", "H")
	assert.Error(t, err)
}

func TestTransposeCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"sharps", []string{"transpose", "1", "C#/G"}, "D/A♭\n"},
		{"flats", []string{"transpose", "--flats", "1", "C/Gb", "Cm"}, "D♭/A𝄫\nD♭m\n"},
		{"exact", []string{"transpose", "--letters", "2", "3", "C/E"}, "E♭/G\n"},
		{"down", []string{"transpose", "--", "-3", "Eb", "Cm7"}, "C\nAm7\n"},
		{"down with flats", []string{"transpose", "--flats", "--", "-3", "D/F#"}, "B/D♯\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := execute(t, c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}

	_, err := execute(t, "transpose", "up", "C")
	assert.Error(t, err)
}

func TestKeyCommand(t *testing.T) {
	out, err := execute(t, "key", "C")
	require.NoError(t, err)
	assert.Equal(t, "C major\n"+
		"  notes:    C D E F G A B C\n"+
		"  degrees:  1 2 3 4 5 6 7 1\n"+
		"  steps:    2 2 1 2 2 2 1\n"+
		"  diatonic: C Dm Em F G Am Bdim\n"+
		"  relative: A natural minor\n", out)
}

func TestScaleCommand(t *testing.T) {
	out, err := execute(t, "scale", "C", "minor", "--degree", "#3")
	require.NoError(t, err)
	assert.Equal(t, "E♯\n", out)

	out, err = execute(t, "scale", "Eb", "major", "--note", "F")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = execute(t, "scale", "D", "dorian")
	require.NoError(t, err)
	assert.Contains(t, out, "D dorian scale\n")
	assert.Contains(t, out, "  degrees: 1 2 ♭3 4 5 6 ♭7")

	_, err = execute(t, "scale", "C", "--degree", "9")
	assert.Error(t, err)
}
