package note

import "github.com/jsphweid/chordparser/util"

// SemitoneIntervals returns the upward semitone distance (0-11) from each
// note to the next.
func SemitoneIntervals(notes ...Note) []int {
	if len(notes) < 2 {
		return []int{}
	}
	res := make([]int, 0, len(notes)-1)
	for i := 1; i < len(notes); i++ {
		res = append(res, util.Mod(notes[i].Steps()-notes[i-1].Steps(), 12))
	}
	return res
}

// LetterIntervals returns the upward letter distance (0-6) from each note
// to the next.
func LetterIntervals(notes ...Note) []int {
	if len(notes) < 2 {
		return []int{}
	}
	res := make([]int, 0, len(notes)-1)
	for i := 1; i < len(notes); i++ {
		res = append(res, util.Mod(notes[i].letter.Index()-notes[i-1].letter.Index(), 7))
	}
	return res
}

// SemitoneDisplacements is like SemitoneIntervals but takes the shorter
// direction, so B after C is -1 rather than 11.
func SemitoneDisplacements(notes ...Note) []int {
	res := SemitoneIntervals(notes...)
	for i, v := range res {
		if v > 6 {
			res[i] = v - 12
		}
	}
	return res
}
