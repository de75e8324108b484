package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod is the euclidean remainder, always in [0, m).
func Mod[A constraints.Signed](a A, m A) A {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Fold reduces a to its signed representative mod m with the smallest
// magnitude. Ties go negative: Fold(6, 12) == -6.
func Fold[A constraints.Signed](a A, m A) A {
	r := Mod(a, m)
	if 2*r >= m {
		r -= m
	}
	return r
}

func Sum[A constraints.Integer](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}
