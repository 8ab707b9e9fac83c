package util

import "golang.org/x/exp/constraints"

// Keys returns the keys of m in unspecified order.
func Keys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Clamp[A constraints.Ordered](v, lo, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min[A constraints.Ordered](a, b A) A {
	if a > b {
		return b
	}
	return a
}
