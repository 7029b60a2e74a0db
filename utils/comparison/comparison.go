package comparison

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[V constraints.Ordered](a, b V) V {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[V constraints.Ordered](a, b V) V {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[V constraints.Ordered](v, lo, hi V) V {
	return Min(Max(v, lo), hi)
}
