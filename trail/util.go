package trail

// growSlice grows s's capacity to at least n elements without changing its
// length, by copying s into a new slice of capacity exactly n — done
// eagerly during warm-up instead of lazily on the hot path.
func growSlice[S ~[]E, E any](s S, n int) S {
	if cap(s) >= n {
		return s
	}
	grown := append(make(S, 0, n), s...)
	return grown
}

// shrinkSlice returns a copy of s with capacity trimmed to its length.
func shrinkSlice[S ~[]E, E any](s S) S {
	if cap(s) == len(s) {
		return s
	}
	trimmed := make(S, len(s))
	copy(trimmed, s)
	return trimmed
}
