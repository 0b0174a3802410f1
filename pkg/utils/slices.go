package utils

// Filter returns the elements of s that satisfy keep, in their original order.
// The result is never nil.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))
	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Take returns at most the first n elements of s.
func Take[S ~[]E, E any](s S, n int) S {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
