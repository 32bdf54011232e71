package builder

// Slice helpers backing the copy-on-write field updates. Every update
// allocates a fresh slice so no two Element values ever share a backing
// array for a field one of them has changed.

// appended returns a new slice holding s followed by v.
func appended[T any](s []T, v ...T) []T {
	out := make([]T, 0, len(s)+len(v))
	out = append(out, s...)
	return append(out, v...)
}

// prepended returns a new slice holding v followed by s.
func prepended[T any](s []T, v ...T) []T {
	out := make([]T, 0, len(s)+len(v))
	out = append(out, v...)
	return append(out, s...)
}

// filtered returns a new slice holding the elements of s for which keep is
// true, in their original order.
func filtered[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, item := range s {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// copied returns a fresh copy of s, detaching it from the caller's backing
// array.
func copied[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
