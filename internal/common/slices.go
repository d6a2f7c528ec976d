package common

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Last returns the last element of the slice and true, or the zero value and false if empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[len(s)-1], true
}

// Chunk splits s into consecutive sub-slices of at most size elements.
// The sub-slices share the backing array of s. A size below one is treated
// as one.
func Chunk[S ~[]E, E any](s S, size int) []S {
	if len(s) == 0 {
		return nil
	}

	size = max(size, 1)
	chunks := make([]S, 0, (len(s)+size-1)/size)

	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end:end])
	}

	return chunks
}
