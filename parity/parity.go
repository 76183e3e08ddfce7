package parity

// IsEven reports whether v is divisible by two.
//
// The check inspects only the least-significant bit, so it is branch-free,
// constant-time, and correct for every representable value, including the
// minimum signed value under two's complement.
//
// Example:
//
//	if parity.IsEven(len(pages)) {
//	    return layoutTwoColumn(pages)
//	}
func IsEven[T Integer](v T) bool {
	return v&1 == 0
}

// IsOdd reports whether v is not divisible by two. IsOdd is the exact
// complement of IsEven for every integer value.
func IsOdd[T Integer](v T) bool {
	return v&1 != 0
}
