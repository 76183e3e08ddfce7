package parity

import "math"

// IsEvenFloat reports whether v is an even integer. A value with a fractional
// part, NaN, or an infinity is not even.
//
// Example:
//
//	parity.IsEvenFloat(2.0) // true
//	parity.IsEvenFloat(2.5) // false
func IsEvenFloat[T Float](v T) bool {
	f := float64(v)

	return f-math.Trunc(f) == 0 && math.Mod(f, 2) == 0
}

// IsOddFloat reports whether v is an odd integer. A value with a fractional
// part, NaN, or an infinity is not odd, so over non-integral values both
// IsOddFloat and IsEvenFloat return false; they are exact complements only on
// the integral subset of the domain.
func IsOddFloat[T Float](v T) bool {
	f := float64(v)

	return f-math.Trunc(f) == 0 && math.Mod(f, 2) != 0
}
