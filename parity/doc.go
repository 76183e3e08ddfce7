// Package parity provides branch-free evenness and oddness predicates for
// every primitive numeric type.
//
// Integer predicates test the least-significant bit instead of computing a
// remainder, which sidesteps the sign behavior of % on negative operands and
// classifies every representable value, including the minimum signed value.
// Floating-point predicates additionally require the value to have no
// fractional part, so NaN, infinities, and fractional values are neither even
// nor odd.
//
// Go has no mechanism for attaching methods to primitive types, so the
// predicates are free generic functions rather than methods. An instantiation
// such as parity.IsEven[int] is an ordinary func(int) bool and can be passed
// directly to mapping or filtering combinators:
//
//	evens := slices.DeleteFunc(numbers, parity.IsOdd[int])
//
// All predicates are pure, allocation-free, and safe for concurrent use from
// any number of goroutines.
package parity
